package contract

import (
	"go.uber.org/zap"
)

// LogHandler returns a Handler that logs violations at error level instead
// of panicking.
func LogHandler(l *zap.Logger) Handler {
	if l == nil {
		l = zap.NewNop()
	}
	return HandlerFunc(func(v *Violation) {
		l.Error("contract violated",
			zap.String("kind", v.Kind.String()),
			zap.String("op", v.Op),
			zap.String("cond", v.Cond),
		)
	})
}
