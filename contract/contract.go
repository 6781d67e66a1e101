// Package contract checks preconditions, postconditions and invariants at
// runtime.
//
// Preconditions are the caller's obligation, so a failed precondition is
// returned to the caller as an error. Postconditions and invariants are the
// implementation's obligation; a failure there is a bug and is reported to
// the checker's Handler, which panics by default.
package contract

import (
	"fmt"
)

// Kind is the kind of contract clause.
type Kind int

const (
	// Precondition must hold before an operation runs.
	Precondition Kind = iota
	// Postcondition must hold after an operation returns.
	Postcondition
	// Invariant must hold at every observable point.
	Invariant
)

func (k Kind) String() string {
	switch k {
	case Precondition:
		return "precondition"
	case Postcondition:
		return "postcondition"
	case Invariant:
		return "invariant"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Violation describes a failed contract clause.
type Violation struct {
	Kind Kind
	Op   string // operation that was checked, e.g. "Pop"
	Cond string // condition that failed, e.g. "!IsEmpty()"
	Err  error  // optional cause
}

func (v *Violation) Error() string {
	if v.Err != nil {
		return fmt.Sprintf("%s %s violated: %s: %v", v.Op, v.Kind, v.Cond, v.Err)
	}
	return fmt.Sprintf("%s %s violated: %s", v.Op, v.Kind, v.Cond)
}

// Unwrap returns the cause.
func (v *Violation) Unwrap() error {
	return v.Err
}

// Handler receives postcondition and invariant violations.
type Handler interface {
	Violated(v *Violation)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(v *Violation)

// Violated calls f(v).
func (f HandlerFunc) Violated(v *Violation) {
	f(v)
}

// PanicHandler panics with the violation.
var PanicHandler Handler = HandlerFunc(func(v *Violation) {
	panic(v)
})

// Option configures a Checker.
type Option func(*Checker)

// WithHandler sets the handler for postcondition and invariant violations.
func WithHandler(h Handler) Option {
	return func(c *Checker) {
		c.handler = h
	}
}

// Disabled turns off postcondition and invariant checks.
func Disabled() Option {
	return func(c *Checker) {
		c.enabled = false
	}
}

// Checker evaluates contract clauses. A nil *Checker is valid: Require still
// applies, Ensure and Invariant do nothing.
type Checker struct {
	enabled bool
	handler Handler
}

// New returns an enabled Checker that panics on violations unless
// configured otherwise.
func New(opts ...Option) *Checker {
	c := &Checker{
		enabled: true,
		handler: PanicHandler,
	}
	for _, o := range opts {
		o(c)
	}
	if c.handler == nil {
		c.handler = PanicHandler
	}
	return c
}

var defaultChecker = New()

// Default returns the shared enabled checker using PanicHandler.
func Default() *Checker {
	return defaultChecker
}

// Enabled reports whether postconditions and invariants are checked.
func (c *Checker) Enabled() bool {
	return c != nil && c.enabled
}

// Require returns a precondition Violation wrapping err if ok is false, nil
// otherwise. It applies even when the checker is disabled.
func (c *Checker) Require(op, cond string, ok bool, err error) error {
	if ok {
		return nil
	}
	return &Violation{Kind: Precondition, Op: op, Cond: cond, Err: err}
}

// Ensure reports a postcondition violation if ok is false.
func (c *Checker) Ensure(op, cond string, ok bool) {
	c.check(Postcondition, op, cond, ok)
}

// Invariant reports an invariant violation if ok is false.
func (c *Checker) Invariant(op, cond string, ok bool) {
	c.check(Invariant, op, cond, ok)
}

func (c *Checker) check(k Kind, op, cond string, ok bool) {
	if ok || !c.Enabled() {
		return
	}
	c.handler.Violated(&Violation{Kind: k, Op: op, Cond: cond})
}
