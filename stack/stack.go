// Package stack provides a generic LIFO container backed by a doubly-linked
// list, with its contract checked at runtime.
package stack

import (
	"container/list"
	"errors"

	"github.com/tedmax100/contract-stack/contract"
)

// ErrEmptyContainer is returned by Peek, Pop and Remove on an empty stack.
var ErrEmptyContainer = errors.New("stack: empty container")

// Stack is a last-in-first-out container. The front of the list is the top.
//
// The zero value is an empty stack ready to use, without postcondition
// checks. A Stack is not safe for concurrent use.
type Stack[E any] struct {
	l list.List
	c *contract.Checker
}

// Option configures a Stack.
type Option func(*options)

type options struct {
	checker *contract.Checker
}

// WithChecker sets the checker for postconditions and invariants. A nil
// checker disables them.
func WithChecker(c *contract.Checker) Option {
	return func(o *options) {
		o.checker = c
	}
}

// New returns an empty stack checked by contract.Default unless configured
// otherwise.
func New[E any](opts ...Option) *Stack[E] {
	o := options{checker: contract.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Stack[E]{c: o.checker}
	s.c.Ensure("New", "Size() == 0", s.Size() == 0)
	return s
}

// Size returns the number of elements.
func (s *Stack[E]) Size() int {
	return s.l.Len()
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[E]) IsEmpty() bool {
	empty := s.l.Front() == nil
	s.c.Ensure("IsEmpty", "result == (Size() == 0)", empty == (s.l.Len() == 0))
	return empty
}

// Peek returns the top element without removing it.
func (s *Stack[E]) Peek() (E, error) {
	top := s.l.Front()
	if err := s.c.Require("Peek", "!IsEmpty()", top != nil, ErrEmptyContainer); err != nil {
		var zero E
		return zero, err
	}
	n := s.l.Len()
	e := value[E](top)

	s.c.Ensure("Peek", "Size() == old(Size())", s.l.Len() == n)
	return e, nil
}

// Push puts e on top of the stack. Any value is accepted, including nil.
func (s *Stack[E]) Push(e E) {
	n := s.l.Len()
	el := s.l.PushFront(e)

	s.c.Ensure("Push", "Peek() == e", s.l.Front() == el)
	s.c.Ensure("Push", "Size() == old(Size()) + 1", s.l.Len() == n+1)
	s.c.Invariant("Push", "Size() >= 0", s.l.Len() >= 0)
}

// Pop removes and returns the top element.
func (s *Stack[E]) Pop() (E, error) {
	top := s.l.Front()
	if err := s.c.Require("Pop", "!IsEmpty()", top != nil, ErrEmptyContainer); err != nil {
		var zero E
		return zero, err
	}
	return s.remove("Pop", top), nil
}

// Remove discards the top element.
func (s *Stack[E]) Remove() error {
	top := s.l.Front()
	if err := s.c.Require("Remove", "!IsEmpty()", top != nil, ErrEmptyContainer); err != nil {
		return err
	}
	s.remove("Remove", top)
	return nil
}

// remove unlinks top, which must be the front element, and returns its value.
func (s *Stack[E]) remove(op string, top *list.Element) E {
	n := s.l.Len()
	old := s.l.Front()
	next := top.Next()
	e := value[E](top)
	s.l.Remove(top)

	s.c.Ensure(op, "result == old(Peek())", top == old && s.l.Front() == next)
	s.c.Ensure(op, "Size() == old(Size()) - 1", s.l.Len() == n-1)
	s.c.Invariant(op, "Size() >= 0", s.l.Len() >= 0)
	return e
}

// value returns the element's payload. A nil interface pushed as E is stored
// as a nil any, which a plain type assertion rejects.
func value[E any](el *list.Element) E {
	e, _ := el.Value.(E)
	return e
}
