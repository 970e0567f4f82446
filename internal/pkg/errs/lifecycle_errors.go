package errs

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalTransition      = errors.New("illegal transition")
	ErrForbidden              = errors.New("forbidden")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// IllegalTransitionError is returned when the target state is not reachable
// from the current one. The order is left unchanged.
type IllegalTransitionError struct {
	From  string
	To    string
	Cause error
}

func NewIllegalTransitionError(from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func NewIllegalTransitionErrorWithCause(from, to string, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Cause: cause}
}

func (e *IllegalTransitionError) Error() string {
	return withCause(fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To), e.Cause)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// ForbiddenError is returned when a legal transition is denied to the acting role.
type ForbiddenError struct {
	Role string
	From string
	To   string
}

func NewForbiddenError(role, from, to string) *ForbiddenError {
	return &ForbiddenError{Role: role, From: from, To: to}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: role %s may not move an order from %s to %s", ErrForbidden, e.Role, e.From, e.To)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConcurrentModificationError is returned when another transition on the same
// order won the race. Callers should re-fetch and retry or report a conflict.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewConcurrentModificationError(paramName string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id}
}

func NewConcurrentModificationErrorWithCause(paramName string, id any, cause error) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConcurrentModificationError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %v", ErrConcurrentModification, e.ParamName, e.ID), e.Cause)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
