package bftape

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedOpenBrace  = errors.New("unmatched [")
	ErrUnmatchedCloseBrace = errors.New("unmatched ]")
	ErrInputExhausted      = errors.New("input exhausted")
)

// Error is a fatal interpreter fault. Kind is one of the Err* sentinels.
type Error struct {
	Kind  error
	Pos   int
	Cause error
}

var _ error = new(Error)

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v at %d: %v", e.Kind, e.Pos, e.Cause)
	}
	return fmt.Sprintf("%v at %d", e.Kind, e.Pos)
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}
