package model

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	KindValidation       Kind = "validation_error"
	KindInsufficientData Kind = "insufficient_data"
	KindInvalidBar       Kind = "invalid_bar"
	KindUpstreamData     Kind = "upstream_data_error"
	KindNotFound         Kind = "not_found"
)

// Error carries an error kind, a human-readable message, and optional
// ticker context. Invalid financial inputs are never silently defaulted;
// they surface as a KindValidation error instead.
type Error struct {
	Kind   Kind
	Ticker string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Ticker != "" {
		return fmt.Sprintf("%s: %s: %s", e.Ticker, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an Error of the given kind with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError builds an Error of the given kind around an underlying cause.
func WrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// WithTicker returns a copy of e annotated with the offending ticker.
func (e *Error) WithTicker(ticker string) *Error {
	clone := *e
	clone.Ticker = ticker
	return &clone
}

// IsKind reports whether err (or anything it wraps) is an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var me *Error
	for errors.As(err, &me) {
		if me.Kind == kind {
			return true
		}
		err = me.Err
		me = nil
	}
	return false
}

// KindOf returns the kind of the outermost Error in err's chain,
// or the empty Kind when err is not an Error.
func KindOf(err error) Kind {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind
	}
	return ""
}
