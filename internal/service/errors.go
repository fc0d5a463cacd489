package service

import (
	"errors"
	"fmt"
)

// Kind classifies an expected, per-request failure.
type Kind string

const (
	KindNoChild      Kind = "no_child"
	KindUnknownChild Kind = "unknown_child"
	KindDailyLimit   Kind = "daily_limit"
	KindOutOfSync    Kind = "out_of_sync"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
)

// Error is a recoverable outcome reported back to the caller with a
// human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or "" when err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
