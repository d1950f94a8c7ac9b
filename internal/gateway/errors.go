// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"errors"
	"fmt"
)

// Kind is the failure category of a gateway call.
type Kind int

const (
	// KindOutOfService means the server could not be reached or failed for a
	// reason the caller cannot fix.
	KindOutOfService Kind = iota + 1
	// KindSecurityDenied is an access failure: the user may not perform the
	// operation.
	KindSecurityDenied
	// KindInvalidArguments is an access failure: the request itself is wrong.
	KindInvalidArguments
)

func (k Kind) String() string {
	switch k {
	case KindOutOfService:
		return "out of service"
	case KindSecurityDenied:
		return "security denied"
	case KindInvalidArguments:
		return "invalid arguments"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsAccess reports whether k is one of the access failure kinds.
func (k Kind) IsAccess() bool {
	return k == KindSecurityDenied || k == KindInvalidArguments
}

// Sentinels matched by *Error through errors.Is.
var (
	ErrOutOfService     = errors.New("gateway: out of service")
	ErrAccess           = errors.New("gateway: access failure")
	ErrSecurityDenied   = errors.New("gateway: security denied")
	ErrInvalidArguments = errors.New("gateway: invalid arguments")

	// ErrNotConnected is the cause of OutOfService failures raised when no
	// session is open.
	ErrNotConnected = errors.New("gateway: not connected")
)

// Error is the single error type returned by the gateway.
type Error struct {
	Kind Kind
	// Msg says what the gateway was doing.
	Msg string
	// Err is the underlying cause, possibly nil.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the kind, and ErrAccess for both access kinds.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrOutOfService:
		return e.Kind == KindOutOfService
	case ErrAccess:
		return e.Kind.IsAccess()
	case ErrSecurityDenied:
		return e.Kind == KindSecurityDenied
	case ErrInvalidArguments:
		return e.Kind == KindInvalidArguments
	}
	return false
}

// OutOfService builds a KindOutOfService error.
func OutOfService(msg string, err error) *Error {
	return &Error{Kind: KindOutOfService, Msg: msg, Err: err}
}

// SecurityDenied builds a KindSecurityDenied error.
func SecurityDenied(msg string, err error) *Error {
	return &Error{Kind: KindSecurityDenied, Msg: msg, Err: err}
}

// InvalidArguments builds a KindInvalidArguments error with a formatted
// message and no cause.
func InvalidArguments(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArguments, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind, true
	}
	return 0, false
}
