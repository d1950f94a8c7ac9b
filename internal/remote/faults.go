// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"errors"
	"fmt"
)

// FaultKind names a fault raised by the server.
type FaultKind string

const (
	// FaultSecurityViolation means the caller may not perform the operation.
	FaultSecurityViolation FaultKind = "SecurityViolation"
	// FaultAPIUsage means the call itself was malformed.
	FaultAPIUsage FaultKind = "ApiUsageException"
	// FaultValidation means an argument or object failed server validation.
	FaultValidation FaultKind = "ValidationException"
	// FaultSession means the session or a stateful handle is no longer valid.
	FaultSession FaultKind = "SessionException"
	// FaultServer covers every other server-side failure.
	FaultServer FaultKind = "ServerError"
)

// Fault is an error raised by a remote service.
type Fault struct {
	Kind    FaultKind `json:"fault"`
	Message string    `json:"message"`
}

func (f *Fault) Error() string {
	if f.Message == "" {
		return string(f.Kind)
	}
	return string(f.Kind) + ": " + f.Message
}

func newFault(kind FaultKind, format string, args ...any) error {
	return &Fault{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func SecurityViolation(format string, args ...any) error {
	return newFault(FaultSecurityViolation, format, args...)
}

func APIUsage(format string, args ...any) error {
	return newFault(FaultAPIUsage, format, args...)
}

func Validation(format string, args ...any) error {
	return newFault(FaultValidation, format, args...)
}

func SessionInvalid(format string, args ...any) error {
	return newFault(FaultSession, format, args...)
}

func ServerError(format string, args ...any) error {
	return newFault(FaultServer, format, args...)
}

// AsFault returns the first Fault in err's chain.
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func hasFault(err error, kinds ...FaultKind) bool {
	f, ok := AsFault(err)
	if !ok {
		return false
	}
	for _, k := range kinds {
		if f.Kind == k {
			return true
		}
	}
	return false
}

// IsSecurityViolation reports whether err carries a security fault.
func IsSecurityViolation(err error) bool { return hasFault(err, FaultSecurityViolation) }

// IsBadArgument reports whether err carries an API usage or validation fault.
func IsBadArgument(err error) bool { return hasFault(err, FaultAPIUsage, FaultValidation) }

// IsSessionInvalid reports whether err carries a session fault.
func IsSessionInvalid(err error) bool { return hasFault(err, FaultSession) }
