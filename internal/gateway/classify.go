// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"errors"

	"github.com/ome/openmicroscopy-sub022/internal/mapper"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// Classify turns err into a *Error. Security faults become SecurityDenied;
// API usage and validation faults, mapper type errors and unknown kinds
// become InvalidArguments; everything else, including session faults and
// transport failures, becomes OutOfService. A *Error is returned unchanged.
func Classify(msg string, err error) error {
	if err == nil {
		return nil
	}

	var gwErr *Error
	if errors.As(err, &gwErr) {
		return err
	}

	switch {
	case remote.IsSecurityViolation(err):
		return &Error{Kind: KindSecurityDenied, Msg: msg, Err: err}
	case remote.IsBadArgument(err), mapper.IsMapperError(err), errors.Is(err, remote.ErrUnknownKind):
		return &Error{Kind: KindInvalidArguments, Msg: msg, Err: err}
	default:
		return &Error{Kind: KindOutOfService, Msg: msg, Err: err}
	}
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	kind, ok := KindOf(err)
	if !ok {
		return "error"
	}
	switch kind {
	case KindOutOfService:
		return "out_of_service"
	case KindSecurityDenied:
		return "security_denied"
	case KindInvalidArguments:
		return "invalid_arguments"
	}
	return "error"
}
