// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import "errors"

var (
	// ErrUnknownType is returned for values that have no data object.
	ErrUnknownType = errors.New("mapper: unknown type")
	// ErrNilObject is returned when asked to convert a nil object.
	ErrNilObject = errors.New("mapper: nil object")
	// ErrNotHomogeneous is returned when a collection mixes data object types.
	ErrNotHomogeneous = errors.New("mapper: collection is not homogeneous")
	// ErrKindMismatch is returned when an update targets an object of another
	// kind or id.
	ErrKindMismatch = errors.New("mapper: object kind mismatch")
)

// IsMapperError reports whether err was raised by this package.
func IsMapperError(err error) bool {
	return errors.Is(err, ErrUnknownType) ||
		errors.Is(err, ErrNilObject) ||
		errors.Is(err, ErrNotHomogeneous) ||
		errors.Is(err, ErrKindMismatch)
}
