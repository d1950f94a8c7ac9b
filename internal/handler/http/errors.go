// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrUnknownSession is returned when a valid token names a session the
	// backend no longer holds.
	ErrUnknownSession = errors.New("unknown session")

	// ErrUnknownStoreType is returned when a store is requested with a type
	// other than thumbnail, rendering or raw.
	ErrUnknownStoreType = errors.New("unknown store type")
)
