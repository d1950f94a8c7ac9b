// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the fault messages the development server writes
// into response bodies. Keeping them in one place keeps the wording of the
// HTTP API consistent.
package app

const (
	// MsgInternalServerError hides a backend failure the caller cannot
	// resolve.
	MsgInternalServerError = "internal server error"

	// MsgRequestCancelled is returned when the client went away or the
	// request timed out before the backend answered.
	MsgRequestCancelled = "request cancelled"

	// MsgInvalidSessionToken is returned when a bearer token cannot be
	// verified.
	MsgInvalidSessionToken = "invalid session token"

	// MsgSessionNotActive is a format taking the session uuid; the token is
	// valid but the session was closed or reaped.
	MsgSessionNotActive = "session %s is not active"

	// MsgMalformedBody is a format taking the decoding error.
	MsgMalformedBody = "malformed request body: %v"

	// MsgUnknownStoreMethod is a format taking the method name.
	MsgUnknownStoreMethod = "unknown store method %q"
)
