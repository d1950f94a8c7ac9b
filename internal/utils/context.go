// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds the small helpers shared by the development server
// and the HTTP transport: request context keys, JSON bodies, the resty
// client, session tokens and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so that string keys of
// other packages cannot collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the experimenter id of an authenticated request.
	UserIDCtxKey = contextKey("userID")
	// SessionCtxKey holds the uuid of the server session of the request.
	SessionCtxKey = contextKey("sessionUUID")
)

// WithSession attaches the identity carried by a session token to ctx.
func WithSession(ctx context.Context, userID int64, sessionUUID string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, SessionCtxKey, sessionUUID)
}

// GetUserIDFromContext returns the experimenter id stored by WithSession.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetSessionFromContext returns the session uuid stored by WithSession.
func GetSessionFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionCtxKey).(string)
	return id, ok && id != ""
}
