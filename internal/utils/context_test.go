// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
	if SessionCtxKey.String() != "sessionUUID" {
		t.Errorf("expected 'sessionUUID', got '%s'", SessionCtxKey.String())
	}
}

func TestWithSession(t *testing.T) {
	ctx := WithSession(context.Background(), 42, "session-1")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != 42 {
		t.Errorf("expected user 42, got %d (ok=%v)", userID, ok)
	}
	session, ok := GetSessionFromContext(ctx)
	if !ok || session != "session-1" {
		t.Errorf("expected session 'session-1', got %q (ok=%v)", session, ok)
	}
}

func TestFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected no user in an empty context")
	}
	if _, ok := GetSessionFromContext(ctx); ok {
		t.Error("expected no session in an empty context")
	}
	if _, ok := GetSessionFromContext(WithSession(ctx, 1, "")); ok {
		t.Error("expected an empty session uuid to be reported missing")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for a string value")
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	// A plain string key must not be found through the typed key.
	ctx := context.WithValue(context.Background(), "userID", int64(42)) //nolint:staticcheck

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for a value stored under a string key")
	}
}
