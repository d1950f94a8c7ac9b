// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type faultBody struct {
	Kind    string `json:"fault"`
	Message string `json:"message"`
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	data := faultBody{Kind: "SecurityViolation", Message: "not the owner"}

	n, err := WriteJSON(w, data, http.StatusForbidden)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestReadJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"fault":"ApiUsageException","message":"bad"}`))

	var got faultBody
	if err := ReadJSON(r, &got); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got.Kind != "ApiUsageException" || got.Message != "bad" {
		t.Errorf("unexpected body %+v", got)
	}
}

func TestReadJSON_EmptyBody(t *testing.T) {
	got := faultBody{Kind: "unchanged"}

	r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	if err := ReadJSON(r, &got); err != nil {
		t.Fatalf("expected an empty body to be accepted, got: %v", err)
	}
	r.Body = nil
	if err := ReadJSON(r, &got); err != nil {
		t.Fatalf("expected a nil body to be accepted, got: %v", err)
	}
	if got.Kind != "unchanged" {
		t.Errorf("expected target untouched, got %+v", got)
	}
}

func TestReadJSON_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"fault":`))

	var got faultBody
	if err := ReadJSON(r, &got); err == nil {
		t.Fatal("expected error for a truncated body, got nil")
	}
}
