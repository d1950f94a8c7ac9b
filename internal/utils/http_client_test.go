// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient(t *testing.T) {
	var gotAgent, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		WriteJSON(w, map[string]string{"path": r.URL.Path}, http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	var body map[string]string
	resp, err := client.R().SetResult(&body).Get("/api/v0/ping")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode())
	}
	if body["path"] != "/api/v0/ping" {
		t.Errorf("expected request relative to the base url, got %q", body["path"])
	}
	if gotAgent != UserAgent {
		t.Errorf("expected user agent %q, got %q", UserAgent, gotAgent)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected json accept header, got %q", gotAccept)
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	if c := NewHTTPClient("http://localhost", 0); c.GetClient().Timeout != 0 {
		t.Errorf("expected no timeout, got %v", c.GetClient().Timeout)
	}
	if c := NewHTTPClient("http://localhost", 3*time.Second); c.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", c.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected independent resty clients")
	}
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	if !IsUUID(a) || !IsUUID(b) {
		t.Fatalf("expected uuids, got %q and %q", a, b)
	}
	if a == b {
		t.Error("expected distinct ids")
	}
	if IsUUID("not-a-uuid") {
		t.Error("expected IsUUID to reject garbage")
	}
}
