// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the development server returned by [NewServer] and the HTTP
// listener it runs.
type Server interface {
	// RunServer blocks until the listener stops.
	RunServer()
	// Shutdown drains in-flight requests.
	Shutdown()
}

var (
	_ Server = (*server)(nil)
	_ Server = (*httpServer)(nil)
)
