// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUnavailable wraps failures to reach the server: refused
	// connections, timeouts and gateway errors of proxies.
	ErrUnavailable = errors.New("server unavailable")

	// ErrSessionClosed is wrapped by the fault returned for calls made on a
	// session after Close.
	ErrSessionClosed = errors.New("session closed")
)
