// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrNoCredentials is returned by Reconnect when the session never
	// stored the credentials it was opened with.
	ErrNoCredentials = errors.New("client: session has no credentials")
)
