// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the client and the server:
// the session keep-alive of the client and the idle-session reaper of the
// development server.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Name() string
	Run(ctx context.Context)
}
