// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the remote service contract over HTTP.
//
// Every service call is a JSON POST under /api/v0 authenticated by a bearer
// session token. Faults raised by the backend travel back as a JSON body
// whose status code follows the fault kind. Request tracing, access logging,
// metrics and response compression are handled here before calls reach the
// backend.
package http
