// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the remote service contract over the HTTP API
// of the server.
//
// [NewHTTPConnector] returns a [remote.Connector] whose sessions call
// /api/v0 with resty. Faults returned by the server are decoded back into
// [*remote.Fault] values so that callers classify them exactly as faults
// raised in process. Transport failures wrap [ErrUnavailable].
package adapter
