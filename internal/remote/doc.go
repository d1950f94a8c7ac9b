// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package remote describes the server side of the client data-access layer:
// the object graph returned by the image server, the service stubs used to
// reach it and the faults those stubs raise.
//
// Nothing in this package talks to a network. Implementations of the stub
// interfaces live in internal/adapter (HTTP transport) and internal/backend
// (development server). Everything above the gateway consumes data objects
// from the models package instead of these types.
package remote
