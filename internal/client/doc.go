// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client owns the lifetime of a client session.
//
// A [Factory] logs in through a gateway and returns a [Session] that holds
// the gateway, the service adapters and the registry of that login. Nothing
// is process-wide: several sessions may be open side by side.
package client
