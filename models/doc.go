// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the client-side data objects handed out by the
// service layer.
//
// Each data object wraps exactly one server object from internal/remote.
// Scalar getters read through to the wrapped object and every setter marks
// the data object dirty. Related collections are exposed as explicitly
// loaded or unloaded snapshots: a getter returns nil while the server
// collection has not been fetched, and a defensive copy once it has.
package models
