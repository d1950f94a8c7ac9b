// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the development server: the HTTP transport with
// graceful shutdown on SIGTERM, SIGINT and SIGQUIT, and the worker reaping
// idle sessions.
package server
