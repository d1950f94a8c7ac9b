// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/ome/openmicroscopy-sub022/internal/gateway"
)

// ErrRendering is returned when a thumbnail or a rendered plane cannot be
// produced or decoded.
var ErrRendering = errors.New("rendering failed")

var errNoCurrentUser = gateway.OutOfService("no current user", gateway.ErrNotConnected)

// renderingError marks err as a rendering failure. Gateway failures keep
// their kind. OutOfService failures are returned unchanged so that callers
// can reconnect.
func renderingError(msg string, err error) error {
	if err == nil || errors.Is(err, gateway.ErrOutOfService) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrRendering, msg, err)
}
