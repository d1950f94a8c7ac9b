// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")
	assert.True(t, info.Known())
	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())

	empty := NewAppBuildInfo("", "", "")
	assert.False(t, empty.Known())
	assert.Equal(t, "N/A", empty.BuildVersion())
	assert.Equal(t, "N/A", empty.BuildCommit())
}
