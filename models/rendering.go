// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"image/color"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// RenderingSettings is a client copy of the rendering settings of one pixels
// set. Changing it does not change the server settings.
type RenderingSettings struct {
	PixelsID int64
	DefaultZ int
	DefaultT int
	Model    string
	Channels []ChannelSettings
}

// ChannelSettings holds the settings of one channel.
type ChannelSettings struct {
	Active bool
	Start  float64
	End    float64
	Color  color.RGBA
}

// NewRenderingSettings copies def. It returns nil when def is nil.
func NewRenderingSettings(def *remote.RenderingDef) *RenderingSettings {
	if def == nil {
		return nil
	}
	rs := &RenderingSettings{
		PixelsID: def.PixelsID,
		DefaultZ: def.DefaultZ,
		DefaultT: def.DefaultT,
		Model:    def.Model,
		Channels: make([]ChannelSettings, 0, len(def.Channels)),
	}
	for _, c := range def.Channels {
		rs.Channels = append(rs.Channels, ChannelSettings{
			Active: c.Active,
			Start:  c.InputStart,
			End:    c.InputEnd,
			Color:  color.RGBA{R: uint8(c.Red), G: uint8(c.Green), B: uint8(c.Blue), A: uint8(c.Alpha)},
		})
	}
	return rs
}

// ActiveChannels returns the indexes of active channels.
func (r *RenderingSettings) ActiveChannels() []int {
	var out []int
	for i, c := range r.Channels {
		if c.Active {
			out = append(out, i)
		}
	}
	return out
}
