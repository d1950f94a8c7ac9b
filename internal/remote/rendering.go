// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

// RenderingDef is a snapshot of the rendering settings of one pixels set.
type RenderingDef struct {
	PixelsID int64            `json:"pixelsId"`
	DefaultZ int              `json:"defaultZ"`
	DefaultT int              `json:"defaultT"`
	Model    string           `json:"model"`
	Channels []ChannelBinding `json:"channels"`
}

// ChannelBinding holds the settings of one channel.
type ChannelBinding struct {
	Active     bool    `json:"active"`
	InputStart float64 `json:"inputStart"`
	InputEnd   float64 `json:"inputEnd"`
	Red        int     `json:"red"`
	Green      int     `json:"green"`
	Blue       int     `json:"blue"`
	Alpha      int     `json:"alpha"`
}

// PlaneDef selects the plane to render.
type PlaneDef struct {
	Z int `json:"z"`
	T int `json:"t"`
}

// Clone returns a deep copy of d.
func (d *RenderingDef) Clone() *RenderingDef {
	if d == nil {
		return nil
	}
	c := *d
	c.Channels = append([]ChannelBinding(nil), d.Channels...)
	return &c
}
