// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// PixelsData wraps a pixels set. Pixels are read-only on the client.
type PixelsData struct {
	dataObject
}

// NewPixelsDataFrom wraps existing pixels. It panics when p is nil.
func NewPixelsDataFrom(p *remote.Pixels) *PixelsData {
	mustWrap(p == nil, remote.KindPixels)
	return &PixelsData{dataObject: newDataObject(p)}
}

func (p *PixelsData) pixels() *remote.Pixels { return p.value.(*remote.Pixels) }

func (p *PixelsData) ImageID() int64         { return p.pixels().ImageID }
func (p *PixelsData) SizeX() int             { return p.pixels().SizeX }
func (p *PixelsData) SizeY() int             { return p.pixels().SizeY }
func (p *PixelsData) SizeZ() int             { return p.pixels().SizeZ }
func (p *PixelsData) SizeC() int             { return p.pixels().SizeC }
func (p *PixelsData) SizeT() int             { return p.pixels().SizeT }
func (p *PixelsData) PixelType() string      { return p.pixels().PixelsType }
func (p *PixelsData) DimensionOrder() string { return p.pixels().DimensionOrder }

// PixelSize returns the physical size of a pixel along x, y and z.
func (p *PixelsData) PixelSize() (x, y, z float64) {
	px := p.pixels()
	return px.PhysicalSizeX, px.PhysicalSizeY, px.PhysicalSizeZ
}

// Dimensions formats the size as "XxYxZxCxT".
func (p *PixelsData) Dimensions() string {
	px := p.pixels()
	return fmt.Sprintf("%dx%dx%dx%dx%d", px.SizeX, px.SizeY, px.SizeZ, px.SizeC, px.SizeT)
}
