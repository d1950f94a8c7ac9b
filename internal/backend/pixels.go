// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// Pixel data is synthetic: every sample is a deterministic function of its
// coordinates, so planes need no storage.
func sample(px *remote.Pixels, x, y, z, c, t int) uint8 {
	gx := x * 255 / max(px.SizeX-1, 1)
	gy := y * 255 / max(px.SizeY-1, 1)
	var v int
	switch c % 3 {
	case 0:
		v = gx
	case 1:
		v = gy
	default:
		v = (gx + gy) / 2
	}
	return uint8((v + z*16 + t*8 + c*40) % 256)
}

func plane(px *remote.Pixels, z, c, t int) []byte {
	out := make([]byte, 0, px.PlaneSize())
	for y := range px.SizeY {
		for x := range px.SizeX {
			out = append(out, sample(px, x, y, z, c, t))
		}
	}
	return out
}

func inPlane(px *remote.Pixels, z, c, t int) bool {
	return z >= 0 && z < px.SizeZ && c >= 0 && c < px.SizeC && t >= 0 && t < px.SizeT
}

var channelColors = [][3]int{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}

// defaultRenderingDef returns the settings a pixels set gets when nobody
// saved any: middle focal plane, full window, one primary color per
// channel.
func defaultRenderingDef(px *remote.Pixels) *remote.RenderingDef {
	def := &remote.RenderingDef{
		PixelsID: px.ID,
		DefaultZ: px.SizeZ / 2,
		DefaultT: 0,
		Model:    "rgb",
	}
	if px.SizeC == 1 {
		def.Model = "greyscale"
	}
	for c := range px.SizeC {
		cb := remote.ChannelBinding{Active: c < 3, InputStart: 0, InputEnd: 255, Alpha: 255}
		switch {
		case px.SizeC == 1:
			cb.Red, cb.Green, cb.Blue = 255, 255, 255
		case c < len(channelColors):
			cb.Red, cb.Green, cb.Blue = channelColors[c][0], channelColors[c][1], channelColors[c][2]
		default:
			cb.Red, cb.Green, cb.Blue = 255, 255, 255
		}
		def.Channels = append(def.Channels, cb)
	}
	return def
}

// render composites the active channels of one plane.
func render(px *remote.Pixels, def *remote.RenderingDef, pd remote.PlaneDef) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, px.SizeX, px.SizeY))
	for y := range px.SizeY {
		for x := range px.SizeX {
			var r, g, b int
			for c, cb := range def.Channels {
				if !cb.Active || c >= px.SizeC {
					continue
				}
				v := window(float64(sample(px, x, y, pd.Z, c, pd.T)), cb.InputStart, cb.InputEnd)
				r += int(v * float64(cb.Red))
				g += int(v * float64(cb.Green))
				b += int(v * float64(cb.Blue))
			}
			img.SetRGBA(x, y, color.RGBA{R: clamp(r), G: clamp(g), B: clamp(b), A: 255})
		}
	}
	return img
}

// window maps v linearly from [start, end] onto [0, 1].
func window(v, start, end float64) float64 {
	if end <= start {
		if v >= end {
			return 1
		}
		return 0
	}
	return min(max((v-start)/(end-start), 0), 1)
}

func clamp(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// scale resizes src with nearest-neighbour sampling.
func scale(src image.Image, w, h int) *image.RGBA {
	w, h = max(w, 1), max(h, 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	for y := range h {
		sy := sb.Min.Y + y*sb.Dy()/h
		for x := range w {
			sx := sb.Min.X + x*sb.Dx()/w
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}

// longestSide returns the thumbnail size keeping the aspect ratio of px.
func longestSide(px *remote.Pixels, size int) (int, int) {
	if px.SizeX >= px.SizeY {
		return size, max(size*px.SizeY/px.SizeX, 1)
	}
	return max(size*px.SizeX/px.SizeY, 1), size
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, remote.ServerError("encode png: %v", err)
	}
	return buf.Bytes(), nil
}
