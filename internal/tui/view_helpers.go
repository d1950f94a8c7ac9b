// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ome/openmicroscopy-sub022/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func timeOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return humanize.Time(*t)
}

func bytesOrDash(n int64) string {
	if n < 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}

// rawSize is the uncompressed size of every plane of px.
func rawSize(px *models.PixelsData) int64 {
	if px == nil {
		return -1
	}
	var depth int64
	switch px.PixelType() {
	case "int8", "uint8", "bit":
		depth = 1
	case "int16", "uint16":
		depth = 2
	case "int32", "uint32", "float":
		depth = 4
	case "double":
		depth = 8
	default:
		return -1
	}
	return int64(px.SizeX()) * int64(px.SizeY()) * int64(px.SizeZ()) *
		int64(px.SizeC()) * int64(px.SizeT()) * depth
}

const asciiRamp = " .:-=+*#%@"

// asciiPreview draws img width characters wide. Terminal cells are about
// twice as tall as wide so every other row is skipped.
func asciiPreview(img image.Image, width int) string {
	if img == nil || width <= 0 {
		return ""
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return ""
	}
	height := bounds.Dy() * width / bounds.Dx() / 2
	if height == 0 {
		height = 1
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		y := bounds.Min.Y + row*bounds.Dy()/height
		for col := 0; col < width; col++ {
			x := bounds.Min.X + col*bounds.Dx()/width
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			b.WriteByte(asciiRamp[int(g)*(len(asciiRamp)-1)/255])
		}
		if row < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func fieldLine(name, value string) string {
	return fmt.Sprintf("%-12s│ %s", name, value)
}
