// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/ome/openmicroscopy-sub022/models"
)

const previewWidth = 48

type detailModel struct {
	image     *models.ImageData
	tags      []*models.TagAnnotationData
	files     []*models.FileAnnotationData
	thumbnail image.Image
	loading   bool
	status    string
}

func (m detailModel) View() string {
	if m.image == nil {
		return renderPage("IMAGE", "Loading...", "esc: back")
	}

	img := m.image
	px := img.DefaultPixels()

	var b strings.Builder
	b.WriteString(fieldLine("Name", img.Name()) + "\n")
	b.WriteString(fieldLine("ID", fmt.Sprint(img.ID())) + "\n")
	b.WriteString(fieldLine("Owner", fmt.Sprint(img.OwnerID())) + "\n")
	b.WriteString(fieldLine("Description", valueOrDash(img.Description())) + "\n")
	b.WriteString(fieldLine("Acquired", timeOrDash(img.AcquisitionDate())) + "\n")
	b.WriteString(fieldLine("Created", timeOrDash(img.Created())) + "\n")
	if px != nil {
		b.WriteString(fieldLine("Dimensions", px.Dimensions()+" ("+px.DimensionOrder()+")") + "\n")
		b.WriteString(fieldLine("Pixel type", px.PixelType()) + "\n")
		b.WriteString(fieldLine("Raw size", bytesOrDash(rawSize(px))) + "\n")
	}

	values := make([]string, 0, len(m.tags))
	for _, t := range m.tags {
		values = append(values, t.TagValue())
	}
	b.WriteString(fieldLine("Tags", valueOrDash(strings.Join(values, ", "))) + "\n")
	for _, f := range m.files {
		b.WriteString(fieldLine("Attachment", attachmentLine(f)) + "\n")
	}

	if m.loading {
		b.WriteString("\nLoading...\n")
	} else if preview := asciiPreview(m.thumbnail, previewWidth); preview != "" {
		b.WriteString("\n")
		b.WriteString(preview)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("IMAGE", strings.TrimRight(b.String(), "\n"), "esc: back │ c: copy id")
}

func attachmentLine(f *models.FileAnnotationData) string {
	where := f.FileName()
	if loc, err := f.Location(); err == nil {
		where = loc.Path()
	}
	return fmt.Sprintf("%s (%s)", where, bytesOrDash(f.FileSize()))
}
