// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// ImageData wraps an image.
type ImageData struct {
	dataObject
	pixels   lazy[*PixelsData]
	datasets lazy[*DatasetData]
}

// NewImageData returns a dirty wrapper around a new, unsaved image.
func NewImageData() *ImageData {
	i := NewImageDataFrom(&remote.Image{})
	i.markDirty()
	return i
}

// NewImageDataFrom wraps an existing image. It panics when i is nil.
func NewImageDataFrom(i *remote.Image) *ImageData {
	mustWrap(i == nil, remote.KindImage)
	return &ImageData{dataObject: newDataObject(i)}
}

func (i *ImageData) image() *remote.Image { return i.value.(*remote.Image) }

func (i *ImageData) Name() string { return i.image().Name }

func (i *ImageData) SetName(name string) {
	i.markDirty()
	i.image().Name = name
}

func (i *ImageData) Description() string { return i.image().Description }

func (i *ImageData) SetDescription(description string) {
	i.markDirty()
	i.image().Description = description
}

func (i *ImageData) AcquisitionDate() *time.Time { return i.image().AcquisitionDate }

func (i *ImageData) SetAcquisitionDate(t *time.Time) {
	i.markDirty()
	i.image().AcquisitionDate = t
}

// AllPixels returns every pixels set of the image, or nil when they were
// not loaded.
func (i *ImageData) AllPixels() []*PixelsData {
	return i.pixels.get(func() ([]*PixelsData, bool) {
		return wrapAll(i.image().Pixels, NewPixelsDataFrom)
	})
}

// DefaultPixels returns the first pixels set, or nil when none is loaded.
func (i *ImageData) DefaultPixels() *PixelsData {
	all := i.AllPixels()
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// Datasets returns the datasets containing the image, or nil when they were
// not loaded.
func (i *ImageData) Datasets() []*DatasetData {
	return i.datasets.get(func() ([]*DatasetData, bool) {
		return wrapLinked(i.image().DatasetLinks,
			func(l *remote.DatasetImageLink) *remote.Dataset { return l.Parent },
			NewDatasetDataFrom)
	})
}

// AnnotationCount returns the number of annotations, or -1 when unknown.
func (i *ImageData) AnnotationCount() int64 {
	return countOf(i.image().AnnotationLinksCount)
}
