// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/ome/openmicroscopy-sub022/internal/remote"

// DatasetData wraps a dataset.
type DatasetData struct {
	dataObject
	images   lazy[*ImageData]
	projects lazy[*ProjectData]
}

// NewDatasetData returns a dirty wrapper around a new, unsaved dataset.
func NewDatasetData() *DatasetData {
	d := NewDatasetDataFrom(&remote.Dataset{})
	d.markDirty()
	return d
}

// NewDatasetDataFrom wraps an existing dataset. It panics when d is nil.
func NewDatasetDataFrom(d *remote.Dataset) *DatasetData {
	mustWrap(d == nil, remote.KindDataset)
	return &DatasetData{dataObject: newDataObject(d)}
}

func (d *DatasetData) dataset() *remote.Dataset { return d.value.(*remote.Dataset) }

func (d *DatasetData) Name() string { return d.dataset().Name }

func (d *DatasetData) SetName(name string) {
	d.markDirty()
	d.dataset().Name = name
}

func (d *DatasetData) Description() string { return d.dataset().Description }

func (d *DatasetData) SetDescription(description string) {
	d.markDirty()
	d.dataset().Description = description
}

// Images returns the images of the dataset, or nil when they were not
// loaded.
func (d *DatasetData) Images() []*ImageData {
	return d.images.get(func() ([]*ImageData, bool) {
		return wrapLinked(d.dataset().ImageLinks,
			func(l *remote.DatasetImageLink) *remote.Image { return l.Child },
			NewImageDataFrom)
	})
}

// ImagesLoaded reports whether Images has a snapshot to return.
func (d *DatasetData) ImagesLoaded() bool {
	return d.images.isLoaded() || d.dataset().ImageLinks.IsLoaded()
}

// SetImages replaces the images of the dataset. Removed images are unlinked
// before the new ones are linked. It fails with ErrCollectionNotLoaded on a
// saved dataset whose images were not loaded.
func (d *DatasetData) SetImages(images []*ImageData) error {
	if err := d.checkMutable(d.ImagesLoaded(), "images"); err != nil {
		return err
	}
	m := NewSetMutator(d.Images(), images)
	ds := d.dataset()
	m.Apply(
		func(i *ImageData) { ds.UnlinkImage(i.image()) },
		func(i *ImageData) { ds.LinkImage(i.image()) },
	)
	d.images.set(m.Result())
	d.markDirty()
	return nil
}

// Projects returns the projects containing the dataset, or nil when they
// were not loaded.
func (d *DatasetData) Projects() []*ProjectData {
	return d.projects.get(func() ([]*ProjectData, bool) {
		return wrapLinked(d.dataset().ProjectLinks,
			func(l *remote.ProjectDatasetLink) *remote.Project { return l.Parent },
			NewProjectDataFrom)
	})
}

// ImageCount returns the number of linked images, or -1 when unknown.
func (d *DatasetData) ImageCount() int64 { return countOf(d.dataset().ImageLinksCount) }

// AnnotationCount returns the number of annotations, or -1 when unknown.
func (d *DatasetData) AnnotationCount() int64 {
	return countOf(d.dataset().AnnotationLinksCount)
}
