// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/ome/openmicroscopy-sub022/internal/remote"

// ProjectData wraps a project.
type ProjectData struct {
	dataObject
	datasets lazy[*DatasetData]
}

// NewProjectData returns a dirty wrapper around a new, unsaved project.
func NewProjectData() *ProjectData {
	p := NewProjectDataFrom(&remote.Project{})
	p.markDirty()
	return p
}

// NewProjectDataFrom wraps an existing project. It panics when p is nil.
func NewProjectDataFrom(p *remote.Project) *ProjectData {
	mustWrap(p == nil, remote.KindProject)
	return &ProjectData{dataObject: newDataObject(p)}
}

func (p *ProjectData) project() *remote.Project { return p.value.(*remote.Project) }

func (p *ProjectData) Name() string { return p.project().Name }

func (p *ProjectData) SetName(name string) {
	p.markDirty()
	p.project().Name = name
}

func (p *ProjectData) Description() string { return p.project().Description }

func (p *ProjectData) SetDescription(description string) {
	p.markDirty()
	p.project().Description = description
}

// Datasets returns the datasets of the project, or nil when they were not
// loaded.
func (p *ProjectData) Datasets() []*DatasetData {
	return p.datasets.get(func() ([]*DatasetData, bool) {
		return wrapLinked(p.project().DatasetLinks,
			func(l *remote.ProjectDatasetLink) *remote.Dataset { return l.Child },
			NewDatasetDataFrom)
	})
}

// DatasetsLoaded reports whether Datasets has a snapshot to return.
func (p *ProjectData) DatasetsLoaded() bool {
	return p.datasets.isLoaded() || p.project().DatasetLinks.IsLoaded()
}

// SetDatasets replaces the datasets of the project. Removed datasets are
// unlinked before the new ones are linked. It fails with
// ErrCollectionNotLoaded on a saved project whose datasets were not loaded.
func (p *ProjectData) SetDatasets(datasets []*DatasetData) error {
	if err := p.checkMutable(p.DatasetsLoaded(), "datasets"); err != nil {
		return err
	}
	m := NewSetMutator(p.Datasets(), datasets)
	proj := p.project()
	m.Apply(
		func(d *DatasetData) { proj.UnlinkDataset(d.dataset()) },
		func(d *DatasetData) { proj.LinkDataset(d.dataset()) },
	)
	p.datasets.set(m.Result())
	p.markDirty()
	return nil
}

// DatasetCount returns the number of linked datasets, or -1 when unknown.
func (p *ProjectData) DatasetCount() int64 { return countOf(p.project().DatasetLinksCount) }

// AnnotationCount returns the number of annotations, or -1 when unknown.
func (p *ProjectData) AnnotationCount() int64 {
	return countOf(p.project().AnnotationLinksCount)
}
