// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataObject_IDOfTransientIsMinusOne(t *testing.T) {
	assert.Equal(t, int64(-1), NewProjectData().ID())
	assert.Equal(t, int64(12), NewProjectDataFrom(&remote.Project{Base: remote.Base{ID: 12}}).ID())
}

func TestDataObject_DirtyFlag(t *testing.T) {
	existing := NewDatasetDataFrom(&remote.Dataset{Base: remote.Base{ID: 1}, Name: "old"})
	assert.False(t, existing.IsDirty(), "wrapper of an existing object starts clean")

	existing.SetName("new")
	assert.True(t, existing.IsDirty())
	assert.Equal(t, "new", existing.Name())
	assert.Equal(t, "new", existing.Object().(*remote.Dataset).Name, "setter writes through")

	assert.True(t, NewDatasetData().IsDirty(), "new object starts dirty")
}

func TestDataObject_WrapNilPanics(t *testing.T) {
	assert.Panics(t, func() { NewImageDataFrom(nil) })
	assert.Panics(t, func() { NewTagAnnotationDataFrom(nil) })
}

func TestDataObject_Details(t *testing.T) {
	img := &remote.Image{Base: remote.Base{ID: 3, Details: remote.Details{OwnerID: 7, GroupID: 2, Permissions: "rw----"}}}
	d := NewImageDataFrom(img)
	assert.Equal(t, int64(7), d.OwnerID())
	assert.Equal(t, int64(2), d.GroupID())
	assert.Equal(t, "rw----", d.Permissions())
}

// ── Lazy collections ─────────────────────────────────────────────────────────

func TestProjectData_DatasetsUnloaded(t *testing.T) {
	p := NewProjectDataFrom(&remote.Project{Base: remote.Base{ID: 1}})
	assert.Nil(t, p.Datasets())
	assert.False(t, p.DatasetsLoaded())
	assert.Equal(t, int64(-1), p.DatasetCount())
}

func TestProjectData_DatasetsMatchLinks(t *testing.T) {
	proj := &remote.Project{Base: remote.Base{ID: 1}}
	proj.LinkDataset(&remote.Dataset{Base: remote.Base{ID: 10}})
	proj.LinkDataset(&remote.Dataset{Base: remote.Base{ID: 11}})
	p := NewProjectDataFrom(proj)

	ds := p.Datasets()
	require.Len(t, ds, proj.DatasetLinks.Len())
	assert.ElementsMatch(t, []int64{10, 11}, []int64{ds[0].ID(), ds[1].ID()})
}

func TestProjectData_DatasetsIsDefensiveCopy(t *testing.T) {
	proj := &remote.Project{Base: remote.Base{ID: 1}, DatasetLinks: remote.Loaded[*remote.ProjectDatasetLink]()}
	p := NewProjectDataFrom(proj)

	ds := p.Datasets()
	require.NotNil(t, ds)
	_ = append(ds, NewDatasetData())
	assert.Empty(t, p.Datasets())
}

// ── Collection setters ───────────────────────────────────────────────────────

func TestDatasetData_SetImagesReplacesSet(t *testing.T) {
	ds := &remote.Dataset{Base: remote.Base{ID: 1}, ImageLinksCount: remote.Int64(2)}
	imgA := &remote.Image{Base: remote.Base{ID: 100}, Name: "A"}
	imgB := &remote.Image{Base: remote.Base{ID: 101}, Name: "B"}
	ds.LinkImage(imgA)
	ds.LinkImage(imgB)
	*ds.ImageLinksCount = 2

	d := NewDatasetDataFrom(ds)
	images := d.Images()
	require.Len(t, images, 2)

	var b *ImageData
	for _, img := range images {
		if img.ID() == 101 {
			b = img
		}
	}
	require.NotNil(t, b)
	c := NewImageDataFrom(&remote.Image{Base: remote.Base{ID: 102}, Name: "C"})

	require.NoError(t, d.SetImages([]*ImageData{b, c}))

	got := d.Images()
	require.Len(t, got, 2)
	assert.Equal(t, int64(101), got[0].ID())
	assert.Equal(t, int64(102), got[1].ID())

	var linked []int64
	for _, l := range ds.ImageLinks.Items() {
		linked = append(linked, l.Child.ID)
	}
	assert.ElementsMatch(t, []int64{101, 102}, linked)
	assert.Equal(t, int64(2), d.ImageCount(), "one removed and one added leave the count unchanged")
	assert.True(t, d.IsDirty())
}

func TestProjectData_SetDatasetsOnTransient(t *testing.T) {
	p := NewProjectData()
	d := NewDatasetData()

	require.NoError(t, p.SetDatasets([]*DatasetData{d}))

	require.Len(t, p.Datasets(), 1)
	assert.Same(t, d, p.Datasets()[0])
	assert.Equal(t, 1, p.Object().(*remote.Project).DatasetLinks.Len())
}

func TestProjectData_SetDatasetsOnUnloaded(t *testing.T) {
	proj := &remote.Project{Base: remote.Base{ID: 1}, DatasetLinksCount: remote.Int64(5)}
	p := NewProjectDataFrom(proj)

	err := p.SetDatasets([]*DatasetData{NewDatasetData()})
	require.ErrorIs(t, err, ErrCollectionNotLoaded)

	assert.False(t, p.DatasetsLoaded())
	assert.Nil(t, p.Datasets())
	assert.False(t, proj.DatasetLinks.IsLoaded())
	assert.Equal(t, int64(5), p.DatasetCount())
	assert.False(t, p.IsDirty())
}

func TestDatasetData_SetImagesOnUnloaded(t *testing.T) {
	ds := &remote.Dataset{Base: remote.Base{ID: 2}, ImageLinksCount: remote.Int64(3)}
	d := NewDatasetDataFrom(ds)

	require.ErrorIs(t, d.SetImages(nil), ErrCollectionNotLoaded)
	assert.False(t, d.ImagesLoaded())
	assert.Equal(t, int64(3), d.ImageCount())
}

func TestScreenData_SetPlatesOnUnloaded(t *testing.T) {
	s := NewScreenDataFrom(&remote.Screen{Base: remote.Base{ID: 4}})

	require.ErrorIs(t, s.SetPlates([]*PlateData{NewPlateDataFrom(&remote.Plate{Base: remote.Base{ID: 8}})}), ErrCollectionNotLoaded)
	assert.Nil(t, s.Plates())
}

func TestScreenData_SetPlatesUnlinksFirst(t *testing.T) {
	scr := &remote.Screen{Base: remote.Base{ID: 1}}
	scr.LinkPlate(&remote.Plate{Base: remote.Base{ID: 5}})
	s := NewScreenDataFrom(scr)

	require.NoError(t, s.SetPlates(nil))
	assert.Empty(t, s.Plates())
	assert.Equal(t, 0, scr.PlateLinks.Len())
}

// ── Annotations ──────────────────────────────────────────────────────────────

func TestRatingAnnotationData_Range(t *testing.T) {
	r, err := NewRatingAnnotationData(4)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Rating())
	assert.Equal(t, remote.RatingNamespace, r.Namespace())
	assert.Equal(t, "4", r.ContentAsString())

	assert.ErrorIs(t, r.SetRating(6), ErrInvalidRating)
	assert.ErrorIs(t, r.SetRating(-1), ErrInvalidRating)
	assert.Equal(t, 4, r.Rating())
}

func TestURLAnnotationData_Validation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "http", raw: "http://www.openmicroscopy.org", wantErr: false},
		{name: "relative", raw: "/docs/index.html", wantErr: true},
		{name: "garbage", raw: "not a url", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewURLAnnotationData(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, u.URL())
		})
	}
}

func TestTextualAnnotationData(t *testing.T) {
	a := NewTextualAnnotationData("dividing cells")
	assert.True(t, a.IsDirty())
	assert.Equal(t, "dividing cells", a.ContentAsString())
	assert.Equal(t, int64(-1), a.ID())
}

func TestFileAnnotationData_MissingFile(t *testing.T) {
	a := NewFileAnnotationDataFrom(&remote.FileAnnotation{})
	assert.Equal(t, "", a.FileName())
	assert.Equal(t, int64(0), a.FileSize())

	_, err := a.Location()
	assert.Error(t, err)
}

func TestFileAnnotationData_Location(t *testing.T) {
	a := NewFileAnnotationData("a.tif", "/repo/alice", 1024, "image/tiff")
	loc, err := a.Location()
	require.NoError(t, err)
	assert.Equal(t, "file:///repo/alice/a.tif", loc.URI())
	assert.Equal(t, "a.tif", loc.Name())
	assert.False(t, loc.IsDir())
}
