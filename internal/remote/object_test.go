// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_UnloadedAndLoaded(t *testing.T) {
	var c Collection[*Dataset]
	assert.False(t, c.IsLoaded())
	assert.Equal(t, -1, c.Len())
	assert.Nil(t, c.Items())

	c.Add(&Dataset{Base: Base{ID: 1}})
	assert.True(t, c.IsLoaded())
	assert.Equal(t, 1, c.Len())

	empty := Loaded[*Dataset]()
	assert.True(t, empty.IsLoaded())
	assert.Equal(t, 0, empty.Len())
	assert.NotNil(t, empty.Items())
}

func TestCollection_ItemsIsACopy(t *testing.T) {
	c := Loaded(&Dataset{Base: Base{ID: 1}}, &Dataset{Base: Base{ID: 2}})
	items := c.Items()
	items[0] = nil
	assert.NotNil(t, c.Items()[0])
}

func TestCollection_JSON(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantLoaded bool
		wantLen    int
	}{
		{name: "null is unloaded", in: `null`, wantLoaded: false, wantLen: -1},
		{name: "empty array is loaded", in: `[]`, wantLoaded: true, wantLen: 0},
		{name: "items", in: `[{"id":3,"name":"a"}]`, wantLoaded: true, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Collection[*Dataset]
			require.NoError(t, json.Unmarshal([]byte(tt.in), &c))
			assert.Equal(t, tt.wantLoaded, c.IsLoaded())
			assert.Equal(t, tt.wantLen, c.Len())

			out, err := json.Marshal(c)
			require.NoError(t, err)
			if !tt.wantLoaded {
				assert.JSONEq(t, `null`, string(out))
			}
		})
	}
}

func TestCollection_MissingFieldStaysUnloaded(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"p"}`), &p))
	assert.False(t, p.DatasetLinks.IsLoaded())
	assert.False(t, p.AnnotationLinks.IsLoaded())
}

func TestProject_LinkAndUnlinkAdjustCounts(t *testing.T) {
	p := &Project{Base: Base{ID: 1}, DatasetLinksCount: Int64(2)}
	a := &Dataset{Base: Base{ID: 10}}
	b := &Dataset{Base: Base{ID: 11}}

	p.LinkDataset(a)
	p.LinkDataset(b)
	assert.Equal(t, int64(4), *p.DatasetLinksCount)
	assert.Equal(t, 2, p.DatasetLinks.Len())

	p.UnlinkDataset(&Dataset{Base: Base{ID: 10}})
	assert.Equal(t, int64(3), *p.DatasetLinksCount)
	require.Equal(t, 1, p.DatasetLinks.Len())
	assert.Equal(t, int64(11), p.DatasetLinks.Items()[0].Child.ID)
}

func TestUnlink_TransientByIdentity(t *testing.T) {
	d := &Dataset{}
	a := &Image{}
	b := &Image{}
	d.LinkImage(a)
	d.LinkImage(b)

	d.UnlinkImage(a)
	require.Equal(t, 1, d.ImageLinks.Len())
	assert.Same(t, b, d.ImageLinks.Items()[0].Child)
}

func TestShallow_DropsCollections(t *testing.T) {
	p := &Project{Base: Base{ID: 1}, Name: "p"}
	p.LinkDataset(&Dataset{Base: Base{ID: 2}})

	s := Shallow(p).(*Project)
	assert.Equal(t, "p", s.Name)
	assert.False(t, s.DatasetLinks.IsLoaded())
	assert.True(t, p.DatasetLinks.IsLoaded(), "original must keep its links")
}

func TestSameObject(t *testing.T) {
	a := &Image{Base: Base{ID: 1}}
	assert.True(t, SameObject(a, &Image{Base: Base{ID: 1}}))
	assert.False(t, SameObject(a, &Dataset{Base: Base{ID: 1}}))
	assert.False(t, SameObject(&Image{}, &Image{}))
}

func TestOptions(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	o := NewOptions().Leaves().Exp(7).Group(-1).CountFields("annotationLinks").Timeframe(&start, &end)
	assert.True(t, o.IncludeLeaves)
	assert.Equal(t, int64(7), o.ExperimenterID)
	assert.Zero(t, o.GroupID, "non-positive ids leave the filter unset")
	assert.True(t, o.Counted("annotationLinks"))
	assert.False(t, o.Counted("imageLinks"))

	inside, before := start.Add(time.Hour), start.Add(-time.Hour)
	assert.True(t, o.InWindow(&inside))
	assert.False(t, o.InWindow(&before))
	assert.False(t, o.InWindow(nil))

	var none *Options
	assert.True(t, none.InWindow(nil))
	assert.False(t, none.Counted("annotationLinks"))
}
