// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"testing"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareUpdate_CopiesScalarsAndUnloads(t *testing.T) {
	current := &remote.Dataset{
		Base: remote.Base{ID: 5, Details: remote.Details{OwnerID: 2}},
		Name: "before",
	}
	current.LinkImage(&remote.Image{Base: remote.Base{ID: 9}})

	changes := &remote.Dataset{
		Base:        remote.Base{ID: 5, Details: remote.Details{OwnerID: 99}},
		Name:        "after",
		Description: "renamed",
	}

	got, err := PrepareUpdate(current, changes)
	require.NoError(t, err)

	ds := got.(*remote.Dataset)
	assert.Same(t, current, ds)
	assert.Equal(t, "after", ds.Name)
	assert.Equal(t, "renamed", ds.Description)
	assert.Equal(t, int64(2), ds.Details.OwnerID, "details come from the server copy")
	assert.False(t, ds.ImageLinks.IsLoaded())
}

func TestPrepareUpdate_Mismatch(t *testing.T) {
	_, err := PrepareUpdate(&remote.Project{Base: remote.Base{ID: 1}}, &remote.Dataset{Base: remote.Base{ID: 1}})
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = PrepareUpdate(&remote.Project{Base: remote.Base{ID: 1}}, &remote.Project{Base: remote.Base{ID: 2}})
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestPrepareUpdate_Unsupported(t *testing.T) {
	_, err := PrepareUpdate(&remote.Pixels{Base: remote.Base{ID: 1}}, &remote.Pixels{Base: remote.Base{ID: 1}})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestPrepareUpdate_Rating(t *testing.T) {
	current := &remote.LongAnnotation{LongValue: remote.Int64(1)}
	current.ID = 3
	changes := &remote.LongAnnotation{LongValue: remote.Int64(4)}
	changes.ID = 3

	got, err := PrepareUpdate(current, changes)
	require.NoError(t, err)
	assert.Equal(t, int64(4), *got.(*remote.LongAnnotation).LongValue)
}
