// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_HierarchyWithBackReferences(t *testing.T) {
	p := &Project{Base: Base{ID: 1}, Name: "p"}
	d := &Dataset{Base: Base{ID: 2}, Name: "d"}
	img := &Image{Base: Base{ID: 3}, Name: "i", Pixels: Loaded(&Pixels{Base: Base{ID: 4}, SizeX: 8, SizeY: 8})}

	p.LinkDataset(d)
	d.LinkImage(img)
	// child-side collections point back up and must not be followed
	d.ProjectLinks.Add(p.DatasetLinks.Items()[0])

	env, err := Encode(p)
	require.NoError(t, err)
	assert.Equal(t, KindProject, env.Type)

	got, err := DecodeAs[*Project](env)
	require.NoError(t, err)
	require.Equal(t, 1, got.DatasetLinks.Len())

	link := got.DatasetLinks.Items()[0]
	assert.Equal(t, int64(1), link.Parent.ID)
	assert.False(t, link.Parent.DatasetLinks.IsLoaded())
	assert.Equal(t, "d", link.Child.Name)
	require.Equal(t, 1, link.Child.ImageLinks.Len())

	gotImg := link.Child.ImageLinks.Items()[0].Child
	assert.Equal(t, "i", gotImg.Name)
	require.Equal(t, 1, gotImg.Pixels.Len())
	assert.Equal(t, 8, gotImg.Pixels.Items()[0].SizeX)
}

func TestEncodeDecode_AnnotationLink(t *testing.T) {
	img := &Image{Base: Base{ID: 5}, Name: "img"}
	tag := &TagAnnotation{TextValue: "mitosis"}

	link, err := NewAnnotationLink(img, tag)
	require.NoError(t, err)
	assert.Equal(t, KindImageAnnotationLink, link.Kind())

	env, err := Encode(link)
	require.NoError(t, err)

	got, err := DecodeAs[*AnnotationLink](env)
	require.NoError(t, err)
	assert.Equal(t, KindImage, got.ParentKind)
	assert.Equal(t, int64(5), got.Parent.GetID())
	gotTag, ok := got.Child.(*TagAnnotation)
	require.True(t, ok)
	assert.Equal(t, "mitosis", gotTag.TextValue)
}

func TestNewAnnotationLink_RejectsUnannotatable(t *testing.T) {
	_, err := NewAnnotationLink(&Pixels{}, &TagAnnotation{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := Decode(Envelope{Type: "Roi"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNew_EveryKindRoundTrips(t *testing.T) {
	kinds := []Kind{
		KindProject, KindDataset, KindImage, KindPixels, KindExperimenter,
		KindExperimenterGroup, KindGroupExperimenterMap, KindScreen, KindPlate,
		KindWell, KindCommentAnnotation, KindTagAnnotation, KindURLAnnotation,
		KindLongAnnotation, KindFileAnnotation, KindOriginalFile,
		KindProjectDatasetLink, KindDatasetImageLink, KindScreenPlateLink,
		KindProjectAnnotationLink, KindDatasetAnnotationLink, KindImageAnnotationLink,
		KindScreenAnnotationLink, KindPlateAnnotationLink,
	}
	for _, k := range kinds {
		o, err := New(k)
		require.NoError(t, err, k)
		assert.Equal(t, k, o.Kind())
	}
}

func TestFaults(t *testing.T) {
	wrapped := fmt.Errorf("call: %w", SecurityViolation("not owner of %d", 3))

	assert.True(t, IsSecurityViolation(wrapped))
	assert.False(t, IsBadArgument(wrapped))
	assert.True(t, IsBadArgument(Validation("missing")))
	assert.True(t, IsBadArgument(APIUsage("bad")))
	assert.True(t, IsSessionInvalid(SessionInvalid("expired")))
	assert.False(t, IsSessionInvalid(errors.New("plain")))

	f, ok := AsFault(wrapped)
	require.True(t, ok)
	assert.Equal(t, "SecurityViolation: not owner of 3", f.Error())
}
