// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/mock"
	"github.com/ome/openmicroscopy-sub022/internal/registry"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMetadataSvc(t *testing.T) (*metadataService, *mock.MockGateway, *registry.Registry) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	reg := registry.New()
	return NewMetadataService(gw, reg, logger.Nop()).(*metadataService), gw, reg
}

func rating(id int64, value int64) *models.RatingAnnotationData {
	return models.NewRatingAnnotationDataFrom(&remote.LongAnnotation{
		AnnotationBase: remote.AnnotationBase{Base: remote.Base{ID: id}, Namespace: remote.RatingNamespace},
		LongValue:      &value,
	})
}

func TestCreateAnnotationFor_AllowList(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestMetadataSvc(t)
	comment := models.NewTextualAnnotationData("hello")

	tests := []struct {
		name   string
		target models.DataObject
		ann    models.AnnotationData
	}{
		{name: "project", target: project(1, "p"), ann: comment},
		{name: "nil target", target: nil, ann: comment},
		{name: "typed nil image", target: (*models.ImageData)(nil), ann: comment},
		{name: "typed nil dataset", target: (*models.DatasetData)(nil), ann: comment},
		{name: "typed nil annotation", target: img(1), ann: (*models.TagAnnotationData)(nil)},
		{name: "nil annotation", target: img(1), ann: nil},
		{name: "unsaved image", target: models.NewImageData(), ann: comment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAnnotationFor(ctx, tt.target, tt.ann)
			assert.ErrorIs(t, err, gateway.ErrInvalidArguments)
			assert.ErrorIs(t, err, gateway.ErrAccess)

			_, err = svc.UpdateAnnotationFor(ctx, tt.target, tt.ann)
			assert.ErrorIs(t, err, gateway.ErrInvalidArguments)
		})
	}
}

func TestCreateAnnotationFor_RefetchesTarget(t *testing.T) {
	ctx := context.Background()
	svc, gw, _ := newTestMetadataSvc(t)

	fresh := &remote.Dataset{Base: remote.Base{ID: 4}, Name: "fresh"}
	gomock.InOrder(
		gw.EXPECT().GetObject(ctx, remote.KindDataset, int64(4)).Return(fresh, nil),
		gw.EXPECT().CreateObject(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, obj remote.Object) (remote.Object, error) {
				link, ok := obj.(*remote.AnnotationLink)
				require.True(t, ok)
				assert.Equal(t, remote.KindDatasetAnnotationLink, link.Kind())
				assert.Equal(t, int64(4), link.Parent.GetID())
				assert.Equal(t, "hello", link.Child.(*remote.CommentAnnotation).TextValue)
				return link, nil
			}),
	)

	out, err := svc.CreateAnnotationFor(ctx, dataset(4, "stale"), models.NewTextualAnnotationData("hello"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", out.(*models.DatasetData).Name())
}

func TestUpdateAnnotationFor_LinksWhenMissing(t *testing.T) {
	ctx := context.Background()
	svc, gw, _ := newTestMetadataSvc(t)

	target := &remote.Image{Base: remote.Base{ID: 9}}
	stored := &remote.TagAnnotation{AnnotationBase: remote.AnnotationBase{Base: remote.Base{ID: 30}}, TextValue: "old"}
	changed := tag(30, "new")

	gomock.InOrder(
		gw.EXPECT().GetObject(ctx, remote.KindImage, int64(9)).Return(target, nil),
		gw.EXPECT().GetObject(ctx, remote.KindTagAnnotation, int64(30)).Return(stored, nil),
		gw.EXPECT().UpdateObject(ctx, stored).Return(stored, nil),
		gw.EXPECT().FindLink(ctx, remote.KindImageAnnotationLink, int64(9), int64(30)).Return(nil, nil),
		gw.EXPECT().CreateObject(ctx, gomock.Any()).Return(&remote.AnnotationLink{}, nil),
	)

	_, err := svc.UpdateAnnotationFor(ctx, img(9), changed)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.TextValue)
}

func TestRemoveAnnotation(t *testing.T) {
	ctx := context.Background()
	svc, gw, _ := newTestMetadataSvc(t)

	link := &remote.AnnotationLink{Base: remote.Base{ID: 3}, ParentKind: remote.KindImage}
	gw.EXPECT().FindLink(ctx, remote.KindImageAnnotationLink, int64(9), int64(30)).Return(link, nil)
	gw.EXPECT().DeleteObject(ctx, link).Return(nil)
	require.NoError(t, svc.RemoveAnnotation(ctx, img(9), tag(30, "t")))

	gw.EXPECT().FindLink(ctx, remote.KindImageAnnotationLink, int64(9), int64(31)).Return(nil, nil)
	require.NoError(t, svc.RemoveAnnotation(ctx, img(9), tag(31, "t")))
}

func TestLoadTags_FiltersByType(t *testing.T) {
	ctx := context.Background()
	svc, gw, _ := newTestMetadataSvc(t)

	gw.EXPECT().FindAnnotations(ctx, remote.KindImage, []int64{9}, gomock.Nil(), gomock.Nil()).
		Return(map[int64][]models.AnnotationData{
			9: {tag(1, "a"), models.NewTextualAnnotationData("c"), tag(2, "b")},
		}, nil)

	tags, err := svc.LoadTags(ctx, remote.KindImage, 9, nil)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "a", tags[0].TagValue())
	assert.Equal(t, "b", tags[1].TagValue())
}

func TestRate(t *testing.T) {
	ctx := context.Background()
	user := models.NewExperimenterDataFrom(&remote.Experimenter{Base: remote.Base{ID: 5}})

	t.Run("out of range", func(t *testing.T) {
		svc, _, reg := newTestMetadataSvc(t)
		reg.SetCurrentUser(user)
		_, err := svc.Rate(ctx, img(9), 6)
		assert.ErrorIs(t, err, gateway.ErrInvalidArguments)
	})

	t.Run("no current user", func(t *testing.T) {
		svc, _, _ := newTestMetadataSvc(t)
		_, err := svc.Rate(ctx, img(9), 3)
		assert.ErrorIs(t, err, gateway.ErrOutOfService)
	})

	t.Run("first rating is created", func(t *testing.T) {
		svc, gw, reg := newTestMetadataSvc(t)
		reg.SetCurrentUser(user)

		gw.EXPECT().FindAnnotations(ctx, remote.KindImage, []int64{9}, []int64{5}, gomock.Nil()).Return(nil, nil)
		gw.EXPECT().GetObject(ctx, remote.KindImage, int64(9)).Return(&remote.Image{Base: remote.Base{ID: 9}}, nil)
		gw.EXPECT().CreateObject(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, obj remote.Object) (remote.Object, error) {
				long := obj.(*remote.AnnotationLink).Child.(*remote.LongAnnotation)
				assert.Equal(t, int64(3), *long.LongValue)
				assert.Equal(t, remote.RatingNamespace, long.Namespace)
				return obj, nil
			})

		_, err := svc.Rate(ctx, img(9), 3)
		require.NoError(t, err)
	})

	t.Run("existing rating is updated", func(t *testing.T) {
		svc, gw, reg := newTestMetadataSvc(t)
		reg.SetCurrentUser(user)
		mine := rating(40, 1)
		stored := mine.Annotation().(*remote.LongAnnotation)

		gw.EXPECT().FindAnnotations(ctx, remote.KindImage, []int64{9}, []int64{5}, gomock.Nil()).
			Return(map[int64][]models.AnnotationData{9: {mine}}, nil)
		gw.EXPECT().GetObject(ctx, remote.KindImage, int64(9)).Return(&remote.Image{Base: remote.Base{ID: 9}}, nil)
		gw.EXPECT().GetObject(ctx, remote.KindLongAnnotation, int64(40)).Return(stored, nil)
		gw.EXPECT().UpdateObject(ctx, stored).Return(stored, nil)
		gw.EXPECT().FindLink(ctx, remote.KindImageAnnotationLink, int64(9), int64(40)).Return(&remote.AnnotationLink{}, nil)

		_, err := svc.Rate(ctx, img(9), 4)
		require.NoError(t, err)
		assert.Equal(t, int64(4), *stored.LongValue)
	})
}

func TestRemoveAnnotation_TypedNilTarget(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestMetadataSvc(t)

	err := svc.RemoveAnnotation(ctx, (*models.ImageData)(nil), rating(30, 3))
	assert.ErrorIs(t, err, gateway.ErrInvalidArguments)
}
