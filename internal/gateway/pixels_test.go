// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"testing"

	"github.com/ome/openmicroscopy-sub022/internal/mock"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetPixels(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()
	query := mock.NewMockQueryService(ctrl)
	env.session.EXPECT().QueryService().Return(query).Times(2)

	px := &remote.Pixels{Base: remote.Base{ID: 8}, SizeX: 512, SizeY: 256, SizeZ: 3, SizeC: 2, SizeT: 1}
	query.EXPECT().Get(ctx, remote.KindPixels, int64(8)).Return(px, nil)
	query.EXPECT().Get(ctx, remote.KindPixels, int64(9)).Return(&remote.Image{Base: remote.Base{ID: 9}}, nil)

	data, err := env.gw.GetPixels(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, "512x256x3x2x1", data.Dimensions())

	_, err = env.gw.GetPixels(ctx, 9)
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestGetPlane(t *testing.T) {
	ctx := context.Background()

	t.Run("reads and closes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		env := newTestEnv(t, ctrl, 0)
		env.connect()

		store := mock.NewMockRawPixelsStore(ctrl)
		env.session.EXPECT().CreateRawPixelsStore(ctx).Return(store, nil)
		gomock.InOrder(
			store.EXPECT().SetPixelsID(ctx, int64(8)).Return(nil),
			store.EXPECT().GetPlane(ctx, 1, 0, 0).Return([]byte{1, 2, 3}, nil),
			store.EXPECT().Close(ctx).Return(nil),
		)

		plane, err := env.gw.GetPlane(ctx, 8, 1, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, plane)
	})

	t.Run("closes on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		env := newTestEnv(t, ctrl, 0)
		env.connect()

		store := mock.NewMockRawPixelsStore(ctrl)
		env.session.EXPECT().CreateRawPixelsStore(ctx).Return(store, nil)
		store.EXPECT().SetPixelsID(ctx, int64(8)).Return(remote.SecurityViolation("not yours"))
		store.EXPECT().Close(ctx).Return(nil)

		_, err := env.gw.GetPlane(ctx, 8, 0, 0, 0)
		assert.ErrorIs(t, err, ErrSecurityDenied)
	})

	t.Run("rejects negative coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		env := newTestEnv(t, ctrl, 0)
		env.connect()

		_, err := env.gw.GetPlane(ctx, 8, 0, -1, 0)
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})
}
