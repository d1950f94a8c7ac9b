// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/mock"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestImageSvc(t *testing.T, retries int) (ImageService, *mock.MockGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	cfg := config.Gateway{RetryAttempts: retries, RetryDelay: time.Millisecond}
	return NewImageService(gw, cfg, logger.Nop()), gw
}

func TestNewImageService_DefaultDelay(t *testing.T) {
	svc := NewImageService(nil, config.Gateway{RetryAttempts: -1}, logger.Nop()).(*imageService)
	assert.Equal(t, defaultRetryDelay, svc.delay)
	assert.Zero(t, svc.retries)
}

func TestGetThumbnail_RetriesOutOfService(t *testing.T) {
	ctx := context.Background()
	svc, gw := newTestImageSvc(t, 1)

	gomock.InOrder(
		gw.EXPECT().GetThumbnail(gomock.Any(), int64(7), 16, 16).
			Return(nil, gateway.OutOfService("server gone", nil)),
		gw.EXPECT().GetThumbnail(gomock.Any(), int64(7), 16, 16).
			Return(pngBytes(t, 16, 16), nil),
	)

	img, err := svc.GetThumbnail(ctx, 7, 16, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestGetThumbnail_RetriesExhausted(t *testing.T) {
	ctx := context.Background()
	svc, gw := newTestImageSvc(t, 2)

	gw.EXPECT().GetThumbnail(gomock.Any(), int64(7), 16, 16).
		Return(nil, gateway.OutOfService("server gone", nil)).Times(3)

	_, err := svc.GetThumbnail(ctx, 7, 16, 16)
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrOutOfService)
	assert.NotErrorIs(t, err, ErrRendering)
}

func TestGetThumbnail_AccessIsNotRetried(t *testing.T) {
	ctx := context.Background()
	svc, gw := newTestImageSvc(t, 3)

	gw.EXPECT().GetThumbnail(gomock.Any(), int64(7), 16, 16).
		Return(nil, gateway.SecurityDenied("not yours", nil)).Times(1)

	_, err := svc.GetThumbnail(ctx, 7, 16, 16)
	assert.ErrorIs(t, err, ErrRendering)
	assert.ErrorIs(t, err, gateway.ErrSecurityDenied)
}

func TestGetThumbnail_UndecodableBytes(t *testing.T) {
	ctx := context.Background()
	svc, gw := newTestImageSvc(t, 0)

	gw.EXPECT().GetThumbnail(gomock.Any(), int64(7), 16, 16).Return([]byte("not an image"), nil)

	_, err := svc.GetThumbnail(ctx, 7, 16, 16)
	assert.ErrorIs(t, err, ErrRendering)
}

func TestGetThumbnailSet_SkipsBadEntries(t *testing.T) {
	ctx := context.Background()
	svc, gw := newTestImageSvc(t, 0)

	gw.EXPECT().GetThumbnailSet(gomock.Any(), []int64{1, 2}, 32).Return(map[int64][]byte{
		1: pngBytes(t, 32, 20),
		2: []byte("garbage"),
	}, nil)

	set, err := svc.GetThumbnailSet(ctx, []int64{1, 2}, 32)
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, 20, set[1].Bounds().Dy())
}

func TestRenderImage(t *testing.T) {
	ctx := context.Background()
	svc, gw := newTestImageSvc(t, 0)
	plane := remote.PlaneDef{Z: 1, T: 0}

	gw.EXPECT().RenderImage(gomock.Any(), int64(3), plane).Return(pngBytes(t, 8, 4), nil)

	img, err := svc.RenderImage(ctx, 3, plane)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
}

func TestRenderingSettingsErrors(t *testing.T) {
	ctx := context.Background()
	svc, gw := newTestImageSvc(t, 0)

	gw.EXPECT().SetChannelWindow(ctx, int64(3), 0, 10.0, 5.0).
		Return(gateway.InvalidArguments("start after end"))
	err := svc.SetChannelWindow(ctx, 3, 0, 10, 5)
	assert.ErrorIs(t, err, ErrRendering)
	assert.ErrorIs(t, err, gateway.ErrInvalidArguments)

	gw.EXPECT().SaveRenderingSettings(ctx, int64(3)).Return(gateway.OutOfService("down", nil))
	err = svc.SaveRenderingSettings(ctx, 3)
	assert.ErrorIs(t, err, gateway.ErrOutOfService)
	assert.NotErrorIs(t, err, ErrRendering)

	gw.EXPECT().ResetRenderingSettings(ctx, int64(3)).Return(nil)
	assert.NoError(t, svc.ResetRenderingSettings(ctx, 3))
}
