// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ome/openmicroscopy-sub022/internal/mock"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectEngineStart(ctx context.Context, re *mock.MockRenderingEngine, pixelsID int64, hasDef bool) {
	calls := []any{
		re.EXPECT().LookupPixels(ctx, pixelsID).Return(nil),
		re.EXPECT().LookupRenderingDef(ctx, pixelsID).Return(hasDef, nil),
	}
	if !hasDef {
		calls = append(calls,
			re.EXPECT().ResetDefaults(ctx).Return(nil),
			re.EXPECT().LookupRenderingDef(ctx, pixelsID).Return(true, nil),
		)
	}
	calls = append(calls, re.EXPECT().Load(ctx).Return(nil))
	gomock.InOrder(calls...)
}

func TestRendering_OneEnginePerPixels(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()

	re := mock.NewMockRenderingEngine(ctrl)
	env.session.EXPECT().CreateRenderingEngine(ctx).Return(re, nil).Times(1)
	expectEngineStart(ctx, re, 11, false)

	def := &remote.RenderingDef{
		PixelsID: 11,
		DefaultZ: 2,
		Model:    "rgb",
		Channels: []remote.ChannelBinding{{Active: true, InputEnd: 255, Red: 255, Alpha: 255}, {InputEnd: 4095}},
	}
	re.EXPECT().GetRenderingDef(ctx).Return(def, nil)
	re.EXPECT().SetChannelWindow(ctx, 1, 10.0, 200.0).Return(nil)
	re.EXPECT().SetActive(ctx, 1, true).Return(nil)
	gomock.InOrder(
		re.EXPECT().SetDefaultZ(ctx, 4).Return(nil),
		re.EXPECT().SetDefaultT(ctx, 1).Return(nil),
	)
	re.EXPECT().Render(ctx, remote.PlaneDef{Z: 4, T: 1}).Return([]byte("img"), nil)

	rs, err := env.gw.GetRenderingSettings(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(11), rs.PixelsID)
	assert.Equal(t, 2, rs.DefaultZ)
	assert.Equal(t, []int{0}, rs.ActiveChannels())

	require.NoError(t, env.gw.SetChannelWindow(ctx, 11, 1, 10, 200))
	require.NoError(t, env.gw.SetChannelActive(ctx, 11, 1, true))
	require.NoError(t, env.gw.SetDefaultPlane(ctx, 11, 4, 1))

	img, err := env.gw.RenderImage(ctx, 11, remote.PlaneDef{Z: 4, T: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), img)
	assert.Len(t, env.gw.engines.engines, 1)
}

func TestRendering_StartFailureClosesEngine(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()

	re := mock.NewMockRenderingEngine(ctrl)
	env.session.EXPECT().CreateRenderingEngine(ctx).Return(re, nil)
	re.EXPECT().LookupPixels(ctx, int64(11)).Return(remote.Validation("no pixels 11"))
	re.EXPECT().Close(ctx).Return(nil)

	_, err := env.gw.GetRenderingSettings(ctx, 11)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Empty(t, env.gw.engines.engines)
}

func TestRendering_SessionFaultDropsEngine(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()

	re := mock.NewMockRenderingEngine(ctrl)
	env.session.EXPECT().CreateRenderingEngine(ctx).Return(re, nil)
	expectEngineStart(ctx, re, 11, true)
	re.EXPECT().SaveCurrentSettings(ctx).Return(remote.SessionInvalid("expired"))
	re.EXPECT().Close(ctx).Return(errors.New("gone"))

	err := env.gw.SaveRenderingSettings(ctx, 11)
	assert.ErrorIs(t, err, ErrOutOfService)
	assert.Empty(t, env.gw.engines.engines)
}

func TestRendering_InvalidArguments(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()

	assert.ErrorIs(t, env.gw.SetChannelWindow(ctx, 11, 0, 5, 1), ErrInvalidArguments)
	assert.ErrorIs(t, env.gw.SetChannelActive(ctx, 11, -1, true), ErrInvalidArguments)
	assert.ErrorIs(t, env.gw.SetDefaultPlane(ctx, 11, -1, 0), ErrInvalidArguments)
	assert.ErrorIs(t, env.gw.ResetRenderingSettings(ctx, 0), ErrInvalidArguments)
	_, err := env.gw.RenderImage(ctx, 11, remote.PlaneDef{Z: 0, T: -2})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestShutDownRenderingEngine(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()

	re := mock.NewMockRenderingEngine(ctrl)
	env.gw.engines.engines[11] = re
	re.EXPECT().Close(ctx).Return(nil)

	env.gw.ShutDownRenderingEngine(ctx, 11)
	env.gw.ShutDownRenderingEngine(ctx, 11)
	assert.Empty(t, env.gw.engines.engines)
}

func TestRendering_ConcurrentCallsShareEngine(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()

	re := mock.NewMockRenderingEngine(ctrl)
	env.session.EXPECT().CreateRenderingEngine(ctx).Return(re, nil).Times(1)
	expectEngineStart(ctx, re, 11, true)
	re.EXPECT().ResetDefaults(ctx).Return(nil).Times(8)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, env.gw.ResetRenderingSettings(ctx, 11))
		}()
	}
	wg.Wait()
}
