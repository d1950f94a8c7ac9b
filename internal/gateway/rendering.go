// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

// enginePool keeps one loaded rendering engine per pixels set.
type enginePool struct {
	mu      sync.Mutex
	engines map[int64]remote.RenderingEngine
	logger  *logger.Logger
}

// with runs fn against the engine of pixelsID, starting one if needed. A
// session fault drops the engine.
func (p *enginePool) with(ctx context.Context, sess remote.Session, pixelsID int64, fn func(remote.RenderingEngine) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	re, ok := p.engines[pixelsID]
	if !ok {
		var err error
		if re, err = startEngine(ctx, sess, pixelsID); err != nil {
			return err
		}
		p.engines[pixelsID] = re
	}

	err := fn(re)
	if remote.IsSessionInvalid(err) {
		p.closeLocked(ctx, pixelsID)
	}
	return err
}

func startEngine(ctx context.Context, sess remote.Session, pixelsID int64) (remote.RenderingEngine, error) {
	re, err := sess.CreateRenderingEngine(ctx)
	if err != nil {
		return nil, err
	}
	if err := prepareEngine(ctx, re, pixelsID); err != nil {
		return nil, errors.Join(err, re.Close(ctx))
	}
	return re, nil
}

func prepareEngine(ctx context.Context, re remote.RenderingEngine, pixelsID int64) error {
	if err := re.LookupPixels(ctx, pixelsID); err != nil {
		return err
	}
	found, err := re.LookupRenderingDef(ctx, pixelsID)
	if err != nil {
		return err
	}
	if !found {
		if err := re.ResetDefaults(ctx); err != nil {
			return err
		}
		if _, err := re.LookupRenderingDef(ctx, pixelsID); err != nil {
			return err
		}
	}
	return re.Load(ctx)
}

func (p *enginePool) shutDown(ctx context.Context, pixelsID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked(ctx, pixelsID)
}

func (p *enginePool) closeAll(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id := range p.engines {
		p.closeLocked(ctx, id)
	}
}

func (p *enginePool) closeLocked(ctx context.Context, pixelsID int64) {
	re, ok := p.engines[pixelsID]
	if !ok {
		return
	}
	delete(p.engines, pixelsID)
	if err := re.Close(ctx); err != nil {
		p.logger.Debug().Err(err).Int64("pixelsID", pixelsID).Msg("closing rendering engine")
	}
}

func (g *omeroGateway) withEngine(ctx context.Context, pixelsID int64, fn func(remote.RenderingEngine) error) error {
	if pixelsID <= 0 {
		return InvalidArguments("invalid pixels id %d", pixelsID)
	}
	sess, err := g.sess()
	if err != nil {
		return err
	}
	return g.engines.with(ctx, sess, pixelsID, fn)
}

func (g *omeroGateway) GetRenderingSettings(ctx context.Context, pixelsID int64) (rs *models.RenderingSettings, err error) {
	defer g.track("get_rendering_settings", time.Now(), &err)

	err = g.withEngine(ctx, pixelsID, func(re remote.RenderingEngine) error {
		def, err := re.GetRenderingDef(ctx)
		if err != nil {
			return err
		}
		rs = models.NewRenderingSettings(def)
		return nil
	})
	return rs, Classify("cannot load the rendering settings", err)
}

func (g *omeroGateway) SetChannelWindow(ctx context.Context, pixelsID int64, channel int, start, end float64) (err error) {
	defer g.track("set_channel_window", time.Now(), &err)

	if channel < 0 || start > end {
		return InvalidArguments("invalid window [%g, %g] for channel %d", start, end, channel)
	}
	err = g.withEngine(ctx, pixelsID, func(re remote.RenderingEngine) error {
		return re.SetChannelWindow(ctx, channel, start, end)
	})
	return Classify("cannot set the channel window", err)
}

func (g *omeroGateway) SetChannelActive(ctx context.Context, pixelsID int64, channel int, active bool) (err error) {
	defer g.track("set_channel_active", time.Now(), &err)

	if channel < 0 {
		return InvalidArguments("invalid channel %d", channel)
	}
	err = g.withEngine(ctx, pixelsID, func(re remote.RenderingEngine) error {
		return re.SetActive(ctx, channel, active)
	})
	return Classify("cannot set the channel state", err)
}

func (g *omeroGateway) SetDefaultPlane(ctx context.Context, pixelsID int64, z, t int) (err error) {
	defer g.track("set_default_plane", time.Now(), &err)

	if z < 0 || t < 0 {
		return InvalidArguments("invalid plane z=%d t=%d", z, t)
	}
	err = g.withEngine(ctx, pixelsID, func(re remote.RenderingEngine) error {
		if err := re.SetDefaultZ(ctx, z); err != nil {
			return err
		}
		return re.SetDefaultT(ctx, t)
	})
	return Classify("cannot set the default plane", err)
}

func (g *omeroGateway) RenderImage(ctx context.Context, pixelsID int64, plane remote.PlaneDef) (data []byte, err error) {
	defer g.track("render_image", time.Now(), &err)

	if plane.Z < 0 || plane.T < 0 {
		return nil, InvalidArguments("invalid plane z=%d t=%d", plane.Z, plane.T)
	}
	err = g.withEngine(ctx, pixelsID, func(re remote.RenderingEngine) error {
		var err error
		data, err = re.Render(ctx, plane)
		return err
	})
	return data, Classify("cannot render the image", err)
}

func (g *omeroGateway) ResetRenderingSettings(ctx context.Context, pixelsID int64) (err error) {
	defer g.track("reset_rendering_settings", time.Now(), &err)

	err = g.withEngine(ctx, pixelsID, func(re remote.RenderingEngine) error {
		return re.ResetDefaults(ctx)
	})
	return Classify("cannot reset the rendering settings", err)
}

func (g *omeroGateway) SaveRenderingSettings(ctx context.Context, pixelsID int64) (err error) {
	defer g.track("save_rendering_settings", time.Now(), &err)

	err = g.withEngine(ctx, pixelsID, func(re remote.RenderingEngine) error {
		return re.SaveCurrentSettings(ctx)
	})
	return Classify("cannot save the rendering settings", err)
}

func (g *omeroGateway) ShutDownRenderingEngine(ctx context.Context, pixelsID int64) {
	g.engines.shutDown(ctx, pixelsID)
}
