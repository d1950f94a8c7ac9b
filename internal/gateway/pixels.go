// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

func (g *omeroGateway) GetPixels(ctx context.Context, pixelsID int64) (px *models.PixelsData, err error) {
	defer g.track("get_pixels", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	obj, err := sess.QueryService().Get(ctx, remote.KindPixels, pixelsID)
	if err != nil {
		return nil, Classify("cannot load the pixels", err)
	}
	return convertOne[*models.PixelsData]("cannot convert the pixels", obj)
}

// GetPlane reads one raw plane through a short-lived pixels store.
func (g *omeroGateway) GetPlane(ctx context.Context, pixelsID int64, z, c, t int) (plane []byte, err error) {
	defer g.track("get_plane", time.Now(), &err)

	if pixelsID <= 0 || z < 0 || c < 0 || t < 0 {
		return nil, InvalidArguments("invalid plane z=%d c=%d t=%d of pixels %d", z, c, t, pixelsID)
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	store, err := sess.CreateRawPixelsStore(ctx)
	if err != nil {
		return nil, Classify("cannot open the pixels store", err)
	}
	defer func() {
		if cerr := store.Close(ctx); cerr != nil && !errors.Is(cerr, context.Canceled) {
			g.logger.Debug().Err(cerr).Msg("closing pixels store")
		}
	}()

	if err := store.SetPixelsID(ctx, pixelsID); err != nil {
		return nil, Classify("cannot select the pixels", err)
	}
	plane, err = store.GetPlane(ctx, z, c, t)
	return plane, Classify("cannot read the plane", err)
}
