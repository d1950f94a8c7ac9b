// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
	"github.com/sethvargo/go-retry"
)

const defaultRetryDelay = 200 * time.Millisecond

type imageService struct {
	gateway gateway.Gateway
	logger  *logger.Logger

	retries uint64
	delay   time.Duration
}

// NewImageService returns an ImageService that retries thumbnail and render
// requests cfg.RetryAttempts times when the gateway reports OutOfService.
func NewImageService(gw gateway.Gateway, cfg config.Gateway, logger *logger.Logger) ImageService {
	s := &imageService{
		gateway: gw,
		logger:  logger.Component("image_service"),
		delay:   cfg.RetryDelay,
	}
	if cfg.RetryAttempts > 0 {
		s.retries = uint64(cfg.RetryAttempts)
	}
	if s.delay <= 0 {
		s.delay = defaultRetryDelay
	}
	return s
}

// fetch calls fn until it succeeds, fails with something other than
// OutOfService, or the retries are used up.
func fetch[T any](ctx context.Context, s *imageService, op string, fn func(context.Context) (T, error)) (T, error) {
	var out T
	attempt := 0
	backoff := retry.WithMaxRetries(s.retries, retry.NewConstant(s.delay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		var err error
		out, err = fn(ctx)
		if errors.Is(err, gateway.ErrOutOfService) {
			s.logger.Warn().Err(err).Str("op", op).Int("attempt", attempt).Msg("retrying")
			return retry.RetryableError(err)
		}
		return err
	})
	return out, err
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, renderingError("cannot decode the image", err)
	}
	return img, nil
}

func (s *imageService) GetThumbnail(ctx context.Context, pixelsID int64, sizeX, sizeY int) (image.Image, error) {
	data, err := fetch(ctx, s, "get_thumbnail", func(ctx context.Context) ([]byte, error) {
		return s.gateway.GetThumbnail(ctx, pixelsID, sizeX, sizeY)
	})
	if err != nil {
		return nil, renderingError("cannot get the thumbnail", err)
	}
	return decode(data)
}

func (s *imageService) GetThumbnailByLongestSide(ctx context.Context, pixelsID int64, size int) (image.Image, error) {
	data, err := fetch(ctx, s, "get_thumbnail_by_longest_side", func(ctx context.Context) ([]byte, error) {
		return s.gateway.GetThumbnailByLongestSide(ctx, pixelsID, size)
	})
	if err != nil {
		return nil, renderingError("cannot get the thumbnail", err)
	}
	return decode(data)
}

// GetThumbnailSet decodes every thumbnail of the set. Pixels sets whose
// thumbnail cannot be decoded are left out and logged.
func (s *imageService) GetThumbnailSet(ctx context.Context, pixelsIDs []int64, size int) (map[int64]image.Image, error) {
	set, err := fetch(ctx, s, "get_thumbnail_set", func(ctx context.Context) (map[int64][]byte, error) {
		return s.gateway.GetThumbnailSet(ctx, pixelsIDs, size)
	})
	if err != nil {
		return nil, renderingError("cannot get the thumbnails", err)
	}

	out := make(map[int64]image.Image, len(set))
	for id, data := range set {
		img, err := decode(data)
		if err != nil {
			s.logger.Warn().Err(err).Int64("pixelsID", id).Msg("skipping thumbnail")
			continue
		}
		out[id] = img
	}
	return out, nil
}

func (s *imageService) RenderImage(ctx context.Context, pixelsID int64, plane remote.PlaneDef) (image.Image, error) {
	data, err := fetch(ctx, s, "render_image", func(ctx context.Context) ([]byte, error) {
		return s.gateway.RenderImage(ctx, pixelsID, plane)
	})
	if err != nil {
		return nil, renderingError("cannot render the image", err)
	}
	return decode(data)
}

func (s *imageService) LoadRenderingSettings(ctx context.Context, pixelsID int64) (*models.RenderingSettings, error) {
	rs, err := s.gateway.GetRenderingSettings(ctx, pixelsID)
	return rs, renderingError("cannot load the rendering settings", err)
}

func (s *imageService) SetChannelWindow(ctx context.Context, pixelsID int64, channel int, start, end float64) error {
	return renderingError("cannot set the channel window", s.gateway.SetChannelWindow(ctx, pixelsID, channel, start, end))
}

func (s *imageService) SetChannelActive(ctx context.Context, pixelsID int64, channel int, active bool) error {
	return renderingError("cannot set the channel state", s.gateway.SetChannelActive(ctx, pixelsID, channel, active))
}

func (s *imageService) SetDefaultPlane(ctx context.Context, pixelsID int64, z, t int) error {
	return renderingError("cannot set the default plane", s.gateway.SetDefaultPlane(ctx, pixelsID, z, t))
}

func (s *imageService) ResetRenderingSettings(ctx context.Context, pixelsID int64) error {
	return renderingError("cannot reset the rendering settings", s.gateway.ResetRenderingSettings(ctx, pixelsID))
}

func (s *imageService) SaveRenderingSettings(ctx context.Context, pixelsID int64) error {
	return renderingError("cannot save the rendering settings", s.gateway.SaveRenderingSettings(ctx, pixelsID))
}

func (s *imageService) ShutDownRenderingEngine(ctx context.Context, pixelsID int64) {
	s.gateway.ShutDownRenderingEngine(ctx, pixelsID)
}

func (s *imageService) LoadPlane(ctx context.Context, pixelsID int64, z, c, t int) ([]byte, error) {
	return s.gateway.GetPlane(ctx, pixelsID, z, c, t)
}

func (s *imageService) LoadPixels(ctx context.Context, pixelsID int64) (*models.PixelsData, error) {
	return s.gateway.GetPixels(ctx, pixelsID)
}
