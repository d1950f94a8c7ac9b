// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

// storeHandle is a stateful store living on the server.
type storeHandle struct {
	s      *httpSession
	handle string
}

func (s *httpSession) createStore(ctx context.Context, typ string) (*storeHandle, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	var created models.StoreResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.token).
		SetQueryParam("type", typ).
		SetResult(&created).
		Post("/api/v0/stores")
	if err != nil {
		return nil, fmt.Errorf("%w: create %s store: %v", ErrUnavailable, typ, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if created.Handle == "" {
		return nil, remote.ServerError("server returned no %s store handle", typ)
	}
	return &storeHandle{s: s, handle: created.Handle}, nil
}

func (s *httpSession) CreateThumbnailStore(ctx context.Context) (remote.ThumbnailStore, error) {
	h, err := s.createStore(ctx, models.StoreThumbnail)
	if err != nil {
		return nil, err
	}
	return &thumbnailStore{h}, nil
}

func (s *httpSession) CreateRenderingEngine(ctx context.Context) (remote.RenderingEngine, error) {
	h, err := s.createStore(ctx, models.StoreRendering)
	if err != nil {
		return nil, err
	}
	return &renderingEngine{h}, nil
}

func (s *httpSession) CreateRawPixelsStore(ctx context.Context) (remote.RawPixelsStore, error) {
	h, err := s.createStore(ctx, models.StoreRawPixels)
	if err != nil {
		return nil, err
	}
	return &rawPixelsStore{h}, nil
}

func (h *storeHandle) call(ctx context.Context, method string, req models.StoreRequest) (models.StoreResult, error) {
	return post[models.StoreResult](ctx, h.s, "/api/v0/stores/"+h.handle+"/"+method, req)
}

// Close releases the store on the server. Stores of a closed session are
// already gone.
func (h *storeHandle) Close(ctx context.Context) error {
	if err := h.s.check(); err != nil {
		return nil
	}

	resp, err := h.s.client.R().
		SetContext(ctx).
		SetAuthToken(h.s.token).
		Delete("/api/v0/stores/" + h.handle)
	if err != nil {
		return fmt.Errorf("%w: close store: %v", ErrUnavailable, err)
	}
	return mapHTTPError(resp)
}

type thumbnailStore struct{ *storeHandle }

func (t *thumbnailStore) SetPixelsID(ctx context.Context, pixelsID int64) (bool, error) {
	res, err := t.call(ctx, models.MethodSetPixelsID, models.StoreRequest{PixelsID: pixelsID})
	return res.Found, err
}

func (t *thumbnailStore) ResetDefaults(ctx context.Context) error {
	_, err := t.call(ctx, models.MethodResetDefaults, models.StoreRequest{})
	return err
}

func (t *thumbnailStore) GetThumbnail(ctx context.Context, sizeX, sizeY int) ([]byte, error) {
	res, err := t.call(ctx, models.MethodGetThumbnail, models.StoreRequest{SizeX: sizeX, SizeY: sizeY})
	return res.Data, err
}

func (t *thumbnailStore) GetThumbnailByLongestSide(ctx context.Context, size int) ([]byte, error) {
	res, err := t.call(ctx, models.MethodGetThumbnailByLongestSide, models.StoreRequest{Size: size})
	return res.Data, err
}

func (t *thumbnailStore) GetThumbnailSet(ctx context.Context, size int, pixelsIDs []int64) (map[int64][]byte, error) {
	res, err := t.call(ctx, models.MethodGetThumbnailSet, models.StoreRequest{Size: size, PixelsIDs: pixelsIDs})
	if err != nil {
		return nil, err
	}
	if res.Thumbnails == nil {
		return map[int64][]byte{}, nil
	}
	return res.Thumbnails, nil
}

type renderingEngine struct{ *storeHandle }

func (r *renderingEngine) LookupPixels(ctx context.Context, pixelsID int64) error {
	_, err := r.call(ctx, models.MethodLookupPixels, models.StoreRequest{PixelsID: pixelsID})
	return err
}

func (r *renderingEngine) LookupRenderingDef(ctx context.Context, pixelsID int64) (bool, error) {
	res, err := r.call(ctx, models.MethodLookupRenderingDef, models.StoreRequest{PixelsID: pixelsID})
	return res.Found, err
}

func (r *renderingEngine) ResetDefaults(ctx context.Context) error {
	_, err := r.call(ctx, models.MethodResetDefaults, models.StoreRequest{})
	return err
}

func (r *renderingEngine) Load(ctx context.Context) error {
	_, err := r.call(ctx, models.MethodLoad, models.StoreRequest{})
	return err
}

func (r *renderingEngine) GetRenderingDef(ctx context.Context) (*remote.RenderingDef, error) {
	res, err := r.call(ctx, models.MethodGetRenderingDef, models.StoreRequest{})
	if err == nil && res.Def == nil {
		return nil, remote.ServerError("server returned no rendering settings")
	}
	return res.Def, err
}

func (r *renderingEngine) SetActive(ctx context.Context, channel int, active bool) error {
	_, err := r.call(ctx, models.MethodSetActive, models.StoreRequest{Channel: channel, Active: active})
	return err
}

func (r *renderingEngine) SetChannelWindow(ctx context.Context, channel int, start, end float64) error {
	_, err := r.call(ctx, models.MethodSetChannelWindow, models.StoreRequest{Channel: channel, Start: start, End: end})
	return err
}

func (r *renderingEngine) SetDefaultZ(ctx context.Context, z int) error {
	_, err := r.call(ctx, models.MethodSetDefaultZ, models.StoreRequest{Plane: remote.PlaneDef{Z: z}})
	return err
}

func (r *renderingEngine) SetDefaultT(ctx context.Context, t int) error {
	_, err := r.call(ctx, models.MethodSetDefaultT, models.StoreRequest{Plane: remote.PlaneDef{T: t}})
	return err
}

func (r *renderingEngine) Render(ctx context.Context, plane remote.PlaneDef) ([]byte, error) {
	res, err := r.call(ctx, models.MethodRender, models.StoreRequest{Plane: plane})
	return res.Data, err
}

func (r *renderingEngine) SaveCurrentSettings(ctx context.Context) error {
	_, err := r.call(ctx, models.MethodSaveCurrentSettings, models.StoreRequest{})
	return err
}

type rawPixelsStore struct{ *storeHandle }

func (r *rawPixelsStore) SetPixelsID(ctx context.Context, pixelsID int64) error {
	_, err := r.call(ctx, models.MethodSetPixelsID, models.StoreRequest{PixelsID: pixelsID})
	return err
}

func (r *rawPixelsStore) GetPlane(ctx context.Context, z, c, t int) ([]byte, error) {
	res, err := r.call(ctx, models.MethodGetPlane, models.StoreRequest{Plane: remote.PlaneDef{Z: z, T: t}, C: c})
	return res.Data, err
}

var (
	_ remote.ThumbnailStore  = (*thumbnailStore)(nil)
	_ remote.RenderingEngine = (*renderingEngine)(nil)
	_ remote.RawPixelsStore  = (*rawPixelsStore)(nil)
)
