// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
)

// pixelsHandle is the state shared by the stateful stores: an id, the
// owning session and the selected pixels set.
type pixelsHandle struct {
	id string
	s  *Session

	mu     sync.Mutex
	pixels *remote.Pixels
	closed bool
}

func (s *Session) newPixelsHandle() *pixelsHandle {
	return &pixelsHandle{id: s.backend.uuids.Generate(), s: s}
}

func (h *pixelsHandle) HandleID() string { return h.id }

func (h *pixelsHandle) release() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
}

func (h *pixelsHandle) Close(ctx context.Context) error {
	h.release()
	h.s.unregister(h.id)
	return nil
}

// begin locks the handle for one call. It fails once the handle or its
// session is closed.
func (h *pixelsHandle) begin() error {
	if err := h.s.check(); err != nil {
		return err
	}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return remote.SessionInvalid("handle %s is closed", h.id)
	}
	return nil
}

func (h *pixelsHandle) end() { h.mu.Unlock() }

// selected returns the current pixels set; the handle must be locked.
func (h *pixelsHandle) selected() (*remote.Pixels, error) {
	if h.pixels == nil {
		return nil, remote.APIUsage("no pixels set selected")
	}
	return h.pixels, nil
}

// load selects the pixels set; the handle must be locked.
func (h *pixelsHandle) load(ctx context.Context, pixelsID int64) error {
	obj, err := h.s.dao().mustObject(ctx, remote.KindPixels, pixelsID)
	if err != nil {
		return err
	}
	h.pixels = obj.(*remote.Pixels)
	return nil
}

// savedDef returns the stored settings of px, or nil when there are none.
func (h *pixelsHandle) savedDef(ctx context.Context, px *remote.Pixels) (*remote.RenderingDef, error) {
	data, err := h.s.backend.store.RenderingDef(ctx, px.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeFault(err)
	}
	var def remote.RenderingDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, remote.ServerError("corrupt rendering settings of pixels %d: %v", px.ID, err)
	}
	return &def, nil
}

func (h *pixelsHandle) saveDef(ctx context.Context, def *remote.RenderingDef) error {
	data, err := json.Marshal(def)
	if err != nil {
		return remote.ServerError("encode rendering settings: %v", err)
	}
	return storeFault(h.s.backend.store.SaveRenderingDef(ctx, def.PixelsID, data))
}

func (h *pixelsHandle) effectiveDef(ctx context.Context, px *remote.Pixels) (*remote.RenderingDef, error) {
	def, err := h.savedDef(ctx, px)
	if err != nil || def != nil {
		return def, err
	}
	return defaultRenderingDef(px), nil
}

type thumbnailStore struct {
	*pixelsHandle
}

var _ remote.ThumbnailStore = (*thumbnailStore)(nil)

func (t *thumbnailStore) SetPixelsID(ctx context.Context, pixelsID int64) (bool, error) {
	if err := t.begin(); err != nil {
		return false, err
	}
	defer t.end()

	if err := t.load(ctx, pixelsID); err != nil {
		return false, err
	}
	def, err := t.savedDef(ctx, t.pixels)
	return def != nil, err
}

func (t *thumbnailStore) ResetDefaults(ctx context.Context) error {
	if err := t.begin(); err != nil {
		return err
	}
	defer t.end()

	px, err := t.selected()
	if err != nil {
		return err
	}
	return t.saveDef(ctx, defaultRenderingDef(px))
}

func (t *thumbnailStore) GetThumbnail(ctx context.Context, sizeX, sizeY int) ([]byte, error) {
	if err := t.begin(); err != nil {
		return nil, err
	}
	defer t.end()

	if sizeX <= 0 || sizeY <= 0 {
		return nil, remote.APIUsage("invalid thumbnail size %dx%d", sizeX, sizeY)
	}
	px, err := t.selected()
	if err != nil {
		return nil, err
	}
	return t.thumbnail(ctx, px, sizeX, sizeY)
}

func (t *thumbnailStore) GetThumbnailByLongestSide(ctx context.Context, size int) ([]byte, error) {
	if err := t.begin(); err != nil {
		return nil, err
	}
	defer t.end()

	if size <= 0 {
		return nil, remote.APIUsage("invalid thumbnail size %d", size)
	}
	px, err := t.selected()
	if err != nil {
		return nil, err
	}
	w, h := longestSide(px, size)
	return t.thumbnail(ctx, px, w, h)
}

// GetThumbnailSet skips the ids that do not name a pixels set.
func (t *thumbnailStore) GetThumbnailSet(ctx context.Context, size int, pixelsIDs []int64) (map[int64][]byte, error) {
	if err := t.begin(); err != nil {
		return nil, err
	}
	defer t.end()

	if size <= 0 {
		return nil, remote.APIUsage("invalid thumbnail size %d", size)
	}
	if len(pixelsIDs) == 0 {
		return map[int64][]byte{}, nil
	}
	pxs, err := typed[*remote.Pixels](ctx, t.s.dao(), remote.KindPixels, store.ObjectFilter{IDs: pixelsIDs})
	if err != nil {
		return nil, err
	}
	out := make(map[int64][]byte, len(pxs))
	for _, px := range pxs {
		w, h := longestSide(px, size)
		data, err := t.thumbnail(ctx, px, w, h)
		if err != nil {
			return nil, err
		}
		out[px.ID] = data
	}
	return out, nil
}

func (t *thumbnailStore) thumbnail(ctx context.Context, px *remote.Pixels, w, h int) ([]byte, error) {
	def, err := t.effectiveDef(ctx, px)
	if err != nil {
		return nil, err
	}
	img := render(px, def, remote.PlaneDef{Z: def.DefaultZ, T: def.DefaultT})
	return encodePNG(scale(img, w, h))
}

type renderingEngine struct {
	*pixelsHandle
	def *remote.RenderingDef
}

var _ remote.RenderingEngine = (*renderingEngine)(nil)

func (r *renderingEngine) LookupPixels(ctx context.Context, pixelsID int64) error {
	if err := r.begin(); err != nil {
		return err
	}
	defer r.end()

	if err := r.load(ctx, pixelsID); err != nil {
		return err
	}
	r.def = nil
	return nil
}

func (r *renderingEngine) LookupRenderingDef(ctx context.Context, pixelsID int64) (bool, error) {
	if err := r.begin(); err != nil {
		return false, err
	}
	defer r.end()

	px, err := r.selected()
	if err != nil {
		return false, err
	}
	if px.ID != pixelsID {
		return false, remote.APIUsage("pixels %d is not the selected set %d", pixelsID, px.ID)
	}
	def, err := r.savedDef(ctx, px)
	return def != nil, err
}

func (r *renderingEngine) ResetDefaults(ctx context.Context) error {
	if err := r.begin(); err != nil {
		return err
	}
	defer r.end()

	px, err := r.selected()
	if err != nil {
		return err
	}
	def := defaultRenderingDef(px)
	if err := r.saveDef(ctx, def); err != nil {
		return err
	}
	r.def = def
	return nil
}

func (r *renderingEngine) Load(ctx context.Context) error {
	if err := r.begin(); err != nil {
		return err
	}
	defer r.end()

	px, err := r.selected()
	if err != nil {
		return err
	}
	def, err := r.effectiveDef(ctx, px)
	if err != nil {
		return err
	}
	r.def = def
	return nil
}

// loaded returns the pixels and settings in use; the handle must be locked.
func (r *renderingEngine) loaded() (*remote.Pixels, *remote.RenderingDef, error) {
	px, err := r.selected()
	if err != nil {
		return nil, nil, err
	}
	if r.def == nil {
		return nil, nil, remote.APIUsage("rendering settings of pixels %d are not loaded", px.ID)
	}
	return px, r.def, nil
}

func (r *renderingEngine) GetRenderingDef(ctx context.Context) (*remote.RenderingDef, error) {
	if err := r.begin(); err != nil {
		return nil, err
	}
	defer r.end()

	_, def, err := r.loaded()
	if err != nil {
		return nil, err
	}
	return def.Clone(), nil
}

func (r *renderingEngine) SetActive(ctx context.Context, channel int, active bool) error {
	return r.withChannel(channel, func(cb *remote.ChannelBinding) error {
		cb.Active = active
		return nil
	})
}

func (r *renderingEngine) SetChannelWindow(ctx context.Context, channel int, start, end float64) error {
	return r.withChannel(channel, func(cb *remote.ChannelBinding) error {
		if start > end {
			return remote.APIUsage("window start %g is after end %g", start, end)
		}
		cb.InputStart, cb.InputEnd = start, end
		return nil
	})
}

func (r *renderingEngine) withChannel(channel int, fn func(*remote.ChannelBinding) error) error {
	if err := r.begin(); err != nil {
		return err
	}
	defer r.end()

	_, def, err := r.loaded()
	if err != nil {
		return err
	}
	if channel < 0 || channel >= len(def.Channels) {
		return remote.APIUsage("channel %d out of range", channel)
	}
	return fn(&def.Channels[channel])
}

func (r *renderingEngine) SetDefaultZ(ctx context.Context, z int) error {
	if err := r.begin(); err != nil {
		return err
	}
	defer r.end()

	px, def, err := r.loaded()
	if err != nil {
		return err
	}
	if z < 0 || z >= px.SizeZ {
		return remote.APIUsage("z %d out of range", z)
	}
	def.DefaultZ = z
	return nil
}

func (r *renderingEngine) SetDefaultT(ctx context.Context, t int) error {
	if err := r.begin(); err != nil {
		return err
	}
	defer r.end()

	px, def, err := r.loaded()
	if err != nil {
		return err
	}
	if t < 0 || t >= px.SizeT {
		return remote.APIUsage("t %d out of range", t)
	}
	def.DefaultT = t
	return nil
}

func (r *renderingEngine) Render(ctx context.Context, pd remote.PlaneDef) ([]byte, error) {
	if err := r.begin(); err != nil {
		return nil, err
	}
	defer r.end()

	px, def, err := r.loaded()
	if err != nil {
		return nil, err
	}
	if !inPlane(px, pd.Z, 0, pd.T) {
		return nil, remote.APIUsage("plane z=%d t=%d out of range", pd.Z, pd.T)
	}
	return encodePNG(render(px, def, pd))
}

func (r *renderingEngine) SaveCurrentSettings(ctx context.Context) error {
	if err := r.begin(); err != nil {
		return err
	}
	defer r.end()

	px, def, err := r.loaded()
	if err != nil {
		return err
	}
	image, err := r.s.dao().mustObject(ctx, remote.KindImage, px.ImageID)
	if err != nil {
		return err
	}
	if err := r.s.canModify(image); err != nil {
		return err
	}
	return r.saveDef(ctx, def)
}

type rawPixelsStore struct {
	*pixelsHandle
}

var _ remote.RawPixelsStore = (*rawPixelsStore)(nil)

func (r *rawPixelsStore) SetPixelsID(ctx context.Context, pixelsID int64) error {
	if err := r.begin(); err != nil {
		return err
	}
	defer r.end()

	return r.load(ctx, pixelsID)
}

func (r *rawPixelsStore) GetPlane(ctx context.Context, z, c, t int) ([]byte, error) {
	if err := r.begin(); err != nil {
		return nil, err
	}
	defer r.end()

	px, err := r.selected()
	if err != nil {
		return nil, err
	}
	if !inPlane(px, z, c, t) {
		return nil, remote.APIUsage("plane z=%d c=%d t=%d out of range", z, c, t)
	}
	return plane(px, z, c, t), nil
}
