// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// thumbnailPool holds the single thumbnail store of the session. The store
// is replaced after it has served threshold requests.
type thumbnailPool struct {
	mu        sync.Mutex
	threshold int
	store     remote.ThumbnailStore
	uses      int
	logger    *logger.Logger
}

// with runs fn against the current store, creating or recycling it first.
// A session fault tears the store down.
func (p *thumbnailPool) with(ctx context.Context, sess remote.Session, fn func(remote.ThumbnailStore) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store != nil && p.uses >= p.threshold {
		p.logger.Debug().Int("uses", p.uses).Msg("recycling thumbnail store")
		p.closeLocked(ctx)
	}
	if p.store == nil {
		store, err := sess.CreateThumbnailStore(ctx)
		if err != nil {
			return err
		}
		p.store, p.uses = store, 0
	}
	p.uses++

	err := fn(p.store)
	if remote.IsSessionInvalid(err) {
		p.closeLocked(ctx)
	}
	return err
}

func (p *thumbnailPool) close(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked(ctx)
}

func (p *thumbnailPool) closeLocked(ctx context.Context) {
	if p.store == nil {
		return
	}
	if err := p.store.Close(ctx); err != nil {
		p.logger.Debug().Err(err).Msg("closing thumbnail store")
	}
	p.store, p.uses = nil, 0
}

// selectPixels points store at pixelsID, creating default settings when the
// pixels set has none.
func selectPixels(ctx context.Context, store remote.ThumbnailStore, pixelsID int64) error {
	ok, err := store.SetPixelsID(ctx, pixelsID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if err := store.ResetDefaults(ctx); err != nil {
		return err
	}
	_, err = store.SetPixelsID(ctx, pixelsID)
	return err
}

func (g *omeroGateway) GetThumbnail(ctx context.Context, pixelsID int64, sizeX, sizeY int) (data []byte, err error) {
	defer g.track("get_thumbnail", time.Now(), &err)

	if pixelsID <= 0 || sizeX <= 0 || sizeY <= 0 {
		return nil, InvalidArguments("invalid thumbnail request for pixels %d (%dx%d)", pixelsID, sizeX, sizeY)
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	err = g.thumbs.with(ctx, sess, func(store remote.ThumbnailStore) error {
		if err := selectPixels(ctx, store, pixelsID); err != nil {
			return err
		}
		var err error
		data, err = store.GetThumbnail(ctx, sizeX, sizeY)
		return err
	})
	return data, Classify("cannot get the thumbnail", err)
}

func (g *omeroGateway) GetThumbnailByLongestSide(ctx context.Context, pixelsID int64, size int) (data []byte, err error) {
	defer g.track("get_thumbnail_by_longest_side", time.Now(), &err)

	if pixelsID <= 0 || size <= 0 {
		return nil, InvalidArguments("invalid thumbnail request for pixels %d (size %d)", pixelsID, size)
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	err = g.thumbs.with(ctx, sess, func(store remote.ThumbnailStore) error {
		if err := selectPixels(ctx, store, pixelsID); err != nil {
			return err
		}
		var err error
		data, err = store.GetThumbnailByLongestSide(ctx, size)
		return err
	})
	return data, Classify("cannot get the thumbnail", err)
}

func (g *omeroGateway) GetThumbnailSet(ctx context.Context, pixelsIDs []int64, size int) (set map[int64][]byte, err error) {
	defer g.track("get_thumbnail_set", time.Now(), &err)

	if size <= 0 {
		return nil, InvalidArguments("invalid thumbnail size %d", size)
	}
	if len(pixelsIDs) == 0 {
		return map[int64][]byte{}, nil
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	err = g.thumbs.with(ctx, sess, func(store remote.ThumbnailStore) error {
		var err error
		set, err = store.GetThumbnailSet(ctx, size, pixelsIDs)
		return err
	})
	return set, Classify("cannot get the thumbnails", err)
}
