// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/mapper"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultThumbnailRecycleThreshold is used when the configured threshold is
// not positive.
const DefaultThumbnailRecycleThreshold = 100

type omeroGateway struct {
	connector remote.Connector
	metrics   *metrics
	logger    *logger.Logger

	mu      sync.RWMutex
	session remote.Session
	user    *models.ExperimenterData

	thumbs  *thumbnailPool
	engines *enginePool
}

// New returns a disconnected gateway dialing through connector. Metrics are
// registered with reg when it is not nil.
func New(connector remote.Connector, cfg config.Gateway, reg prometheus.Registerer, log *logger.Logger) Gateway {
	threshold := cfg.ThumbnailRecycleThreshold
	if threshold <= 0 {
		threshold = DefaultThumbnailRecycleThreshold
	}
	log = log.Component("gateway")

	return &omeroGateway{
		connector: connector,
		metrics:   newMetrics(reg),
		logger:    log,
		thumbs:    &thumbnailPool{threshold: threshold, logger: log},
		engines:   &enginePool{engines: make(map[int64]remote.RenderingEngine), logger: log},
	}
}

// sess returns the open session or an OutOfService error.
func (g *omeroGateway) sess() (remote.Session, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.session == nil {
		return nil, OutOfService("no open session", ErrNotConnected)
	}
	return g.session, nil
}

// track records the outcome of op. It is deferred with a pointer to the
// named error result.
func (g *omeroGateway) track(op string, start time.Time, errp *error) {
	err := *errp
	g.metrics.observe(op, start, err)
	if err != nil {
		g.logger.Warn().Err(err).Str("op", op).Msg("gateway call failed")
	}
}

func (g *omeroGateway) Login(ctx context.Context, creds remote.Credentials) (user *models.ExperimenterData, err error) {
	defer g.track("login", time.Now(), &err)

	sess, err := g.connector.Connect(ctx, creds)
	if err != nil {
		return nil, OutOfService("cannot connect as "+creds.UserName, err)
	}

	ec, err := sess.AdminService().GetEventContext(ctx)
	if err != nil {
		g.closeSession(ctx, sess)
		return nil, OutOfService("cannot load the event context", err)
	}

	exp, err := sess.AdminService().GetExperimenter(ctx, ec.UserID)
	if err == nil && exp == nil {
		err = mapper.ErrNilObject
	}
	if err != nil {
		g.closeSession(ctx, sess)
		return nil, OutOfService("cannot load the current user", err)
	}
	user = models.NewExperimenterDataFrom(exp)

	g.mu.Lock()
	old := g.session
	g.session, g.user = sess, user
	g.mu.Unlock()

	if old != nil {
		g.teardown(ctx, old)
	}

	g.logger.Info().Str("user", ec.UserName).Int64("userID", ec.UserID).Msg("logged in")
	return user, nil
}

func (g *omeroGateway) Logout(ctx context.Context) {
	g.mu.Lock()
	sess := g.session
	g.session, g.user = nil, nil
	g.mu.Unlock()

	if sess == nil {
		return
	}
	g.teardown(ctx, sess)
	g.logger.Info().Msg("logged out")
}

// teardown closes every stateful store, then sess. Failures are logged.
func (g *omeroGateway) teardown(ctx context.Context, sess remote.Session) {
	g.thumbs.close(ctx)
	g.engines.closeAll(ctx)
	g.closeSession(ctx, sess)
}

func (g *omeroGateway) closeSession(ctx context.Context, sess remote.Session) {
	if err := sess.Close(ctx); err != nil {
		g.logger.Debug().Err(err).Msg("closing session")
	}
}

func (g *omeroGateway) IsConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session != nil
}

func (g *omeroGateway) KeepAlive(ctx context.Context) (err error) {
	defer g.track("keep_alive", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return err
	}
	return Classify("keep alive", sess.KeepAlive(ctx))
}
