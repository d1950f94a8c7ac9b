// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway is the single point of contact with the remote services.
//
// The gateway owns the session, translates every remote fault into a
// [*Error] of one of three kinds, converts server objects to data objects
// through the mapper, recycles the thumbnail store and keeps one rendering
// engine per pixels set.
package gateway

import (
	"context"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway is the client view of a server. Every error it returns is a
// [*Error].
type Gateway interface {
	// Login opens a session and returns the logged-in user. Any failure is
	// reported as OutOfService.
	Login(ctx context.Context, creds remote.Credentials) (*models.ExperimenterData, error)
	// Logout closes the session and all stateful stores. Failures are only
	// logged.
	Logout(ctx context.Context)
	IsConnected() bool
	KeepAlive(ctx context.Context) error

	// LoadContainerHierarchy returns the trees rooted at rootIDs, or at every
	// visible root when rootIDs is nil.
	LoadContainerHierarchy(ctx context.Context, rootKind remote.Kind, rootIDs []int64, opts *remote.Options) ([]models.DataObject, error)
	// FindContainerHierarchy returns the trees of rootKind containing the
	// given images.
	FindContainerHierarchy(ctx context.Context, rootKind remote.Kind, imageIDs []int64, opts *remote.Options) ([]models.DataObject, error)
	// FindAnnotations returns the annotations of the given objects keyed by
	// object id. Nil annotatorIDs means any annotator.
	FindAnnotations(ctx context.Context, kind remote.Kind, ids, annotatorIDs []int64, opts *remote.Options) (map[int64][]models.AnnotationData, error)
	GetImages(ctx context.Context, rootKind remote.Kind, rootIDs []int64, opts *remote.Options) ([]*models.ImageData, error)
	GetUserImages(ctx context.Context, opts *remote.Options) ([]*models.ImageData, error)
	GetCollectionCount(ctx context.Context, kind remote.Kind, property string, ids []int64, opts *remote.Options) (map[int64]int64, error)

	// FindObject returns nil without error when the object does not exist.
	FindObject(ctx context.Context, kind remote.Kind, id int64) (remote.Object, error)
	// GetObject fails with InvalidArguments when the object does not exist.
	GetObject(ctx context.Context, kind remote.Kind, id int64) (remote.Object, error)
	FindAll(ctx context.Context, kind remote.Kind, filter remote.Filter) ([]remote.Object, error)
	// FindLink returns the link of linkKind joining parentID to childID, or
	// nil when there is none.
	FindLink(ctx context.Context, linkKind remote.Kind, parentID, childID int64) (remote.Object, error)
	FindLinks(ctx context.Context, linkKind remote.Kind, filter remote.LinkFilter) ([]remote.Object, error)
	CreateObject(ctx context.Context, obj remote.Object) (remote.Object, error)
	CreateObjects(ctx context.Context, objs []remote.Object) ([]remote.Object, error)
	UpdateObject(ctx context.Context, obj remote.Object) (remote.Object, error)
	DeleteObject(ctx context.Context, obj remote.Object) error
	DeleteObjects(ctx context.Context, objs []remote.Object) error

	GetEventContext(ctx context.Context) (remote.EventContext, error)
	GetExperimenter(ctx context.Context, id int64) (*models.ExperimenterData, error)
	GetExperimenters(ctx context.Context) ([]*models.ExperimenterData, error)
	GetGroups(ctx context.Context) ([]*models.GroupData, error)
	UpdateExperimenter(ctx context.Context, exp *remote.Experimenter) error
	ChangePassword(ctx context.Context, newPassword string) error
	GetFreeSpace(ctx context.Context) (int64, error)
	GetUsedSpace(ctx context.Context) (int64, error)

	GetPixels(ctx context.Context, pixelsID int64) (*models.PixelsData, error)
	GetPlane(ctx context.Context, pixelsID int64, z, c, t int) ([]byte, error)
	GetThumbnail(ctx context.Context, pixelsID int64, sizeX, sizeY int) ([]byte, error)
	GetThumbnailByLongestSide(ctx context.Context, pixelsID int64, size int) ([]byte, error)
	GetThumbnailSet(ctx context.Context, pixelsIDs []int64, size int) (map[int64][]byte, error)

	GetRenderingSettings(ctx context.Context, pixelsID int64) (*models.RenderingSettings, error)
	SetChannelWindow(ctx context.Context, pixelsID int64, channel int, start, end float64) error
	SetChannelActive(ctx context.Context, pixelsID int64, channel int, active bool) error
	SetDefaultPlane(ctx context.Context, pixelsID int64, z, t int) error
	RenderImage(ctx context.Context, pixelsID int64, plane remote.PlaneDef) ([]byte, error)
	ResetRenderingSettings(ctx context.Context, pixelsID int64) error
	SaveRenderingSettings(ctx context.Context, pixelsID int64) error
	// ShutDownRenderingEngine closes the engine of the pixels set, if any.
	ShutDownRenderingEngine(ctx context.Context, pixelsID int64)
}
