// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import "context"

//go:generate mockgen -source=services.go -destination=../mock/remote_mock.go -package=mock

// Connector opens sessions on a server.
type Connector interface {
	// Connect authenticates creds and returns a live session.
	Connect(ctx context.Context, creds Credentials) (Session, error)
}

// Session is an authenticated connection exposing the server services.
// Stateless services are shared; stateful stores are created per caller and
// must be closed.
type Session interface {
	ContainerService() ContainerService
	QueryService() QueryService
	UpdateService() UpdateService
	AdminService() AdminService
	RepositoryService() RepositoryService

	CreateThumbnailStore(ctx context.Context) (ThumbnailStore, error)
	CreateRenderingEngine(ctx context.Context) (RenderingEngine, error)
	CreateRawPixelsStore(ctx context.Context) (RawPixelsStore, error)

	KeepAlive(ctx context.Context) error
	Close(ctx context.Context) error
}

// ContainerService loads container hierarchies and their annotations.
type ContainerService interface {
	// LoadContainerHierarchy returns the trees rooted at the given projects,
	// datasets, screens or plates. Nil ids load every root visible under opts.
	LoadContainerHierarchy(ctx context.Context, rootKind Kind, rootIDs []int64, opts *Options) ([]Object, error)
	// FindContainerHierarchies returns the trees of rootKind containing the
	// given images, pruned to the paths reaching them.
	FindContainerHierarchies(ctx context.Context, rootKind Kind, imageIDs []int64, opts *Options) ([]Object, error)
	// FindAnnotations returns annotations keyed by annotated object id.
	FindAnnotations(ctx context.Context, rootKind Kind, rootIDs []int64, annotatorIDs []int64, opts *Options) (map[int64][]Annotation, error)
	GetImages(ctx context.Context, rootKind Kind, rootIDs []int64, opts *Options) ([]*Image, error)
	GetUserImages(ctx context.Context, opts *Options) ([]*Image, error)
	GetCollectionCount(ctx context.Context, kind Kind, property string, ids []int64, opts *Options) (map[int64]int64, error)
}

// Filter narrows QueryService.FindAll.
type Filter struct {
	IDs       []int64 `json:"ids,omitempty"`
	OwnerID   int64   `json:"ownerId,omitempty"`
	GroupID   int64   `json:"groupId,omitempty"`
	Name      string  `json:"name,omitempty"`
	Namespace string  `json:"ns,omitempty"`
	Limit     int     `json:"limit,omitempty"`
}

// LinkFilter narrows QueryService.FindLinks.
type LinkFilter struct {
	ParentIDs []int64 `json:"parentIds,omitempty"`
	ChildIDs  []int64 `json:"childIds,omitempty"`
	OwnerID   int64   `json:"ownerId,omitempty"`
}

// QueryService reads single objects and links.
type QueryService interface {
	// Get fails with a validation fault when the object does not exist.
	Get(ctx context.Context, kind Kind, id int64) (Object, error)
	// Find returns nil without error when the object does not exist.
	Find(ctx context.Context, kind Kind, id int64) (Object, error)
	FindAll(ctx context.Context, kind Kind, filter Filter) ([]Object, error)
	FindLinks(ctx context.Context, linkKind Kind, filter LinkFilter) ([]Object, error)
}

// UpdateService persists objects and object graphs.
type UpdateService interface {
	SaveAndReturnObject(ctx context.Context, obj Object) (Object, error)
	SaveAndReturnArray(ctx context.Context, objs []Object) ([]Object, error)
	DeleteObject(ctx context.Context, obj Object) error
	DeleteObjects(ctx context.Context, objs []Object) error
}

// AdminService manages users and groups.
type AdminService interface {
	GetEventContext(ctx context.Context) (EventContext, error)
	GetExperimenter(ctx context.Context, id int64) (*Experimenter, error)
	LookupExperimenters(ctx context.Context) ([]*Experimenter, error)
	LookupGroups(ctx context.Context) ([]*ExperimenterGroup, error)
	UpdateSelf(ctx context.Context, exp *Experimenter) error
	ChangePassword(ctx context.Context, newPassword string) error
}

// RepositoryService reports repository usage in bytes.
type RepositoryService interface {
	GetFreeSpace(ctx context.Context) (int64, error)
	GetUsedSpace(ctx context.Context) (int64, error)
}

// ThumbnailStore renders thumbnails. It is stateful: SetPixelsID selects
// the pixels set used by the following calls.
type ThumbnailStore interface {
	// SetPixelsID reports whether rendering settings exist for the pixels.
	SetPixelsID(ctx context.Context, pixelsID int64) (bool, error)
	ResetDefaults(ctx context.Context) error
	GetThumbnail(ctx context.Context, sizeX, sizeY int) ([]byte, error)
	GetThumbnailByLongestSide(ctx context.Context, size int) ([]byte, error)
	GetThumbnailSet(ctx context.Context, size int, pixelsIDs []int64) (map[int64][]byte, error)
	Close(ctx context.Context) error
}

// RenderingEngine renders planes of one pixels set. It is stateful.
type RenderingEngine interface {
	LookupPixels(ctx context.Context, pixelsID int64) error
	// LookupRenderingDef reports whether settings exist for the pixels.
	LookupRenderingDef(ctx context.Context, pixelsID int64) (bool, error)
	ResetDefaults(ctx context.Context) error
	Load(ctx context.Context) error
	GetRenderingDef(ctx context.Context) (*RenderingDef, error)
	SetActive(ctx context.Context, channel int, active bool) error
	SetChannelWindow(ctx context.Context, channel int, start, end float64) error
	SetDefaultZ(ctx context.Context, z int) error
	SetDefaultT(ctx context.Context, t int) error
	Render(ctx context.Context, plane PlaneDef) ([]byte, error)
	SaveCurrentSettings(ctx context.Context) error
	Close(ctx context.Context) error
}

// RawPixelsStore reads raw planes of one pixels set. It is stateful.
type RawPixelsStore interface {
	SetPixelsID(ctx context.Context, pixelsID int64) error
	GetPlane(ctx context.Context, z, c, t int) ([]byte, error)
	Close(ctx context.Context) error
}
