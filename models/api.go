// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/ome/openmicroscopy-sub022/internal/remote"

// Request and response bodies of the /api/v0 HTTP API. Objects whose type
// is only known at run time travel as [remote.Envelope] values.

// SessionResponse is returned when a session is opened.
type SessionResponse struct {
	Token        string              `json:"token"`
	EventContext remote.EventContext `json:"eventContext"`
}

// HierarchyRequest covers the container service calls taking a root kind
// and a list of ids.
type HierarchyRequest struct {
	RootKind     remote.Kind     `json:"rootKind"`
	IDs          []int64         `json:"ids"`
	AnnotatorIDs []int64         `json:"annotatorIds,omitempty"`
	Options      *remote.Options `json:"options,omitempty"`
}

// CountRequest is the body of a collection count call.
type CountRequest struct {
	Kind     remote.Kind     `json:"kind"`
	Property string          `json:"property"`
	IDs      []int64         `json:"ids"`
	Options  *remote.Options `json:"options,omitempty"`
}

// ObjectRequest names one object.
type ObjectRequest struct {
	Kind remote.Kind `json:"kind"`
	ID   int64       `json:"id"`
}

// FindAllRequest is the body of a QueryService.FindAll call.
type FindAllRequest struct {
	Kind   remote.Kind   `json:"kind"`
	Filter remote.Filter `json:"filter"`
}

// FindLinksRequest is the body of a QueryService.FindLinks call.
type FindLinksRequest struct {
	Kind   remote.Kind       `json:"kind"`
	Filter remote.LinkFilter `json:"filter"`
}

// ObjectsBody carries a list of objects either way.
type ObjectsBody struct {
	Objects []remote.Envelope `json:"objects"`
}

// ObjectBody carries a single object; Object is nil when nothing was found.
type ObjectBody struct {
	Object *remote.Envelope `json:"object"`
}

// AnnotationsResponse maps annotated object ids to their annotations.
type AnnotationsResponse struct {
	Annotations map[int64][]remote.Envelope `json:"annotations"`
}

// ImagesResponse lists images.
type ImagesResponse struct {
	Images []*remote.Image `json:"images"`
}

// CountResponse maps object ids to collection sizes.
type CountResponse struct {
	Counts map[int64]int64 `json:"counts"`
}

// ExperimentersResponse lists experimenters.
type ExperimentersResponse struct {
	Experimenters []*remote.Experimenter `json:"experimenters"`
}

// GroupsResponse lists groups.
type GroupsResponse struct {
	Groups []*remote.ExperimenterGroup `json:"groups"`
}

// PasswordRequest is the body of a password change.
type PasswordRequest struct {
	Password string `json:"password"`
}

// SpaceResponse reports a repository size in bytes.
type SpaceResponse struct {
	Bytes int64 `json:"bytes"`
}

// Stateful store types accepted by the store creation endpoint.
const (
	StoreThumbnail = "thumbnail"
	StoreRendering = "rendering"
	StoreRawPixels = "raw"
)

// Stateful store methods, the last path element of a store call.
const (
	MethodSetPixelsID               = "setPixelsId"
	MethodResetDefaults             = "resetDefaults"
	MethodGetThumbnail              = "getThumbnail"
	MethodGetThumbnailByLongestSide = "getThumbnailByLongestSide"
	MethodGetThumbnailSet           = "getThumbnailSet"
	MethodLookupPixels              = "lookupPixels"
	MethodLookupRenderingDef        = "lookupRenderingDef"
	MethodLoad                      = "load"
	MethodGetRenderingDef           = "getRenderingDef"
	MethodSetActive                 = "setActive"
	MethodSetChannelWindow          = "setChannelWindow"
	MethodSetDefaultZ               = "setDefaultZ"
	MethodSetDefaultT               = "setDefaultT"
	MethodRender                    = "render"
	MethodSaveCurrentSettings       = "saveCurrentSettings"
	MethodGetPlane                  = "getPlane"
)

// StoreResponse names a newly created stateful store.
type StoreResponse struct {
	Handle string `json:"handle"`
}

// StoreRequest is the body of every stateful store call. Each call reads
// the fields it needs.
type StoreRequest struct {
	PixelsID  int64           `json:"pixelsId,omitempty"`
	PixelsIDs []int64         `json:"pixelsIds,omitempty"`
	SizeX     int             `json:"sizeX,omitempty"`
	SizeY     int             `json:"sizeY,omitempty"`
	Size      int             `json:"size,omitempty"`
	Channel   int             `json:"channel,omitempty"`
	Active    bool            `json:"active,omitempty"`
	Start     float64         `json:"start,omitempty"`
	End       float64         `json:"end,omitempty"`
	Plane     remote.PlaneDef `json:"plane"`
	C         int             `json:"c,omitempty"`
}

// StoreResult is the body returned by stateful store calls.
type StoreResult struct {
	Found      bool                 `json:"found,omitempty"`
	Data       []byte               `json:"data,omitempty"`
	Thumbnails map[int64][]byte     `json:"thumbnails,omitempty"`
	Def        *remote.RenderingDef `json:"renderingDef,omitempty"`
}
