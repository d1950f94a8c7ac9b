// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ome/openmicroscopy-sub022/internal/app"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/utils"
	"github.com/ome/openmicroscopy-sub022/models"
)

// handleIDer is implemented by every stateful store of the backend.
type handleIDer interface {
	HandleID() string
}

// createStore opens a stateful store of the type given by the "type" query
// parameter and returns its handle.
func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := sessionFromContext(ctx)

	var (
		store any
		err   error
	)
	switch typ := r.URL.Query().Get("type"); typ {
	case models.StoreThumbnail:
		store, err = sess.CreateThumbnailStore(ctx)
	case models.StoreRendering:
		store, err = sess.CreateRenderingEngine(ctx)
	case models.StoreRawPixels:
		store, err = sess.CreateRawPixelsStore(ctx)
	default:
		err = remote.APIUsage("%v: %q", ErrUnknownStoreType, typ)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	id := store.(handleIDer).HandleID()
	logger.FromRequest(r).Debug().Str("handle", id).Msg("store created")
	utils.WriteJSON(w, models.StoreResponse{Handle: id}, http.StatusOK)
}

func (h *Handler) closeStore(w http.ResponseWriter, r *http.Request) {
	store, ok := sessionFromContext(r.Context()).Handle(chi.URLParam(r, "handle"))
	if ok {
		if c, ok := store.(interface{ Close(context.Context) error }); ok {
			c.Close(r.Context())
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// callStore invokes one method of an open stateful store. Unknown handles
// are answered with a session fault, as for a store closed by the server.
func (h *Handler) callStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	handle, method := chi.URLParam(r, "handle"), chi.URLParam(r, "method")

	if !utils.IsUUID(handle) {
		writeFault(w, remote.APIUsage("malformed store handle %q", handle))
		return
	}
	store, ok := sessionFromContext(ctx).Handle(handle)
	if !ok {
		writeFault(w, remote.SessionInvalid("handle %s is not open", handle))
		return
	}

	var req models.StoreRequest
	if err := decodeBody(r, &req); err != nil {
		writeFault(w, err)
		return
	}

	var (
		res models.StoreResult
		err error
	)
	switch s := store.(type) {
	case remote.ThumbnailStore:
		res, err = callThumbnailStore(ctx, s, method, req)
	case remote.RenderingEngine:
		res, err = callRenderingEngine(ctx, s, method, req)
	case remote.RawPixelsStore:
		res, err = callRawPixelsStore(ctx, s, method, req)
	default:
		err = remote.ServerError("handle %s has unexpected type %T", handle, store)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func unknownMethod(store, method string) error {
	return remote.APIUsage(store+": "+app.MsgUnknownStoreMethod, method)
}

func callThumbnailStore(ctx context.Context, s remote.ThumbnailStore, method string, req models.StoreRequest) (res models.StoreResult, err error) {
	switch method {
	case models.MethodSetPixelsID:
		res.Found, err = s.SetPixelsID(ctx, req.PixelsID)
	case models.MethodResetDefaults:
		err = s.ResetDefaults(ctx)
	case models.MethodGetThumbnail:
		res.Data, err = s.GetThumbnail(ctx, req.SizeX, req.SizeY)
	case models.MethodGetThumbnailByLongestSide:
		res.Data, err = s.GetThumbnailByLongestSide(ctx, req.Size)
	case models.MethodGetThumbnailSet:
		res.Thumbnails, err = s.GetThumbnailSet(ctx, req.Size, req.PixelsIDs)
	default:
		err = unknownMethod(models.StoreThumbnail, method)
	}
	return res, err
}

func callRenderingEngine(ctx context.Context, s remote.RenderingEngine, method string, req models.StoreRequest) (res models.StoreResult, err error) {
	switch method {
	case models.MethodLookupPixels:
		err = s.LookupPixels(ctx, req.PixelsID)
	case models.MethodLookupRenderingDef:
		res.Found, err = s.LookupRenderingDef(ctx, req.PixelsID)
	case models.MethodResetDefaults:
		err = s.ResetDefaults(ctx)
	case models.MethodLoad:
		err = s.Load(ctx)
	case models.MethodGetRenderingDef:
		res.Def, err = s.GetRenderingDef(ctx)
	case models.MethodSetActive:
		err = s.SetActive(ctx, req.Channel, req.Active)
	case models.MethodSetChannelWindow:
		err = s.SetChannelWindow(ctx, req.Channel, req.Start, req.End)
	case models.MethodSetDefaultZ:
		err = s.SetDefaultZ(ctx, req.Plane.Z)
	case models.MethodSetDefaultT:
		err = s.SetDefaultT(ctx, req.Plane.T)
	case models.MethodRender:
		res.Data, err = s.Render(ctx, req.Plane)
	case models.MethodSaveCurrentSettings:
		err = s.SaveCurrentSettings(ctx)
	default:
		err = unknownMethod(models.StoreRendering, method)
	}
	return res, err
}

func callRawPixelsStore(ctx context.Context, s remote.RawPixelsStore, method string, req models.StoreRequest) (res models.StoreResult, err error) {
	switch method {
	case models.MethodSetPixelsID:
		err = s.SetPixelsID(ctx, req.PixelsID)
	case models.MethodGetPlane:
		res.Data, err = s.GetPlane(ctx, req.Plane.Z, req.C, req.Plane.T)
	default:
		err = unknownMethod(models.StoreRawPixels, method)
	}
	return res, err
}
