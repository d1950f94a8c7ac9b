// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/ome/openmicroscopy-sub022/internal/app"
	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/utils"
)

// empty is the request or response of calls that carry no data.
type empty struct{}

// serve adapts a typed service call to an HTTP handler. The request body is
// decoded into Req; an absent body leaves Req zero.
func serve[Req, Resp any](call func(ctx context.Context, s *backend.Session, req Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := decodeBody(r, &req); err != nil {
			writeFault(w, err)
			return
		}

		resp, err := call(r.Context(), sessionFromContext(r.Context()), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, resp, http.StatusOK)
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := utils.ReadJSON(r, v); err != nil {
		return remote.APIUsage(app.MsgMalformedBody, err)
	}
	return nil
}
