// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/ome/openmicroscopy-sub022/internal/app"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/utils"
)

// faultStatus maps a fault kind to the HTTP status it travels with.
func faultStatus(kind remote.FaultKind) int {
	switch kind {
	case remote.FaultSecurityViolation:
		return http.StatusForbidden
	case remote.FaultAPIUsage:
		return http.StatusBadRequest
	case remote.FaultValidation:
		return http.StatusUnprocessableEntity
	case remote.FaultSession:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeFault(w http.ResponseWriter, fault error) {
	f, ok := remote.AsFault(fault)
	if !ok {
		f = &remote.Fault{Kind: remote.FaultServer, Message: fault.Error()}
	}
	utils.WriteJSON(w, f, faultStatus(f.Kind))
}

// writeError answers a failed backend call. Errors that are not faults are
// logged and hidden behind a generic server fault.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if _, ok := remote.AsFault(err); ok {
		log.Debug().Err(err).Msg("call failed")
		writeFault(w, err)
		return
	}
	if errors.Is(err, r.Context().Err()) && r.Context().Err() != nil {
		log.Warn().Err(err).Msg("call cancelled")
		writeFault(w, remote.ServerError(app.MsgRequestCancelled))
		return
	}

	ev := log.Err(err)
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		ev = ev.Int64("user_id", userID)
	}
	if session, ok := utils.GetSessionFromContext(r.Context()); ok {
		ev = ev.Str("session", session)
	}
	ev.Msg("unexpected backend error")
	writeFault(w, remote.ServerError(app.MsgInternalServerError))
}
