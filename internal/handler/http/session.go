// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/utils"
	"github.com/ome/openmicroscopy-sub022/models"
)

// login opens a backend session and returns a token naming it. The token
// is also set in the Authorization response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var creds remote.Credentials
	if err := decodeBody(r, &creds); err != nil {
		writeFault(w, err)
		return
	}

	sess, err := h.backend.Login(ctx, creds)
	if err != nil {
		log.Info().Err(err).Str("user", creds.UserName).Msg("login refused")
		writeError(w, r, err)
		return
	}

	ec, err := sess.AdminService().GetEventContext(ctx)
	if err != nil {
		sess.Close(ctx)
		writeError(w, r, err)
		return
	}

	token, err := utils.GenerateJWTToken(h.auth.TokenIssuer, sess.UserID(), sess.UUID(), h.auth.TokenDuration, h.auth.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("error generating session token")
		sess.Close(ctx)
		writeFault(w, remote.ServerError("cannot issue session token"))
		return
	}

	log.Info().Str("user", creds.UserName).Str("session", sess.UUID()).Msg("session opened")
	w.Header().Set("Authorization", "Bearer "+token.String())
	utils.WriteJSON(w, models.SessionResponse{Token: token.String(), EventContext: ec}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sessionFromContext(r.Context()).Close(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) keepAlive(w http.ResponseWriter, r *http.Request) {
	if err := sessionFromContext(r.Context()).KeepAlive(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
