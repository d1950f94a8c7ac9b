// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/ome/openmicroscopy-sub022/internal/app"
	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/utils"
)

type sessionCtxKey struct{}

// authSession resolves the bearer token of the request to a live backend
// session.
//
// The token must be signed with the configured key and issuer and its token
// id must name a session the backend still holds. On success the session is
// stored in the request context together with the experimenter id under
// [utils.UserIDCtxKey]. Every rejection is answered with 401 and a session
// fault, which clients treat as an expired session.
func (h *Handler) authSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeFault(w, remote.SessionInvalid("%v", ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeFault(w, remote.SessionInvalid("%v", err))
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.TokenSignKey, h.auth.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeFault(w, remote.SessionInvalid(app.MsgInvalidSessionToken))
			return
		}

		sess, ok := h.backend.Session(token.SessionUUID)
		if !ok || sess.UserID() != token.UserID {
			log.Err(ErrUnknownSession).Str("session", token.SessionUUID).Send()
			writeFault(w, remote.SessionInvalid(app.MsgSessionNotActive, token.SessionUUID))
			return
		}

		ctx := utils.WithSession(r.Context(), token.UserID, token.SessionUUID)
		ctx = context.WithValue(ctx, sessionCtxKey{}, sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromContext(ctx context.Context) *backend.Session {
	sess, _ := ctx.Value(sessionCtxKey{}).(*backend.Session)
	return sess
}
