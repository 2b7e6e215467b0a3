// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/service"
	"github.com/MKhiriev/go-scrims/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, validates it with
// [service.TokenService.Parse] and stores the principal (user ID and the raw
// token) in the request context via [utils.WithPrincipal]. The raw token is
// kept so that calls to other services can be made on the caller's behalf.
//
// Requests with a missing or malformed header, or with a token that fails
// signature, issuer or expiry checks, are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.Parse(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			utils.WriteError(w, service.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithPrincipal(ctx, token.UserID, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
