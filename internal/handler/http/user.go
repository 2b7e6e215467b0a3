// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/service"
	"github.com/MKhiriev/go-scrims/internal/utils"
	"github.com/MKhiriev/go-scrims/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, r, ErrInvalidRequestBody)
		return
	}

	user, err := h.services.IdentityService.CreateUser(ctx, request.Username, request.Email, request.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user registered")

	if _, err = utils.WriteJSON(w, models.RegisterResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing register response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, r, ErrInvalidRequestBody)
		return
	}

	result, err := h.services.IdentityService.Login(ctx, request.Email, request.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.IdentityService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewUserResponses(users), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing users response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, r, ErrInvalidID)
		return
	}

	h.writeUser(w, r, id)
}

// me returns the authenticated principal.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, service.MsgInvalidToken, http.StatusUnauthorized)
		return
	}

	h.writeUser(w, r, id)
}

func (h *Handler) writeUser(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	user, err := h.services.IdentityService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing user response")
	}
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, service.MsgInvalidToken, http.StatusUnauthorized)
		return
	}

	var request models.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, r, ErrInvalidRequestBody)
		return
	}

	updated, err := h.services.IdentityService.UpdatePassword(ctx, id, request.CurrentPassword, request.NewPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("user_id", id.String()).Msg("password updated")

	if _, err = utils.WriteJSON(w, models.UpdatePasswordResponse{
		Success: updated,
		Message: service.MsgPasswordUpdated,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing update password response")
	}
}

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.IdentityService.SearchByUsername(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewUserResponses(users), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing users response")
	}
}
