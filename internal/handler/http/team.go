// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/service"
	"github.com/MKhiriev/go-scrims/internal/utils"
	"github.com/MKhiriev/go-scrims/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// createTeam creates a team owned by the authenticated principal.
func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, service.MsgInvalidToken, http.StatusUnauthorized)
		return
	}

	var request models.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, r, ErrInvalidRequestBody)
		return
	}

	team, err := h.services.TeamService.CreateTeam(ctx, request.Name, request.Tag, request.Description, ownerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("team_id", team.ID.String()).Str("owner_id", ownerID.String()).Msg("team created")

	if _, err = utils.WriteJSON(w, models.CreateTeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Tag:         team.Tag,
		Description: team.Description,
		OwnerID:     team.OwnerID,
		CreatedAt:   team.CreatedAt,
	}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing create team response")
	}
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, r, ErrInvalidID)
		return
	}

	team, err := h.services.TeamService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewTeamResponse(team), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing team response")
	}
}

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	filter, err := teamFilterFromQuery(r)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	page, err := h.services.TeamService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewPagedTeamsResponse(page), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing teams response")
	}
}

// teamFilterFromQuery reads page, pageSize, name and tag. Absent numbers stay
// zero so the service applies its defaults.
func teamFilterFromQuery(r *http.Request) (models.TeamFilter, error) {
	query := r.URL.Query()
	filter := models.TeamFilter{
		Name: query.Get("name"),
		Tag:  query.Get("tag"),
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return models.TeamFilter{}, ErrInvalidPage
		}
		filter.Page = page
	}

	if raw := query.Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return models.TeamFilter{}, ErrInvalidPageSize
		}
		filter.PageSize = pageSize
	}

	return filter, nil
}
