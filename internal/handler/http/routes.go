// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router. User routes are mounted when the identity service
// is present, team routes when the team service is present.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Handle("/metrics", promhttp.Handler())

	if h.services.IdentityService != nil {
		router.Group(func(r chi.Router) {
			r.Post("/api/user/register", h.register)
			r.Post("/api/user/login", h.login)
			r.Get("/api/user", h.listUsers)
			r.Get("/api/user/search", h.searchUsers)
			r.Get("/api/user/{id}", h.getUser)
		})

		router.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/api/user/me", h.me)
			r.Put("/api/user/me/password", h.updatePassword)
		})
	}

	if h.services.TeamService != nil {
		router.Group(func(r chi.Router) {
			r.Get("/api/team", h.listTeams)
			r.Get("/api/team/{id}", h.getTeam)
		})

		router.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/api/team/create", h.createTeam)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
