// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/service"
	"github.com/MKhiriev/go-scrims/internal/utils"
)

// statusFromKind maps a service error kind to its HTTP status.
func statusFromKind(kind service.Kind) int {
	switch kind {
	case service.KindInvalidArgument:
		return http.StatusBadRequest
	case service.KindAlreadyExists:
		return http.StatusConflict
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindInvalidCredentials:
		return http.StatusUnauthorized
	case service.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err as a JSON error body. Internal errors are
// logged with their cause and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	status := statusFromKind(kind)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", kind.String()).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", kind.String()).Msg("request rejected")
	}

	utils.WriteError(w, service.MessageOf(err), status)
}

// writeBadRequest answers 400 with a transport-level decoding error.
func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Msg("bad request")
	utils.WriteError(w, err.Error(), http.StatusBadRequest)
}
