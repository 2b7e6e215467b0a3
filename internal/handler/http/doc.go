// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the identity and team
// services.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, bearer authentication, metrics and response compression are
// handled here before requests are delegated to the service layer. Service
// errors are translated to status codes in exactly one place, see
// writeServiceError.
package http
