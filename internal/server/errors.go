// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoHTTPHandler       = errors.New("http address is set but no http handler was created")
	errNoGRPCHandler       = errors.New("grpc address is set but no grpc handler was created")
)
