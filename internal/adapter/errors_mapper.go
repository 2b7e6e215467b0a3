// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapExistsResponse turns the final response of a user lookup into an
// existence answer. Any 2xx means the user exists and any other status below
// 500 means it does not. Everything else is not a definitive answer.
func mapExistsResponse(resp *resty.Response) (bool, error) {
	status := resp.StatusCode()

	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return true, nil
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return false, nil
	default:
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(status)
		}
		return false, fmt.Errorf("%w: http %d: %s", ErrIdentityServiceUnavailable, status, body)
	}
}
