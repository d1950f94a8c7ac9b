// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// mapHTTPError returns nil for 2xx responses. Otherwise it decodes the
// fault carried by the body, falling back to a fault chosen by status code
// when the body is not one.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var fault remote.Fault
	if err := json.Unmarshal(resp.Body(), &fault); err == nil && fault.Kind != "" {
		return &fault
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed:
		return remote.APIUsage("%s", body)
	case http.StatusUnauthorized:
		return remote.SessionInvalid("%s", body)
	case http.StatusForbidden:
		return remote.SecurityViolation("%s", body)
	case http.StatusUnprocessableEntity:
		return remote.Validation("%s", body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d: %s", ErrUnavailable, resp.StatusCode(), body)
	default:
		return remote.ServerError("http %d: %s", resp.StatusCode(), body)
	}
}
