// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

package tui

import (
	"errors"
	"strings"

	"github.com/elntools/rspace-summary/internal/adapter"
)

// humanizeRequestError turns low-level transport and API errors into a
// message a browser user can act on.
func humanizeRequestError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "API key was rejected. Check RSPACE_API_KEY; regenerating a key invalidates the old one"
	case errors.Is(err, adapter.ErrForbidden):
		return "API access is disabled for this account. Ask your RSpace administrator to enable it"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Rate limit reached. Wait a moment before retrying"
	case errors.Is(err, adapter.ErrNotFound):
		return "Not found. Check the notebook and form global IDs"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the RSpace server is unreachable"
	}

	return err.Error()
}
