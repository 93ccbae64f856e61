// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is the typed failure every non-2xx response propagates as. It
// carries the HTTP status and the server-supplied message when one was
// present in the body. Resource clients add no further wrapping.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// IsStatus reports whether err is an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// extractMessage pulls a structured error message out of a response body.
// The backend answers with one of "message", "error" or "detail" depending
// on the endpoint; plain-text bodies are used as-is when short.
func extractMessage(body []byte) string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if v, ok := raw[key].(string); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}
	s := strings.TrimSpace(string(body))
	if s != "" && len(s) <= 200 && !strings.HasPrefix(s, "<") {
		return s
	}
	return ""
}
