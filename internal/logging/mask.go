// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reAuthz    = regexp.MustCompile(`(?i)(authorization:\s*bearer\s+)([A-Za-z0-9._-]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// Bearer tokens, password parameters and Authorization headers are covered.
func Mask(s string) string {
	out := s
	out = reAuthz.ReplaceAllString(out, "$1***")
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	for _, k := range []string{"BLOG_TOKEN", "SESSION_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}

// MaskToken shortens a bearer token to its first four characters for safe
// display, or "***" when it is too short to truncate meaningfully.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "…***"
}
