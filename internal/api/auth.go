// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a session-shaped payload including the
// bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	in := map[string]string{"email": email, "password": password}
	var out User
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account and returns the session-shaped payload.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out User
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
