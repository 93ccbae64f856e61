// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"net/http"
)

// ToggleLike flips the current user's like on a blog. The flip is
// idempotent on the server; the response carries a confirmation message.
func (c *Client) ToggleLike(ctx context.Context, blogID int64) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/blogs/%d/like/", blogID), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListLikes fetches everyone who liked a blog.
func (c *Client) ListLikes(ctx context.Context, blogID int64) ([]Like, error) {
	var out []Like
	if err := c.getJSON(ctx, fmt.Sprintf("/blogs/%d/likes/", blogID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
