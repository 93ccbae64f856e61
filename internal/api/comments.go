// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListComments fetches all comments on a blog.
func (c *Client) ListComments(ctx context.Context, blogID int64) ([]Comment, error) {
	var out []Comment
	if err := c.getJSON(ctx, fmt.Sprintf("/blogs/%d/comments/", blogID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComment posts a new comment on a blog.
func (c *Client) CreateComment(ctx context.Context, blogID int64, content string) (*Comment, error) {
	in := map[string]string{"content": content}
	var out Comment
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/blogs/%d/comments/", blogID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateComment edits a comment the current user owns.
func (c *Client) UpdateComment(ctx context.Context, id int64, content string) (*Comment, error) {
	in := map[string]string{"content": content}
	var out Comment
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/comments/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes a comment the current user owns.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/comments/%d/", id))
}
