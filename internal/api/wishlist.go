// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"net/http"
)

// ToggleWishlist flips whether a blog is on the current user's wishlist.
func (c *Client) ToggleWishlist(ctx context.Context, blogID int64) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/blogs/%d/wishlist/", blogID), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Wishlist fetches the current user's saved blogs.
func (c *Client) Wishlist(ctx context.Context) ([]WishlistItem, error) {
	var out []WishlistItem
	if err := c.getJSON(ctx, "/wishlist/", &out); err != nil {
		return nil, err
	}
	return out, nil
}
