// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// Profile fetches the current user's profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := c.getJSON(ctx, "/user/me/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile submits profile changes. Only the supplied fields are
// sent; the image travels as a multipart file part.
func (c *Client) UpdateProfile(ctx context.Context, form ProfileForm) (*User, error) {
	mp := newMultipartForm().
		Field("name", form.Name).
		Field("email", form.Email).
		File("profile_image", form.ImagePath)
	var out User
	if err := c.sendMultipart(ctx, http.MethodPut, "/user/me/", mp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
