// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// ListBlogs fetches one page of the blog feed.
func (c *Client) ListBlogs(ctx context.Context, page, pageSize int) (*BlogList, error) {
	q := queryValues("page", strconv.Itoa(page), "page_size", strconv.Itoa(pageSize))
	var out BlogList
	if err := c.getJSON(ctx, "/blogs/"+q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBlog fetches a single blog by ID.
func (c *Client) GetBlog(ctx context.Context, id int64) (*Blog, error) {
	var out Blog
	if err := c.getJSON(ctx, fmt.Sprintf("/blogs/%d/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlog publishes a new post. Title and content travel as multipart
// fields alongside the optional image file.
func (c *Client) CreateBlog(ctx context.Context, form BlogForm) (*Blog, error) {
	mp := newMultipartForm().
		Field("title", form.Title).
		Field("content", form.Content).
		File("image", form.ImagePath)
	var out Blog
	if err := c.sendMultipart(ctx, http.MethodPost, "/blogs/", mp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBlog replaces an existing post's title, content and image.
func (c *Client) UpdateBlog(ctx context.Context, id int64, form BlogForm) (*Blog, error) {
	mp := newMultipartForm().
		Field("title", form.Title).
		Field("content", form.Content).
		File("image", form.ImagePath)
	var out Blog
	if err := c.sendMultipart(ctx, http.MethodPut, fmt.Sprintf("/blogs/%d/", id), mp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBlog removes a post the current user owns.
func (c *Client) DeleteBlog(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/blogs/%d/", id))
}
