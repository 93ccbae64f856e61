// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

// User is an account as returned by the auth and profile endpoints. Token
// is only populated on login and registration responses.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	Token        string `json:"token,omitempty"`
}

// Author is the embedded author snippet on blogs and comments.
type Author struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// Blog is an immutable snapshot of a post as last fetched from the server.
// IsLiked and IsWishlisted reflect the current user's relationship to the
// post; they are advisory and refreshed on every toggle and refetch.
type Blog struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt,omitempty"`
	Image         string `json:"image,omitempty"`
	Author        Author `json:"author"`
	LikesCount    int    `json:"likes_count"`
	CommentsCount int    `json:"comments_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	IsLiked       bool   `json:"is_liked,omitempty"`
	IsWishlisted  bool   `json:"is_wishlisted,omitempty"`
}

// BlogList is the paginated envelope the list endpoint returns.
type BlogList struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Blog  `json:"results"`
}

// Comment is a reader comment attached to a blog.
type Comment struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	User      Author `json:"user"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Like records one user liking a blog.
type Like struct {
	ID        int64  `json:"id"`
	User      Author `json:"user"`
	CreatedAt string `json:"created_at"`
}

// WishlistItem is one saved blog on the user's wishlist.
type WishlistItem struct {
	ID        int64  `json:"id"`
	Blog      Blog   `json:"blog"`
	CreatedAt string `json:"created_at"`
}

// BlogForm carries the fields for creating or updating a blog. ImagePath,
// when set, points at a local file uploaded as the multipart image part.
type BlogForm struct {
	Title     string
	Content   string
	ImagePath string
}

// ProfileForm carries optional profile updates. Empty fields are omitted
// from the multipart body so the server keeps the current values.
type ProfileForm struct {
	Name      string
	Email     string
	ImagePath string
}

// RegisterRequest is the body for account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}
