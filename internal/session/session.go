// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the client-side authentication state: the Session
// type, its persistence in secure storage, and the in-memory Context that
// every command consults before talking to the API.
package session

// Session is the client's in-memory representation of the currently
// authenticated user and their bearer token.
type Session struct {
	UserID          string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	ProfileImageURL string `json:"profile_image,omitempty"`

	// Token is the opaque bearer credential. A session without a token is
	// never considered authenticated and is never persisted.
	Token string `json:"-"`
}

// Authenticated reports whether the session carries a bearer token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// profileRecord is the durable mirror of the identity fields. The token is
// stored separately as a raw string under its own key.
type profileRecord struct {
	UserID          string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	ProfileImageURL string `json:"profile_image,omitempty"`
}

// ProfileUpdate carries optional replacement values for profile fields.
// Nil fields leave the current value untouched.
type ProfileUpdate struct {
	Username        *string
	Email           *string
	Name            *string
	ProfileImageURL *string
}
