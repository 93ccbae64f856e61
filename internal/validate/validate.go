// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package validate holds the client-side form constraints. Input that
// fails here blocks submission and never reaches the network.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

// Field constraints mirror what the server enforces, so a valid form is
// never rejected for length alone.
const (
	MinTitleLen    = 5
	MinContentLen  = 50
	MinPasswordLen = 6
)

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps field names to their first validation failure.
type FieldErrors map[string]string

// Err returns a single error summarizing the failures, or nil when empty.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}
	return errors.New(strings.Join(parts, "; "))
}

// BlogForm checks title and content before a post is created or updated.
func BlogForm(title, content string) FieldErrors {
	errs := FieldErrors{}
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		errs["title"] = "Title is required"
	} else if len(title) < MinTitleLen {
		errs["title"] = "Title must be at least 5 characters"
	}

	if content == "" {
		errs["content"] = "Content is required"
	} else if len(content) < MinContentLen {
		errs["content"] = "Content must be at least 50 characters"
	}
	return errs
}

// Login checks credentials before they are sent.
func Login(email, password string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !reEmail.MatchString(email) {
		errs["email"] = "Enter a valid email address"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// Registration checks the signup form.
func Registration(username, email, password string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(username) == "" {
		errs["username"] = "Username is required"
	}
	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !reEmail.MatchString(email) {
		errs["email"] = "Enter a valid email address"
	}
	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < MinPasswordLen {
		errs["password"] = "Password must be at least 6 characters"
	}
	return errs
}

// Comment checks a comment body.
func Comment(content string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(content) == "" {
		errs["content"] = "Comment cannot be empty"
	}
	return errs
}

// Email checks a standalone email value for profile updates.
func Email(email string) error {
	if !reEmail.MatchString(email) {
		return errors.New("enter a valid email address")
	}
	return nil
}
