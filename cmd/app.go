// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"blogctl/cli/internal/api"
	"blogctl/cli/internal/config"
	"blogctl/cli/internal/logging"
	"blogctl/cli/internal/session"
)

// app wires the session store, session context and API client a command
// needs. Each command builds one at the start of its RunE.
type app struct {
	cfg   config.Config
	store *session.Store
	sess  *session.Context
	api   *api.Client
}

// newApp loads configuration, restores the persisted session and builds
// the API client with its expiry handler.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.LogLevel)

	store, err := session.DefaultStore()
	if err != nil {
		return nil, err
	}
	sess := session.NewContext(store)
	sess.Bootstrap()

	// On 401 the access layer clears the session; the CLI's login surface
	// is the login command, so point the user there.
	client := api.New(cfg.APIBaseURL, store, func() {
		sess.Expire()
		fmt.Println("   Run 'blogctl login' to sign in again.")
	})

	return &app{cfg: cfg, store: store, sess: sess, api: client}, nil
}

// requireLogin reports whether a session is present, printing guidance
// when it is not.
func (a *app) requireLogin() bool {
	if a.sess.IsAuthenticated() {
		return true
	}
	fmt.Println("🔒 You're not logged in yet!")
	fmt.Println("   Run 'blogctl login' to get started.")
	return false
}
