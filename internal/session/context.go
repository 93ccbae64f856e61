// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"sync"

	"github.com/rs/zerolog/log"

	"blogctl/cli/internal/logging"
)

// Context is the single authoritative in-memory session for the running
// application. All mutations go through Login, Logout and UpdateProfile;
// the persisted store holds a mirror, not the runtime source of truth.
//
// Mutations are serialized by an internal mutex, so readers always observe
// a fully-merged session, never a partial update.
type Context struct {
	mu          sync.RWMutex
	current     *Session
	store       *Store
	subscribers []func(*Session)
}

// NewContext creates a Context backed by the given store. The initial
// state is unauthenticated until Bootstrap is called.
func NewContext(store *Store) *Context {
	return &Context{store: store}
}

// Bootstrap rehydrates the session from the persisted store. A load
// failure leaves the context unauthenticated rather than propagating.
func (c *Context) Bootstrap() {
	sess, err := c.store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("session bootstrap failed; starting unauthenticated")
		return
	}
	c.mu.Lock()
	c.current = sess
	c.mu.Unlock()
	if sess != nil {
		log.Debug().
			Str("username", sess.Username).
			Str("token", logging.MaskToken(sess.Token)).
			Msg("session restored")
	}
}

// Login replaces the current session unconditionally and persists it.
func (c *Context) Login(sess Session) error {
	c.mu.Lock()
	c.current = &sess
	c.mu.Unlock()

	err := c.store.Save(&sess)
	c.notify()
	return err
}

// Logout clears the current session and the persisted entries.
func (c *Context) Logout() error {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()

	err := c.store.Clear()
	c.notify()
	return err
}

// UpdateProfile merges fields into the current session and persists the
// merged result. It is a no-op when unauthenticated. Fields not supplied
// keep their current values; the token is never touched.
func (c *Context) UpdateProfile(update ProfileUpdate) error {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return nil
	}
	merged := *c.current
	if update.Username != nil {
		merged.Username = *update.Username
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.ProfileImageURL != nil {
		merged.ProfileImageURL = *update.ProfileImageURL
	}
	c.current = &merged
	c.mu.Unlock()

	err := c.store.Save(&merged)
	c.notify()
	return err
}

// Current returns a copy of the current session, or nil when
// unauthenticated.
func (c *Context) Current() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return nil
	}
	cp := *c.current
	return &cp
}

// IsAuthenticated reports whether a session is present.
func (c *Context) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Authenticated()
}

// Token returns the current bearer token, or "" when unauthenticated.
func (c *Context) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return ""
	}
	return c.current.Token
}

// Subscribe registers a callback invoked after every mutation with the
// session at that point (nil when logged out). Callbacks run on the
// mutating goroutine; keep them short.
func (c *Context) Subscribe(fn func(*Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *Context) notify() {
	c.mu.RLock()
	subs := make([]func(*Session), len(c.subscribers))
	copy(subs, c.subscribers)
	cur := c.current
	var cp *Session
	if cur != nil {
		v := *cur
		cp = &v
	}
	c.mu.RUnlock()

	for _, fn := range subs {
		fn(cp)
	}
}

// Expire drops the in-memory session and clears persisted state without a
// remote call. The access layer invokes this when the API answers 401.
func (c *Context) Expire() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
	if err := c.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear persisted session on expiry")
	}
	c.notify()
}
