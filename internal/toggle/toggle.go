// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package toggle implements the optimistic flip used by like and wishlist
// controls. The local state flips before the network call resolves so the
// UI never waits on the server; a Pending guard rejects re-entrant
// activation so rapid double toggles issue exactly one call.
package toggle

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"blogctl/cli/internal/notify"
)

// SessionCheck reports whether an authenticated session is present.
type SessionCheck func() bool

// ErrPending is returned when the control is activated while a previous
// call is still outstanding.
var ErrPending = errors.New("toggle: activation ignored while pending")

// ErrUnauthenticated is returned when no session is present.
var ErrUnauthenticated = errors.New("toggle: must log in")

// Control is one like or wishlist toggle. Active mirrors the server-side
// boolean; Count tracks the dependent counter when the control has one.
type Control struct {
	mu      sync.Mutex
	pending bool

	Active bool
	Count  int

	hasSession SessionCheck
	notifier   notify.Notifier
}

// New creates a Control seeded with the last-fetched server state.
func New(active bool, count int, hasSession SessionCheck) *Control {
	return &Control{
		Active:     active,
		Count:      count,
		hasSession: hasSession,
		notifier:   notify.Default(),
	}
}

// WithNotifier overrides the notifier, for tests.
func (c *Control) WithNotifier(n notify.Notifier) *Control {
	c.notifier = n
	return c
}

// Toggle flips the local state optimistically and runs the network call.
// Without a session it notifies and does nothing. While a call is
// outstanding, further activations are ignored. When the call fails the
// optimistic flip and counter adjustment are rolled back and the error is
// logged; the server state was never reached, so local state must not
// drift from it.
func (c *Control) Toggle(ctx context.Context, do func(context.Context) error) error {
	c.mu.Lock()
	if !c.hasSession() {
		c.mu.Unlock()
		c.notifier.Warn("Login Required", "Please log in to do that.")
		return ErrUnauthenticated
	}
	if c.pending {
		c.mu.Unlock()
		return ErrPending
	}
	c.pending = true

	// Optimistic flip before the call resolves.
	c.Active = !c.Active
	if c.Active {
		c.Count++
	} else {
		c.Count--
	}
	c.mu.Unlock()

	err := do(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	if err != nil {
		// Compensating rollback: undo the flip so the local view
		// matches the server again.
		c.Active = !c.Active
		if c.Active {
			c.Count++
		} else {
			c.Count--
		}
		log.Error().Err(err).Msg("toggle failed; optimistic state rolled back")
		return err
	}
	return nil
}

// Pending reports whether a call is outstanding.
func (c *Control) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}
