// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// This file implements the persisted session store over secure key-value
// storage. The profile record and the bearer token live under two separate
// keys; they are written and cleared together, and a partial or corrupt
// state is discarded as "no session".
package session

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"blogctl/cli/internal/keychain"
)

// Backend abstracts the secure key-value storage the store writes to.
// *keychain.Manager satisfies it; tests supply an in-memory map.
type Backend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// ErrNoToken is returned by Save for sessions without a bearer token.
var ErrNoToken = errors.New("session: refusing to persist a session without a token")

// Store persists sessions in secure storage under two fixed keys.
type Store struct {
	backend Backend
}

// NewStore creates a Store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// DefaultStore creates a Store over the OS keychain.
func DefaultStore() (*Store, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return nil, err
	}
	return NewStore(km), nil
}

// Load reads the persisted session. It returns nil when either entry is
// missing. A profile entry that fails to parse clears both entries before
// returning nil, so corrupt state heals itself on the next start.
func (s *Store) Load() (*Session, error) {
	token, err := s.backend.Get(keychain.KeySessionToken)
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	raw, err := s.backend.Get(keychain.KeySessionProfile)
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var rec profileRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		log.Warn().Err(err).Msg("discarding corrupt session profile")
		if cerr := s.Clear(); cerr != nil {
			return nil, cerr
		}
		return nil, nil
	}

	return &Session{
		UserID:          rec.UserID,
		Username:        rec.Username,
		Email:           rec.Email,
		Name:            rec.Name,
		ProfileImageURL: rec.ProfileImageURL,
		Token:           token,
	}, nil
}

// Save writes the profile record and token as two entries. Sessions
// without a token are rejected; the invariant is that a persisted session
// is always authenticated.
func (s *Store) Save(sess *Session) error {
	if !sess.Authenticated() {
		return ErrNoToken
	}

	rec := profileRecord{
		UserID:          sess.UserID,
		Username:        sess.Username,
		Email:           sess.Email,
		Name:            sess.Name,
		ProfileImageURL: sess.ProfileImageURL,
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if err := s.backend.Set(keychain.KeySessionProfile, string(b)); err != nil {
		return err
	}
	return s.backend.Set(keychain.KeySessionToken, sess.Token)
}

// Clear removes both entries unconditionally.
func (s *Store) Clear() error {
	perr := s.backend.Delete(keychain.KeySessionProfile)
	terr := s.backend.Delete(keychain.KeySessionToken)
	if perr != nil {
		return perr
	}
	return terr
}

// Token reads just the persisted bearer token. It returns "" when no
// session is stored. The access layer uses this as its synchronous token
// source before each request.
func (s *Store) Token() string {
	token, err := s.backend.Get(keychain.KeySessionToken)
	if err != nil {
		return ""
	}
	return token
}
