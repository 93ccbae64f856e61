package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"blogctl/cli/internal/keychain"
)

// memBackend is an in-memory Backend for tests.
type memBackend struct {
	data map[string]string
}

func newMemBackend() *memBackend {
	return &memBackend{data: map[string]string{}}
}

func (m *memBackend) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memBackend) Get(key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", keychain.ErrNotFound
	}
	return v, nil
}

func (m *memBackend) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func testSession() *Session {
	return &Session{
		UserID:   "42",
		Username: "jane",
		Email:    "jane@example.com",
		Name:     "Jane S",
		Token:    "abc",
	}
}

func TestStoreRoundTrip(t *testing.T) {
	mem := newMemBackend()
	store := NewStore(mem)

	require.NoError(t, store.Save(testSession()))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "42", got.UserID)
	require.Equal(t, "jane", got.Username)
	require.Equal(t, "jane@example.com", got.Email)
	require.Equal(t, "Jane S", got.Name)
	require.Equal(t, "abc", got.Token)
}

func TestStoreRejectsTokenlessSession(t *testing.T) {
	store := NewStore(newMemBackend())
	err := store.Save(&Session{Username: "jane"})
	require.True(t, errors.Is(err, ErrNoToken))
}

func TestStoreLoadMissingEntries(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*memBackend)
	}{
		{name: "nothing stored", setup: func(m *memBackend) {}},
		{name: "token only", setup: func(m *memBackend) {
			m.data[keychain.KeySessionToken] = "abc"
		}},
		{name: "profile only", setup: func(m *memBackend) {
			m.data[keychain.KeySessionProfile] = `{"username":"jane"}`
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := newMemBackend()
			tt.setup(mem)
			got, err := NewStore(mem).Load()
			require.NoError(t, err)
			require.Nil(t, got)
		})
	}
}

func TestStoreCorruptProfileSelfHeals(t *testing.T) {
	mem := newMemBackend()
	mem.data[keychain.KeySessionToken] = "abc"
	mem.data[keychain.KeySessionProfile] = "{not json"

	got, err := NewStore(mem).Load()
	require.NoError(t, err)
	require.Nil(t, got)

	// Both entries must be gone afterwards.
	require.Empty(t, mem.data)
}

func TestStoreClear(t *testing.T) {
	mem := newMemBackend()
	store := NewStore(mem)
	require.NoError(t, store.Save(testSession()))

	require.NoError(t, store.Clear())
	require.Empty(t, mem.data)

	got, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStoreToken(t *testing.T) {
	mem := newMemBackend()
	store := NewStore(mem)
	require.Equal(t, "", store.Token())

	require.NoError(t, store.Save(testSession()))
	require.Equal(t, "abc", store.Token())
}
