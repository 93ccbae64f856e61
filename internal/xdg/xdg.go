// Package xdg resolves the XDG Base Directory paths blogctl keeps its
// files in: configuration under XDG_CONFIG_HOME and the keyring file
// fallback under XDG_STATE_HOME, with the conventional ~/.config and
// ~/.local/state fallbacks when the variables are unset.
package xdg

import (
	"os"
	"path/filepath"
)

const appDir = "blogctl"

// ConfigDir returns the blogctl config directory, creating it with
// private permissions when missing.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the blogctl state directory, creating it with private
// permissions when missing. The keychain file backend lives here.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// ensure resolves env, or fallback under the home directory, appends the
// app directory and creates it 0700. Config and state can hold the
// session file backend, so group/other access is never granted.
func ensure(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
