// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package notify delivers non-blocking user notifications. The production
// implementation renders through pterm; tests swap in a Recorder to assert
// on what was surfaced.
package notify

import (
	"sync"

	"github.com/pterm/pterm"
)

// Notifier surfaces short, non-blocking messages to the user.
type Notifier interface {
	Success(title, message string)
	Warn(title, message string)
	Error(title, message string)
}

var (
	mu      sync.RWMutex
	current Notifier = Terminal{}
)

// Default returns the process-wide notifier.
func Default() Notifier {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetDefault replaces the process-wide notifier and returns the previous
// one so tests can restore it.
func SetDefault(n Notifier) Notifier {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = n
	return prev
}

// Terminal renders notifications with pterm prefix printers.
type Terminal struct{}

func (Terminal) Success(title, message string) {
	pterm.Success.Printfln("%s: %s", title, message)
}

func (Terminal) Warn(title, message string) {
	pterm.Warning.Printfln("%s: %s", title, message)
}

func (Terminal) Error(title, message string) {
	pterm.Error.Printfln("%s: %s", title, message)
}

// Entry is one recorded notification.
type Entry struct {
	Level   string
	Title   string
	Message string
}

// Recorder captures notifications for tests.
type Recorder struct {
	mu      sync.Mutex
	Entries []Entry
}

func (r *Recorder) Success(title, message string) { r.record("success", title, message) }
func (r *Recorder) Warn(title, message string)    { r.record("warn", title, message) }
func (r *Recorder) Error(title, message string)   { r.record("error", title, message) }

func (r *Recorder) record(level, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, Entry{Level: level, Title: title, Message: message})
}

// Count returns how many notifications with the given title were recorded.
func (r *Recorder) Count(title string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.Entries {
		if e.Title == title {
			n++
		}
	}
	return n
}
