// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging. It configures the
// process-wide zerolog logger and includes helpers for masking sensitive
// values such as bearer tokens and passwords before they reach a log line.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Levels below warn are
// silenced by default so normal CLI output stays clean; BLOG_LOG_LEVEL or
// the config file can raise verbosity for debugging.
func Setup(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
