// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the process logger. Diagnostics go to stderr in
// zerolog's console format so stdout stays reserved for JSON output.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.WarnLevel

// ParseLevel maps a configured level name to a zerolog level. An empty
// name selects DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return DefaultLevel, fmt.Errorf("parsing log level %q: %w", name, err)
	}
	return level, nil
}

// New returns a console logger writing to w at the named level.
func New(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(console).Level(lvl).With().
		Timestamp().
		Str("app", "quran-words").
		Logger(), nil
}
