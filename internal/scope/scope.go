// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scope turns raw command-line arguments into a validated Scope.
// Chapter bounds are checked here; verse existence is left to the corpus
// provider, which reports NotFound.
package scope

import (
	"strconv"
	"strings"

	"github.com/pdiddy/quran-words/pkg/types"
)

// ParseRange validates the single maxChapter argument of range extraction.
func ParseRange(args []string) (types.Scope, error) {
	if len(args) != 1 {
		return types.Scope{}, &types.ArgumentError{
			Message: "expected exactly one argument: <max_surah_number>",
		}
	}
	n, err := parseChapter(args[0])
	if err != nil {
		return types.Scope{}, err
	}
	return types.RangeScope(n), nil
}

// ParseVerse validates the chapter and verse arguments of single-verse
// extraction.
func ParseVerse(args []string) (types.Scope, error) {
	if len(args) != 2 {
		return types.Scope{}, &types.ArgumentError{
			Message: "expected exactly two arguments: <surah_number> <verse_number>",
		}
	}
	ch, err := parseChapter(args[0])
	if err != nil {
		return types.Scope{}, err
	}
	v, err := parseNumber("verse", args[1])
	if err != nil {
		return types.Scope{}, err
	}
	if v < 1 {
		return types.Scope{}, &types.ArgumentError{Name: "verse", Value: args[1], Message: "must be at least 1"}
	}
	return types.VerseScope(ch, v), nil
}

func parseChapter(raw string) (int, error) {
	n, err := parseNumber("surah number", raw)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > types.MaxChapter {
		return 0, &types.ArgumentError{
			Name:    "surah number",
			Value:   raw,
			Message: "must be between 1 and " + strconv.Itoa(types.MaxChapter),
		}
	}
	return n, nil
}

func parseNumber(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &types.ArgumentError{Name: name, Value: raw, Message: "not a number"}
	}
	return n, nil
}
