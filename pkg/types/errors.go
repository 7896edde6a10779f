// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes a run can end with. Typed errors
// below unwrap to one of these so callers can test with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrProviderFailure = errors.New("provider failure")
	ErrIOFailure       = errors.New("io failure")
)

// ArgumentError reports a missing, non-numeric, or out-of-range argument.
type ArgumentError struct {
	Name    string // argument name, e.g. "chapter"
	Value   string // raw value as given
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Message)
	}
	if e.Name != "" {
		return fmt.Sprintf("invalid %s: %s", e.Name, e.Message)
	}
	return "invalid arguments: " + e.Message
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// NotFoundError reports a chapter or verse absent from the corpus.
type NotFoundError struct {
	Chapter int
	Verse   int // zero when the chapter itself is missing
}

func (e *NotFoundError) Error() string {
	if e.Verse > 0 {
		return fmt.Sprintf("verse not found: %d:%d", e.Chapter, e.Verse)
	}
	return fmt.Sprintf("chapter not found: %d", e.Chapter)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ProviderError reports a corpus resource that is missing, malformed, or
// fails verification.
type ProviderError struct {
	Resource string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("corpus %s: %v", e.Resource, e.Err)
}

// Is matches ErrProviderFailure while Unwrap exposes the cause.
func (e *ProviderError) Is(target error) bool { return target == ErrProviderFailure }

func (e *ProviderError) Unwrap() error { return e.Err }

// IOError reports a failure writing output.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Is(target error) bool { return target == ErrIOFailure }

func (e *IOError) Unwrap() error { return e.Err }
