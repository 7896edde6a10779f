// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   error
		msg  string
	}{
		{
			name: "argument",
			err:  &ArgumentError{Name: "surah number", Value: "abc", Message: "not a number"},
			is:   ErrInvalidArgument,
			msg:  `invalid surah number "abc": not a number`,
		},
		{
			name: "argument count",
			err:  &ArgumentError{Message: "expected <chapter> <verse>"},
			is:   ErrInvalidArgument,
			msg:  "invalid arguments: expected <chapter> <verse>",
		},
		{
			name: "verse",
			err:  &NotFoundError{Chapter: 1, Verse: 8},
			is:   ErrNotFound,
			msg:  "verse not found: 1:8",
		},
		{
			name: "chapter",
			err:  &NotFoundError{Chapter: 2},
			is:   ErrNotFound,
			msg:  "chapter not found: 2",
		},
		{
			name: "provider",
			err:  &ProviderError{Resource: "quran.xml", Err: os.ErrNotExist},
			is:   ErrProviderFailure,
			msg:  "corpus quran.xml: file does not exist",
		},
		{
			name: "io",
			err:  &IOError{Path: "quran_words.json", Err: os.ErrPermission},
			is:   ErrIOFailure,
			msg:  "writing quran_words.json: permission denied",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.msg, tt.err.Error())
			wrapped := fmt.Errorf("extracting: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.is))
		})
	}
}

func TestProviderErrorKeepsCause(t *testing.T) {
	err := fmt.Errorf("loading: %w", &ProviderError{Resource: "x", Err: os.ErrNotExist})
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, ErrIOFailure))

	var pe *ProviderError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, "x", pe.Resource)
}

func TestScope(t *testing.T) {
	v := VerseScope(2, 255)
	assert.False(t, v.IsRange())
	assert.Equal(t, "2:255", v.String())

	r := RangeScope(114)
	assert.True(t, r.IsRange())
	assert.Equal(t, "1..114", r.String())
}

func TestVerseCount(t *testing.T) {
	r := ExtractionResult{Words: []WordRecord{
		{Chapter: 1, Verse: 1, Position: 1},
		{Chapter: 1, Verse: 1, Position: 2},
		{Chapter: 1, Verse: 2, Position: 1},
		{Chapter: 2, Verse: 1, Position: 1},
	}}
	assert.Equal(t, 3, r.VerseCount())
	assert.Zero(t, ExtractionResult{}.VerseCount())
}

func TestDefaultExtractionConfig(t *testing.T) {
	flat := DefaultExtractionConfig(ModeFlat)
	assert.Equal(t, TargetFile, flat.Target)
	assert.Equal(t, DefaultRangeOutput, flat.OutputPath)
	assert.True(t, flat.IncludeNonWordTokens)

	nested := DefaultExtractionConfig(ModeNested)
	assert.Equal(t, TargetStdout, nested.Target)
	assert.False(t, nested.IncludeNonWordTokens)

	compact := DefaultExtractionConfig(ModeCompact)
	assert.Equal(t, TargetStdout, compact.Target)
	assert.True(t, compact.IncludeNonWordTokens)
}

func TestCorpusConfigIsEmbedded(t *testing.T) {
	assert.True(t, CorpusConfig{}.IsEmbedded())
	assert.False(t, CorpusConfig{MorphologyPath: "m.txt"}.IsEmbedded())
}
