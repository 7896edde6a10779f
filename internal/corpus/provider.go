// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus provides read-only access to the Quranic text and its
// word-level morphology. The Provider interface is the only thing the
// extraction pipeline sees; Corpus is the file-backed implementation.
package corpus

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/quran-words/pkg/types"
)

// TokenKind classifies a token as a word or a non-word mark.
type TokenKind int

const (
	// KindWord is an analysable word.
	KindWord TokenKind = iota
	// KindNonWord is punctuation or a Quranic annotation mark
	// (pause marks, sajdah, rub el hizb).
	KindNonWord
)

func (k TokenKind) String() string {
	if k == KindNonWord {
		return "non-word"
	}
	return "word"
}

// Verse is one ayah of a chapter.
type Verse struct {
	Chapter int
	Number  int
	Text    string
}

// Token is one whitespace-delimited unit of a verse.
type Token struct {
	Chapter int
	Verse   int

	// Position is the 1-based index among all tokens of the verse.
	Position int

	// WordNumber is the 1-based index among word tokens only, matching
	// the word numbering of the morphology corpus. Zero for non-words.
	WordNumber int

	Text string
	Kind TokenKind
}

// IsWord reports whether the token is an analysable word.
func (t Token) IsWord() bool {
	return t.Kind == KindWord
}

// Analysis is the per-token data a provider reports. Lemma, Root, and
// PartOfSpeech are nil when no morphological analysis exists.
type Analysis struct {
	SurfaceForm     string
	Transliteration string
	Lemma           *string
	Root            *string
	PartOfSpeech    *string
}

// Provider is read-only access to a chapter/verse/token hierarchy.
type Provider interface {
	// ListVerses returns the verses of chapter in order. It fails with a
	// types.NotFoundError when the chapter is absent.
	ListVerses(ctx context.Context, chapter int) ([]Verse, error)

	// ListTokens returns the tokens of v ordered by position.
	ListTokens(ctx context.Context, v Verse) ([]Token, error)

	// Analyze returns the surface form, transliteration, and optional
	// morphology of t.
	Analyze(ctx context.Context, t Token) (Analysis, error)
}

// ErrIncomplete reports a verse of the Quran that the loaded corpus does
// not carry. The default build bundles only a sample; load the complete
// text with --corpus or --manifest.
var ErrIncomplete = errors.New("not present in the loaded corpus (load the complete text with --corpus or --manifest)")

// FindVerse looks up a single verse through p. A verse outside the Quran
// is a *types.NotFoundError; a real verse that p lacks is a provider
// failure wrapping ErrIncomplete.
func FindVerse(ctx context.Context, p Provider, chapter, verse int) (Verse, error) {
	verses, err := p.ListVerses(ctx, chapter)
	if err != nil {
		return Verse{}, err
	}
	for _, v := range verses {
		if v.Number == verse {
			return v, nil
		}
	}
	if Exists(chapter, verse) {
		return Verse{}, &types.ProviderError{
			Resource: "corpus",
			Err:      fmt.Errorf("verse %d:%d: %w", chapter, verse, ErrIncomplete),
		}
	}
	return Verse{}, &types.NotFoundError{Chapter: chapter, Verse: verse}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
