// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract walks a corpus provider for a scope and maps each token
// to a flat WordRecord. Serialization and output live elsewhere; a run
// either returns a complete result or an error.
package extract

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/pdiddy/quran-words/internal/corpus"
	"github.com/pdiddy/quran-words/pkg/types"
)

// Pipeline extracts word records from a provider.
type Pipeline struct {
	provider corpus.Provider
	logger   zerolog.Logger
	progress io.Writer
}

// New returns a Pipeline reading from p. Range runs print one progress
// line per chapter to progress; pass io.Discard to silence them.
func New(p corpus.Provider, logger zerolog.Logger, progress io.Writer) *Pipeline {
	if progress == nil {
		progress = io.Discard
	}
	return &Pipeline{provider: p, logger: logger, progress: progress}
}

// Run extracts every word in s. Non-word tokens are dropped unless
// includeNonWord is set.
func (p *Pipeline) Run(ctx context.Context, s types.Scope, includeNonWord bool) (types.ExtractionResult, error) {
	result := types.ExtractionResult{Scope: s}

	if !s.IsRange() {
		v, err := corpus.FindVerse(ctx, p.provider, s.Chapter, s.Verse)
		if err != nil {
			return result, err
		}
		words, err := p.verseRecords(ctx, v, includeNonWord, nil)
		if err != nil {
			return result, err
		}
		result.Words = words
		return result, nil
	}

	if s.MaxChapter < 1 || s.MaxChapter > types.MaxChapter {
		return result, &types.ArgumentError{
			Name:    "surah number",
			Value:   fmt.Sprint(s.MaxChapter),
			Message: fmt.Sprintf("must be between 1 and %d", types.MaxChapter),
		}
	}

	var words []types.WordRecord
	for ch := 1; ch <= s.MaxChapter; ch++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		verses, err := p.provider.ListVerses(ctx, ch)
		if err != nil {
			return result, err
		}
		fmt.Fprintf(p.progress, "Processing Surah %d: %d\n", ch, ch)

		before := len(words)
		for _, v := range verses {
			if words, err = p.verseRecords(ctx, v, includeNonWord, words); err != nil {
				return result, err
			}
		}
		p.logger.Debug().Int("surah", ch).Int("verses", len(verses)).Int("words", len(words)-before).Msg("surah extracted")
	}
	result.Words = words
	return result, nil
}

// verseRecords appends the records of v to dst.
func (p *Pipeline) verseRecords(ctx context.Context, v corpus.Verse, includeNonWord bool, dst []types.WordRecord) ([]types.WordRecord, error) {
	tokens, err := p.provider.ListTokens(ctx, v)
	if err != nil {
		return dst, err
	}
	for _, t := range tokens {
		if !t.IsWord() && !includeNonWord {
			continue
		}
		a, err := p.provider.Analyze(ctx, t)
		if err != nil {
			return dst, fmt.Errorf("analyzing %d:%d:%d: %w", t.Chapter, t.Verse, t.Position, err)
		}
		dst = append(dst, MapRecord(t, a))
	}
	return dst, nil
}

// MapRecord converts a token and its analysis into an output record. The
// record position is the token's native position within the verse.
func MapRecord(t corpus.Token, a corpus.Analysis) types.WordRecord {
	return types.WordRecord{
		Chapter:         t.Chapter,
		Verse:           t.Verse,
		Position:        t.Position,
		SurfaceForm:     a.SurfaceForm,
		Transliteration: a.Transliteration,
		Lemma:           a.Lemma,
		Root:            a.Root,
		PartOfSpeech:    a.PartOfSpeech,
	}
}
