// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/quran-words/internal/corpus"
	"github.com/pdiddy/quran-words/pkg/types"
)

var _ corpus.Provider = (*Store)(nil)

// ListVerses returns the verses of chapter that have stored words. Verse
// text is the stored surface forms joined by spaces.
func (s *Store) ListVerses(ctx context.Context, chapter int) ([]corpus.Verse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT verse, arabic FROM words WHERE chapter = ? ORDER BY verse, position`, chapter)
	if err != nil {
		return nil, &types.ProviderError{Resource: s.path, Err: fmt.Errorf("querying chapter %d: %w", chapter, err)}
	}
	defer rows.Close()

	var (
		verses []corpus.Verse
		parts  []string
	)
	flush := func() {
		if len(verses) > 0 {
			verses[len(verses)-1].Text = strings.Join(parts, " ")
		}
		parts = parts[:0]
	}
	for rows.Next() {
		var (
			verse  int
			arabic string
		)
		if err := rows.Scan(&verse, &arabic); err != nil {
			return nil, &types.ProviderError{Resource: s.path, Err: fmt.Errorf("scanning verse: %w", err)}
		}
		if len(verses) == 0 || verses[len(verses)-1].Number != verse {
			flush()
			verses = append(verses, corpus.Verse{Chapter: chapter, Number: verse})
		}
		parts = append(parts, arabic)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.ProviderError{Resource: s.path, Err: err}
	}
	flush()

	if len(verses) == 0 {
		if corpus.VerseCount(chapter) > 0 {
			return nil, &types.ProviderError{
				Resource: s.path,
				Err:      fmt.Errorf("surah %d: %w", chapter, corpus.ErrIncomplete),
			}
		}
		return nil, &types.NotFoundError{Chapter: chapter}
	}
	return verses, nil
}

// ListTokens returns one token per stored row. Positions are the stored
// ones, which may skip indexes when non-word tokens were not imported.
func (s *Store) ListTokens(ctx context.Context, v corpus.Verse) ([]corpus.Token, error) {
	words, err := s.VerseWords(ctx, v.Chapter, v.Number)
	if err != nil {
		return nil, err
	}
	tokens := make([]corpus.Token, len(words))
	word := 0
	for i, w := range words {
		t := corpus.Token{
			Chapter:  w.Chapter,
			Verse:    w.Verse,
			Position: w.Position,
			Text:     w.SurfaceForm,
			Kind:     corpus.Classify(w.SurfaceForm),
		}
		if t.IsWord() {
			word++
			t.WordNumber = word
		}
		tokens[i] = t
	}
	return tokens, nil
}

// Analyze returns the stored fields of t.
func (s *Store) Analyze(ctx context.Context, t corpus.Token) (corpus.Analysis, error) {
	var r types.WordRecord
	var lemma, root, partName sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT arabic, transliteration, lemma, root, part_of_speech
		 FROM words WHERE chapter = ? AND verse = ? AND position = ?`,
		t.Chapter, t.Verse, t.Position,
	).Scan(&r.SurfaceForm, &r.Transliteration, &lemma, &root, &partName)
	if errors.Is(err, sql.ErrNoRows) {
		return corpus.Analysis{}, &types.NotFoundError{Chapter: t.Chapter, Verse: t.Verse}
	}
	if err != nil {
		return corpus.Analysis{}, &types.ProviderError{
			Resource: s.path,
			Err:      fmt.Errorf("analyzing %d:%d:%d: %w", t.Chapter, t.Verse, t.Position, err),
		}
	}
	return corpus.Analysis{
		SurfaceForm:     r.SurfaceForm,
		Transliteration: r.Transliteration,
		Lemma:           fromNull(lemma),
		Root:            fromNull(root),
		PartOfSpeech:    fromNull(partName),
	}, nil
}
