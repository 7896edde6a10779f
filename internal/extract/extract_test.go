// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quran-words/internal/corpus"
	"github.com/pdiddy/quran-words/pkg/types"
)

// --- test helpers ---

// fakeProvider serves all 114 chapters. Chapter n has n%3+1 verses and
// verse v of chapter n has (n+v)%4+1 words; every fifth chapter also ends
// each verse with a pause mark.
type fakeProvider struct {
	analyzeErr error
	missing    int // chapter reported as not found
}

func (f *fakeProvider) ListVerses(_ context.Context, chapter int) ([]corpus.Verse, error) {
	if chapter < 1 || chapter > types.MaxChapter || chapter == f.missing {
		return nil, &types.NotFoundError{Chapter: chapter}
	}
	var out []corpus.Verse
	for v := 1; v <= chapter%3+1; v++ {
		out = append(out, corpus.Verse{Chapter: chapter, Number: v})
	}
	return out, nil
}

func (f *fakeProvider) ListTokens(_ context.Context, v corpus.Verse) ([]corpus.Token, error) {
	var words []string
	for i := 0; i < (v.Chapter+v.Number)%4+1; i++ {
		words = append(words, fmt.Sprintf("w%d", i+1))
	}
	if v.Chapter%5 == 0 {
		words = append(words, "ۖ")
	}
	return corpus.Tokenize(v.Chapter, v.Number, strings.Join(words, " ")), nil
}

func (f *fakeProvider) Analyze(_ context.Context, t corpus.Token) (corpus.Analysis, error) {
	if f.analyzeErr != nil {
		return corpus.Analysis{}, f.analyzeErr
	}
	a := corpus.Analysis{SurfaceForm: t.Text, Transliteration: "tr-" + t.Text}
	if t.IsWord() && t.WordNumber%2 == 1 {
		lemma := "lemma-" + t.Text
		a.Lemma = &lemma
	}
	return a, nil
}

func expectedTokens(maxChapter int, includeNonWord bool) int {
	total := 0
	for ch := 1; ch <= maxChapter; ch++ {
		for v := 1; v <= ch%3+1; v++ {
			total += (ch+v)%4 + 1
			if includeNonWord && ch%5 == 0 {
				total++
			}
		}
	}
	return total
}

func assertPositionsContiguous(t *testing.T, words []types.WordRecord) {
	t.Helper()
	prevCh, prevV, want := 0, 0, 0
	for _, w := range words {
		if w.Chapter != prevCh || w.Verse != prevV {
			prevCh, prevV, want = w.Chapter, w.Verse, 1
		}
		require.Equal(t, want, w.Position, "position in %d:%d", w.Chapter, w.Verse)
		want++
	}
}

// --- tests ---

func TestRunRangeCountsEveryToken(t *testing.T) {
	for _, n := range []int{1, 2, 5, 57, 113, 114} {
		t.Run(fmt.Sprintf("chapters 1..%d", n), func(t *testing.T) {
			p := New(&fakeProvider{}, zerolog.Nop(), io.Discard)
			result, err := p.Run(context.Background(), types.RangeScope(n), true)
			require.NoError(t, err)

			assert.Len(t, result.Words, expectedTokens(n, true))
			assert.Equal(t, n, result.Words[len(result.Words)-1].Chapter)
			assertPositionsContiguous(t, result.Words)
		})
	}
}

func TestRunRangeProgress(t *testing.T) {
	var progress bytes.Buffer
	p := New(&fakeProvider{}, zerolog.Nop(), &progress)

	_, err := p.Run(context.Background(), types.RangeScope(3), true)
	require.NoError(t, err)
	assert.Equal(t, "Processing Surah 1: 1\nProcessing Surah 2: 2\nProcessing Surah 3: 3\n", progress.String())
}

func TestRunRangeRejectsOutOfBounds(t *testing.T) {
	p := New(&fakeProvider{}, zerolog.Nop(), nil)
	_, err := p.Run(context.Background(), types.RangeScope(115), true)
	assert.True(t, errors.Is(err, types.ErrInvalidArgument), "got %v", err)
}

func TestRunRangeMissingChapter(t *testing.T) {
	p := New(&fakeProvider{missing: 4}, zerolog.Nop(), io.Discard)
	_, err := p.Run(context.Background(), types.RangeScope(10), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestRunRangeHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New(&fakeProvider{}, zerolog.Nop(), io.Discard)
	_, err := p.Run(ctx, types.RangeScope(114), true)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunVerse(t *testing.T) {
	tests := []struct {
		name           string
		chapter, verse int
		includeNonWord bool
		wantPositions  []int
	}{
		{name: "words only", chapter: 5, verse: 1, wantPositions: []int{1, 2, 3}},
		{name: "with pause mark", chapter: 5, verse: 1, includeNonWord: true, wantPositions: []int{1, 2, 3, 4}},
		{name: "chapter without marks", chapter: 1, verse: 2, wantPositions: []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(&fakeProvider{}, zerolog.Nop(), nil)
			result, err := p.Run(context.Background(), types.VerseScope(tt.chapter, tt.verse), tt.includeNonWord)
			require.NoError(t, err)

			var got []int
			for _, w := range result.Words {
				got = append(got, w.Position)
				assert.Equal(t, tt.chapter, w.Chapter)
				assert.Equal(t, tt.verse, w.Verse)
			}
			assert.Equal(t, tt.wantPositions, got)
			assert.Equal(t, types.VerseScope(tt.chapter, tt.verse), result.Scope)
		})
	}
}

func TestRunVerseNotFound(t *testing.T) {
	p := New(&fakeProvider{}, zerolog.Nop(), nil)
	_, err := p.Run(context.Background(), types.VerseScope(1, 40), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestRunPropagatesProviderFailure(t *testing.T) {
	cause := &types.ProviderError{Resource: "fake", Err: errors.New("corrupt")}
	p := New(&fakeProvider{analyzeErr: cause}, zerolog.Nop(), nil)
	_, err := p.Run(context.Background(), types.VerseScope(1, 1), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrProviderFailure))
}

func TestMapRecord(t *testing.T) {
	lemma := "رَبّ"
	rec := MapRecord(
		corpus.Token{Chapter: 1, Verse: 2, Position: 3, WordNumber: 3, Text: "رَبِّ"},
		corpus.Analysis{SurfaceForm: "رَبِّ", Transliteration: "rab~i", Lemma: &lemma},
	)
	assert.Equal(t, 1, rec.Chapter)
	assert.Equal(t, 2, rec.Verse)
	assert.Equal(t, 3, rec.Position)
	assert.Equal(t, "rab~i", rec.Transliteration)
	assert.Equal(t, &lemma, rec.Lemma)
	assert.Nil(t, rec.Root)
	assert.Nil(t, rec.PartOfSpeech)
}

func TestRunAgainstEmbeddedCorpus(t *testing.T) {
	c, err := corpus.Load(types.CorpusConfig{}, zerolog.Nop())
	require.NoError(t, err)
	p := New(c, zerolog.Nop(), io.Discard)
	ctx := context.Background()

	t.Run("verse 1:1 has four words", func(t *testing.T) {
		result, err := p.Run(ctx, types.VerseScope(1, 1), false)
		require.NoError(t, err)
		require.Len(t, result.Words, 4)
		for i, w := range result.Words {
			assert.Equal(t, i+1, w.Position)
			assert.NotNil(t, w.Lemma)
		}
	})

	t.Run("range 1 covers chapter 1 only", func(t *testing.T) {
		result, err := p.Run(ctx, types.RangeScope(1), true)
		require.NoError(t, err)
		assert.Len(t, result.Words, 29)
		assert.Equal(t, 7, result.VerseCount())
		assertPositionsContiguous(t, result.Words)
	})

	if c.Stats().Complete {
		return
	}
	t.Run("surah missing from a partial corpus is a provider failure", func(t *testing.T) {
		_, err := p.Run(ctx, types.RangeScope(2), true)
		assert.True(t, errors.Is(err, corpus.ErrIncomplete))
		assert.True(t, errors.Is(err, types.ErrProviderFailure))
	})
}
