// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !fullcorpus

package corpus

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quran-words/internal/translit"
	"github.com/pdiddy/quran-words/pkg/types"
)

func TestLoadEmbeddedSample(t *testing.T) {
	c, err := Load(types.CorpusConfig{}, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	st := c.Stats()
	assert.Equal(t, []int{1, 112, 114}, st.ChapterNumbers)
	assert.Equal(t, 17, st.Verses)
	assert.Equal(t, 64, st.Tokens)
	assert.Equal(t, 29, st.AnalysedWords, "only chapter 1 carries morphology")
	assert.Len(t, st.TextDigest, 64)

	v, err := FindVerse(ctx, c, 1, 1)
	require.NoError(t, err)
	tokens, err := c.ListTokens(ctx, v)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	a, err := c.Analyze(ctx, tokens[1])
	require.NoError(t, err)
	assert.Equal(t, "{ll~ahi", a.Transliteration)
	require.NotNil(t, a.Lemma)
	assert.Equal(t, translit.ToArabic("{ll~ah"), *a.Lemma)
	assert.Equal(t, translit.ToArabic("Alh"), *a.Root)
	assert.Equal(t, "proper noun", *a.PartOfSpeech)

	v, err = FindVerse(ctx, c, 114, 1)
	require.NoError(t, err)
	tokens, err = c.ListTokens(ctx, v)
	require.NoError(t, err)
	a, err = c.Analyze(ctx, tokens[0])
	require.NoError(t, err)
	assert.Nil(t, a.Lemma, "chapter 114 has no morphology in the sample")

	_, err = FindVerse(ctx, c, 2, 255)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.False(t, st.Complete)
}
