// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/pdiddy/quran-words/internal/translit"
	"github.com/pdiddy/quran-words/pkg/types"
)

// Corpus is an in-memory Provider built from a Tanzil XML text and an
// optional morphology file. It is immutable after Load.
type Corpus struct {
	chapters map[int]*chapter
	morph    map[wordKey]morph

	source      string
	textDigest  string
	morphDigest string
}

// Load reads the corpus named by cfg. A manifest takes precedence over
// direct paths; with nothing configured the bundled corpus is used.
// Every failure is a *types.ProviderError.
func Load(cfg types.CorpusConfig, logger zerolog.Logger) (*Corpus, error) {
	var (
		text, morphRes *resource
		err            error
	)

	switch {
	case cfg.ManifestPath != "":
		m, err := ReadManifest(cfg.ManifestPath)
		if err != nil {
			return nil, &types.ProviderError{Resource: cfg.ManifestPath, Err: err}
		}
		if text, err = readFile(m.Text); err != nil {
			return nil, &types.ProviderError{Resource: m.Text, Err: err}
		}
		if err := verifyDigest(text, m.BLAKE3.Text); err != nil {
			return nil, &types.ProviderError{Resource: m.Text, Err: err}
		}
		if m.Morphology != "" {
			if morphRes, err = readFile(m.Morphology); err != nil {
				return nil, &types.ProviderError{Resource: m.Morphology, Err: err}
			}
			if err := verifyDigest(morphRes, m.BLAKE3.Morphology); err != nil {
				return nil, &types.ProviderError{Resource: m.Morphology, Err: err}
			}
		}
		logger.Debug().Str("manifest", cfg.ManifestPath).Str("name", m.Name).Msg("corpus manifest verified")

	case cfg.IsEmbedded():
		if text, err = readEmbedded(bundledText); err != nil {
			return nil, &types.ProviderError{Resource: bundledText, Err: err}
		}
		if morphRes, err = readEmbedded(bundledMorphology); err != nil {
			return nil, &types.ProviderError{Resource: bundledMorphology, Err: err}
		}

	default:
		if cfg.TextPath == "" {
			if text, err = readEmbedded(bundledText); err != nil {
				return nil, &types.ProviderError{Resource: bundledText, Err: err}
			}
		} else if text, err = readFile(cfg.TextPath); err != nil {
			return nil, &types.ProviderError{Resource: cfg.TextPath, Err: err}
		}
		if cfg.MorphologyPath != "" {
			if morphRes, err = readFile(cfg.MorphologyPath); err != nil {
				return nil, &types.ProviderError{Resource: cfg.MorphologyPath, Err: err}
			}
		}
	}

	c, err := build(text, morphRes)
	if err != nil {
		return nil, err
	}

	st := c.Stats()
	logger.Debug().
		Str("text", text.name).
		Int("chapters", st.Chapters).
		Int("verses", st.Verses).
		Int("tokens", st.Tokens).
		Int("analysed", st.AnalysedWords).
		Msg("corpus loaded")
	if !st.Complete {
		logger.Info().
			Ints("surahs", st.ChapterNumbers).
			Msg("corpus is partial; other verses fail as incomplete")
	}
	return c, nil
}

// Parse builds a Corpus from in-memory Tanzil XML and morphology
// content. morphology may be nil.
func Parse(text, morphology []byte) (*Corpus, error) {
	t, err := decode("text", text)
	if err != nil {
		return nil, &types.ProviderError{Resource: "text", Err: err}
	}
	var m *resource
	if morphology != nil {
		if m, err = decode("morphology", morphology); err != nil {
			return nil, &types.ProviderError{Resource: "morphology", Err: err}
		}
	}
	return build(t, m)
}

func build(text, morphRes *resource) (*Corpus, error) {
	chapters, err := parseTanzil(text.data)
	if err != nil {
		return nil, &types.ProviderError{Resource: text.name, Err: err}
	}
	c := &Corpus{
		chapters:   chapters,
		morph:      map[wordKey]morph{},
		source:     text.name,
		textDigest: text.digest,
	}
	if morphRes != nil {
		if c.morph, err = parseMorphology(morphRes.data); err != nil {
			return nil, &types.ProviderError{Resource: morphRes.name, Err: err}
		}
		c.morphDigest = morphRes.digest
	}
	return c, nil
}

// ListVerses implements Provider.
func (c *Corpus) ListVerses(ctx context.Context, chapterNum int) ([]Verse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ch, ok := c.chapters[chapterNum]
	if !ok {
		if VerseCount(chapterNum) > 0 {
			return nil, &types.ProviderError{
				Resource: c.source,
				Err:      fmt.Errorf("surah %d: %w", chapterNum, ErrIncomplete),
			}
		}
		return nil, &types.NotFoundError{Chapter: chapterNum}
	}
	out := make([]Verse, len(ch.verses))
	copy(out, ch.verses)
	return out, nil
}

// ListTokens implements Provider.
func (c *Corpus) ListTokens(ctx context.Context, v Verse) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ch, ok := c.chapters[v.Chapter]
	if !ok {
		return nil, &types.NotFoundError{Chapter: v.Chapter}
	}
	tokens, ok := ch.tokens[v.Number]
	if !ok {
		return nil, &types.NotFoundError{Chapter: v.Chapter, Verse: v.Number}
	}
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out, nil
}

// Analyze implements Provider. Non-word tokens and words missing from the
// morphology file carry no lemma, root, or part of speech.
func (c *Corpus) Analyze(ctx context.Context, t Token) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	a := Analysis{
		SurfaceForm:     t.Text,
		Transliteration: translit.ToBuckwalter(t.Text),
	}
	if !t.IsWord() {
		return a, nil
	}
	if m, ok := c.morph[wordKey{chapter: t.Chapter, verse: t.Verse, word: t.WordNumber}]; ok {
		a.Lemma = optional(m.lemma)
		a.Root = optional(m.root)
		a.PartOfSpeech = optional(m.pos)
	}
	return a, nil
}

// ChapterName returns the name attribute of a chapter, if present.
func (c *Corpus) ChapterName(n int) string {
	if ch, ok := c.chapters[n]; ok {
		return ch.name
	}
	return ""
}

// Stats summarizes the loaded corpus.
type Stats struct {
	Chapters         int
	Verses           int
	Tokens           int
	Words            int
	AnalysedWords    int
	Complete         bool // every verse of all 114 surahs is present
	ChapterNumbers   []int
	TextDigest       string
	MorphologyDigest string
}

// Stats counts chapters, verses, and tokens.
func (c *Corpus) Stats() Stats {
	s := Stats{
		Chapters:         len(c.chapters),
		TextDigest:       c.textDigest,
		MorphologyDigest: c.morphDigest,
	}
	for n, ch := range c.chapters {
		s.ChapterNumbers = append(s.ChapterNumbers, n)
		s.Verses += len(ch.verses)
		for _, tokens := range ch.tokens {
			s.Tokens += len(tokens)
			for _, t := range tokens {
				if !t.IsWord() {
					continue
				}
				s.Words++
				if _, ok := c.morph[wordKey{chapter: t.Chapter, verse: t.Verse, word: t.WordNumber}]; ok {
					s.AnalysedWords++
				}
			}
		}
	}
	sort.Ints(s.ChapterNumbers)
	s.Complete = s.Chapters == types.MaxChapter && s.Verses == TotalVerses
	return s
}
