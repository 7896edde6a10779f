// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsonout

import (
	"encoding/json"
	"fmt"

	"github.com/pdiddy/quran-words/pkg/types"
)

type flatWord struct {
	Chapter         int    `json:"surah_number"`
	Verse           int    `json:"verse_number"`
	Position        int    `json:"word_position"`
	SurfaceForm     string `json:"arabic"`
	Transliteration string `json:"transliteration"`
}

type nestedDoc struct {
	Surah int          `json:"surah"`
	Verse int          `json:"verse"`
	Words []nestedWord `json:"words"`
}

type nestedWord struct {
	Position     int     `json:"position"`
	Arabic       string  `json:"arabic"`
	Lemma        *string `json:"lemma"`
	Root         *string `json:"root"`
	PartOfSpeech *string `json:"partOfSpeech"`
	Translation  *string `json:"translation"`
}

type compactWord struct {
	Position        int    `json:"position"`
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
}

// Decode parses a document written by Encode in the given mode. Fields a
// layout does not carry are left zero; compact documents lose chapter and
// verse, nested documents lose transliteration.
func Decode(data []byte, mode types.OutputMode) (types.ExtractionResult, error) {
	var result types.ExtractionResult

	switch mode {
	case types.ModeFlat:
		var words []flatWord
		if err := json.Unmarshal(data, &words); err != nil {
			return result, fmt.Errorf("parsing flat JSON: %w", err)
		}
		result.Words = make([]types.WordRecord, len(words))
		for i, w := range words {
			result.Words[i] = types.WordRecord{
				Chapter:         w.Chapter,
				Verse:           w.Verse,
				Position:        w.Position,
				SurfaceForm:     w.SurfaceForm,
				Transliteration: w.Transliteration,
			}
			if w.Chapter > result.Scope.MaxChapter {
				result.Scope.MaxChapter = w.Chapter
			}
		}

	case types.ModeNested:
		var doc nestedDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return result, fmt.Errorf("parsing nested JSON: %w", err)
		}
		result.Scope = types.VerseScope(doc.Surah, doc.Verse)
		result.Words = make([]types.WordRecord, len(doc.Words))
		for i, w := range doc.Words {
			result.Words[i] = types.WordRecord{
				Chapter:      doc.Surah,
				Verse:        doc.Verse,
				Position:     w.Position,
				SurfaceForm:  w.Arabic,
				Lemma:        w.Lemma,
				Root:         w.Root,
				PartOfSpeech: w.PartOfSpeech,
			}
		}

	case types.ModeCompact:
		var words []compactWord
		if err := json.Unmarshal(data, &words); err != nil {
			return result, fmt.Errorf("parsing compact JSON: %w", err)
		}
		result.Words = make([]types.WordRecord, len(words))
		for i, w := range words {
			result.Words[i] = types.WordRecord{
				Position:        w.Position,
				SurfaceForm:     w.Arabic,
				Transliteration: w.Transliteration,
			}
		}

	default:
		return result, fmt.Errorf("unknown output mode %q", mode)
	}
	return result, nil
}
