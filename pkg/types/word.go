// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// MaxChapter is the number of chapters (surahs) in the corpus.
const MaxChapter = 114

// Scope identifies what a pipeline run extracts: either a single verse
// (Chapter and Verse set) or every verse of chapters 1..MaxChapter.
type Scope struct {
	// Chapter and Verse name a single verse. Both are zero in range mode.
	Chapter int `json:"chapter,omitempty" yaml:"chapter,omitempty"`
	Verse   int `json:"verse,omitempty" yaml:"verse,omitempty"`

	// MaxChapter bounds range mode to chapters [1, MaxChapter].
	MaxChapter int `json:"max_chapter,omitempty" yaml:"max_chapter,omitempty"`
}

// VerseScope returns a single-verse scope.
func VerseScope(chapter, verse int) Scope {
	return Scope{Chapter: chapter, Verse: verse}
}

// RangeScope returns a scope covering chapters 1..maxChapter.
func RangeScope(maxChapter int) Scope {
	return Scope{MaxChapter: maxChapter}
}

// IsRange reports whether the scope covers a chapter range.
func (s Scope) IsRange() bool {
	return s.MaxChapter > 0
}

func (s Scope) String() string {
	if s.IsRange() {
		return fmt.Sprintf("1..%d", s.MaxChapter)
	}
	return fmt.Sprintf("%d:%d", s.Chapter, s.Verse)
}

// WordRecord is one output word. Lemma, Root, and PartOfSpeech are nil
// when the provider has no morphological analysis for the token.
type WordRecord struct {
	Chapter         int     `json:"surah_number" yaml:"surah_number"`
	Verse           int     `json:"verse_number" yaml:"verse_number"`
	Position        int     `json:"word_position" yaml:"word_position"`
	SurfaceForm     string  `json:"arabic" yaml:"arabic"`
	Transliteration string  `json:"transliteration" yaml:"transliteration"`
	Lemma           *string `json:"lemma,omitempty" yaml:"lemma,omitempty"`
	Root            *string `json:"root,omitempty" yaml:"root,omitempty"`
	PartOfSpeech    *string `json:"part_of_speech,omitempty" yaml:"part_of_speech,omitempty"`
}

// ExtractionResult holds the ordered records of one pipeline run together
// with the scope that produced them.
type ExtractionResult struct {
	Scope Scope        `json:"scope" yaml:"scope"`
	Words []WordRecord `json:"words" yaml:"words"`
}

// VerseCount returns the number of distinct (chapter, verse) pairs.
func (r ExtractionResult) VerseCount() int {
	n := 0
	prevCh, prevV := 0, 0
	for _, w := range r.Words {
		if w.Chapter != prevCh || w.Verse != prevV {
			n++
			prevCh, prevV = w.Chapter, w.Verse
		}
	}
	return n
}
