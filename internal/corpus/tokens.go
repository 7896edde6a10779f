// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"strings"
	"unicode"
)

// Tokenize splits verse text on whitespace and classifies each token.
// Word tokens are numbered separately so they line up with the
// morphology corpus, which does not count pause marks.
func Tokenize(chapter, verse int, text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))
	word := 0
	for i, f := range fields {
		t := Token{
			Chapter:  chapter,
			Verse:    verse,
			Position: i + 1,
			Text:     f,
			Kind:     Classify(f),
		}
		if t.Kind == KindWord {
			word++
			t.WordNumber = word
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// Classify reports whether s is a word or a run of annotation marks.
func Classify(s string) TokenKind {
	for _, r := range s {
		if !isMark(r) {
			return KindWord
		}
	}
	return KindNonWord
}

// isMark reports whether r is a Quranic annotation sign or punctuation.
// U+06D6..U+06ED covers the small high ligatures used as pause marks
// together with the rub el hizb (U+06DE) and sajdah (U+06E9) signs.
func isMark(r rune) bool {
	switch {
	case r >= 0x06D6 && r <= 0x06ED:
		return true
	case r == 0x060C || r == 0x061B || r == 0x061F || r == 0x06D4:
		return true
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
