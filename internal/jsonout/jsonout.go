// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsonout serializes extraction results in the three historical
// JSON layouts. Key order is fixed per layout, absent optional fields are
// written as null, and non-ASCII text is written as raw UTF-8.
package jsonout

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pdiddy/quran-words/pkg/types"
)

const hex = "0123456789abcdef"

// Quote returns s as a JSON string literal. Backslash, double quote,
// backspace, form feed, newline, carriage return, and tab use their
// two-character escapes; other control bytes use \u00XX; every remaining
// byte is copied unchanged.
func Quote(s string) string {
	var b bytes.Buffer
	writeString(&b, s)
	return b.String()
}

func writeString(b *bytes.Buffer, s string) {
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var esc string
		switch c {
		case '\\':
			esc = `\\`
		case '"':
			esc = `\"`
		case '\b':
			esc = `\b`
		case '\f':
			esc = `\f`
		case '\n':
			esc = `\n`
		case '\r':
			esc = `\r`
		case '\t':
			esc = `\t`
		default:
			if c >= 0x20 {
				continue
			}
		}
		b.WriteString(s[start:i])
		if esc != "" {
			b.WriteString(esc)
		} else {
			b.WriteString(`\u00`)
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xF])
		}
		start = i + 1
	}
	b.WriteString(s[start:])
	b.WriteByte('"')
}

func writeOptional(b *bytes.Buffer, s *string) {
	if s == nil {
		b.WriteString("null")
		return
	}
	writeString(b, *s)
}

func writeInt(b *bytes.Buffer, n int) {
	b.WriteString(strconv.Itoa(n))
}

// Encode serializes result in the given mode. The document is built in
// memory so a failure never produces partial output.
func Encode(result types.ExtractionResult, mode types.OutputMode) ([]byte, error) {
	var b bytes.Buffer
	switch mode {
	case types.ModeFlat:
		encodeFlat(&b, result.Words)
	case types.ModeNested:
		if result.Scope.IsRange() {
			return nil, fmt.Errorf("nested output needs a single-verse scope, got %s", result.Scope)
		}
		encodeNested(&b, result.Scope, result.Words)
	case types.ModeCompact:
		encodeCompact(&b, result.Words)
	default:
		return nil, fmt.Errorf("unknown output mode %q", mode)
	}
	return b.Bytes(), nil
}

// encodeFlat writes a top-level array with one indented object per word:
//
//	[
//	  {
//	    "surah_number": 1,
//	    ...
//	  }
//	]
func encodeFlat(b *bytes.Buffer, words []types.WordRecord) {
	if len(words) == 0 {
		b.WriteString("[]\n")
		return
	}
	b.WriteString("[\n")
	for i, w := range words {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("  {\n")
		b.WriteString(`    "surah_number": `)
		writeInt(b, w.Chapter)
		b.WriteString(",\n")
		b.WriteString(`    "verse_number": `)
		writeInt(b, w.Verse)
		b.WriteString(",\n")
		b.WriteString(`    "word_position": `)
		writeInt(b, w.Position)
		b.WriteString(",\n")
		b.WriteString(`    "arabic": `)
		writeString(b, w.SurfaceForm)
		b.WriteString(",\n")
		b.WriteString(`    "transliteration": `)
		writeString(b, w.Transliteration)
		b.WriteString("\n  }")
	}
	b.WriteString("\n]\n")
}

// encodeNested writes a single-line {surah, verse, words} object. The
// translation key repeats the lemma; the corpus carries no translation.
func encodeNested(b *bytes.Buffer, s types.Scope, words []types.WordRecord) {
	b.WriteString(`{"surah":`)
	writeInt(b, s.Chapter)
	b.WriteString(`,"verse":`)
	writeInt(b, s.Verse)
	b.WriteString(`,"words":[`)
	for i, w := range words {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"position":`)
		writeInt(b, w.Position)
		b.WriteString(`,"arabic":`)
		writeString(b, w.SurfaceForm)
		b.WriteString(`,"lemma":`)
		writeOptional(b, w.Lemma)
		b.WriteString(`,"root":`)
		writeOptional(b, w.Root)
		b.WriteString(`,"partOfSpeech":`)
		writeOptional(b, w.PartOfSpeech)
		b.WriteString(`,"translation":`)
		writeOptional(b, w.Lemma)
		b.WriteByte('}')
	}
	b.WriteString("]}\n")
}

// encodeCompact writes a single-line array of position, arabic, and
// transliteration objects.
func encodeCompact(b *bytes.Buffer, words []types.WordRecord) {
	b.WriteByte('[')
	for i, w := range words {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(`{"position": `)
		writeInt(b, w.Position)
		b.WriteString(`, "arabic": `)
		writeString(b, w.SurfaceForm)
		b.WriteString(`, "transliteration": `)
		writeString(b, w.Transliteration)
		b.WriteByte('}')
	}
	b.WriteString("]\n")
}
