// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/quran-words/internal/translit"
)

// wordKey addresses a word by chapter, verse, and word number.
type wordKey struct {
	chapter, verse, word int
}

// morph is the analysis of one word, with lemma and root in Arabic script.
type morph struct {
	lemma string
	root  string
	pos   string // English part-of-speech name
}

// posNames expands the corpus part-of-speech tags.
var posNames = map[string]string{
	"N":    "noun",
	"PN":   "proper noun",
	"ADJ":  "adjective",
	"IMPN": "imperative verbal noun",
	"PRON": "personal pronoun",
	"DEM":  "demonstrative pronoun",
	"REL":  "relative pronoun",
	"T":    "time adverb",
	"LOC":  "location adverb",
	"V":    "verb",
	"P":    "preposition",
	"EMPH": "emphatic particle",
	"IMPV": "imperative particle",
	"PRP":  "purpose particle",
	"CONJ": "coordinating conjunction",
	"SUB":  "subordinating conjunction",
	"ACC":  "accusative particle",
	"AMD":  "amendment particle",
	"ANS":  "answer particle",
	"AVR":  "aversion particle",
	"CAUS": "particle of cause",
	"CERT": "particle of certainty",
	"CIRC": "circumstantial particle",
	"COM":  "comitative particle",
	"COND": "conditional particle",
	"EQ":   "equalization particle",
	"EXH":  "exhortation particle",
	"EXL":  "explanation particle",
	"EXP":  "exceptive particle",
	"FUT":  "future particle",
	"INC":  "inceptive particle",
	"INT":  "particle of interpretation",
	"INTG": "interrogative particle",
	"NEG":  "negative particle",
	"PREV": "preventive particle",
	"PRO":  "prohibition particle",
	"REM":  "resumption particle",
	"RES":  "restriction particle",
	"RET":  "retraction particle",
	"RSLT": "result particle",
	"SUP":  "supplemental particle",
	"SUR":  "surprise particle",
	"VOC":  "vocative particle",
	"INL":  "quranic initials",
	"DET":  "determiner",
}

// PartOfSpeechName returns the English name of a corpus tag, or the tag
// itself when it is not known.
func PartOfSpeechName(tag string) string {
	if name, ok := posNames[tag]; ok {
		return name
	}
	return tag
}

// parseMorphology reads the Quranic Arabic Corpus morphology format:
//
//	LOCATION	FORM	TAG	FEATURES
//	(1:1:1:2)	somi	N	STEM|POS:N|LEM:{som|ROOT:smw|M|GEN
//
// Segments are grouped per word. The STEM segment supplies the lemma,
// root, and part of speech; a word without a STEM segment takes the tag
// of its last segment.
func parseMorphology(data []byte) (map[wordKey]morph, error) {
	words := make(map[wordKey]morph)
	stemmed := make(map[wordKey]bool)

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "LOCATION") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: expected 4 tab-separated fields, got %d", lineNo, len(fields))
		}
		key, err := parseLocation(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		tag, features := fields[2], strings.Split(fields[3], "|")

		if len(features) == 0 || features[0] != "STEM" {
			if !stemmed[key] {
				m := words[key]
				m.pos = PartOfSpeechName(tag)
				words[key] = m
			}
			continue
		}

		m := morph{pos: PartOfSpeechName(tag)}
		for _, f := range features[1:] {
			switch {
			case strings.HasPrefix(f, "POS:"):
				m.pos = PartOfSpeechName(strings.TrimPrefix(f, "POS:"))
			case strings.HasPrefix(f, "LEM:"):
				m.lemma = translit.ToArabic(strings.TrimPrefix(f, "LEM:"))
			case strings.HasPrefix(f, "ROOT:"):
				m.root = translit.ToArabic(strings.TrimPrefix(f, "ROOT:"))
			}
		}
		words[key] = m
		stemmed[key] = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading morphology: %w", err)
	}
	return words, nil
}

// parseLocation parses "(chapter:verse:word:segment)".
func parseLocation(s string) (wordKey, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(inner, ":")
	if len(parts) != 4 || inner == s {
		return wordKey{}, fmt.Errorf("malformed location %q", s)
	}
	var nums [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return wordKey{}, fmt.Errorf("malformed location %q", s)
		}
		nums[i] = n
	}
	return wordKey{chapter: nums[0], verse: nums[1], word: nums[2]}, nil
}
