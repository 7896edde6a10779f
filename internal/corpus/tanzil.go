// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html/charset"

	"github.com/pdiddy/quran-words/pkg/types"
)

var (
	suraExpr = xpath.MustCompile("/quran/sura")
	ayaExpr  = xpath.MustCompile("aya")
)

// chapter holds the parsed verses of one sura together with their tokens.
type chapter struct {
	number int
	name   string
	verses []Verse
	tokens map[int][]Token // by verse number
}

// parseTanzil reads a Tanzil XML document:
//
//	<quran>
//	  <sura index="1" name="...">
//	    <aya index="1" text="..."/>
//	  </sura>
//	</quran>
//
// Sura indexes must be unique and within 1..114; aya indexes must be
// unique within a sura and no greater than the sura's verse count.
// Verses are returned in ascending order.
func parseTanzil(data []byte) (map[int]*chapter, error) {
	doc, err := xmlquery.ParseWithOptions(bytes.NewReader(data), xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{Strict: true, CharsetReader: charsetReader},
	})
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	suras := xmlquery.QuerySelectorAll(doc, suraExpr)
	if len(suras) == 0 {
		return nil, fmt.Errorf("no <sura> elements under <quran>")
	}

	chapters := make(map[int]*chapter, len(suras))
	for _, s := range suras {
		num, err := attrInt(s, "index")
		if err != nil {
			return nil, fmt.Errorf("sura: %w", err)
		}
		if num < 1 || num > types.MaxChapter {
			return nil, fmt.Errorf("sura index %d out of range", num)
		}
		if _, dup := chapters[num]; dup {
			return nil, fmt.Errorf("duplicate sura index %d", num)
		}

		ch := &chapter{
			number: num,
			name:   s.SelectAttr("name"),
			tokens: make(map[int][]Token),
		}
		for _, a := range xmlquery.QuerySelectorAll(s, ayaExpr) {
			vn, err := attrInt(a, "index")
			if err != nil {
				return nil, fmt.Errorf("sura %d aya: %w", num, err)
			}
			if !Exists(num, vn) {
				return nil, fmt.Errorf("sura %d: aya index %d out of range 1..%d", num, vn, VerseCount(num))
			}
			if _, dup := ch.tokens[vn]; dup {
				return nil, fmt.Errorf("sura %d: duplicate aya index %d", num, vn)
			}
			text := a.SelectAttr("text")
			ch.verses = append(ch.verses, Verse{Chapter: num, Number: vn, Text: text})
			ch.tokens[vn] = Tokenize(num, vn, text)
		}
		sort.Slice(ch.verses, func(i, j int) bool {
			return ch.verses[i].Number < ch.verses[j].Number
		})
		chapters[num] = ch
	}
	return chapters, nil
}

// charsetReader resolves the encoding named in the XML declaration. By
// the time the text reaches the parser a UTF-16 file has already been
// converted to UTF-8, so Unicode labels pass the input through unchanged.
// Other labels (windows-1256, iso-8859-6, ...) are decoded by x/net.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-8", "utf8", "utf-16", "utf16", "utf-16le", "utf-16be", "ucs-2", "unicode":
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}

func attrInt(n *xmlquery.Node, name string) (int, error) {
	raw := n.SelectAttr(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s attribute", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s attribute %q is not a number", name, raw)
	}
	return v, nil
}
