// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translit converts between Arabic script and the extended
// Buckwalter transliteration used by the Quranic Arabic Corpus.
package translit

import "strings"

// table pairs each Buckwalter character with its Arabic code point.
// The extended entries cover Quranic orthography marks.
var table = []struct {
	bw rune
	ar rune
}{
	{'\'', '\u0621'}, // hamza
	{'|', '\u0622'},  // alef with madda above
	{'>', '\u0623'},  // alef with hamza above
	{'&', '\u0624'},  // waw with hamza above
	{'<', '\u0625'},  // alef with hamza below
	{'}', '\u0626'},  // yeh with hamza above
	{'A', '\u0627'},
	{'b', '\u0628'},
	{'p', '\u0629'}, // teh marbuta
	{'t', '\u062A'},
	{'v', '\u062B'},
	{'j', '\u062C'},
	{'H', '\u062D'},
	{'x', '\u062E'},
	{'d', '\u062F'},
	{'*', '\u0630'},
	{'r', '\u0631'},
	{'z', '\u0632'},
	{'s', '\u0633'},
	{'$', '\u0634'},
	{'S', '\u0635'},
	{'D', '\u0636'},
	{'T', '\u0637'},
	{'Z', '\u0638'},
	{'E', '\u0639'},
	{'g', '\u063A'},
	{'_', '\u0640'}, // tatweel
	{'f', '\u0641'},
	{'q', '\u0642'},
	{'k', '\u0643'},
	{'l', '\u0644'},
	{'m', '\u0645'},
	{'n', '\u0646'},
	{'h', '\u0647'},
	{'w', '\u0648'},
	{'Y', '\u0649'}, // alef maksura
	{'y', '\u064A'},
	{'F', '\u064B'}, // fathatan
	{'N', '\u064C'}, // dammatan
	{'K', '\u064D'}, // kasratan
	{'a', '\u064E'},
	{'u', '\u064F'},
	{'i', '\u0650'},
	{'~', '\u0651'}, // shadda
	{'o', '\u0652'}, // sukun
	{'^', '\u0653'}, // maddah above
	{'#', '\u0654'}, // hamza above
	{'`', '\u0670'}, // superscript alef
	{'{', '\u0671'}, // alef wasla
	{':', '\u06DC'}, // small high seen
	{'@', '\u06DF'}, // small high rounded zero
	{'"', '\u06E0'}, // small high upright rectangular zero
	{'[', '\u06E2'}, // small high meem isolated
	{';', '\u06E3'}, // small low seen
	{',', '\u06E5'}, // small waw
	{'.', '\u06E6'}, // small yeh
	{'!', '\u06E8'}, // small high noon
	{'-', '\u06EA'}, // empty centre low stop
	{'+', '\u06EB'}, // empty centre high stop
	{'%', '\u06EC'}, // rounded high stop with filled centre
	{']', '\u06ED'}, // small low meem
}

// variants are Uthmani code points with no symbol of their own in the
// Quranic Arabic Corpus scheme. They transliterate as the mark they
// stand in for, so ToArabic yields the canonical code point.
var variants = map[rune]rune{
	'\u06E1': '\u0652', // small high dotless head of khah, written as sukun
	'\u0656': '\u0670', // subscript alef, a dagger alef below
	'\u06E7': '\u06E6', // small high yeh
}

var (
	toArabic     = make(map[rune]rune, len(table))
	toBuckwalter = make(map[rune]rune, len(table)+len(variants))
)

func init() {
	for _, e := range table {
		toArabic[e.bw] = e.ar
		toBuckwalter[e.ar] = e.bw
	}
	for v, canonical := range variants {
		toBuckwalter[v] = toBuckwalter[canonical]
	}
}

// ToBuckwalter transliterates Arabic text. Runes without a mapping
// (spaces, pause marks outside the table, Latin text) pass through.
func ToBuckwalter(s string) string {
	return mapRunes(s, toBuckwalter)
}

// ToArabic reverses ToBuckwalter.
func ToArabic(s string) string {
	return mapRunes(s, toArabic)
}

func mapRunes(s string, m map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mapped, ok := m[r]; ok {
			b.WriteRune(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
