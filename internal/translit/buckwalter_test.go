// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBuckwalter(t *testing.T) {
	tests := []struct {
		name   string
		arabic string
		want   string
	}{
		{name: "bismi", arabic: "بِسْمِ", want: "bisomi"},
		{name: "shadda before fatha", arabic: "اللَّهِ", want: "All~ahi"},
		{name: "alef wasla and superscript alef", arabic: "ٱلرَّحْمَٰنِ", want: "{lr~aHoma`ni"},
		{name: "hamza and tanween", arabic: "أَحَدٌ", want: ">aHadN"},
		{name: "space passes through", arabic: "قُلْ هُوَ", want: "qulo huwa"},
		{name: "latin passes through", arabic: "abc", want: "abc"},
		{name: "dotless head of khah as sukun", arabic: "قُل\u06E1", want: "qulo"},
		{name: "subscript alef", arabic: "ب\u0656", want: "b`"},
		{name: "small high yeh", arabic: "ن\u06E7", want: "n."},
		{name: "unmapped mark passes through", arabic: "ۖ", want: "ۖ"},
		{name: "empty", arabic: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBuckwalter(tt.arabic))
		})
	}
}

func TestToArabic(t *testing.T) {
	assert.Equal(t, "ٱللَّه", ToArabic("{ll~ah"))
	assert.Equal(t, "رَبّ", ToArabic("rab~"))
}

func TestRoundTrip(t *testing.T) {
	words := []string{
		"bisomi", "{ll~ahi", "{lr~aHoma`ni", "<iy~aAka", "nasotaEiynu",
		"S~iraA_Ta", "D~aA^l~iyna", "{l~a*iyna", "|mana", "$ayo'N",
	}
	for _, w := range words {
		assert.Equal(t, w, ToBuckwalter(ToArabic(w)), "round trip of %q", w)
	}
}

func TestTableIsBijective(t *testing.T) {
	assert.Len(t, toArabic, len(table), "duplicate Buckwalter key")
	assert.Len(t, toBuckwalter, len(table)+len(variants), "duplicate Arabic code point")
}

func TestVariantsFoldToCanonical(t *testing.T) {
	for v, canonical := range variants {
		_, inTable := toArabic[toBuckwalter[v]]
		assert.True(t, inTable, "U+%04X has no symbol", v)
		assert.Equal(t, string(canonical), ToArabic(ToBuckwalter(string(v))), "U+%04X", v)
	}
}
