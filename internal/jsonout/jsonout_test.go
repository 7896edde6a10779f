// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsonout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quran-words/pkg/types"
)

func ptr(s string) *string { return &s }

func sampleWords() []types.WordRecord {
	return []types.WordRecord{
		{
			Chapter: 1, Verse: 1, Position: 1,
			SurfaceForm: "بِسْمِ", Transliteration: "bisomi",
			Lemma: ptr("ٱسْم"), Root: ptr("سمو"), PartOfSpeech: ptr("noun"),
		},
		{
			Chapter: 1, Verse: 1, Position: 2,
			SurfaceForm: "ٱللَّهِ", Transliteration: "{ll~ahi",
		},
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "abc", want: `"abc"`},
		{name: "empty", in: "", want: `""`},
		{name: "double quote", in: `a"b`, want: `"a\"b"`},
		{name: "backslash", in: `a\b`, want: `"a\\b"`},
		{name: "newline", in: "a\nb", want: `"a\nb"`},
		{name: "carriage return and tab", in: "\r\t", want: `"\r\t"`},
		{name: "backspace and form feed", in: "\b\f", want: `"\b\f"`},
		{name: "other control byte", in: "a\x01b", want: `"a\u0001b"`},
		{name: "slash untouched", in: "a/b", want: `"a/b"`},
		{name: "html untouched", in: "<&>", want: `"<&>"`},
		{name: "arabic untouched", in: "ٱللَّهِ", want: `"ٱللَّهِ"`},
		{name: "buckwalter symbols", in: "{l~a*iyna>`", want: "\"{l~a*iyna>`\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestQuoteParsesBack(t *testing.T) {
	for _, s := range []string{
		"say \"peace\"\\\nand\tgo",
		"\b\f\r\x00\x1f",
		"قُلْ \"هُوَ\"\n",
	} {
		var got string
		require.NoError(t, json.Unmarshal([]byte(Quote(s)), &got))
		assert.Equal(t, s, got)
	}
}

func TestEncodeFlat(t *testing.T) {
	data, err := Encode(types.ExtractionResult{Scope: types.RangeScope(1), Words: sampleWords()}, types.ModeFlat)
	require.NoError(t, err)

	want := `[
  {
    "surah_number": 1,
    "verse_number": 1,
    "word_position": 1,
    "arabic": "بِسْمِ",
    "transliteration": "bisomi"
  },
  {
    "surah_number": 1,
    "verse_number": 1,
    "word_position": 2,
    "arabic": "ٱللَّهِ",
    "transliteration": "{ll~ahi"
  }
]
`
	assert.Equal(t, want, string(data))

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Len(t, parsed, 2)
}

func TestEncodeFlatEmpty(t *testing.T) {
	data, err := Encode(types.ExtractionResult{}, types.ModeFlat)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestEncodeNested(t *testing.T) {
	data, err := Encode(types.ExtractionResult{Scope: types.VerseScope(1, 1), Words: sampleWords()}, types.ModeNested)
	require.NoError(t, err)

	want := `{"surah":1,"verse":1,"words":[` +
		`{"position":1,"arabic":"بِسْمِ","lemma":"ٱسْم","root":"سمو","partOfSpeech":"noun","translation":"ٱسْم"},` +
		`{"position":2,"arabic":"ٱللَّهِ","lemma":null,"root":null,"partOfSpeech":null,"translation":null}` +
		"]}\n"
	assert.Equal(t, want, string(data))

	var doc struct {
		Surah int              `json:"surah"`
		Verse int              `json:"verse"`
		Words []map[string]any `json:"words"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Words, 2)
	for _, key := range []string{"lemma", "root", "partOfSpeech", "translation"} {
		v, present := doc.Words[1][key]
		assert.True(t, present, "key %s must be present", key)
		assert.Nil(t, v, "key %s must be null", key)
	}
}

func TestEncodeNestedRejectsRangeScope(t *testing.T) {
	_, err := Encode(types.ExtractionResult{Scope: types.RangeScope(3)}, types.ModeNested)
	assert.Error(t, err)
}

func TestEncodeCompact(t *testing.T) {
	data, err := Encode(types.ExtractionResult{Scope: types.VerseScope(1, 1), Words: sampleWords()}, types.ModeCompact)
	require.NoError(t, err)
	want := `[{"position": 1, "arabic": "بِسْمِ", "transliteration": "bisomi"}, ` +
		`{"position": 2, "arabic": "ٱللَّهِ", "transliteration": "{ll~ahi"}]` + "\n"
	assert.Equal(t, want, string(data))
}

func TestEncodeUnknownMode(t *testing.T) {
	_, err := Encode(types.ExtractionResult{}, types.OutputMode("xml"))
	assert.Error(t, err)
}

func TestEncodeIsIdempotent(t *testing.T) {
	words := append(sampleWords(), types.WordRecord{
		Chapter: 1, Verse: 1, Position: 3,
		SurfaceForm: "a \"quoted\" \\ word\nwith\ttabs", Transliteration: "\b\f\r",
		Lemma: ptr("x\"y"),
	})
	result := types.ExtractionResult{Scope: types.VerseScope(1, 1), Words: words}

	for _, mode := range []types.OutputMode{types.ModeFlat, types.ModeNested, types.ModeCompact} {
		t.Run(string(mode), func(t *testing.T) {
			first, err := Encode(result, mode)
			require.NoError(t, err)

			decoded, err := Decode(first, mode)
			require.NoError(t, err)

			second, err := Encode(decoded, mode)
			require.NoError(t, err)
			assert.Equal(t, string(first), string(second))
		})
	}
}

func TestDecodeFlat(t *testing.T) {
	data, err := Encode(types.ExtractionResult{Words: sampleWords()}, types.ModeFlat)
	require.NoError(t, err)

	result, err := Decode(data, types.ModeFlat)
	require.NoError(t, err)
	require.Len(t, result.Words, 2)
	assert.Equal(t, "{ll~ahi", result.Words[1].Transliteration)
	assert.Equal(t, 1, result.Scope.MaxChapter)
}

func TestDecodeMalformed(t *testing.T) {
	for _, mode := range []types.OutputMode{types.ModeFlat, types.ModeNested, types.ModeCompact} {
		_, err := Decode([]byte(`[{"surah_number": 1,`), mode)
		assert.Error(t, err, string(mode))
	}
}
