// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputMode selects the shape of the serialized extraction result.
type OutputMode string

const (
	// ModeFlat is a top-level array of word objects keyed by
	// surah_number, verse_number, word_position (range extraction).
	ModeFlat OutputMode = "flat"

	// ModeNested is a single {surah, verse, words} object carrying
	// morphological fields (single-verse morphological extraction).
	ModeNested OutputMode = "nested"

	// ModeCompact is a single-line array of {position, arabic,
	// transliteration} objects (single-verse lightweight extraction).
	ModeCompact OutputMode = "compact"
)

// OutputTarget selects where serialized output is written.
type OutputTarget string

const (
	TargetStdout OutputTarget = "stdout"
	TargetFile   OutputTarget = "file"
)

// DefaultRangeOutput is the file written by range extraction when no
// output path is given.
const DefaultRangeOutput = "quran_words.json"

// ExtractionConfig holds settings for one pipeline run.
type ExtractionConfig struct {
	// Mode selects flat, nested, or compact serialization.
	Mode OutputMode `json:"mode" yaml:"mode"`

	// Target selects stdout or file output.
	Target OutputTarget `json:"target" yaml:"target"`

	// OutputPath is the destination file when Target is TargetFile.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// IncludeNonWordTokens keeps punctuation and pause-mark tokens in the
	// output. Flat and compact runs include them; nested runs drop them.
	IncludeNonWordTokens bool `json:"include_non_word_tokens" yaml:"include_non_word_tokens"`
}

// DefaultExtractionConfig returns the historical behavior for mode.
func DefaultExtractionConfig(mode OutputMode) ExtractionConfig {
	switch mode {
	case ModeFlat:
		return ExtractionConfig{
			Mode:                 ModeFlat,
			Target:               TargetFile,
			OutputPath:           DefaultRangeOutput,
			IncludeNonWordTokens: true,
		}
	case ModeNested:
		return ExtractionConfig{Mode: ModeNested, Target: TargetStdout}
	default:
		return ExtractionConfig{Mode: ModeCompact, Target: TargetStdout, IncludeNonWordTokens: true}
	}
}

// CorpusConfig locates the corpus resources. When all paths are empty the
// embedded sample corpus is used.
type CorpusConfig struct {
	// TextPath is a Tanzil XML file, optionally xz-compressed.
	TextPath string `json:"text" yaml:"text" mapstructure:"text"`

	// MorphologyPath is a Quranic Arabic Corpus morphology TSV file,
	// optionally xz-compressed. Empty means no morphological analysis.
	MorphologyPath string `json:"morphology" yaml:"morphology" mapstructure:"morphology"`

	// ManifestPath is a YAML manifest naming both resources and their
	// blake3 digests. It takes precedence over TextPath and MorphologyPath.
	ManifestPath string `json:"manifest" yaml:"manifest" mapstructure:"manifest"`
}

// IsEmbedded reports whether no external corpus resource is configured.
func (c CorpusConfig) IsEmbedded() bool {
	return c.TextPath == "" && c.MorphologyPath == "" && c.ManifestPath == ""
}

// StoreConfig holds settings for the SQLite word store.
type StoreConfig struct {
	// Dir is the directory containing quran_words.db.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}
