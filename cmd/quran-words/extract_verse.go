// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quran-words/internal/corpus"
	"github.com/pdiddy/quran-words/internal/extract"
	"github.com/pdiddy/quran-words/internal/jsonout"
	"github.com/pdiddy/quran-words/internal/scope"
	"github.com/pdiddy/quran-words/internal/sink"
	"github.com/pdiddy/quran-words/pkg/types"
)

var extractVerseCmd = &cobra.Command{
	Use:   "extract-verse <chapter> <verse>",
	Short: "Print the words of one verse as JSON",
	Long: `Extract-verse prints the words of a single verse to standard output.

--mode=compact (default) prints a one-line array of position, arabic, and
transliteration for every token, pause marks included.

--mode=morphological (alias nested) prints {surah, verse, words} with the
lemma, root, and part of speech of every word; pause marks are dropped
unless --include-non-word is given. Missing analyses are null. The
translation field repeats the lemma; the corpus carries no translations.

--source=db reads words previously loaded with the import command instead
of the corpus.`,
	RunE: runExtractVerse,
}

// parseVerseMode maps the --mode flag to an output mode.
func parseVerseMode(raw string) (types.OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "compact":
		return types.ModeCompact, nil
	case "morphological", "nested":
		return types.ModeNested, nil
	default:
		return "", &types.ArgumentError{Name: "mode", Value: raw, Message: "must be compact or morphological"}
	}
}

func runExtractVerse(cmd *cobra.Command, args []string) error {
	s, err := scope.ParseVerse(args)
	if err != nil {
		return err
	}

	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := parseVerseMode(modeFlag)
	if err != nil {
		return err
	}
	cfg := types.DefaultExtractionConfig(mode)
	if cmd.Flags().Changed("include-non-word") {
		cfg.IncludeNonWordTokens, _ = cmd.Flags().GetBool("include-non-word")
	}

	source, _ := cmd.Flags().GetString("source")
	var p corpus.Provider
	switch source {
	case "", "corpus":
		c, err := loadCorpus()
		if err != nil {
			return err
		}
		p = c
	case "db":
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		p = st
	default:
		return &types.ArgumentError{Name: "source", Value: source, Message: "must be corpus or db"}
	}

	return extractVerse(cmd.Context(), p, s, cfg, cmd.OutOrStdout())
}

// extractVerse runs a single-verse extraction and prints the document.
func extractVerse(ctx context.Context, p corpus.Provider, s types.Scope, cfg types.ExtractionConfig, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := extract.New(p, logger, nil).Run(ctx, s, cfg.IncludeNonWordTokens)
	if err != nil {
		return err
	}
	data, err := jsonout.Encode(result, cfg.Mode)
	if err != nil {
		return err
	}
	return sink.Write(cfg.Target, cfg.OutputPath, data, stdout)
}

func init() {
	extractVerseCmd.Flags().String("mode", "compact", "output mode: compact or morphological")
	extractVerseCmd.Flags().Bool("include-non-word", false, "keep pause marks and punctuation tokens (default depends on mode)")
	extractVerseCmd.Flags().String("source", "corpus", "word source: corpus or db")

	rootCmd.AddCommand(extractVerseCmd)
}
