// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quran-words/internal/corpus"
	"github.com/pdiddy/quran-words/internal/extract"
	"github.com/pdiddy/quran-words/internal/jsonout"
	"github.com/pdiddy/quran-words/internal/scope"
	"github.com/pdiddy/quran-words/internal/sink"
	"github.com/pdiddy/quran-words/pkg/types"
)

var extractRangeCmd = &cobra.Command{
	Use:   "extract-range <maxChapter>",
	Short: "Extract every word of chapters 1..maxChapter to a JSON file",
	Long: `Extract-range walks chapters 1 through maxChapter (1..114) in order and
writes one flat record per token (surah_number, verse_number,
word_position, arabic, transliteration) to quran_words.json.

The file is replaced only after the whole document has been built, so a
failed run leaves any previous file untouched.`,
	RunE: runExtractRange,
}

func runExtractRange(cmd *cobra.Command, args []string) error {
	s, err := scope.ParseRange(args)
	if err != nil {
		return err
	}

	cfg := types.DefaultExtractionConfig(types.ModeFlat)
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputPath = out
	}

	c, err := loadCorpus()
	if err != nil {
		return err
	}
	return extractRange(cmd.Context(), c, s, cfg, cmd.OutOrStdout())
}

// extractRange runs a range extraction and writes the flat document to
// cfg.OutputPath. Progress and the completion line go to stdout.
func extractRange(ctx context.Context, p corpus.Provider, s types.Scope, cfg types.ExtractionConfig, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := extract.New(p, logger, stdout).Run(ctx, s, cfg.IncludeNonWordTokens)
	if err != nil {
		return err
	}

	data, err := jsonout.Encode(result, cfg.Mode)
	if err != nil {
		return err
	}
	if err := sink.Write(cfg.Target, cfg.OutputPath, data, stdout); err != nil {
		return err
	}

	logger.Info().
		Int("surahs", s.MaxChapter).
		Int("words", len(result.Words)).
		Str("path", cfg.OutputPath).
		Msg("range extracted")
	fmt.Fprintf(stdout, "Extraction complete. Data saved to %s\n", cfg.OutputPath)
	return nil
}

func init() {
	extractRangeCmd.Flags().StringP("output", "o", types.DefaultRangeOutput, "output JSON file")

	rootCmd.AddCommand(extractRangeCmd)
}
