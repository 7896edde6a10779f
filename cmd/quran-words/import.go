// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quran-words/internal/extract"
	"github.com/pdiddy/quran-words/internal/jsonout"
	"github.com/pdiddy/quran-words/internal/scope"
	"github.com/pdiddy/quran-words/internal/wordstore"
	"github.com/pdiddy/quran-words/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Load extracted words into the SQLite word store",
	Long: `Import reads a flat JSON file written by extract-range (default
quran_words.json) and upserts its words into quran_words.db in --db-dir.

With --extract N the words of chapters 1..N are taken straight from the
corpus instead, including lemma, root, and part of speech.

Re-importing the same words updates rows in place; nothing is duplicated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		records []types.WordRecord
		err     error
	)

	if cmd.Flags().Changed("extract") {
		raw, _ := cmd.Flags().GetString("extract")
		s, err := scope.ParseRange([]string{raw})
		if err != nil {
			return err
		}
		c, err := loadCorpus()
		if err != nil {
			return err
		}
		result, err := extract.New(c, logger, cmd.OutOrStdout()).Run(cmd.Context(), s, true)
		if err != nil {
			return err
		}
		records = result.Words
	} else {
		path := types.DefaultRangeOutput
		if len(args) == 1 {
			path = args[0]
		}
		if records, err = readFlatFile(path); err != nil {
			return err
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	_, err = importRecords(cmd.Context(), st, records, cmd.OutOrStdout())
	return err
}

// readFlatFile loads the records of a flat JSON document.
func readFlatFile(path string) ([]types.WordRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.ProviderError{Resource: path, Err: err}
	}
	result, err := jsonout.Decode(data, types.ModeFlat)
	if err != nil {
		return nil, &types.ProviderError{Resource: path, Err: err}
	}
	return result.Words, nil
}

func importRecords(ctx context.Context, st *wordstore.Store, records []types.WordRecord, w io.Writer) (wordstore.ImportSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	summary, err := st.Import(ctx, records, w)
	if err != nil {
		return summary, err
	}
	logger.Info().
		Int("inserted", summary.Inserted).
		Int("updated", summary.Updated).
		Int("verses", summary.Verses).
		Str("path", st.Path()).
		Msg("words imported")
	fmt.Fprintf(w, "Import complete. %d words stored in %s\n", summary.Total(), st.Path())
	return summary, nil
}

func init() {
	importCmd.Flags().String("extract", "", "import chapters 1..N directly from the corpus instead of a file")

	rootCmd.AddCommand(importCmd)
}
