// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quran-words/internal/corpus"
	"github.com/pdiddy/quran-words/pkg/types"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and pin corpus resources",
}

var corpusInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print corpus statistics and blake3 digests",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCorpus()
		if err != nil {
			return err
		}
		printCorpusInfo(cmd.OutOrStdout(), corpusConfig(), c.Stats())
		return nil
	},
}

var corpusManifestCmd = &cobra.Command{
	Use:   "manifest <text> [morphology]",
	Short: "Write a manifest pinning corpus files by blake3 digest",
	Long: `Manifest computes blake3 digests of a Tanzil text file and an optional
morphology file and writes a YAML manifest naming both. Load the corpus
through the manifest with --manifest; a file that no longer matches its
digest is rejected.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCorpusManifest,
}

func runCorpusManifest(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("output")
	name, _ := cmd.Flags().GetString("name")

	morphology := ""
	if len(args) == 2 {
		morphology = args[1]
	}
	m, err := corpus.BuildManifest(name, out, args[0], morphology)
	if err != nil {
		return &types.ProviderError{Resource: args[0], Err: err}
	}
	if err := corpus.WriteManifest(out, m); err != nil {
		return &types.IOError{Path: out, Err: err}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Manifest written to %s\n", out)
	return nil
}

func printCorpusInfo(w io.Writer, cfg types.CorpusConfig, st corpus.Stats) {
	source := "embedded"
	switch {
	case cfg.ManifestPath != "":
		source = cfg.ManifestPath
	case cfg.TextPath != "":
		source = cfg.TextPath
	}

	chapters := make([]string, len(st.ChapterNumbers))
	for i, n := range st.ChapterNumbers {
		chapters[i] = fmt.Sprint(n)
	}
	if len(chapters) > 12 {
		chapters = append(chapters[:5], "...", chapters[len(chapters)-1])
	}

	fmt.Fprintf(w, "%-18s %s\n", "Source:", source)
	fmt.Fprintf(w, "%-18s %d (%s)\n", "Surahs:", st.Chapters, strings.Join(chapters, ", "))
	fmt.Fprintf(w, "%-18s %d\n", "Verses:", st.Verses)
	fmt.Fprintf(w, "%-18s %d\n", "Tokens:", st.Tokens)
	fmt.Fprintf(w, "%-18s %d\n", "Words:", st.Words)
	fmt.Fprintf(w, "%-18s %d\n", "Analysed words:", st.AnalysedWords)
	complete := "no"
	if st.Complete {
		complete = "yes"
	}
	fmt.Fprintf(w, "%-18s %s\n", "Complete:", complete)
	fmt.Fprintf(w, "%-18s %s\n", "Text blake3:", st.TextDigest)
	morph := st.MorphologyDigest
	if morph == "" {
		morph = "(none)"
	}
	fmt.Fprintf(w, "%-18s %s\n", "Morphology blake3:", morph)
}

func init() {
	corpusManifestCmd.Flags().StringP("output", "o", "corpus.yaml", "manifest file to write")
	corpusManifestCmd.Flags().String("name", "quran", "corpus name recorded in the manifest")

	corpusCmd.AddCommand(corpusInfoCmd)
	corpusCmd.AddCommand(corpusManifestCmd)
	rootCmd.AddCommand(corpusCmd)
}
