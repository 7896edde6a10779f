// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quran-words CLI. It extracts
// Quranic words with their transliteration and morphology and writes
// them as JSON.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quran-words/internal/logging"
	"github.com/pdiddy/quran-words/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in the root pre-run from log.level.
var logger = zerolog.Nop()

// rootCmd is the base command for the quran-words CLI.
var rootCmd = &cobra.Command{
	Use:   "quran-words",
	Short: "Extract Quranic words, transliterations, and morphology as JSON",
	Long: `quran-words reads a Quranic text corpus and its word-level morphology
and writes the words of a verse or of a range of chapters as JSON.

extract-range writes every word of chapters 1..N to quran_words.json.
extract-verse prints the words of one verse to standard output.
import loads extracted words into a local SQLite store that extract-verse
can read back with --source db.

Without --corpus or --manifest a bundled sample corpus is used (chapters
1, 112, and 114).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetString("log.level"), cmd.ErrOrStderr())
		if err != nil {
			return &types.ArgumentError{Name: "log level", Value: viper.GetString("log.level"), Message: err.Error()}
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./quran-words.yaml or ~/.config/quran-words/quran-words.yaml)")
	flags.String("corpus", "", "Tanzil XML text file, optionally .xz compressed")
	flags.String("morphology", "", "Quranic Arabic Corpus morphology file, optionally .xz compressed")
	flags.String("manifest", "", "corpus manifest naming text, morphology, and blake3 digests")
	flags.String("db-dir", ".", "directory holding the word store database")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	for key, name := range map[string]string{
		"corpus.text":       "corpus",
		"corpus.morphology": "morphology",
		"corpus.manifest":   "manifest",
		"store.dir":         "db-dir",
		"log.level":         "log-level",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quran-words")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quran-words"))
		}
	}

	viper.SetEnvPrefix("QURAN_WORDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "reading config %s: %v\n", cfgFile, err)
	}
}

// reportError prints err for the user and returns the exit status.
// Argument errors are followed by the command's usage; provider failures
// are logged with their full cause chain.
func reportError(cmd *cobra.Command, err error, w io.Writer) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	switch {
	case errors.Is(err, types.ErrInvalidArgument):
		if cmd != nil {
			fmt.Fprint(w, cmd.UsageString())
		}
	case errors.Is(err, types.ErrProviderFailure):
		logger.Error().Err(err).Msg("corpus provider failed")
	}
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	cmd, err := rootCmd.ExecuteContextC(ctx)
	stop()
	if err != nil {
		os.Exit(reportError(cmd, err, os.Stderr))
	}
}
