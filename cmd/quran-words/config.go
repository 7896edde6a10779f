// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/quran-words/internal/corpus"
	"github.com/pdiddy/quran-words/internal/wordstore"
	"github.com/pdiddy/quran-words/pkg/types"
)

// corpusConfig resolves corpus locations from flags, environment, and
// the config file.
func corpusConfig() types.CorpusConfig {
	return types.CorpusConfig{
		TextPath:       viper.GetString("corpus.text"),
		MorphologyPath: viper.GetString("corpus.morphology"),
		ManifestPath:   viper.GetString("corpus.manifest"),
	}
}

func storeConfig() types.StoreConfig {
	return types.StoreConfig{Dir: viper.GetString("store.dir")}
}

func loadCorpus() (*corpus.Corpus, error) {
	cfg := corpusConfig()
	c, err := corpus.Load(cfg, logger)
	if err != nil {
		return nil, err
	}
	st := c.Stats()
	logger.Debug().
		Bool("embedded", cfg.IsEmbedded()).
		Int("chapters", st.Chapters).
		Int("verses", st.Verses).
		Msg("corpus loaded")
	return c, nil
}

func openStore() (*wordstore.Store, error) {
	s, err := wordstore.Open(storeConfig())
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", s.Path()).Str("driver", wordstore.Driver()).Msg("word store opened")
	return s, nil
}
