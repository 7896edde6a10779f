// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !fullcorpus

package corpus

import "embed"

// bundled is the corpus used when no resource path is configured. The
// default build carries surahs 1, 112, and 114 with morphology for surah
// 1; build with -tags fullcorpus after `mage corpus:bundle` to embed the
// complete text and morphology instead.
//
//go:embed data/sample.xml data/sample-morphology.txt
var bundled embed.FS

const (
	bundledText       = "data/sample.xml"
	bundledMorphology = "data/sample-morphology.txt"
)
