// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build fullcorpus

package corpus

import "embed"

// bundled is the complete Tanzil Uthmani text and Quranic Arabic Corpus
// morphology, xz-compressed. `mage corpus:bundle` writes both files.
//
//go:embed data/quran-uthmani.xml.xz data/quranic-corpus-morphology.txt.xz
var bundled embed.FS

const (
	bundledText       = "data/quran-uthmani.xml.xz"
	bundledMorphology = "data/quranic-corpus-morphology.txt.xz"
)
