//go:build mage

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/ulikunitz/xz"
)

const corpusDataDir = "internal/corpus/data"

// Corpus groups targets that prepare corpus resources.
type Corpus mg.Namespace

// Manifest pins a Tanzil text file and a morphology file in corpus.yaml
// next to the text.
func (Corpus) Manifest(text, morphology string) error {
	mg.Deps(Build)
	out := filepath.Join(filepath.Dir(text), "corpus.yaml")
	args := []string{"corpus", "manifest", "--output", out, text}
	if morphology != "" {
		args = append(args, morphology)
	}
	if err := sh.RunV(filepath.Join(binDir, binName), args...); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Bundle compresses a downloaded Tanzil Uthmani XML file and the
// Quranic Arabic Corpus morphology file into the data directory that
// the fullcorpus build embeds.
func (Corpus) Bundle(text, morphology string) error {
	files := map[string]string{
		text:       "quran-uthmani.xml.xz",
		morphology: "quranic-corpus-morphology.txt.xz",
	}
	for src, name := range files {
		dst := filepath.Join(corpusDataDir, name)
		if err := compressXZ(src, dst); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", dst)
	}
	return nil
}

// Info prints statistics for the configured corpus.
func (Corpus) Info() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "corpus", "info")
}

func compressXZ(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	w, err := xz.NewWriter(out)
	if err != nil {
		out.Close()
		return fmt.Errorf("xz writer: %w", err)
	}
	if _, err := io.Copy(w, in); err != nil {
		out.Close()
		return fmt.Errorf("compressing %s: %w", src, err)
	}
	if err := w.Close(); err != nil {
		out.Close()
		return fmt.Errorf("compressing %s: %w", src, err)
	}
	return out.Close()
}
