//go:build mage

// Package main contains Mage build targets for quran-words developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "quran-words"
	cmdPkg  = "./cmd/quran-words"

	// fullTag embeds the complete Quran instead of the sample surahs.
	fullTag = "fullcorpus"
)

// Default target to run when none is specified.
var Default = Build

func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	return "-X main.version=" + version
}

// Build compiles the CLI binary into bin/ with the cgo SQLite driver.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// BuildPurego compiles a CGO-free binary using the pure Go SQLite driver.
func BuildPurego() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName+"-purego")
	env := map[string]string{"CGO_ENABLED": "0"}
	if err := sh.RunWithV(env, "go", "build", "-tags", "purego_sqlite", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// BuildFull compiles the CLI with the complete corpus embedded. Run
// corpus:bundle first to produce the compressed data files.
func BuildFull() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName+"-full")
	if err := sh.RunV("go", "build", "-tags", fullTag, "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// TestFull runs the unit tests against the complete embedded corpus.
func TestFull() error {
	return sh.RunV("go", "test", "-tags", fullTag, "./...")
}

// Test runs the unit tests with both SQLite drivers.
func Test() error {
	if err := sh.RunV("go", "test", "./..."); err != nil {
		return err
	}
	return sh.RunWithV(map[string]string{"CGO_ENABLED": "0"}, "go", "test", "-tags", "purego_sqlite", "./internal/wordstore/...")
}

// Sample builds the CLI and extracts the bundled sample's first surah
// into quran_words.json.
func Sample() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "extract-range", "1")
}

// Stats prints non-blank Go lines per package and the size of the
// corpus data embedded in the binary.
func Stats() error {
	prod, tests := map[string]int{}, map[string]int{}
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != "." && (name[0] == '.' || name[0] == '_' || name == binDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			tests[filepath.Dir(path)] += n
		} else {
			prod[filepath.Dir(path)] += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	pkgs := make([]string, 0, len(prod))
	for pkg := range prod {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	var prodTotal, testTotal int
	for _, pkg := range pkgs {
		fmt.Printf("%-28s %6d %6d\n", pkg, prod[pkg], tests[pkg])
		prodTotal += prod[pkg]
		testTotal += tests[pkg]
	}
	fmt.Printf("%-28s %6d %6d\n", "total (production, tests)", prodTotal, testTotal)

	entries, err := os.ReadDir(corpusDataDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", corpusDataDir, err)
	}
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return err
		}
		fmt.Printf("%-28s %6d KiB\n", filepath.Join(corpusDataDir, e.Name()), info.Size()/1024)
	}
	return nil
}
