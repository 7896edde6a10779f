// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Manifest names a corpus's resources and pins their content. Paths are
// relative to the manifest file.
//
//	name: tanzil-uthmani
//	text: quran-uthmani.xml.xz
//	morphology: quranic-corpus-morphology-0.4.txt.xz
//	blake3:
//	  text: 9f2c...
//	  morphology: 41ab...
type Manifest struct {
	Name       string         `yaml:"name"`
	Text       string         `yaml:"text"`
	Morphology string         `yaml:"morphology,omitempty"`
	BLAKE3     ManifestDigest `yaml:"blake3"`
}

// ManifestDigest holds expected blake3 digests. An empty digest is not
// checked.
type ManifestDigest struct {
	Text       string `yaml:"text,omitempty"`
	Morphology string `yaml:"morphology,omitempty"`
}

// ReadManifest parses the manifest at path and resolves its resource
// paths against the manifest's directory.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Text == "" {
		return nil, fmt.Errorf("manifest has no text resource")
	}

	dir := filepath.Dir(path)
	m.Text = resolve(dir, m.Text)
	if m.Morphology != "" {
		m.Morphology = resolve(dir, m.Morphology)
	}
	return &m, nil
}

// WriteManifest writes m to path as YAML.
func WriteManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func verifyDigest(r *resource, want string) error {
	if want == "" || want == r.digest {
		return nil
	}
	return fmt.Errorf("blake3 mismatch for %s: manifest %s, file %s", r.name, want, r.digest)
}

// BuildManifest pins the resources at textPath and morphologyPath for a
// manifest to be written at manifestPath. Resource paths are stored
// relative to the manifest directory when possible.
func BuildManifest(name, manifestPath, textPath, morphologyPath string) (*Manifest, error) {
	dir := filepath.Dir(manifestPath)
	m := &Manifest{Name: name}

	raw, err := os.ReadFile(textPath)
	if err != nil {
		return nil, err
	}
	m.Text = relative(dir, textPath)
	m.BLAKE3.Text = Digest(raw)

	if morphologyPath != "" {
		raw, err := os.ReadFile(morphologyPath)
		if err != nil {
			return nil, err
		}
		m.Morphology = relative(dir, morphologyPath)
		m.BLAKE3.Morphology = Digest(raw)
	}
	return m, nil
}

func relative(dir, p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(absDir, abs)
	if err != nil {
		return abs
	}
	return rel
}
