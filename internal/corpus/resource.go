// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// resource is a corpus file as stored and as decoded.
type resource struct {
	name   string
	raw    []byte // bytes as stored; digests are taken over these
	data   []byte // decompressed UTF-8 content
	digest string // blake3 hex digest of raw
}

func readFile(path string) (*resource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(path, raw)
}

func readEmbedded(name string) (*resource, error) {
	raw, err := bundled.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return decode("embedded:"+name, raw)
}

// decode decompresses .xz resources. Content that starts with a byte
// order mark (UTF-8 or UTF-16) is converted to UTF-8 without the mark;
// anything else is kept as stored so the XML reader can honor its
// declared encoding.
func decode(name string, raw []byte) (*resource, error) {
	var r io.Reader = bytes.NewReader(raw)
	if strings.HasSuffix(name, ".xz") {
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream: %w", err)
		}
		r = xr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing: %w", err)
	}

	if hasBOM(data) {
		data, _, err = transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return nil, fmt.Errorf("decoding: %w", err)
		}
	}
	return &resource{name: name, raw: raw, data: data, digest: Digest(raw)}, nil
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF})
}

// Digest returns the hex-encoded blake3 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
