// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink writes a finished JSON document to its destination. File
// output replaces the target atomically so a failed run never leaves a
// truncated file behind.
package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/quran-words/pkg/types"
)

// Write sends data to stdout or to path according to target.
func Write(target types.OutputTarget, path string, data []byte, stdout io.Writer) error {
	switch target {
	case types.TargetStdout, "":
		if _, err := stdout.Write(data); err != nil {
			return &types.IOError{Path: "stdout", Err: err}
		}
		return nil
	case types.TargetFile:
		return WriteFile(path, data)
	default:
		return fmt.Errorf("unknown output target %q", target)
	}
}

// WriteFile replaces path with data. The content is written to a
// temporary file in the same directory, synced, and renamed over path.
func WriteFile(path string, data []byte) (err error) {
	if path == "" {
		return &types.IOError{Path: path, Err: fmt.Errorf("empty output path")}
	}
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	return nil
}
