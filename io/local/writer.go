// Copyright 2025 The reddit-cli Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package local writes export archives to the local filesystem.
package local

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
)

const bufferSize = 256 * 1024 // 256kb

const localType = "local"

// Writer represents a local storage writer.
type Writer struct {
	// Optional parameters.
	options
	// Sync for writing to one file.
	called atomic.Bool
}

// NewWriter creates a new writer for local directory/file writes.
// Must be called with WithDir(path string) or WithFile(path string) - mandatory.
// Can be called with WithOverwrite() - optional.
func NewWriter(opts ...Opt) (*Writer, error) {
	w := &Writer{}

	for _, opt := range opts {
		opt(&w.options)
	}

	if w.path == "" {
		return nil, fmt.Errorf("path is required, use WithDir(path string) or WithFile(path string) to set")
	}

	dir := w.path
	if !w.isDir {
		dir = filepath.Dir(w.path)
	}

	if err := makeDir(dir); err != nil {
		return nil, err
	}

	return w, nil
}

// makeDir creates the archive directory if it does not exist.
func makeDir(dir string) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("failed to create archive directory %s: %w", dir, err)
	}

	return nil
}

type bufferedFile struct {
	*bufio.Writer
	closer io.Closer
}

func (bf *bufferedFile) Close() error {
	err := bf.Writer.Flush()
	if err != nil {
		return err
	}

	return bf.closer.Close()
}

// NewWriter creates a new archive file at the configured path.
// The file name is based on the specified fileName.
func (w *Writer) NewWriter(ctx context.Context, fileName string) (io.WriteCloser, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	// protection for single file writes.
	if !w.isDir {
		if !w.called.CompareAndSwap(false, true) {
			return nil, fmt.Errorf("parallel writing to a single file is not allowed")
		}
	}
	// We ignore `fileName` if `Writer` was initialized with WithFile().
	filePath := w.path
	if w.isDir {
		filePath = filepath.Join(w.path, fileName)
	}

	if !w.overwrite {
		if _, err := os.Stat(filePath); err == nil {
			return nil, fmt.Errorf("file %s already exists", filePath)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}

	return &bufferedFile{bufio.NewWriterSize(file, bufferSize), file}, nil
}

// GetType return `localType` type of storage. Used in logging.
func (w *Writer) GetType() string {
	return localType
}
