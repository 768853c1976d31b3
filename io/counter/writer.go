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

// Package counter measures the bytes flowing into an archive.
package counter

import (
	"io"
	"sync/atomic"
)

// Writer counts the total number of bytes written with it.
// Placed below the compression layer it reports the actual archive
// size rather than the uncompressed payload size.
type Writer struct {
	writer io.WriteCloser
	total  *atomic.Uint64
}

// NewWriter wraps w, adding every written byte count to total.
func NewWriter(w io.WriteCloser, total *atomic.Uint64) *Writer {
	return &Writer{
		writer: w,
		total:  total,
	}
}

func (cw *Writer) Write(p []byte) (n int, err error) {
	n, err = cw.writer.Write(p)
	cw.total.Add(uint64(n))

	return n, err
}

func (cw *Writer) Close() error {
	return cw.writer.Close()
}
