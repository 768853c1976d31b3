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

package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_RequiresPath(t *testing.T) {
	t.Parallel()

	_, err := NewWriter()
	require.ErrorContains(t, err, "path is required")
}

func TestWriter_WriteFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "archive", "export.ndjson")

	w, err := NewWriter(WithFile(path))
	require.NoError(t, err)
	require.Equal(t, localType, w.GetType())

	out, err := w.NewWriter(ctx, "ignored")
	require.NoError(t, err)

	_, err = out.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(data))
}

func TestWriter_WriteDir(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	dir := t.TempDir()

	w, err := NewWriter(WithDir(dir))
	require.NoError(t, err)

	out, err := w.NewWriter(ctx, "export.ndjson")
	require.NoError(t, err)

	_, err = out.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filepath.Join(dir, "export.ndjson"))
	require.NoError(t, err)
	require.Equal(t, "line\n", string(data))
}

func TestWriter_RefusesExistingFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "export.ndjson")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o666))

	w, err := NewWriter(WithFile(path))
	require.NoError(t, err)

	_, err = w.NewWriter(ctx, "ignored")
	require.ErrorContains(t, err, "already exists")
}

func TestWriter_OverwritesExistingFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "export.ndjson")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o666))

	w, err := NewWriter(WithFile(path), WithOverwrite())
	require.NoError(t, err)

	out, err := w.NewWriter(ctx, "ignored")
	require.NoError(t, err)

	_, err = out.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new\n", string(data))
}

func TestWriter_SingleFileCalledTwice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "export.ndjson")

	w, err := NewWriter(WithFile(path), WithOverwrite())
	require.NoError(t, err)

	_, err = w.NewWriter(ctx, "ignored")
	require.NoError(t, err)

	_, err = w.NewWriter(ctx, "ignored")
	require.ErrorContains(t, err, "not allowed")
}

func TestWriter_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w, err := NewWriter(WithFile(filepath.Join(t.TempDir(), "export.ndjson")))
	require.NoError(t, err)

	_, err = w.NewWriter(ctx, "ignored")
	require.ErrorIs(t, err, context.Canceled)
}
