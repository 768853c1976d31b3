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

package reddit

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/vishwaraja/reddit-cli/models"
)

func exportGateway() *fakeGateway {
	return &fakeGateway{
		meFn: func(context.Context) (*models.Account, error) {
			return &models.Account{Name: "tester"}, nil
		},
		savedFn: func(context.Context, int) ([]models.Post, error) {
			return []models.Post{
				{ID: "s1", Title: "saved one"},
				{ID: "s2", Title: "saved two"},
			}, nil
		},
		userPostsFn: func(_ context.Context, username string, _ int) ([]models.Post, error) {
			if username != "tester" {
				return nil, &models.APIError{StatusCode: 404, Reason: "USER_DOESNT_EXIST"}
			}

			return []models.Post{{ID: "p1", Title: "mine"}}, nil
		},
		inboxFn: func(context.Context, bool, int) ([]models.Message, error) {
			return []models.Message{
				{ID: "m1", Subject: "hello"},
				{ID: "m2", Subject: "again"},
			}, nil
		},
	}
}

// readArchive decodes an NDJSON archive into kind counts and raw records.
func readArchive(t *testing.T, data []byte) map[string]int {
	t.Helper()

	counts := make(map[string]int)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		var record struct {
			Kind string          `json:"kind"`
			Data json.RawMessage `json:"data"`
		}

		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		require.NotEmpty(t, record.Data)

		counts[record.Kind]++
	}

	require.NoError(t, scanner.Err())

	return counts
}

func TestExportHandler_WritesArchive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	outputFile := filepath.Join(t.TempDir(), "export.ndjson")

	config := &ConfigExport{
		Kinds:       []string{ExportKindSaved, ExportKindPosts, ExportKindInbox},
		OutputFile:  outputFile,
		Limit:       100,
		RetryPolicy: fastRetryPolicy(),
	}
	require.NoError(t, config.validate())

	handler := newExportHandler(config, exportGateway(), testLogger())
	handler.run(ctx)

	require.NoError(t, handler.Wait(ctx))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	counts := readArchive(t, data)
	require.Equal(t, map[string]int{
		ExportKindSaved: 2,
		ExportKindPosts: 1,
		ExportKindInbox: 2,
	}, counts)

	stats := handler.GetStats()
	require.EqualValues(t, 5, stats.GetRecords())
	require.EqualValues(t, len(data), stats.GetBytesWritten())
}

func TestExportHandler_CompressedArchive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	outputFile := filepath.Join(t.TempDir(), "export.ndjson")

	config := &ConfigExport{
		Kinds:             []string{ExportKindSaved},
		OutputFile:        outputFile,
		Limit:             10,
		RetryPolicy:       fastRetryPolicy(),
		CompressionPolicy: NewCompressionPolicy(CompressZSTD, 3),
	}
	require.NoError(t, config.validate())
	require.Equal(t, outputFile+".zst", config.OutputFile)

	handler := newExportHandler(config, exportGateway(), testLogger())
	handler.run(ctx)

	require.NoError(t, handler.Wait(ctx))

	compressed, err := os.ReadFile(config.OutputFile)
	require.NoError(t, err)

	decoder, err := zstd.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	defer decoder.Close()

	var decompressed bytes.Buffer
	_, err = decompressed.ReadFrom(decoder)
	require.NoError(t, err)

	counts := readArchive(t, decompressed.Bytes())
	require.Equal(t, map[string]int{ExportKindSaved: 2}, counts)

	// The byte counter sits below the compression layer.
	require.EqualValues(t, len(compressed), handler.GetStats().GetBytesWritten())
}

func TestExportHandler_NothingToExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gateway := exportGateway()
	gateway.savedFn = func(context.Context, int) ([]models.Post, error) {
		return nil, nil
	}

	config := &ConfigExport{
		Kinds:       []string{ExportKindSaved},
		OutputFile:  filepath.Join(t.TempDir(), "export.ndjson"),
		RetryPolicy: fastRetryPolicy(),
	}
	require.NoError(t, config.validate())

	handler := newExportHandler(config, gateway, testLogger())
	handler.run(ctx)

	err := handler.Wait(ctx)
	require.ErrorIs(t, err, models.ErrNothingToExport)
}

func TestExportHandler_FetchFailureAborts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gateway := exportGateway()
	gateway.savedFn = func(context.Context, int) ([]models.Post, error) {
		return nil, &models.APIError{StatusCode: 403, Reason: "FORBIDDEN"}
	}

	config := &ConfigExport{
		Kinds:       []string{ExportKindSaved, ExportKindInbox},
		OutputFile:  filepath.Join(t.TempDir(), "export.ndjson"),
		RetryPolicy: fastRetryPolicy(),
	}
	require.NoError(t, config.validate())

	handler := newExportHandler(config, gateway, testLogger())
	handler.run(ctx)

	err := handler.Wait(ctx)
	require.Error(t, err)

	termErr, ok := AsTerminalError(err)
	require.True(t, ok)
	require.Equal(t, ClientError, termErr.Kind)
}

func TestConfigExport_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *ConfigExport
		wantErr string
	}{
		{
			name:   "valid",
			config: &ConfigExport{Kinds: []string{ExportKindSaved}, OutputFile: "out.ndjson"},
		},
		{
			name:    "no kinds",
			config:  &ConfigExport{OutputFile: "out.ndjson"},
			wantErr: "at least one export kind is required",
		},
		{
			name:    "unknown kind",
			config:  &ConfigExport{Kinds: []string{"upvotes"}, OutputFile: "out.ndjson"},
			wantErr: `unknown export kind "upvotes"`,
		},
		{
			name:    "empty output file",
			config:  &ConfigExport{Kinds: []string{ExportKindInbox}},
			wantErr: "output file must not be empty",
		},
		{
			name:    "negative limit",
			config:  &ConfigExport{Kinds: []string{ExportKindInbox}, OutputFile: "out.ndjson", Limit: -1},
			wantErr: "limit must not be negative",
		},
		{
			name: "bad compression mode",
			config: &ConfigExport{
				Kinds:             []string{ExportKindInbox},
				OutputFile:        "out.ndjson",
				CompressionPolicy: NewCompressionPolicy("GZIP", 1),
			},
			wantErr: "compression policy invalid",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfigExport_ValidateKeepsExplicitZstExtension(t *testing.T) {
	t.Parallel()

	config := &ConfigExport{
		Kinds:             []string{ExportKindSaved},
		OutputFile:        "archive.zst",
		CompressionPolicy: NewCompressionPolicy(CompressZSTD, 3),
	}

	require.NoError(t, config.validate())
	require.Equal(t, "archive.zst", config.OutputFile)
}

func TestNewDefaultConfigExport(t *testing.T) {
	t.Parallel()

	config := NewDefaultConfigExport()
	require.NoError(t, config.validate())
	require.ElementsMatch(t,
		[]string{ExportKindSaved, ExportKindPosts, ExportKindInbox},
		config.Kinds,
	)
	require.Equal(t, "reddit-export.ndjson", config.OutputFile)
}
