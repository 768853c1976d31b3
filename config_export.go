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
	"fmt"
	"slices"
	"strings"

	"github.com/vishwaraja/reddit-cli/models"
)

// Export kinds, the categories of account data an export can archive.
const (
	// ExportKindSaved exports the account's saved posts.
	ExportKindSaved = "saved"
	// ExportKindPosts exports the account's submitted posts.
	ExportKindPosts = "posts"
	// ExportKindInbox exports the account's inbox messages.
	ExportKindInbox = "inbox"
)

const zstdExtension = ".zst"

// ConfigExport contains configuration for the export operation.
type ConfigExport struct {
	// RetryPolicy governs how each fetch is retried.
	// If nil, the client's default policy is used.
	RetryPolicy *models.RetryPolicy
	// CompressionPolicy describes archive compression.
	// If nil, the archive is written uncompressed.
	CompressionPolicy *CompressionPolicy
	// Kinds lists the data categories to export.
	Kinds []string
	// OutputFile is the archive path. When ZSTD compression is
	// enabled a missing .zst extension is appended during validation.
	OutputFile string
	// Limit caps the number of records fetched per kind.
	// Zero means the gateway default.
	Limit int
}

// NewDefaultConfigExport returns an export config covering every kind.
func NewDefaultConfigExport() *ConfigExport {
	return &ConfigExport{
		Kinds:      []string{ExportKindSaved, ExportKindPosts, ExportKindInbox},
		OutputFile: "reddit-export.ndjson",
		Limit:      100,
	}
}

func (c *ConfigExport) validate() error {
	if len(c.Kinds) == 0 {
		return fmt.Errorf("at least one export kind is required")
	}

	for _, kind := range c.Kinds {
		if !isValidExportKind(kind) {
			return fmt.Errorf("unknown export kind %q", kind)
		}
	}

	if c.OutputFile == "" {
		return fmt.Errorf("output file must not be empty")
	}

	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}

	if err := c.CompressionPolicy.validate(); err != nil {
		return fmt.Errorf("compression policy invalid: %w", err)
	}

	if c.CompressionPolicy.isCompressionEnabled() && !strings.HasSuffix(c.OutputFile, zstdExtension) {
		c.OutputFile += zstdExtension
	}

	if err := c.RetryPolicy.Validate(); err != nil {
		return fmt.Errorf("retry policy invalid: %w", err)
	}

	return nil
}

func isValidExportKind(kind string) bool {
	return slices.Contains([]string{ExportKindSaved, ExportKindPosts, ExportKindInbox}, kind)
}
