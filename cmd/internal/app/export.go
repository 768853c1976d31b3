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

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vishwaraja/reddit-cli"
	"github.com/vishwaraja/reddit-cli/cmd/internal/logging"
	"github.com/vishwaraja/reddit-cli/cmd/internal/models"
	rModels "github.com/vishwaraja/reddit-cli/models"
)

// Export archives account data into a newline-delimited JSON file.
func (s *Service) Export(ctx context.Context, exportParams *models.Export, compression *models.Compression) error {
	config := reddit.NewDefaultConfigExport()
	config.RetryPolicy = s.client.RetryPolicy()
	config.Kinds = exportParams.Kinds
	config.OutputFile = exportParams.OutputFile
	config.Limit = exportParams.Limit
	config.CompressionPolicy = mapCompressionPolicy(compression)

	handler, err := s.client.Export(ctx, config)
	if err != nil {
		return err
	}

	if err := handler.Wait(ctx); err != nil {
		if errors.Is(err, rModels.ErrNothingToExport) {
			fmt.Println("Nothing to export.")
			return nil
		}

		s.reportFailure("export account data", err)

		return nil
	}

	logging.ReportExport(handler.GetStats(), config.OutputFile, s.isJSON, s.logger)

	return nil
}

// mapCompressionPolicy maps the compression flags to a policy.
// NONE yields nil, the uncompressed default.
func mapCompressionPolicy(compression *models.Compression) *reddit.CompressionPolicy {
	if compression == nil {
		return nil
	}

	mode := strings.ToUpper(compression.Mode)
	if mode == "" || mode == reddit.CompressNone {
		return nil
	}

	return reddit.NewCompressionPolicy(mode, compression.Level)
}
