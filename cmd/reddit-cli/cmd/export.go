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

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vishwaraja/reddit-cli/cmd/internal/flags"
)

func (c *Cmd) newExportCmd() *cobra.Command {
	flagsExport := flags.NewExport()
	flagsCompression := flags.NewCompression()

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Archive your account data to a file",
		Long: "Archive your account data to a file.\n" +
			"Saved posts, submitted posts and inbox messages are fetched in\n" +
			"parallel and written as newline-delimited JSON, optionally\n" +
			"compressed with zstd.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Export(cmd.Context(),
				flagsExport.GetExport(), flagsCompression.GetCompression())
		},
	}

	exportCmd.Flags().AddFlagSet(flagsExport.NewFlagSet())
	exportCmd.Flags().AddFlagSet(flagsCompression.NewFlagSet())

	return exportCmd
}
