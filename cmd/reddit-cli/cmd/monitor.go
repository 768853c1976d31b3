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

func (c *Cmd) newMonitorCmd() *cobra.Command {
	flagsMonitor := flags.NewMonitor()

	monitorCmd := &cobra.Command{
		Use:   "monitor POST",
		Short: "Poll a post for new comments",
		Long: "Poll a post for new comments.\n" +
			"The post is checked --max-checks times, --interval apart.\n" +
			"Each new comment prints as soon as it is seen; comments already\n" +
			"printed are not repeated. A summary report follows the last check.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Monitor(cmd.Context(), args[0], flagsMonitor.GetMonitor())
		},
	}

	monitorCmd.Flags().AddFlagSet(flagsMonitor.NewFlagSet())

	return monitorCmd
}
