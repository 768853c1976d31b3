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
)

func (c *Cmd) newMessageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "message USERNAME SUBJECT BODY",
		Short: "Send a private message",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Message(cmd.Context(), args[0], args[1], args[2])
		},
	}
}

func (c *Cmd) newInboxCmd() *cobra.Command {
	var (
		unreadOnly bool
		limit      int
	)

	inboxCmd := &cobra.Command{
		Use:   "inbox",
		Short: "Show your inbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Inbox(cmd.Context(), unreadOnly, limit)
		},
	}

	inboxCmd.Flags().BoolVarP(&unreadOnly, "unread-only", "u", false,
		"Show only unread messages.")
	inboxCmd.Flags().IntVarP(&limit, "limit", "l", 10,
		"Maximum number of messages.")

	return inboxCmd
}
