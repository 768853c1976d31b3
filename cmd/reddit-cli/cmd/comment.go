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

func (c *Cmd) newCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment POST TEXT",
		Short: "Add a top-level comment to a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Comment(cmd.Context(), args[0], args[1])
		},
	}
}

func (c *Cmd) newReplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reply COMMENT TEXT",
		Short: "Reply to a comment",
		Long: "Reply to a comment.\n" +
			"COMMENT accepts a full comment URL, a t1_ fullname or a bare id.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Reply(cmd.Context(), args[0], args[1])
		},
	}
}

func (c *Cmd) newEditCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-comment COMMENT TEXT",
		Short: "Replace the body of one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.EditComment(cmd.Context(), args[0], args[1])
		},
	}
}
