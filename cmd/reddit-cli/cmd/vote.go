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
	"github.com/vishwaraja/reddit-cli"
)

func (c *Cmd) newUpvoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upvote ID",
		Short: "Upvote a post or comment",
		Long: "Upvote a post or comment.\n" +
			"ID accepts a post URL, a bare post id, or a t3_/t1_ fullname;\n" +
			"comments need their t1_ fullname.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Vote(cmd.Context(), args[0], reddit.VoteUp)
		},
	}
}

func (c *Cmd) newDownvoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "downvote ID",
		Short: "Downvote a post or comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Vote(cmd.Context(), args[0], reddit.VoteDown)
		},
	}
}

func (c *Cmd) newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save ID",
		Short: "Save a post or comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Save(cmd.Context(), args[0])
		},
	}
}

func (c *Cmd) newUnsaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsave ID",
		Short: "Remove a post or comment from your saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Unsave(cmd.Context(), args[0])
		},
	}
}

func (c *Cmd) newSavedPostsCmd() *cobra.Command {
	var limit int

	savedCmd := &cobra.Command{
		Use:   "saved-posts",
		Short: "List your saved posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.SavedPosts(cmd.Context(), limit)
		},
	}

	savedCmd.Flags().IntVarP(&limit, "limit", "l", 10,
		"Maximum number of posts.")

	return savedCmd
}
