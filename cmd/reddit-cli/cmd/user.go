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

func (c *Cmd) newUserProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user-profile USERNAME",
		Short: "Show a user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.UserProfile(cmd.Context(), args[0])
		},
	}
}

func (c *Cmd) newUserPostsCmd() *cobra.Command {
	var limit int

	userPostsCmd := &cobra.Command{
		Use:   "user-posts USERNAME",
		Short: "List a user's recent posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.UserPosts(cmd.Context(), args[0], limit)
		},
	}

	userPostsCmd.Flags().IntVarP(&limit, "limit", "l", 10,
		"Maximum number of posts.")

	return userPostsCmd
}

func (c *Cmd) newUserCommentsCmd() *cobra.Command {
	var limit int

	userCommentsCmd := &cobra.Command{
		Use:   "user-comments USERNAME",
		Short: "List a user's recent comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.UserComments(cmd.Context(), args[0], limit)
		},
	}

	userCommentsCmd.Flags().IntVarP(&limit, "limit", "l", 10,
		"Maximum number of comments.")

	return userCommentsCmd
}

func (c *Cmd) newFollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow USERNAME",
		Short: "Add a user to your friends list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Follow(cmd.Context(), args[0])
		},
	}
}

func (c *Cmd) newUnfollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow USERNAME",
		Short: "Remove a user from your friends list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Unfollow(cmd.Context(), args[0])
		},
	}
}

func (c *Cmd) newFriendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "friends",
		Short: "List your friends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.FriendsList(cmd.Context())
		},
	}
}
