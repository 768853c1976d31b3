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

func (c *Cmd) newSubredditInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subreddit-info SUBREDDIT",
		Short: "Show the profile of a subreddit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.SubredditInfo(cmd.Context(), args[0])
		},
	}
}

func (c *Cmd) newTrendingCmd() *cobra.Command {
	var limit int

	trendingCmd := &cobra.Command{
		Use:   "trending",
		Short: "Show the currently popular subreddits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Trending(cmd.Context(), limit)
		},
	}

	trendingCmd.Flags().IntVarP(&limit, "limit", "l", 10,
		"Maximum number of subreddits.")

	return trendingCmd
}

func (c *Cmd) newFlairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flairs SUBREDDIT",
		Short: "List the post flairs a subreddit offers",
		Long: "List the post flairs a subreddit offers.\n" +
			"The printed ids feed the --flair-id flag of the post command.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Flairs(cmd.Context(), args[0])
		},
	}
}

func (c *Cmd) newModeratorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moderators SUBREDDIT",
		Short: "List the moderators of a subreddit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Moderators(cmd.Context(), args[0])
		},
	}
}

func (c *Cmd) newSubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe SUBREDDIT",
		Short: "Join a subreddit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Subscribe(cmd.Context(), args[0])
		},
	}
}

func (c *Cmd) newUnsubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe SUBREDDIT",
		Short: "Leave a subreddit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Unsubscribe(cmd.Context(), args[0])
		},
	}
}
