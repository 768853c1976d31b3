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

func (c *Cmd) newHotCmd() *cobra.Command {
	flagsHot := flags.NewHot()

	hotCmd := &cobra.Command{
		Use:   "hot SUBREDDIT...",
		Short: "Show the hot posts of one or more subreddits",
		Long: "Show the hot posts of one or more subreddits.\n" +
			"With --parallel greater than one the subreddits are fetched\n" +
			"concurrently; output keeps the order they were given in.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Hot(cmd.Context(), args, flagsHot.GetHot())
		},
	}

	hotCmd.Flags().AddFlagSet(flagsHot.NewFlagSet())

	return hotCmd
}

func (c *Cmd) newResponsesCmd() *cobra.Command {
	var limit int

	responsesCmd := &cobra.Command{
		Use:   "responses POST",
		Short: "Show a post and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Responses(cmd.Context(), args[0], limit)
		},
	}

	responsesCmd.Flags().IntVarP(&limit, "limit", "l", 10,
		"Maximum number of comments to fetch.")

	return responsesCmd
}

func (c *Cmd) newSearchPostsCmd() *cobra.Command {
	var (
		subreddit string
		sort      string
		limit     int
	)

	searchCmd := &cobra.Command{
		Use:   "search-posts QUERY",
		Short: "Search posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.SearchPosts(cmd.Context(), args[0], subreddit, sort, limit)
		},
	}

	searchCmd.Flags().StringVar(&subreddit, "subreddit", "all",
		"Subreddit to search in.")
	searchCmd.Flags().StringVar(&sort, "sort", "relevance",
		"Sort order: relevance, hot, top, new or comments.")
	searchCmd.Flags().IntVarP(&limit, "limit", "l", 10,
		"Maximum number of results.")

	return searchCmd
}

func (c *Cmd) newSearchCommentsCmd() *cobra.Command {
	var (
		subreddit string
		limit     int
	)

	searchCmd := &cobra.Command{
		Use:   "search-comments QUERY",
		Short: "Search recent comments",
		Long: "Search recent comments.\n" +
			"The most recent comments of the subreddit are scanned and the\n" +
			"ones containing QUERY are printed; --limit bounds the scan, not\n" +
			"the number of matches.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.SearchComments(cmd.Context(), args[0], subreddit, limit)
		},
	}

	searchCmd.Flags().StringVar(&subreddit, "subreddit", "all",
		"Subreddit to search in.")
	searchCmd.Flags().IntVarP(&limit, "limit", "l", 100,
		"Number of recent comments to scan.")

	return searchCmd
}

func (c *Cmd) newSearchSubredditsCmd() *cobra.Command {
	var limit int

	searchCmd := &cobra.Command{
		Use:   "search-subreddits QUERY",
		Short: "Search subreddits by name and topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.SearchSubreddits(cmd.Context(), args[0], limit)
		},
	}

	searchCmd.Flags().IntVarP(&limit, "limit", "l", 10,
		"Maximum number of results.")

	return searchCmd
}
