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

func (c *Cmd) newPostCmd() *cobra.Command {
	var (
		text    string
		linkURL string
		flairID string
	)

	postCmd := &cobra.Command{
		Use:   "post SUBREDDIT TITLE",
		Short: "Submit a post to a subreddit",
		Long: "Submit a post to a subreddit.\n" +
			"Without --text or --url an empty self post is created.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Post(cmd.Context(), args[0], args[1], text, linkURL, flairID)
		},
	}

	postCmd.Flags().StringVar(&text, "text", "",
		"Body for a self post.")
	postCmd.Flags().StringVar(&linkURL, "url", "",
		"URL for a link post.")
	postCmd.Flags().StringVar(&flairID, "flair-id", "",
		"Flair template id. Available ids are listed by the flairs command.")
	postCmd.MarkFlagsMutuallyExclusive("text", "url")

	return postCmd
}

func (c *Cmd) newDeleteCmd() *cobra.Command {
	var skipPrompt bool

	deleteCmd := &cobra.Command{
		Use:   "delete POST",
		Short: "Delete one of your posts",
		Long: "Delete one of your posts.\n" +
			"POST accepts a full URL, a t3_ fullname or a bare id.\n" +
			"Posts submitted by other accounts are refused.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.Delete(cmd.Context(), args[0], skipPrompt)
		},
	}

	deleteCmd.Flags().BoolVarP(&skipPrompt, "yes", "y", false,
		"Delete without asking for confirmation.")

	return deleteCmd
}

func (c *Cmd) newEditPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-post POST TEXT",
		Short: "Replace the body of one of your posts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.newService(cmd)
			if err != nil {
				return err
			}

			return service.EditPost(cmd.Context(), args[0], args[1])
		},
	}
}
