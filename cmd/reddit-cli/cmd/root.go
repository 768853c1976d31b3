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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vishwaraja/reddit-cli/cmd/internal/app"
	"github.com/vishwaraja/reddit-cli/cmd/internal/flags"
)

const VersionDev = "dev"

// Cmd represents the base command when called without any subcommands
type Cmd struct {
	// Version params.
	appVersion string
	commitHash string

	// Root flags
	flagsApp   *flags.App
	flagsRetry *flags.Retry
}

func NewCmd(appVersion, commitHash string) *cobra.Command {
	c := &Cmd{
		appVersion: appVersion,
		commitHash: commitHash,

		flagsApp:   flags.NewApp(),
		flagsRetry: flags.NewRetry(),
	}

	rootCmd := &cobra.Command{
		Use:   "reddit-cli",
		Short: "Reddit command line client",
		Long: "A command line client for the Reddit API.\n" +
			"Credentials are read from a JSON file; a template is written on first run.\n" +
			"Every API call retries transient and rate limited failures with exponential backoff.",
		RunE: c.run,
	}

	// Disable sorting
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().AddFlagSet(c.flagsApp.NewFlagSet())
	rootCmd.PersistentFlags().AddFlagSet(c.flagsRetry.NewFlagSet())

	rootCmd.AddCommand(
		// Publishing.
		c.newPostCmd(),
		c.newDeleteCmd(),
		c.newEditPostCmd(),
		c.newCommentCmd(),
		c.newReplyCmd(),
		c.newEditCommentCmd(),
		// Reading.
		c.newHotCmd(),
		c.newResponsesCmd(),
		c.newMonitorCmd(),
		c.newSearchPostsCmd(),
		c.newSearchCommentsCmd(),
		c.newSearchSubredditsCmd(),
		// Subreddits.
		c.newSubredditInfoCmd(),
		c.newTrendingCmd(),
		c.newFlairsCmd(),
		c.newModeratorsCmd(),
		c.newSubscribeCmd(),
		c.newUnsubscribeCmd(),
		// Engagement.
		c.newUpvoteCmd(),
		c.newDownvoteCmd(),
		c.newSaveCmd(),
		c.newUnsaveCmd(),
		c.newSavedPostsCmd(),
		// Users and messaging.
		c.newUserProfileCmd(),
		c.newUserPostsCmd(),
		c.newUserCommentsCmd(),
		c.newFollowCmd(),
		c.newUnfollowCmd(),
		c.newFriendsCmd(),
		c.newMessageCmd(),
		c.newInboxCmd(),
		// Account data.
		c.newExportCmd(),
	)

	return rootCmd
}

func (c *Cmd) run(cmd *cobra.Command, _ []string) error {
	// Show version.
	if c.flagsApp.Version {
		c.printVersion()

		return nil
	}

	// Without a subcommand there is nothing to run.
	return cmd.Help()
}

// newService builds the logger and the service a subcommand runs with.
func (c *Cmd) newService(cmd *cobra.Command) (*app.Service, error) {
	logger, err := app.NewLogger(
		c.flagsApp.LogLevel,
		c.flagsApp.Verbose,
		c.flagsApp.LogJSON,
		c.flagsApp.NoColor,
	)
	if err != nil {
		return nil, err
	}

	return app.NewService(cmd.Context(), c.flagsApp.GetApp(), c.flagsRetry.GetRetry(), logger)
}

func (c *Cmd) printVersion() {
	version := c.appVersion
	if c.appVersion == VersionDev {
		version += " (" + c.commitHash + ")"
	}

	fmt.Printf("version: %s\n", version)
}
