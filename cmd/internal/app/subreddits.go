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

package app

import (
	"context"
	"fmt"

	"github.com/vishwaraja/reddit-cli"
	"github.com/vishwaraja/reddit-cli/cmd/internal/logging"
	rModels "github.com/vishwaraja/reddit-cli/models"
)

// SubredditInfo prints the profile of a subreddit.
func (s *Service) SubredditInfo(ctx context.Context, name string) error {
	sub, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Subreddit, error) {
		return s.client.AboutSubreddit(ctx, ParseSubreddit(name))
	})
	if err != nil {
		s.reportFailure("fetch subreddit info", err)
		return nil
	}

	logging.PrintSubreddit(sub)

	return nil
}

// Flairs prints the flair templates a subreddit offers for posts.
func (s *Service) Flairs(ctx context.Context, subreddit string) error {
	flairs, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.FlairTemplate, error) {
		return s.client.Flairs(ctx, ParseSubreddit(subreddit))
	})
	if err != nil {
		s.reportFailure("fetch flairs", err)
		return nil
	}

	logging.PrintFlairs(flairs)

	return nil
}

// Moderators prints the moderator roster of a subreddit.
func (s *Service) Moderators(ctx context.Context, subreddit string) error {
	mods, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Moderator, error) {
		return s.client.Moderators(ctx, ParseSubreddit(subreddit))
	})
	if err != nil {
		s.reportFailure("fetch moderators", err)
		return nil
	}

	logging.PrintModerators(mods)

	return nil
}

// Subscribe joins a subreddit.
func (s *Service) Subscribe(ctx context.Context, name string) error {
	name = ParseSubreddit(name)

	if err := reddit.Do(ctx, s.client.RetryPolicy(), s.logger, func() error {
		return s.client.Subscribe(ctx, name)
	}); err != nil {
		s.reportFailure("subscribe", err)
		return nil
	}

	fmt.Printf("Subscribed to r/%s.\n", name)

	return nil
}

// Unsubscribe leaves a subreddit.
func (s *Service) Unsubscribe(ctx context.Context, name string) error {
	name = ParseSubreddit(name)

	if err := reddit.Do(ctx, s.client.RetryPolicy(), s.logger, func() error {
		return s.client.Unsubscribe(ctx, name)
	}); err != nil {
		s.reportFailure("unsubscribe", err)
		return nil
	}

	fmt.Printf("Unsubscribed from r/%s.\n", name)

	return nil
}
