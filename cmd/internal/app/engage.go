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

// Vote applies a vote. The reference may be a post URL, a bare id or
// a fullname; t1_ fullnames address comments.
func (s *Service) Vote(ctx context.Context, ref string, dir int) error {
	id := ParsePostID(ref)

	if err := reddit.Do(ctx, s.client.RetryPolicy(), s.logger, func() error {
		return s.client.Vote(ctx, id, dir)
	}); err != nil {
		s.reportFailure("vote", err)
		return nil
	}

	switch dir {
	case reddit.VoteUp:
		fmt.Println("Upvoted.")
	case reddit.VoteDown:
		fmt.Println("Downvoted.")
	default:
		fmt.Println("Vote cleared.")
	}

	return nil
}

// Save adds a post or comment to the account's saved list.
func (s *Service) Save(ctx context.Context, ref string) error {
	id := ParsePostID(ref)

	if err := reddit.Do(ctx, s.client.RetryPolicy(), s.logger, func() error {
		return s.client.Save(ctx, id)
	}); err != nil {
		s.reportFailure("save", err)
		return nil
	}

	fmt.Println("Saved.")

	return nil
}

// Unsave removes a post or comment from the account's saved list.
func (s *Service) Unsave(ctx context.Context, ref string) error {
	id := ParsePostID(ref)

	if err := reddit.Do(ctx, s.client.RetryPolicy(), s.logger, func() error {
		return s.client.Unsave(ctx, id)
	}); err != nil {
		s.reportFailure("unsave", err)
		return nil
	}

	fmt.Println("Unsaved.")

	return nil
}

// SavedPosts prints the account's saved posts.
func (s *Service) SavedPosts(ctx context.Context, limit int) error {
	posts, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Post, error) {
		return s.client.Saved(ctx, limit)
	})
	if err != nil {
		s.reportFailure("fetch saved posts", err)
		return nil
	}

	logging.PrintPosts(posts)

	return nil
}
