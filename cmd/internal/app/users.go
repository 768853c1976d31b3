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

// UserProfile prints a user's account profile.
func (s *Service) UserProfile(ctx context.Context, username string) error {
	account, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Account, error) {
		return s.client.AboutUser(ctx, ParseUsername(username))
	})
	if err != nil {
		s.reportFailure("fetch user profile", err)
		return nil
	}

	logging.PrintAccount(account)

	return nil
}

// UserPosts prints a user's recent posts.
func (s *Service) UserPosts(ctx context.Context, username string, limit int) error {
	posts, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Post, error) {
		return s.client.UserPosts(ctx, ParseUsername(username), limit)
	})
	if err != nil {
		s.reportFailure("fetch user posts", err)
		return nil
	}

	logging.PrintPosts(posts)

	return nil
}

// UserComments prints a user's recent comments.
func (s *Service) UserComments(ctx context.Context, username string, limit int) error {
	comments, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Comment, error) {
		return s.client.UserComments(ctx, ParseUsername(username), limit)
	})
	if err != nil {
		s.reportFailure("fetch user comments", err)
		return nil
	}

	logging.PrintComments(comments)

	return nil
}

// Follow adds a user to the account's friends list.
func (s *Service) Follow(ctx context.Context, username string) error {
	username = ParseUsername(username)

	if err := reddit.Do(ctx, s.client.RetryPolicy(), s.logger, func() error {
		return s.client.Friend(ctx, username)
	}); err != nil {
		s.reportFailure("follow user", err)
		return nil
	}

	fmt.Printf("Now following /u/%s.\n", username)

	return nil
}

// Unfollow removes a user from the account's friends list.
func (s *Service) Unfollow(ctx context.Context, username string) error {
	username = ParseUsername(username)

	if err := reddit.Do(ctx, s.client.RetryPolicy(), s.logger, func() error {
		return s.client.Unfriend(ctx, username)
	}); err != nil {
		s.reportFailure("unfollow user", err)
		return nil
	}

	fmt.Printf("Unfollowed /u/%s.\n", username)

	return nil
}

// FriendsList prints the account's friends.
func (s *Service) FriendsList(ctx context.Context) error {
	friends, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Friend, error) {
		return s.client.Friends(ctx)
	})
	if err != nil {
		s.reportFailure("fetch friends", err)
		return nil
	}

	logging.PrintFriends(friends)

	return nil
}
