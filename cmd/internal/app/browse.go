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
	"strings"

	"github.com/vishwaraja/reddit-cli"
	"github.com/vishwaraja/reddit-cli/cmd/internal/logging"
	"github.com/vishwaraja/reddit-cli/cmd/internal/models"
	rModels "github.com/vishwaraja/reddit-cli/models"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Hot prints the hot posts of the given subreddits. Multiple
// subreddits fan out, bounded by the parallel flag; results print in
// the order requested.
func (s *Service) Hot(ctx context.Context, subreddits []string, hotParams *models.Hot) error {
	if err := hotParams.Validate(); err != nil {
		return err
	}

	results := make([][]rModels.Post, len(subreddits))

	group, gctx := errgroup.WithContext(ctx)
	limiter := semaphore.NewWeighted(int64(hotParams.Parallel))

	for i, name := range subreddits {
		i, name := i, name
		group.Go(func() error {
			if err := limiter.Acquire(gctx, 1); err != nil {
				return err
			}
			defer limiter.Release(1)

			posts, err := reddit.Execute(gctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Post, error) {
				return s.client.Hot(gctx, ParseSubreddit(name), hotParams.Limit)
			})
			if err != nil {
				return fmt.Errorf("r/%s: %w", ParseSubreddit(name), err)
			}

			results[i] = posts

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		s.reportFailure("fetch hot posts", err)
		return nil
	}

	for i, name := range subreddits {
		fmt.Printf("Hot in r/%s:\n", ParseSubreddit(name))
		logging.PrintPosts(results[i])
		fmt.Println()
	}

	return nil
}

// Responses prints a post and its comments, flattened.
func (s *Service) Responses(ctx context.Context, postRef string, limit int) error {
	postID := ParsePostID(postRef)

	thread, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (postThread, error) {
		post, comments, err := s.client.PostWithComments(ctx, postID, limit)
		return postThread{post: post, comments: comments}, err
	})
	if err != nil {
		s.reportFailure("fetch responses", err)
		return nil
	}

	logging.PrintPost(thread.post)
	fmt.Println()
	fmt.Printf("%d responses:\n", len(thread.comments))
	logging.PrintComments(thread.comments)

	return nil
}

type postThread struct {
	post     *rModels.Post
	comments []rModels.Comment
}

// SearchPosts prints the posts matching a query.
func (s *Service) SearchPosts(ctx context.Context, query, subreddit, sort string, limit int) error {
	posts, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Post, error) {
		return s.client.SearchPosts(ctx, query, ParseSubreddit(subreddit), sort, limit)
	})
	if err != nil {
		s.reportFailure("search posts", err)
		return nil
	}

	logging.PrintPosts(posts)

	return nil
}

// SearchComments scans the most recent comments of a subreddit and
// prints the ones whose body contains the query. The limit bounds the
// scan, not the matches.
func (s *Service) SearchComments(ctx context.Context, query, subreddit string, limit int) error {
	comments, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Comment, error) {
		return s.client.RecentComments(ctx, ParseSubreddit(subreddit), limit)
	})
	if err != nil {
		s.reportFailure("search comments", err)
		return nil
	}

	needle := strings.ToLower(query)
	matches := make([]rModels.Comment, 0, len(comments))

	for _, comment := range comments {
		if strings.Contains(strings.ToLower(comment.Body), needle) {
			matches = append(matches, comment)
		}
	}

	logging.PrintComments(matches)

	return nil
}

// SearchSubreddits prints the subreddits matching a query.
func (s *Service) SearchSubreddits(ctx context.Context, query string, limit int) error {
	subs, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Subreddit, error) {
		return s.client.SearchSubreddits(ctx, query, limit)
	})
	if err != nil {
		s.reportFailure("search subreddits", err)
		return nil
	}

	logging.PrintSubreddits(subs)

	return nil
}

// Trending prints the currently popular subreddits.
func (s *Service) Trending(ctx context.Context, limit int) error {
	subs, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Subreddit, error) {
		return s.client.PopularSubreddits(ctx, limit)
	})
	if err != nil {
		s.reportFailure("fetch trending subreddits", err)
		return nil
	}

	logging.PrintSubreddits(subs)

	return nil
}
