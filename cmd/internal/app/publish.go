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
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vishwaraja/reddit-cli"
	"github.com/vishwaraja/reddit-cli/cmd/internal/logging"
	rModels "github.com/vishwaraja/reddit-cli/models"
)

// Post submits a post. At most one of text and linkURL may be set;
// both empty submits a self post with no body.
func (s *Service) Post(ctx context.Context, subreddit, title, text, linkURL, flairID string) error {
	post, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Post, error) {
		return s.client.Submit(ctx, reddit.SubmitRequest{
			Subreddit: ParseSubreddit(subreddit),
			Title:     title,
			Text:      text,
			URL:       linkURL,
			FlairID:   flairID,
		})
	})
	if err != nil {
		s.reportFailure("submit post", err)
		return nil
	}

	fmt.Println("Post created.")
	logging.PrintPost(post)

	return nil
}

// Comment adds a top-level comment to a post.
func (s *Service) Comment(ctx context.Context, postRef, text string) error {
	postID := ParsePostID(postRef)

	comment, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Comment, error) {
		return s.client.Comment(ctx, postID, text)
	})
	if err != nil {
		s.reportFailure("add comment", err)
		return nil
	}

	fmt.Println("Comment added.")
	logging.PrintComment(comment)

	return nil
}

// Reply answers an existing comment.
func (s *Service) Reply(ctx context.Context, commentRef, text string) error {
	commentID := ParseCommentID(commentRef)

	comment, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Comment, error) {
		return s.client.Reply(ctx, commentID, text)
	})
	if err != nil {
		s.reportFailure("add reply", err)
		return nil
	}

	fmt.Println("Reply added.")
	logging.PrintComment(comment)

	return nil
}

// EditPost replaces the body of one of the account's own posts.
func (s *Service) EditPost(ctx context.Context, postRef, text string) error {
	postID := ParsePostID(postRef)

	post, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Post, error) {
		return s.client.EditPost(ctx, postID, text)
	})
	if err != nil {
		s.reportFailure("edit post", err)
		return nil
	}

	fmt.Println("Post updated.")
	logging.PrintPost(post)

	return nil
}

// EditComment replaces the body of one of the account's own comments.
func (s *Service) EditComment(ctx context.Context, commentRef, text string) error {
	commentID := ParseCommentID(commentRef)

	comment, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Comment, error) {
		return s.client.EditComment(ctx, commentID, text)
	})
	if err != nil {
		s.reportFailure("edit comment", err)
		return nil
	}

	fmt.Println("Comment updated.")
	logging.PrintComment(comment)

	return nil
}

// Delete removes one of the account's own posts. Unless skipPrompt is
// set, the user confirms on stdin first.
func (s *Service) Delete(ctx context.Context, postRef string, skipPrompt bool) error {
	postID := ParsePostID(postRef)

	post, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Post, error) {
		return s.client.PostByID(ctx, postID)
	})
	if err != nil {
		s.reportFailure("delete post", err)
		return nil
	}

	if post.Author != s.client.Username() {
		fmt.Printf("Cannot delete %s: it belongs to /u/%s.\n", postID, post.Author)
		return nil
	}

	if !skipPrompt && !confirm(fmt.Sprintf("Delete %q? [y/N]: ", post.Title)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := reddit.Do(ctx, s.client.RetryPolicy(), s.logger, func() error {
		return s.client.DeletePost(ctx, postID)
	}); err != nil {
		s.reportFailure("delete post", err)
		return nil
	}

	fmt.Println("Post deleted.")

	return nil
}

// confirm reads a yes or no answer from stdin.
func confirm(prompt string) bool {
	fmt.Print(prompt)

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}
