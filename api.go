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

package reddit

import (
	"context"

	"github.com/vishwaraja/reddit-cli/models"
)

// SubmitRequest describes a new submission. A non-empty URL makes a
// link post, otherwise Text becomes the body of a self post.
type SubmitRequest struct {
	Subreddit string
	Title     string
	Text      string
	URL       string
	FlairID   string
}

// API is the capability surface of the remote service, one method per
// operation. Client is the production implementation; tests substitute
// fakes of this interface.
//
// Every method performs exactly one attempt. Callers that want retry
// semantics run the call through Execute.
//
//go:generate mockery --name API
type API interface {
	// Me returns the authenticated account. It doubles as the
	// connectivity check at startup.
	Me(ctx context.Context) (*models.Account, error)

	Submit(ctx context.Context, req SubmitRequest) (*models.Post, error)
	PostByID(ctx context.Context, id string) (*models.Post, error)
	PostWithComments(ctx context.Context, id string, limit int) (*models.Post, []models.Comment, error)
	Comments(ctx context.Context, postID string, limit int) ([]models.Comment, error)
	Hot(ctx context.Context, subreddit string, limit int) ([]models.Post, error)
	SearchPosts(ctx context.Context, query, subreddit, sort string, limit int) ([]models.Post, error)
	EditPost(ctx context.Context, postID, text string) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) error

	Comment(ctx context.Context, postID, text string) (*models.Comment, error)
	Reply(ctx context.Context, commentID, text string) (*models.Comment, error)
	EditComment(ctx context.Context, commentID, text string) (*models.Comment, error)
	RecentComments(ctx context.Context, subreddit string, limit int) ([]models.Comment, error)

	Vote(ctx context.Context, id string, dir int) error
	Save(ctx context.Context, id string) error
	Unsave(ctx context.Context, id string) error
	Saved(ctx context.Context, limit int) ([]models.Post, error)

	AboutSubreddit(ctx context.Context, name string) (*models.Subreddit, error)
	SearchSubreddits(ctx context.Context, query string, limit int) ([]models.Subreddit, error)
	PopularSubreddits(ctx context.Context, limit int) ([]models.Subreddit, error)
	Subscribe(ctx context.Context, name string) error
	Unsubscribe(ctx context.Context, name string) error
	Flairs(ctx context.Context, subreddit string) ([]models.FlairTemplate, error)
	Moderators(ctx context.Context, subreddit string) ([]models.Moderator, error)

	AboutUser(ctx context.Context, username string) (*models.Account, error)
	UserPosts(ctx context.Context, username string, limit int) ([]models.Post, error)
	UserComments(ctx context.Context, username string, limit int) ([]models.Comment, error)
	Friend(ctx context.Context, username string) error
	Unfriend(ctx context.Context, username string) error
	Friends(ctx context.Context) ([]models.Friend, error)

	Compose(ctx context.Context, to, subject, body string) error
	Inbox(ctx context.Context, unreadOnly bool, limit int) ([]models.Message, error)
}
