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

// Package reddit is a client library for the Reddit OAuth2 REST API
// built around resilient execution: every remote operation can be run
// through a retry engine that classifies failures and backs off
// exponentially on the retryable ones.
package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vishwaraja/reddit-cli/internal/api"
	"github.com/vishwaraja/reddit-cli/internal/logging"
	"github.com/vishwaraja/reddit-cli/models"
)

// Vote directions accepted by [Client.Vote].
const (
	VoteUp   = 1
	VoteNone = 0
	VoteDown = -1
)

// Client is the production implementation of [API]: an authenticated
// session handle to the remote service. It is an explicitly passed,
// exclusively owned value; the package keeps no global session state.
//
// Example usage:
//
//	cfg := &reddit.Config{ClientID: ..., ClientSecret: ..., Username: ..., Password: ..., UserAgent: ...}
//
//	client, err := reddit.NewClient(cfg, reddit.WithID("id"))
//	if err != nil {
//		// handle error
//	}
//
//	me, err := reddit.Execute(ctx, nil, nil, func() (*models.Account, error) {
//		return client.Me(ctx)
//	})
type Client struct {
	session     *api.Session
	logger      *slog.Logger
	retryPolicy *models.RetryPolicy
	username    string
	id          string

	// Options collected for the transport session.
	sessionOpts []api.Opt
}

// ClientOpt is a functional option that allows configuring the [Client].
type ClientOpt func(*Client)

// WithID sets the ID for the [Client].
// This ID is used for logging purposes.
func WithID(id string) ClientOpt {
	return func(c *Client) {
		c.id = id
	}
}

// WithLogger sets the logger for the [Client].
func WithLogger(logger *slog.Logger) ClientOpt {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRetryPolicy sets the retry policy handed to the client's
// handlers. It does not affect plain operation methods, which always
// perform a single attempt.
func WithRetryPolicy(policy *models.RetryPolicy) ClientOpt {
	return func(c *Client) {
		c.retryPolicy = policy
	}
}

// WithPacing sets the client-side request rate. An rps of 0 disables
// pacing.
func WithPacing(rps float64, burst int) ClientOpt {
	return func(c *Client) {
		c.sessionOpts = append(c.sessionOpts, api.WithPacing(rps, burst))
	}
}

// WithHTTPClient replaces the transport's HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOpt {
	return func(c *Client) {
		c.sessionOpts = append(c.sessionOpts, api.WithHTTPClient(httpClient))
	}
}

// WithBaseURLs overrides the token and API endpoints. Meant for tests.
func WithBaseURLs(tokenURL, baseURL string) ClientOpt {
	return func(c *Client) {
		c.sessionOpts = append(c.sessionOpts, api.WithBaseURLs(tokenURL, baseURL))
	}
}

// NewClient creates a new client for the given credentials.
//
// options:
//   - [WithID] to set an identifier for the client.
//   - [WithLogger] to set a logger that this client will log to.
//   - [WithRetryPolicy] to set the retry policy used by handlers.
//   - [WithPacing] to change the client-side request rate.
//
// No network traffic happens here; the first operation authenticates.
func NewClient(cfg *Config, opts ...ClientOpt) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config pointer is nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := &Client{
		logger:   slog.Default(),
		username: cfg.Username,
		// #nosec G404
		id: strconv.Itoa(rand.Intn(1000)),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.logger = client.logger.WithGroup("reddit")
	client.logger = logging.WithClient(client.logger, client.id)
	client.logger = logging.WithSession(client.logger, cfg.Username)

	client.retryPolicy = getUsableRetryPolicy(client.retryPolicy)
	if err := client.retryPolicy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid retry policy: %w", err)
	}

	sessionOpts := append([]api.Opt{api.WithLogger(client.logger)}, client.sessionOpts...)

	client.session = api.NewSession(api.Credentials{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Username:     cfg.Username,
		Password:     cfg.Password,
		UserAgent:    cfg.UserAgent,
	}, sessionOpts...)

	return client, nil
}

// Username returns the account name the client authenticates as.
func (c *Client) Username() string {
	return c.username
}

// RetryPolicy returns the policy handlers run with.
func (c *Client) RetryPolicy() *models.RetryPolicy {
	return c.retryPolicy
}

// Monitor starts a polling monitor for new comments on one post.
//   - ctx can be used to cancel the monitor run.
//   - config is the configuration for the monitor run.
func (c *Client) Monitor(ctx context.Context, config *ConfigMonitor) (*MonitorHandler, error) {
	if config == nil {
		return nil, fmt.Errorf("monitor config required")
	}

	config.RetryPolicy = getUsableRetryPolicy(config.RetryPolicy)

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate monitor config: %w", err)
	}

	handler := newMonitorHandler(config, c, c.logger)
	handler.run(ctx)

	return handler, nil
}

// Export starts an export of account data to a local archive.
//   - ctx can be used to cancel the export run.
//   - config is the configuration for the export run.
func (c *Client) Export(ctx context.Context, config *ConfigExport) (*ExportHandler, error) {
	if config == nil {
		return nil, fmt.Errorf("export config required")
	}

	config.RetryPolicy = getUsableRetryPolicy(config.RetryPolicy)

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate export config: %w", err)
	}

	handler := newExportHandler(config, c, c.logger)
	handler.run(ctx)

	return handler, nil
}

// Me implements [API].
func (c *Client) Me(ctx context.Context) (*models.Account, error) {
	var account models.Account
	if err := c.session.Get(ctx, "/api/v1/me", nil, &account); err != nil {
		return nil, fmt.Errorf("fetch identity: %w", err)
	}

	return &account, nil
}

// Submit implements [API].
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (*models.Post, error) {
	form := url.Values{
		"api_type": {"json"},
		"sr":       {req.Subreddit},
		"title":    {req.Title},
	}

	if req.URL != "" {
		form.Set("kind", "link")
		form.Set("url", req.URL)
	} else {
		form.Set("kind", "self")
		form.Set("text", req.Text)
	}

	if req.FlairID != "" {
		form.Set("flair_id", req.FlairID)
	}

	var resp api.JSONResponse
	if err := c.session.PostForm(ctx, "/api/submit", form, &resp); err != nil {
		return nil, fmt.Errorf("submit post: %w", err)
	}

	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("submit post: %w", err)
	}

	var data struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		URL  string `json:"url"`
	}

	if len(resp.JSON.Data) > 0 {
		if err := json.Unmarshal(resp.JSON.Data, &data); err != nil {
			return nil, fmt.Errorf("decode submit response: %w", err)
		}
	}

	return &models.Post{
		ID:        data.ID,
		Name:      data.Name,
		URL:       data.URL,
		Title:     req.Title,
		Subreddit: req.Subreddit,
		Author:    c.username,
	}, nil
}

// PostByID implements [API].
func (c *Client) PostByID(ctx context.Context, id string) (*models.Post, error) {
	query := url.Values{"id": {models.Fullname(models.KindLink, id)}}

	var listing api.Listing
	if err := c.session.Get(ctx, "/api/info", query, &listing); err != nil {
		return nil, fmt.Errorf("fetch post %s: %w", id, err)
	}

	posts, err := api.ChildrenOf[models.Post](&listing, models.KindLink)
	if err != nil {
		return nil, fmt.Errorf("fetch post %s: %w", id, err)
	}

	if len(posts) == 0 {
		return nil, notFoundError("post", id)
	}

	return &posts[0], nil
}

// PostWithComments implements [API].
func (c *Client) PostWithComments(ctx context.Context, id string, limit int) (*models.Post, []models.Comment, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var pair []api.Listing
	if err := c.session.Get(ctx, "/comments/"+url.PathEscape(models.TrimKind(id)), query, &pair); err != nil {
		return nil, nil, fmt.Errorf("fetch comments of %s: %w", id, err)
	}

	if len(pair) != 2 {
		return nil, nil, fmt.Errorf("fetch comments of %s: unexpected listing count %d", id, len(pair))
	}

	posts, err := api.ChildrenOf[models.Post](&pair[0], models.KindLink)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch comments of %s: %w", id, err)
	}

	if len(posts) == 0 {
		return nil, nil, notFoundError("post", id)
	}

	comments, err := api.ChildrenOf[models.Comment](&pair[1], models.KindComment)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch comments of %s: %w", id, err)
	}

	return &posts[0], comments, nil
}

// Comments implements [API].
func (c *Client) Comments(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
	_, comments, err := c.PostWithComments(ctx, postID, limit)
	return comments, err
}

// Hot implements [API].
func (c *Client) Hot(ctx context.Context, subreddit string, limit int) ([]models.Post, error) {
	var listing api.Listing
	if err := c.session.Get(ctx, "/r/"+url.PathEscape(subreddit)+"/hot", limitQuery(limit), &listing); err != nil {
		return nil, fmt.Errorf("fetch hot posts of r/%s: %w", subreddit, err)
	}

	posts, err := api.ChildrenOf[models.Post](&listing, models.KindLink)
	if err != nil {
		return nil, fmt.Errorf("fetch hot posts of r/%s: %w", subreddit, err)
	}

	return posts, nil
}

// SearchPosts implements [API].
func (c *Client) SearchPosts(ctx context.Context, query, subreddit, sort string, limit int) ([]models.Post, error) {
	params := limitQuery(limit)
	params.Set("q", query)

	if sort != "" {
		params.Set("sort", sort)
	}

	path := "/search"
	if subreddit != "" {
		path = "/r/" + url.PathEscape(subreddit) + "/search"
		params.Set("restrict_sr", "1")
	}

	var listing api.Listing
	if err := c.session.Get(ctx, path, params, &listing); err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}

	posts, err := api.ChildrenOf[models.Post](&listing, models.KindLink)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}

	return posts, nil
}

// EditPost implements [API].
func (c *Client) EditPost(ctx context.Context, postID, text string) (*models.Post, error) {
	resp, err := c.editUserText(ctx, models.Fullname(models.KindLink, postID), text)
	if err != nil {
		return nil, fmt.Errorf("edit post %s: %w", postID, err)
	}

	post, err := decodeFirstThing[models.Post](resp)
	if err != nil {
		return nil, fmt.Errorf("edit post %s: %w", postID, err)
	}

	return post, nil
}

// DeletePost implements [API].
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	form := url.Values{"id": {models.Fullname(models.KindLink, postID)}}

	if err := c.session.PostForm(ctx, "/api/del", form, nil); err != nil {
		return fmt.Errorf("delete post %s: %w", postID, err)
	}

	return nil
}

// Comment implements [API].
func (c *Client) Comment(ctx context.Context, postID, text string) (*models.Comment, error) {
	comment, err := c.comment(ctx, models.Fullname(models.KindLink, postID), text)
	if err != nil {
		return nil, fmt.Errorf("comment on post %s: %w", postID, err)
	}

	return comment, nil
}

// Reply implements [API].
func (c *Client) Reply(ctx context.Context, commentID, text string) (*models.Comment, error) {
	comment, err := c.comment(ctx, models.Fullname(models.KindComment, commentID), text)
	if err != nil {
		return nil, fmt.Errorf("reply to comment %s: %w", commentID, err)
	}

	return comment, nil
}

// EditComment implements [API].
func (c *Client) EditComment(ctx context.Context, commentID, text string) (*models.Comment, error) {
	resp, err := c.editUserText(ctx, models.Fullname(models.KindComment, commentID), text)
	if err != nil {
		return nil, fmt.Errorf("edit comment %s: %w", commentID, err)
	}

	comment, err := decodeFirstThing[models.Comment](resp)
	if err != nil {
		return nil, fmt.Errorf("edit comment %s: %w", commentID, err)
	}

	return comment, nil
}

// RecentComments implements [API].
func (c *Client) RecentComments(ctx context.Context, subreddit string, limit int) ([]models.Comment, error) {
	var listing api.Listing
	if err := c.session.Get(ctx, "/r/"+url.PathEscape(subreddit)+"/comments", limitQuery(limit), &listing); err != nil {
		return nil, fmt.Errorf("fetch recent comments of r/%s: %w", subreddit, err)
	}

	comments, err := api.ChildrenOf[models.Comment](&listing, models.KindComment)
	if err != nil {
		return nil, fmt.Errorf("fetch recent comments of r/%s: %w", subreddit, err)
	}

	return comments, nil
}

// Vote implements [API]. The id may address a post or a comment;
// bare ids default to posts.
func (c *Client) Vote(ctx context.Context, id string, dir int) error {
	if dir < VoteDown || dir > VoteUp {
		return fmt.Errorf("invalid vote direction %d", dir)
	}

	form := url.Values{
		"id":  {defaultFullname(id)},
		"dir": {strconv.Itoa(dir)},
	}

	if err := c.session.PostForm(ctx, "/api/vote", form, nil); err != nil {
		return fmt.Errorf("vote on %s: %w", id, err)
	}

	return nil
}

// Save implements [API].
func (c *Client) Save(ctx context.Context, id string) error {
	form := url.Values{"id": {defaultFullname(id)}}

	if err := c.session.PostForm(ctx, "/api/save", form, nil); err != nil {
		return fmt.Errorf("save %s: %w", id, err)
	}

	return nil
}

// Unsave implements [API].
func (c *Client) Unsave(ctx context.Context, id string) error {
	form := url.Values{"id": {defaultFullname(id)}}

	if err := c.session.PostForm(ctx, "/api/unsave", form, nil); err != nil {
		return fmt.Errorf("unsave %s: %w", id, err)
	}

	return nil
}

// Saved implements [API]. Only saved posts are returned; saved
// comments are skipped.
func (c *Client) Saved(ctx context.Context, limit int) ([]models.Post, error) {
	path := "/user/" + url.PathEscape(c.username) + "/saved"

	var listing api.Listing
	if err := c.session.Get(ctx, path, limitQuery(limit), &listing); err != nil {
		return nil, fmt.Errorf("fetch saved posts: %w", err)
	}

	posts, err := api.ChildrenOf[models.Post](&listing, models.KindLink)
	if err != nil {
		return nil, fmt.Errorf("fetch saved posts: %w", err)
	}

	return posts, nil
}

// AboutSubreddit implements [API].
func (c *Client) AboutSubreddit(ctx context.Context, name string) (*models.Subreddit, error) {
	var thing api.Thing
	if err := c.session.Get(ctx, "/r/"+url.PathEscape(name)+"/about", nil, &thing); err != nil {
		return nil, fmt.Errorf("fetch subreddit r/%s: %w", name, err)
	}

	sub, err := api.Decode[models.Subreddit](&thing)
	if err != nil {
		return nil, fmt.Errorf("fetch subreddit r/%s: %w", name, err)
	}

	return &sub, nil
}

// SearchSubreddits implements [API].
func (c *Client) SearchSubreddits(ctx context.Context, query string, limit int) ([]models.Subreddit, error) {
	params := limitQuery(limit)
	params.Set("q", query)

	var listing api.Listing
	if err := c.session.Get(ctx, "/subreddits/search", params, &listing); err != nil {
		return nil, fmt.Errorf("search subreddits: %w", err)
	}

	subs, err := api.ChildrenOf[models.Subreddit](&listing, models.KindSubreddit)
	if err != nil {
		return nil, fmt.Errorf("search subreddits: %w", err)
	}

	return subs, nil
}

// PopularSubreddits implements [API].
func (c *Client) PopularSubreddits(ctx context.Context, limit int) ([]models.Subreddit, error) {
	var listing api.Listing
	if err := c.session.Get(ctx, "/subreddits/popular", limitQuery(limit), &listing); err != nil {
		return nil, fmt.Errorf("fetch popular subreddits: %w", err)
	}

	subs, err := api.ChildrenOf[models.Subreddit](&listing, models.KindSubreddit)
	if err != nil {
		return nil, fmt.Errorf("fetch popular subreddits: %w", err)
	}

	return subs, nil
}

// Subscribe implements [API].
func (c *Client) Subscribe(ctx context.Context, name string) error {
	return c.subscribe(ctx, name, "sub")
}

// Unsubscribe implements [API].
func (c *Client) Unsubscribe(ctx context.Context, name string) error {
	return c.subscribe(ctx, name, "unsub")
}

// Flairs implements [API].
func (c *Client) Flairs(ctx context.Context, subreddit string) ([]models.FlairTemplate, error) {
	// This endpoint serves a bare array, not a Listing.
	var flairs []models.FlairTemplate
	if err := c.session.Get(ctx, "/r/"+url.PathEscape(subreddit)+"/api/link_flair_v2", nil, &flairs); err != nil {
		return nil, fmt.Errorf("fetch flairs of r/%s: %w", subreddit, err)
	}

	return flairs, nil
}

// Moderators implements [API].
func (c *Client) Moderators(ctx context.Context, subreddit string) ([]models.Moderator, error) {
	var resp struct {
		Data struct {
			Children []models.Moderator `json:"children"`
		} `json:"data"`
	}

	if err := c.session.Get(ctx, "/r/"+url.PathEscape(subreddit)+"/about/moderators", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch moderators of r/%s: %w", subreddit, err)
	}

	return resp.Data.Children, nil
}

// AboutUser implements [API].
func (c *Client) AboutUser(ctx context.Context, username string) (*models.Account, error) {
	var thing api.Thing
	if err := c.session.Get(ctx, "/user/"+url.PathEscape(username)+"/about", nil, &thing); err != nil {
		return nil, fmt.Errorf("fetch user u/%s: %w", username, err)
	}

	account, err := api.Decode[models.Account](&thing)
	if err != nil {
		return nil, fmt.Errorf("fetch user u/%s: %w", username, err)
	}

	return &account, nil
}

// UserPosts implements [API].
func (c *Client) UserPosts(ctx context.Context, username string, limit int) ([]models.Post, error) {
	path := "/user/" + url.PathEscape(username) + "/submitted"

	var listing api.Listing
	if err := c.session.Get(ctx, path, limitQuery(limit), &listing); err != nil {
		return nil, fmt.Errorf("fetch posts of u/%s: %w", username, err)
	}

	posts, err := api.ChildrenOf[models.Post](&listing, models.KindLink)
	if err != nil {
		return nil, fmt.Errorf("fetch posts of u/%s: %w", username, err)
	}

	return posts, nil
}

// UserComments implements [API].
func (c *Client) UserComments(ctx context.Context, username string, limit int) ([]models.Comment, error) {
	path := "/user/" + url.PathEscape(username) + "/comments"

	var listing api.Listing
	if err := c.session.Get(ctx, path, limitQuery(limit), &listing); err != nil {
		return nil, fmt.Errorf("fetch comments of u/%s: %w", username, err)
	}

	comments, err := api.ChildrenOf[models.Comment](&listing, models.KindComment)
	if err != nil {
		return nil, fmt.Errorf("fetch comments of u/%s: %w", username, err)
	}

	return comments, nil
}

// Friend implements [API].
func (c *Client) Friend(ctx context.Context, username string) error {
	path := "/api/v1/me/friends/" + url.PathEscape(username)

	if err := c.session.Put(ctx, path, map[string]string{"name": username}, nil); err != nil {
		return fmt.Errorf("follow u/%s: %w", username, err)
	}

	return nil
}

// Unfriend implements [API].
func (c *Client) Unfriend(ctx context.Context, username string) error {
	path := "/api/v1/me/friends/" + url.PathEscape(username)

	if err := c.session.Delete(ctx, path); err != nil {
		return fmt.Errorf("unfollow u/%s: %w", username, err)
	}

	return nil
}

// Friends implements [API].
func (c *Client) Friends(ctx context.Context) ([]models.Friend, error) {
	var resp struct {
		Data struct {
			Children []models.Friend `json:"children"`
		} `json:"data"`
	}

	if err := c.session.Get(ctx, "/api/v1/me/friends", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch friends: %w", err)
	}

	return resp.Data.Children, nil
}

// Compose implements [API].
func (c *Client) Compose(ctx context.Context, to, subject, body string) error {
	form := url.Values{
		"api_type": {"json"},
		"to":       {to},
		"subject":  {subject},
		"text":     {body},
	}

	var resp api.JSONResponse
	if err := c.session.PostForm(ctx, "/api/compose", form, &resp); err != nil {
		return fmt.Errorf("send message to u/%s: %w", to, err)
	}

	if err := resp.Err(); err != nil {
		return fmt.Errorf("send message to u/%s: %w", to, err)
	}

	return nil
}

// Inbox implements [API]. Comment notifications are part of the inbox
// and decode into Message like private messages do.
func (c *Client) Inbox(ctx context.Context, unreadOnly bool, limit int) ([]models.Message, error) {
	path := "/message/inbox"
	if unreadOnly {
		path = "/message/unread"
	}

	var listing api.Listing
	if err := c.session.Get(ctx, path, limitQuery(limit), &listing); err != nil {
		return nil, fmt.Errorf("fetch inbox: %w", err)
	}

	messages, err := api.ChildrenOf[models.Message](&listing, "")
	if err != nil {
		return nil, fmt.Errorf("fetch inbox: %w", err)
	}

	return messages, nil
}

func (c *Client) subscribe(ctx context.Context, name, action string) error {
	form := url.Values{
		"action":  {action},
		"sr_name": {name},
	}

	if err := c.session.PostForm(ctx, "/api/subscribe", form, nil); err != nil {
		return fmt.Errorf("%s r/%s: %w", action, name, err)
	}

	return nil
}

func (c *Client) comment(ctx context.Context, parentFullname, text string) (*models.Comment, error) {
	form := url.Values{
		"api_type": {"json"},
		"thing_id": {parentFullname},
		"text":     {text},
	}

	var resp api.JSONResponse
	if err := c.session.PostForm(ctx, "/api/comment", form, &resp); err != nil {
		return nil, err
	}

	if err := resp.Err(); err != nil {
		return nil, err
	}

	return decodeFirstThing[models.Comment](&resp)
}

func (c *Client) editUserText(ctx context.Context, fullname, text string) (*api.JSONResponse, error) {
	form := url.Values{
		"api_type": {"json"},
		"thing_id": {fullname},
		"text":     {text},
	}

	var resp api.JSONResponse
	if err := c.session.PostForm(ctx, "/api/editusertext", form, &resp); err != nil {
		return nil, err
	}

	if err := resp.Err(); err != nil {
		return nil, err
	}

	return &resp, nil
}

// decodeFirstThing unwraps the first thing of a form endpoint's
// response data.
func decodeFirstThing[T any](resp *api.JSONResponse) (*T, error) {
	var data struct {
		Things []api.Thing `json:"things"`
	}

	if len(resp.JSON.Data) > 0 {
		if err := json.Unmarshal(resp.JSON.Data, &data); err != nil {
			return nil, fmt.Errorf("decode response data: %w", err)
		}
	}

	if len(data.Things) == 0 {
		return nil, errors.New("response carried no object")
	}

	v, err := api.Decode[T](&data.Things[0])
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// defaultFullname completes a bare id to a post fullname; prefixed
// ids pass through, so comments stay addressable.
func defaultFullname(id string) string {
	if models.HasKind(id) {
		return id
	}

	return models.Fullname(models.KindLink, id)
}

func limitQuery(limit int) url.Values {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	return query
}

func notFoundError(kind, id string) *models.APIError {
	return &models.APIError{
		StatusCode: http.StatusNotFound,
		Reason:     "NOT_FOUND",
		Message:    fmt.Sprintf("no %s with id %q", kind, id),
	}
}
