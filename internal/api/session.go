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

// Package api implements the HTTP transport for the Reddit OAuth2 API:
// password-grant authentication for script apps, client-side request
// pacing, and decoding of API responses and error payloads.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/vishwaraja/reddit-cli/models"
)

const (
	// DefaultTokenURL is the password-grant token endpoint.
	DefaultTokenURL = "https://www.reddit.com/api/v1/access_token"
	// DefaultBaseURL is the authenticated API host.
	DefaultBaseURL = "https://oauth.reddit.com"

	requestTimeout = 30 * time.Second

	// Tokens are refreshed this long before they expire.
	tokenExpiryLeeway = time.Minute

	// Default client-side pacing. The documented limit is 100
	// requests per minute per client id.
	defaultPacingRPS   = 1
	defaultPacingBurst = 5
)

// Credentials hold everything a script app needs to authenticate.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
}

// Session is an authenticated transport to the API. It owns the HTTP
// client, the cached bearer token and the request pacer. A Session is
// safe for concurrent use.
type Session struct {
	creds      Credentials
	tokenURL   string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// Opt is a functional option for NewSession.
type Opt func(*Session)

// WithBaseURLs overrides the token and API endpoints.
func WithBaseURLs(tokenURL, baseURL string) Opt {
	return func(s *Session) {
		s.tokenURL = tokenURL
		s.baseURL = baseURL
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Opt {
	return func(s *Session) {
		s.httpClient = client
	}
}

// WithPacing sets the client-side request rate. An rps of 0 disables
// pacing.
func WithPacing(rps float64, burst int) Opt {
	return func(s *Session) {
		if rps == 0 {
			s.limiter = nil
			return
		}

		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the transport logger.
func WithLogger(logger *slog.Logger) Opt {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a transport session for the given credentials.
// No network traffic happens until the first request.
func NewSession(creds Credentials, opts ...Opt) *Session {
	s := &Session{
		creds:    creds,
		tokenURL: DefaultTokenURL,
		baseURL:  DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(defaultPacingRPS), defaultPacingBurst),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// wait blocks until the pacer admits one request.
func (s *Session) wait(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}

	return s.limiter.Wait(ctx)
}

// accessToken returns a valid bearer token, fetching a fresh one when
// the cached token is missing or about to expire.
func (s *Session) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.tokenExpiry) {
		return s.token, nil
	}

	if err := s.wait(ctx); err != nil {
		return "", err
	}

	form := url.Values{
		"grant_type": {"password"},
		"username":   {s.creds.Username},
		"password":   {s.creds.Password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}

	req.SetBasicAuth(s.creds.ClientID, s.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", s.creds.UserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}

	var payload struct {
		AccessToken string  `json:"access_token"`
		TokenType   string  `json:"token_type"`
		ExpiresIn   float64 `json:"expires_in"`
		Error       string  `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	// Credential failures come back as a 200 with an error field.
	if payload.Error != "" {
		return "", &models.APIError{
			StatusCode: http.StatusUnauthorized,
			Reason:     payload.Error,
			Message:    "credentials were rejected by the token endpoint",
		}
	}

	if payload.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no token")
	}

	s.token = payload.AccessToken
	s.tokenExpiry = time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenExpiryLeeway)

	s.logger.Debug("obtained access token",
		slog.String("type", payload.TokenType),
		slog.Time("expiry", s.tokenExpiry),
	)

	return s.token, nil
}

// InvalidateToken drops the cached token so the next request
// re-authenticates.
func (s *Session) InvalidateToken() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.tokenExpiry = time.Time{}
}
