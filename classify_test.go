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
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vishwaraja/reddit-cli/models"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "http 429 from the api",
			err:  &models.APIError{StatusCode: 429, Reason: "RATELIMIT"},
			want: RateLimited,
		},
		{
			name: "rate limit marker in a plain error",
			err:  errors.New("request rejected: RATE_LIMIT exceeded"),
			want: RateLimited,
		},
		{
			name: "rate limit marker is matched case-insensitively",
			err:  errors.New("rate_limit threshold reached"),
			want: RateLimited,
		},
		{
			name: "429 anywhere in the message",
			err:  errors.New("received 429 HTTP response"),
			want: RateLimited,
		},
		{
			name: "http 401 from the api",
			err:  &models.APIError{StatusCode: 401},
			want: Unauthorized,
		},
		{
			name: "unauthorized marker in a plain error",
			err:  errors.New("login failed: UNAUTHORIZED access"),
			want: Unauthorized,
		},
		{
			name: "401 anywhere in the message",
			err:  errors.New("oauth token rejected with status 401"),
			want: Unauthorized,
		},
		{
			name: "rate limiting wins over authentication",
			err:  errors.New("429 while refreshing unauthorized session"),
			want: RateLimited,
		},
		{
			name: "other api error is a client error",
			err:  &models.APIError{StatusCode: 404, Reason: "SUBREDDIT_NOEXIST", Message: "that subreddit does not exist"},
			want: ClientError,
		},
		{
			name: "api error delivered in a 200 body",
			err:  &models.APIError{StatusCode: 200, Reason: "NO_TEXT", Message: "we need something here"},
			want: ClientError,
		},
		{
			name: "wrapped api error keeps its class",
			err:  fmt.Errorf("submit post: %w", &models.APIError{StatusCode: 403, Reason: "SUBREDDIT_NOTALLOWED"}),
			want: ClientError,
		},
		{
			name: "wrapped rate limited api error keeps its class",
			err:  fmt.Errorf("fetch comments: %w", &models.APIError{StatusCode: 429}),
			want: RateLimited,
		},
		{
			name: "network error is transient",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			want: Transient,
		},
		{
			name: "plain error is transient",
			err:  errors.New("unexpected EOF"),
			want: Transient,
		},
		{
			name: "server error is transient",
			err:  errors.New("server error: 502 Bad Gateway"),
			want: Transient,
		},
		{
			name: "nil error is transient",
			err:  nil,
			want: Transient,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKind_Retryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want bool
	}{
		{RateLimited, true},
		{Transient, true},
		{Unauthorized, false},
		{ClientError, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.kind.Retryable())
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "rate limited", RateLimited.String())
	require.Equal(t, "unauthorized", Unauthorized.String())
	require.Equal(t, "client error", ClientError.String())
	require.Equal(t, "transient", Transient.String())
	require.Equal(t, "unknown", Kind(42).String())
}
