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

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishwaraja/reddit-cli/models"
)

var testCreds = Credentials{
	ClientID:     "id",
	ClientSecret: "secret",
	Username:     "tester",
	Password:     "hunter2",
	UserAgent:    "reddit-cli/test by /u/tester",
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T, handler http.Handler) (*Session, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := NewSession(testCreds,
		WithBaseURLs(srv.URL+"/api/v1/access_token", srv.URL),
		WithPacing(0, 0),
		WithLogger(testLogger()),
	)

	return sess, srv
}

func tokenHandler(t *testing.T, tokenCalls *atomic.Int32) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "token request must carry basic auth")
		assert.Equal(t, "id", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "tester", r.PostForm.Get("username"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	}
}

func TestSession_TokenIsFetchedOnceAndReused(t *testing.T) {
	t.Parallel()

	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", tokenHandler(t, &tokenCalls))
	mux.HandleFunc("/api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, testCreds.UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "1", r.URL.Query().Get("raw_json"))

		_ = json.NewEncoder(w).Encode(map[string]any{"name": "tester"})
	})

	sess, _ := newTestSession(t, mux)

	var me struct {
		Name string `json:"name"`
	}

	require.NoError(t, sess.Get(context.Background(), "/api/v1/me", nil, &me))
	require.NoError(t, sess.Get(context.Background(), "/api/v1/me", nil, &me))

	assert.Equal(t, "tester", me.Name)
	assert.Equal(t, int32(1), tokenCalls.Load(), "second request must reuse the cached token")
}

func TestSession_InvalidateTokenForcesRefresh(t *testing.T) {
	t.Parallel()

	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", tokenHandler(t, &tokenCalls))
	mux.HandleFunc("/api/v1/me", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"name": "tester"})
	})

	sess, _ := newTestSession(t, mux)

	require.NoError(t, sess.Get(context.Background(), "/api/v1/me", nil, nil))
	sess.InvalidateToken()
	require.NoError(t, sess.Get(context.Background(), "/api/v1/me", nil, nil))

	assert.Equal(t, int32(2), tokenCalls.Load())
}

func TestSession_RejectedCredentials(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", func(w http.ResponseWriter, _ *http.Request) {
		// The token endpoint reports bad credentials in a 200 body.
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "invalid_grant"})
	})

	sess, _ := newTestSession(t, mux)

	err := sess.Get(context.Background(), "/api/v1/me", nil, nil)
	require.Error(t, err)

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid_grant", apiErr.Reason)
}

func TestSession_TokenEndpointBasicAuthFailure(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "Unauthorized", "error": 401}`, http.StatusUnauthorized)
	})

	sess, _ := newTestSession(t, mux)

	err := sess.Get(context.Background(), "/api/v1/me", nil, nil)
	require.Error(t, err)

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSession_NoPacingWithZeroRate(t *testing.T) {
	t.Parallel()

	sess := NewSession(testCreds, WithPacing(0, 0))

	require.NoError(t, sess.wait(context.Background()))
}
