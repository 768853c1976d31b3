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
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishwaraja/reddit-cli/models"
)

func muxWithToken(t *testing.T) *http.ServeMux {
	t.Helper()

	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", tokenHandler(t, &tokenCalls))

	return mux
}

func TestSession_PostFormSendsFormBody(t *testing.T) {
	t.Parallel()

	mux := muxWithToken(t)
	mux.HandleFunc("/api/submit", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "golang", r.PostForm.Get("sr"))
		assert.Equal(t, "self", r.PostForm.Get("kind"))

		_ = json.NewEncoder(w).Encode(map[string]any{"json": map[string]any{"errors": []any{}}})
	})

	sess, _ := newTestSession(t, mux)

	form := url.Values{
		"sr":   {"golang"},
		"kind": {"self"},
	}

	var resp JSONResponse
	require.NoError(t, sess.PostForm(context.Background(), "/api/submit", form, &resp))
	require.NoError(t, resp.Err())
}

func TestSession_RateLimitedResponse(t *testing.T) {
	t.Parallel()

	mux := muxWithToken(t)
	mux.HandleFunc("/r/golang/hot", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	sess, _ := newTestSession(t, mux)

	err := sess.Get(context.Background(), "/r/golang/hot", nil, nil)
	require.Error(t, err)

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "429")
	assert.Contains(t, apiErr.Error(), "retry after 2s")
}

func TestSession_NotFoundResponseCarriesReason(t *testing.T) {
	t.Parallel()

	mux := muxWithToken(t)
	mux.HandleFunc("/r/nope/about", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"reason":  "SUBREDDIT_NOEXIST",
			"message": "Not Found",
		})
	})

	sess, _ := newTestSession(t, mux)

	err := sess.Get(context.Background(), "/r/nope/about", nil, nil)
	require.Error(t, err)

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "SUBREDDIT_NOEXIST", apiErr.Reason)
}

func TestSession_ServerFaultStaysPlainError(t *testing.T) {
	t.Parallel()

	mux := muxWithToken(t)
	mux.HandleFunc("/r/golang/hot", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	sess, _ := newTestSession(t, mux)

	err := sess.Get(context.Background(), "/r/golang/hot", nil, nil)
	require.Error(t, err)

	var apiErr *models.APIError
	require.False(t, errors.As(err, &apiErr), "5xx must not become an APIError")
	assert.Contains(t, err.Error(), "server error: 502")
}

func TestSession_PutAndDelete(t *testing.T) {
	t.Parallel()

	mux := muxWithToken(t)
	mux.HandleFunc("/api/v1/me/friends/spez", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			var body struct {
				Name string `json:"name"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "spez", body.Name)

			_ = json.NewEncoder(w).Encode(map[string]any{"name": "spez"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})

	sess, _ := newTestSession(t, mux)

	var friend models.Friend
	require.NoError(t, sess.Put(context.Background(), "/api/v1/me/friends/spez", map[string]string{"name": "spez"}, &friend))
	assert.Equal(t, "spez", friend.Name)

	require.NoError(t, sess.Delete(context.Background(), "/api/v1/me/friends/spez"))
}
