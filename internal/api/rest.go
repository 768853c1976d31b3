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
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vishwaraja/reddit-cli/models"
)

// Get performs an authenticated GET and decodes the response into v.
// A nil v discards the response body.
func (s *Session) Get(ctx context.Context, path string, query url.Values, v any) error {
	return s.do(ctx, http.MethodGet, path, query, v)
}

// PostForm performs an authenticated form POST and decodes the
// response into v. A nil v discards the response body.
func (s *Session) PostForm(ctx context.Context, path string, form url.Values, v any) error {
	return s.do(ctx, http.MethodPost, path, form, v)
}

// Put performs an authenticated PUT with a JSON body.
func (s *Session) Put(ctx context.Context, path string, body, v any) error {
	return s.doJSON(ctx, http.MethodPut, path, body, v)
}

// Delete performs an authenticated DELETE.
func (s *Session) Delete(ctx context.Context, path string) error {
	return s.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (s *Session) do(ctx context.Context, method, path string, params url.Values, v any) error {
	var body io.Reader

	query := url.Values{"raw_json": {"1"}}

	switch method {
	case http.MethodGet:
		for key, vals := range params {
			query[key] = vals
		}
	default:
		if params != nil {
			body = strings.NewReader(params.Encode())
		}
	}

	req, err := s.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return s.roundTrip(req, v)
}

func (s *Session) doJSON(ctx context.Context, method, path string, payload, v any) error {
	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}

		body = strings.NewReader(string(data))
	}

	req, err := s.newRequest(ctx, method, path, url.Values{"raw_json": {"1"}}, body)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return s.roundTrip(req, v)
}

func (s *Session) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path+"?"+query.Encode(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "bearer "+token)
	req.Header.Set("User-Agent", s.creds.UserAgent)

	return req, nil
}

func (s *Session) roundTrip(req *http.Request, v any) error {
	start := time.Now()

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	s.logger.Debug("api request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if err := checkStatus(resp); err != nil {
		return err
	}

	if v == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}

	return nil
}

// checkStatus maps a non-2xx response to an error: request failures
// the API reports (4xx) become *models.APIError, server faults (5xx)
// stay plain errors so they classify as transient and get retried.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("server error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	apiErr := &models.APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Reason = payload.Reason
		apiErr.Message = payload.Message
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			apiErr.Message = "retry after " + retryAfter + "s"
		}
	}

	return apiErr
}
