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

package logging

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishwaraja/reddit-cli"
	"github.com/vishwaraja/reddit-cli/models"
)

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "Empty key",
			key:      "",
			expected: ":" + strings.Repeat(" ", 21),
		},
		{
			name:     "Short key",
			key:      "Score",
			expected: "Score:" + strings.Repeat(" ", 16),
		},
		{
			name:     "Long key",
			key:      "Records Written",
			expected: "Records Written:" + strings.Repeat(" ", 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := indent(tt.key)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{
			name:     "Short enough",
			input:    "hello",
			limit:    10,
			expected: "hello",
		},
		{
			name:     "Cut",
			input:    "hello world",
			limit:    5,
			expected: "hello...",
		},
		{
			name:     "Multibyte runes",
			input:    "héllo wörld",
			limit:    7,
			expected: "héllo w...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.input, tt.limit)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)

	return buf.String()
}

func TestPrintMetric(t *testing.T) {
	output := captureStdout(t, func() {
		printMetric("TestKey", "TestValue")
		printMetric("IntKey", 123)
	})

	assert.Contains(t, output, "TestKey:"+strings.Repeat(" ", 21-len("TestKey"))+"TestValue")
	assert.Contains(t, output, "IntKey:"+strings.Repeat(" ", 21-len("IntKey"))+"123")
}

func TestReportMonitor(t *testing.T) {
	stats := &reddit.MonitorStats{Duration: 90 * time.Second}

	t.Run("Console output", func(t *testing.T) {
		output := captureStdout(t, func() {
			ReportMonitor(stats, false, nil)
		})

		assert.Contains(t, output, headerMonitorReport)
		assert.Contains(t, output, "Checks Done")
		assert.Contains(t, output, "New Comments")
		assert.Contains(t, output, "Duration")
		assert.Contains(t, output, "1m30s")
	})

	t.Run("JSON output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		ReportMonitor(stats, true, logger)

		logOutput := buf.String()
		assert.Contains(t, logOutput, "monitor report")
		assert.Contains(t, logOutput, "checks_done=0")
		assert.Contains(t, logOutput, "new_comments=0")
		assert.Contains(t, logOutput, "duration=1m30s")
	})
}

func TestReportExport(t *testing.T) {
	stats := &reddit.ExportStats{Duration: 3 * time.Second}

	t.Run("Console output", func(t *testing.T) {
		output := captureStdout(t, func() {
			ReportExport(stats, "dump.ndjson", false, nil)
		})

		assert.Contains(t, output, headerExportReport)
		assert.Contains(t, output, "Records Written")
		assert.Contains(t, output, "Bytes Written")
		assert.Contains(t, output, "Output File")
		assert.Contains(t, output, "dump.ndjson")
	})

	t.Run("JSON output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		ReportExport(stats, "dump.ndjson", true, logger)

		logOutput := buf.String()
		assert.Contains(t, logOutput, "export report")
		assert.Contains(t, logOutput, "records_written=0")
		assert.Contains(t, logOutput, "output_file=dump.ndjson")
	})
}

func TestPrintFailure(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		contains    string
		notContains string
	}{
		{
			name: "Rate limited",
			err: &reddit.TerminalError{
				Kind:     reddit.RateLimited,
				Attempts: 3,
				Err:      errors.New("429 too many requests"),
			},
			contains: "throttling requests",
		},
		{
			name: "Unauthorized",
			err: &reddit.TerminalError{
				Kind:     reddit.Unauthorized,
				Attempts: 1,
				Err:      errors.New("401 unauthorized"),
			},
			contains: "reddit_config.json",
		},
		{
			name: "Client error",
			err: &reddit.TerminalError{
				Kind:     reddit.ClientError,
				Attempts: 1,
				Err:      &models.APIError{StatusCode: 404, Reason: "not_found", Message: "post does not exist"},
			},
			contains: "post does not exist",
		},
		{
			name: "Transient",
			err: &reddit.TerminalError{
				Kind:     reddit.Transient,
				Attempts: 3,
				Err:      errors.New("connection refused"),
			},
			contains: "network connectivity",
		},
		{
			name:        "Plain error gets no hint",
			err:         errors.New("boom"),
			contains:    "Failed to vote: boom",
			notContains: "Check",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStdout(t, func() {
				PrintFailure("vote", tt.err, "reddit_config.json")
			})

			assert.Contains(t, output, "Failed to vote")
			assert.Contains(t, output, tt.contains)

			if tt.notContains != "" {
				assert.NotContains(t, output, tt.notContains)
			}
		})
	}
}

func TestPrintPost(t *testing.T) {
	post := &models.Post{
		ID:        "abc123",
		Title:     "Show and tell",
		Author:    "gopher",
		Subreddit: "golang",
		SelfText:  "A longer body.",
		Permalink: "/r/golang/comments/abc123/show_and_tell/",
		Score:     42,
		IsSelf:    true,
		Created:   models.Timestamp(1700000000),
	}

	output := captureStdout(t, func() {
		PrintPost(post)
	})

	assert.Contains(t, output, "Show and tell")
	assert.Contains(t, output, "/u/gopher")
	assert.Contains(t, output, "r/golang")
	assert.Contains(t, output, "42")
	assert.Contains(t, output, "https://reddit.com/r/golang/comments/abc123/show_and_tell/")
	assert.Contains(t, output, "A longer body.")
}

func TestPrintPosts(t *testing.T) {
	t.Run("Listing", func(t *testing.T) {
		posts := []models.Post{
			{Title: "First", Author: "alice", Score: 10, NumComments: 2},
			{Title: "Second", Author: "bob", Score: 5, NumComments: 0},
		}

		output := captureStdout(t, func() {
			PrintPosts(posts)
		})

		assert.Contains(t, output, "SCORE")
		assert.Contains(t, output, "First")
		assert.Contains(t, output, "/u/alice")
		assert.Contains(t, output, "Second")
	})

	t.Run("Empty", func(t *testing.T) {
		output := captureStdout(t, func() {
			PrintPosts(nil)
		})

		assert.Contains(t, output, "No posts found.")
	})
}

func TestPrintComments(t *testing.T) {
	comments := []models.Comment{
		{
			Author:    "alice",
			Body:      strings.Repeat("long ", 60),
			Score:     7,
			Permalink: "/r/golang/comments/abc123/x/def456/",
		},
	}

	output := captureStdout(t, func() {
		PrintComments(comments)
	})

	assert.Contains(t, output, "1. /u/alice (7 points")
	assert.Contains(t, output, "...")
	assert.Contains(t, output, "https://reddit.com/r/golang/comments/abc123/x/def456/")
}

func TestPrintMessages(t *testing.T) {
	messages := []models.Message{
		{Author: "alice", Subject: "hi", Body: "hello there", New: true},
		{Author: "bob", Subject: "re: post", Body: "nice one", WasComment: true},
	}

	output := captureStdout(t, func() {
		PrintMessages(messages)
	})

	assert.Contains(t, output, "[unread]")
	assert.Contains(t, output, "comment reply from /u/bob")
	assert.Contains(t, output, "Subject: hi")
}
