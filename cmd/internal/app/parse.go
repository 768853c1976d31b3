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

import "strings"

// ParsePostID extracts the post id from a full URL, a fullname or a
// bare id. In a URL the id is the segment after "comments".
func ParsePostID(raw string) string {
	if !strings.Contains(raw, "/") {
		return strings.TrimPrefix(raw, "t3_")
	}

	segments := splitPath(raw)
	for i, segment := range segments {
		if segment == "comments" && i+1 < len(segments) {
			return segments[i+1]
		}
	}

	if len(segments) > 0 {
		return segments[len(segments)-1]
	}

	return raw
}

// ParseCommentID extracts the comment id from a full URL, a fullname
// or a bare id. In a URL the id is the last path segment.
func ParseCommentID(raw string) string {
	if !strings.Contains(raw, "/") {
		return strings.TrimPrefix(raw, "t1_")
	}

	segments := splitPath(raw)
	if len(segments) > 0 {
		return segments[len(segments)-1]
	}

	return raw
}

// ParseSubreddit strips the optional "r/" prefix from a subreddit
// name.
func ParseSubreddit(raw string) string {
	raw = strings.TrimPrefix(raw, "/")
	return strings.TrimPrefix(raw, "r/")
}

// ParseUsername strips the optional "u/" prefix from a username.
func ParseUsername(raw string) string {
	raw = strings.TrimPrefix(raw, "/")
	return strings.TrimPrefix(raw, "u/")
}

func splitPath(raw string) []string {
	raw = strings.TrimPrefix(raw, "https://")
	raw = strings.TrimPrefix(raw, "http://")

	segments := make([]string, 0, 8)

	for _, segment := range strings.Split(raw, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	return segments
}
