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

package models

// Post is a submission as served by the API.
type Post struct {
	// ID is the bare id without kind prefix.
	ID string `json:"id"`
	// Name is the fullname, e.g. "t3_abc123".
	Name          string    `json:"name"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Subreddit     string    `json:"subreddit"`
	SelfText      string    `json:"selftext"`
	URL           string    `json:"url"`
	Permalink     string    `json:"permalink"`
	LinkFlairText string    `json:"link_flair_text,omitempty"`
	Score         int       `json:"score"`
	NumComments   int       `json:"num_comments"`
	Created       Timestamp `json:"created_utc"`
	IsSelf        bool      `json:"is_self"`
	Over18        bool      `json:"over_18"`
}

// Fullname returns the post's kind-prefixed id.
func (p *Post) Fullname() string {
	if p.Name != "" {
		return p.Name
	}

	return Fullname(KindLink, p.ID)
}
