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

// Comment is a comment as served by the API.
type Comment struct {
	// ID is the bare id without kind prefix.
	ID string `json:"id"`
	// Name is the fullname, e.g. "t1_def456".
	Name      string    `json:"name"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Subreddit string    `json:"subreddit"`
	Permalink string    `json:"permalink"`
	// LinkID is the fullname of the post the comment belongs to.
	LinkID   string    `json:"link_id"`
	ParentID string    `json:"parent_id"`
	Score    int       `json:"score"`
	Created  Timestamp `json:"created_utc"`
}

// Fullname returns the comment's kind-prefixed id.
func (c *Comment) Fullname() string {
	if c.Name != "" {
		return c.Name
	}

	return Fullname(KindComment, c.ID)
}
