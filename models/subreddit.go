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

// Subreddit describes a community as served by the API.
type Subreddit struct {
	// ID is the bare id without kind prefix.
	ID string `json:"id"`
	// Name is the fullname, e.g. "t5_2qh1i".
	Name              string    `json:"name"`
	DisplayName       string    `json:"display_name"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	PublicDescription string    `json:"public_description"`
	URL               string    `json:"url"`
	Lang              string    `json:"lang"`
	SubmissionType    string    `json:"submission_type"`
	Subscribers       int       `json:"subscribers"`
	Created           Timestamp `json:"created_utc"`
	Over18            bool      `json:"over18"`
	Quarantine        bool      `json:"quarantine"`
}

// Moderator is one entry of a subreddit's moderator list.
type Moderator struct {
	Name           string    `json:"name"`
	ModPermissions []string  `json:"mod_permissions"`
	Date           Timestamp `json:"date"`
}
