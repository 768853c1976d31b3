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

// Account is a user account as served by the API. The same shape is
// returned for the authenticated identity and for other users.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CommentKarma int       `json:"comment_karma"`
	LinkKarma    int       `json:"link_karma"`
	Created      Timestamp `json:"created_utc"`
	IsGold       bool      `json:"is_gold"`
	IsMod        bool      `json:"is_mod"`
	IsEmployee   bool      `json:"is_employee"`
}

// Friend is one entry of the account's friend list.
type Friend struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date Timestamp `json:"date"`
}
