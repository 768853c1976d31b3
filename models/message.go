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

// Message is a private message or comment notification from the inbox.
type Message struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Created    Timestamp `json:"created_utc"`
	New        bool      `json:"new"`
	WasComment bool      `json:"was_comment"`
}

// Fullname returns the message's kind-prefixed id.
func (m *Message) Fullname() string {
	return Fullname(KindMessage, m.ID)
}
