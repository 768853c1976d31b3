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

// FlairTemplate is one selectable link flair of a subreddit.
type FlairTemplate struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	CSSClass     string `json:"css_class"`
	TextEditable bool   `json:"text_editable"`
	ModOnly      bool   `json:"mod_only"`
}
