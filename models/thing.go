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

import (
	"strings"
	"time"
)

// Thing kind prefixes used in fullnames, e.g. "t3_abc123" for a post.
const (
	KindComment   = "t1"
	KindAccount   = "t2"
	KindLink      = "t3"
	KindMessage   = "t4"
	KindSubreddit = "t5"
)

// Fullname returns the id prefixed with the given kind. Ids that
// already carry a kind prefix are returned unchanged.
func Fullname(kind, id string) string {
	if strings.HasPrefix(id, kind+"_") {
		return id
	}

	return kind + "_" + id
}

// HasKind reports whether the id carries any thing kind prefix.
func HasKind(id string) bool {
	if len(id) < 3 || id[0] != 't' || id[2] != '_' {
		return false
	}

	return id[1] >= '1' && id[1] <= '6'
}

// TrimKind strips the kind prefix from an id, if present.
func TrimKind(id string) string {
	if HasKind(id) {
		return id[3:]
	}

	return id
}

// Timestamp is a creation time in epoch seconds, as served by the API.
type Timestamp float64

// Time converts the timestamp to a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts), 0).UTC()
}
