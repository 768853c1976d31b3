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

package reddit

import (
	"strings"
)

// Kind classifies a failed attempt and decides whether it is retried.
type Kind int

const (
	// Transient is any failure not reported by the API itself:
	// network errors, timeouts, decoding failures. Retried.
	Transient Kind = iota
	// RateLimited means the API throttled the request. Retried.
	RateLimited
	// Unauthorized means the credentials were rejected. Not retried;
	// repeating the same credentials cannot succeed.
	Unauthorized
	// ClientError is any other failure the API reported about the
	// request itself. Not retried.
	ClientError
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case RateLimited:
		return "rate limited"
	case Unauthorized:
		return "unauthorized"
	case ClientError:
		return "client error"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// Retryable reports whether another attempt may change the outcome.
func (k Kind) Retryable() bool {
	return k == RateLimited || k == Transient
}

// Marker strings matched against rendered error messages. Matching is
// case-insensitive substring containment over the whole wrap chain.
var (
	rateLimitMarkers = []string{"rate_limit", "429"}
	authMarkers      = []string{"401", "unauthorized"}
)

// Classify maps an attempt failure to its Kind.
//
// Order matters: rate limiting wins over everything, authentication
// failures win over generic API errors. Any error that did not come
// from the API at all is assumed transient and worth retrying.
func Classify(err error) Kind {
	if err == nil {
		return Transient
	}

	msg := err.Error()

	switch {
	case containsAny(msg, rateLimitMarkers...):
		return RateLimited
	case containsAny(msg, authMarkers...):
		return Unauthorized
	}

	if _, ok := AsAPIError(err); ok {
		return ClientError
	}

	return Transient
}

// containsAny reports whether any pattern occurs in text,
// case-insensitively.
func containsAny(text string, patterns ...string) bool {
	lowText := strings.ToLower(text)
	for _, pattern := range patterns {
		if strings.Contains(lowText, strings.ToLower(pattern)) {
			return true
		}
	}

	return false
}
