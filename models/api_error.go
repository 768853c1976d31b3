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
	"fmt"
	"net/http"
)

// APIError is a failure the API reported about the request: a 4xx
// response, or an error list in an otherwise successful response body.
// Server-side 5xx failures and transport errors are not APIErrors.
//
// The rendered message always carries the numeric status and the API
// reason code; error classification matches markers against it.
type APIError struct {
	// StatusCode is the HTTP status of the response. API errors can be
	// delivered in a 200 body, so 200 is a valid value here.
	StatusCode int
	// Reason is the API error code, e.g. "RATELIMIT" or "USER_REQUIRED".
	Reason string
	// Message is the human-readable explanation from the API.
	Message string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("reddit api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	if e.Message != "" {
		msg += ": " + e.Message
	}

	return msg
}
