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
	"errors"
	"fmt"

	"github.com/vishwaraja/reddit-cli/models"
)

// TerminalError is the failure an execution run ends with, either
// because attempts were exhausted or because the failure was not worth
// retrying. It wraps the last operation error.
type TerminalError struct {
	// Kind is the classification of the last failure.
	Kind Kind
	// Attempts is the number of times the operation was invoked.
	Attempts uint
	// Err is the last operation error, possibly joined with the
	// context error when the run was canceled mid-wait.
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("%s: failed after %d attempt(s): %v", e.Kind, e.Attempts, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// AsTerminalError unwraps err to a *TerminalError, if one is in the
// chain.
func AsTerminalError(err error) (*TerminalError, bool) {
	var termErr *TerminalError
	if errors.As(err, &termErr) {
		return termErr, true
	}

	return nil, false
}

// AsAPIError unwraps err to a *models.APIError, if one is in the
// chain.
func AsAPIError(err error) (*models.APIError, bool) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
