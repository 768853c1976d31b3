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
	"fmt"
	"time"

	"github.com/vishwaraja/reddit-cli/models"
)

// ConfigMonitor contains configuration for the monitor operation.
type ConfigMonitor struct {
	// RetryPolicy governs how each poll is retried.
	// If nil, the client's default policy is used.
	RetryPolicy *models.RetryPolicy
	// OnComment is invoked once per newly observed comment, in the
	// order the gateway returned them (optional).
	OnComment func(comment models.Comment)
	// PostID is the id of the post to watch. A bare id or a t3_
	// fullname are both accepted.
	PostID string
	// Interval is the wait between two checks. Zero means the next
	// check starts immediately.
	Interval time.Duration
	// MaxChecks is the total number of polls to perform.
	MaxChecks uint
	// Limit caps the number of comments fetched per poll.
	// Zero means the gateway default.
	Limit int
}

// NewDefaultConfigMonitor returns a monitor config with default values.
func NewDefaultConfigMonitor() *ConfigMonitor {
	return &ConfigMonitor{
		Interval:  30 * time.Second,
		MaxChecks: 10,
	}
}

func (c *ConfigMonitor) validate() error {
	if c.PostID == "" {
		return fmt.Errorf("post id must not be empty")
	}

	if c.MaxChecks < 1 {
		return fmt.Errorf("max checks must be at least 1, got %d", c.MaxChecks)
	}

	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", c.Interval)
	}

	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}

	if err := c.RetryPolicy.Validate(); err != nil {
		return fmt.Errorf("retry policy invalid: %w", err)
	}

	return nil
}
