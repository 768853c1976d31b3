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
	"math"
	"time"
)

// RetryPolicy defines how a remote operation is retried after
// retryable failures.
type RetryPolicy struct {
	// BaseDelay is the delay before the second attempt.
	BaseDelay time.Duration

	// Multiplier increases the delay between subsequent attempts.
	// The delay after attempt n is: BaseDelay * (Multiplier ^ (n-1)).
	// Growth is not capped.
	Multiplier float64

	// MaxAttempts is the total number of attempts, including the first.
	// Must be at least 1. With MaxAttempts set to 1 the operation runs
	// once and is never retried.
	MaxAttempts uint
}

// NewRetryPolicy returns a new retry policy with the given values.
func NewRetryPolicy(baseDelay time.Duration, multiplier float64, maxAttempts uint) *RetryPolicy {
	return &RetryPolicy{
		BaseDelay:   baseDelay,
		Multiplier:  multiplier,
		MaxAttempts: maxAttempts,
	}
}

// NewDefaultRetryPolicy returns a new RetryPolicy with default values:
// 3 attempts starting from a 5 second delay, doubling.
func NewDefaultRetryPolicy() *RetryPolicy {
	return NewRetryPolicy(5*time.Second, 2, 3)
}

// Validate checks retry policy values.
func (p *RetryPolicy) Validate() error {
	if p == nil {
		return nil
	}

	if p.BaseDelay < 0 {
		return fmt.Errorf("base delay must be non-negative")
	}

	if p.Multiplier < 1 {
		return fmt.Errorf("multiplier must be greater than or equal to 1")
	}

	if p.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be greater than or equal to 1")
	}

	return nil
}

// AttemptsLeft reports whether another attempt may run after the given
// 1-based attempt number.
func (p *RetryPolicy) AttemptsLeft(attempt uint) bool {
	if p == nil {
		return false
	}

	return attempt < p.MaxAttempts
}

// Delay returns the wait that follows the given 1-based attempt number.
func (p *RetryPolicy) Delay(attempt uint) time.Duration {
	if p == nil || attempt < 1 {
		return 0
	}

	factor := math.Pow(p.Multiplier, float64(attempt-1))

	return time.Duration(float64(p.BaseDelay) * factor)
}
