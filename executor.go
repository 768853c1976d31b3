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
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vishwaraja/reddit-cli/models"
)

// Execute runs op under the given retry policy.
//
// Failures are classified with Classify. Retryable failures are
// re-attempted after an exponentially growing wait until the policy's
// attempts are exhausted; non-retryable failures end the run at once,
// with no wait. The wait suspends on the context, so cancellation
// takes effect mid-sleep.
//
// On success the operation's result is returned. On failure the error
// is always a *TerminalError carrying the classification, the attempt
// count and the last operation error. A nil policy behaves like
// models.NewDefaultRetryPolicy(), a nil logger like slog.Default().
func Execute[T any](ctx context.Context, policy *models.RetryPolicy, logger *slog.Logger, op func() (T, error)) (T, error) {
	var zero T

	policy = getUsableRetryPolicy(policy)
	if logger == nil {
		logger = slog.Default()
	}

	var lastErr error

	for attempt := uint(1); ; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}

		lastErr = err
		kind := Classify(err)

		if !kind.Retryable() {
			return zero, &TerminalError{Kind: kind, Attempts: attempt, Err: lastErr}
		}

		if !policy.AttemptsLeft(attempt) {
			return zero, &TerminalError{Kind: kind, Attempts: attempt, Err: lastErr}
		}

		delay := policy.Delay(attempt)

		logger.Warn("retrying operation",
			slog.Uint64("attempt", uint64(attempt)),
			slog.Uint64("maxAttempts", uint64(policy.MaxAttempts)),
			slog.String("classification", kind.String()),
			slog.Duration("sleep", delay),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return zero, &TerminalError{
				Kind:     kind,
				Attempts: attempt,
				Err:      errors.Join(lastErr, ctx.Err()),
			}
		case <-time.After(delay):
		}
	}
}

// Do is Execute for operations that produce no result.
func Do(ctx context.Context, policy *models.RetryPolicy, logger *slog.Logger, op func() error) error {
	_, err := Execute(ctx, policy, logger, func() (struct{}, error) {
		return struct{}{}, op()
	})

	return err
}

// getUsableRetryPolicy returns the policy itself, or a copy of the
// default policy when nil.
func getUsableRetryPolicy(policy *models.RetryPolicy) *models.RetryPolicy {
	if policy != nil {
		return policy
	}

	return models.NewDefaultRetryPolicy()
}
