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
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/vishwaraja/reddit-cli/internal/logging"
	"github.com/vishwaraja/reddit-cli/models"
)

// MonitorHandler handles a monitor job: it polls one post for new
// comments until the configured number of checks is done.
type MonitorHandler struct {
	config  *ConfigMonitor
	gateway API
	logger  *slog.Logger
	errors  chan error
	id      string
	stats   MonitorStats

	mu       sync.Mutex
	comments []models.Comment
}

// MonitorStats stores the status of a monitor job.
// Stats are updated in realtime by the monitor loop.
type MonitorStats struct {
	start       time.Time
	Duration    time.Duration
	checksDone  atomic.Uint32
	newComments atomic.Uint64
}

func (s *MonitorStats) incChecks() {
	s.checksDone.Add(1)
}

// GetChecksDone returns the number of completed polls.
func (s *MonitorStats) GetChecksDone() uint32 {
	return s.checksDone.Load()
}

func (s *MonitorStats) addNewComments(count uint64) {
	s.newComments.Add(count)
}

// GetNewComments returns the number of distinct comments observed.
func (s *MonitorStats) GetNewComments() uint64 {
	return s.newComments.Load()
}

// newMonitorHandler creates a new MonitorHandler.
func newMonitorHandler(config *ConfigMonitor, gateway API, logger *slog.Logger) *MonitorHandler {
	id := uuid.NewString()
	logger = logging.WithHandler(logger, id, logging.HandlerTypeMonitor)

	return &MonitorHandler{
		config:  config,
		gateway: gateway,
		id:      id,
		logger:  logger,
	}
}

// run runs the monitor job.
// currently this should only be run once.
func (mh *MonitorHandler) run(ctx context.Context) {
	mh.errors = make(chan error, 1)
	mh.stats.start = time.Now()

	go doWork(mh.errors, mh.logger, func() error {
		return mh.monitor(ctx)
	})
}

// monitor is the poll loop. It runs in a single goroutine; each check
// fetches the post's comments through the resilient executor, records
// the ones not seen before and then waits out the interval. There is
// no wait after the final check.
func (mh *MonitorHandler) monitor(ctx context.Context) error {
	seen := make(map[string]struct{})

	for check := uint(1); check <= mh.config.MaxChecks; check++ {
		comments, err := Execute(ctx, mh.config.RetryPolicy, mh.logger, func() ([]models.Comment, error) {
			return mh.gateway.Comments(ctx, mh.config.PostID, mh.config.Limit)
		})
		if err != nil {
			return fmt.Errorf("check %d failed: %w", check, err)
		}

		var fresh uint64

		for _, comment := range comments {
			if _, ok := seen[comment.ID]; ok {
				continue
			}

			seen[comment.ID] = struct{}{}
			mh.append(comment)
			fresh++

			if mh.config.OnComment != nil {
				mh.config.OnComment(comment)
			}
		}

		mh.stats.incChecks()
		mh.stats.addNewComments(fresh)

		mh.logger.Debug("check finished",
			slog.Uint64("check", uint64(check)),
			slog.Int("fetched", len(comments)),
			slog.Uint64("new", fresh),
		)

		if check == mh.config.MaxChecks {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mh.config.Interval):
		}
	}

	return nil
}

func (mh *MonitorHandler) append(comment models.Comment) {
	mh.mu.Lock()
	defer mh.mu.Unlock()

	mh.comments = append(mh.comments, comment)
}

// GetComments returns every distinct comment observed so far, in the
// order the gateway first returned them. After a failed run it holds
// the comments collected before the abort.
func (mh *MonitorHandler) GetComments() []models.Comment {
	mh.mu.Lock()
	defer mh.mu.Unlock()

	out := make([]models.Comment, len(mh.comments))
	copy(out, mh.comments)

	return out
}

// GetStats returns the stats of the monitor job.
func (mh *MonitorHandler) GetStats() *MonitorStats {
	return &mh.stats
}

// Wait waits for the monitor job to complete and returns an error if the job failed.
func (mh *MonitorHandler) Wait(ctx context.Context) error {
	defer func() {
		mh.stats.Duration = time.Since(mh.stats.start)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-mh.errors:
		return err
	}
}
