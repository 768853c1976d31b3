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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vishwaraja/reddit-cli/internal/logging"
	"github.com/vishwaraja/reddit-cli/io/compression"
	"github.com/vishwaraja/reddit-cli/io/counter"
	"github.com/vishwaraja/reddit-cli/io/local"
	"github.com/vishwaraja/reddit-cli/models"
)

const exportQueueSize = 64

// exportRecord is one archive line: the kind it belongs to and the
// raw object fetched from the gateway.
type exportRecord struct {
	Data any    `json:"data"`
	Kind string `json:"kind"`
}

// ExportHandler handles an export job: it fetches the configured
// account data kinds in parallel and streams them into one
// newline-delimited JSON archive.
type ExportHandler struct {
	config  *ConfigExport
	gateway API
	logger  *slog.Logger
	errors  chan error
	id      string
	stats   ExportStats
}

// ExportStats stores the status of an export job.
// Stats are updated in realtime by the export pipeline.
type ExportStats struct {
	start        time.Time
	Duration     time.Duration
	records      atomic.Uint64
	bytesWritten atomic.Uint64
}

func (s *ExportStats) incRecords() {
	s.records.Add(1)
}

// GetRecords returns the number of records written to the archive.
func (s *ExportStats) GetRecords() uint64 {
	return s.records.Load()
}

// GetBytesWritten returns the archive size in bytes.
func (s *ExportStats) GetBytesWritten() uint64 {
	return s.bytesWritten.Load()
}

// newExportHandler creates a new ExportHandler.
func newExportHandler(config *ConfigExport, gateway API, logger *slog.Logger) *ExportHandler {
	id := uuid.NewString()
	logger = logging.WithHandler(logger, id, logging.HandlerTypeExport)

	return &ExportHandler{
		config:  config,
		gateway: gateway,
		id:      id,
		logger:  logger,
	}
}

// run runs the export job.
// currently this should only be run once.
func (eh *ExportHandler) run(ctx context.Context) {
	eh.errors = make(chan error, 1)
	eh.stats.start = time.Now()

	go doWork(eh.errors, eh.logger, func() error {
		return eh.export(ctx)
	})
}

func (eh *ExportHandler) export(ctx context.Context) error {
	me, err := Execute(ctx, eh.config.RetryPolicy, eh.logger, func() (*models.Account, error) {
		return eh.gateway.Me(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to resolve account: %w", err)
	}

	out, err := eh.newArchiveWriter(ctx)
	if err != nil {
		return err
	}

	records := make(chan exportRecord, exportQueueSize)

	group, gctx := errgroup.WithContext(ctx)
	producers, pctx := errgroup.WithContext(gctx)

	for _, kind := range eh.config.Kinds {
		kind := kind
		producers.Go(func() error {
			return eh.fetch(pctx, kind, me.Name, records)
		})
	}

	group.Go(func() error {
		// The writer drains the channel, so it must be closed even
		// when a producer fails.
		defer close(records)
		return producers.Wait()
	})

	group.Go(func() error {
		return eh.write(gctx, out, records)
	})

	err = group.Wait()

	if closeErr := out.Close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("failed to close archive: %w", closeErr))
	}

	if err != nil {
		return err
	}

	if eh.stats.GetRecords() == 0 {
		return models.ErrNothingToExport
	}

	eh.logger.Info("export finished",
		slog.String("file", eh.config.OutputFile),
		slog.Uint64("records", eh.stats.GetRecords()),
		slog.Uint64("bytes", eh.stats.GetBytesWritten()),
	)

	return nil
}

// newArchiveWriter builds the archive writer stack: a buffered local
// file, a byte counter and, if enabled, zstd compression on top.
func (eh *ExportHandler) newArchiveWriter(ctx context.Context) (io.WriteCloser, error) {
	storageWriter, err := local.NewWriter(local.WithFile(eh.config.OutputFile), local.WithOverwrite())
	if err != nil {
		return nil, fmt.Errorf("failed to create storage writer: %w", err)
	}

	fileWriter, err := storageWriter.NewWriter(ctx, filepath.Base(eh.config.OutputFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create archive file: %w", err)
	}

	return newCompressionWriter(
		eh.config.CompressionPolicy,
		counter.NewWriter(fileWriter, &eh.stats.bytesWritten),
	)
}

// newCompressionWriter returns a compression writer for compressing the archive.
func newCompressionWriter(policy *CompressionPolicy, writer io.WriteCloser) (io.WriteCloser, error) {
	if policy == nil || policy.Mode == CompressNone {
		return writer, nil
	}

	if policy.Mode == CompressZSTD {
		return compression.NewWriter(writer, policy.Level)
	}

	return nil, fmt.Errorf("unknown compression mode %s", policy.Mode)
}

// fetch loads one kind of account data and feeds it to the records
// channel. Each remote call runs through the resilient executor.
func (eh *ExportHandler) fetch(ctx context.Context, kind, username string, records chan<- exportRecord) error {
	switch kind {
	case ExportKindSaved:
		posts, err := Execute(ctx, eh.config.RetryPolicy, eh.logger, func() ([]models.Post, error) {
			return eh.gateway.Saved(ctx, eh.config.Limit)
		})
		if err != nil {
			return fmt.Errorf("failed to fetch saved posts: %w", err)
		}

		return sendAll(ctx, kind, posts, records)
	case ExportKindPosts:
		posts, err := Execute(ctx, eh.config.RetryPolicy, eh.logger, func() ([]models.Post, error) {
			return eh.gateway.UserPosts(ctx, username, eh.config.Limit)
		})
		if err != nil {
			return fmt.Errorf("failed to fetch submitted posts: %w", err)
		}

		return sendAll(ctx, kind, posts, records)
	case ExportKindInbox:
		messages, err := Execute(ctx, eh.config.RetryPolicy, eh.logger, func() ([]models.Message, error) {
			return eh.gateway.Inbox(ctx, false, eh.config.Limit)
		})
		if err != nil {
			return fmt.Errorf("failed to fetch inbox: %w", err)
		}

		return sendAll(ctx, kind, messages, records)
	default:
		return fmt.Errorf("unknown export kind %q", kind)
	}
}

func sendAll[T any](ctx context.Context, kind string, items []T, records chan<- exportRecord) error {
	for _, item := range items {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case records <- exportRecord{Kind: kind, Data: item}:
		}
	}

	return nil
}

// write drains the records channel into the archive, one JSON line
// per record.
func (eh *ExportHandler) write(ctx context.Context, w io.Writer, records <-chan exportRecord) error {
	encoder := json.NewEncoder(w)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case rec, ok := <-records:
			if !ok {
				return nil
			}

			if err := encoder.Encode(rec); err != nil {
				return fmt.Errorf("failed to encode %s record: %w", rec.Kind, err)
			}

			eh.stats.incRecords()
		}
	}
}

// GetStats returns the stats of the export job.
func (eh *ExportHandler) GetStats() *ExportStats {
	return &eh.stats
}

// Wait waits for the export job to complete and returns an error if the job failed.
func (eh *ExportHandler) Wait(ctx context.Context) error {
	defer func() {
		eh.stats.Duration = time.Since(eh.stats.start)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-eh.errors:
		return err
	}
}
