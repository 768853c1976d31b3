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
	"log/slog"
	"runtime/debug"
)

func handlePanic(errors chan<- error, logger *slog.Logger) {
	if r := recover(); r != nil {
		var err error

		panicMsg := "a handler run has panicked:"
		if _, ok := r.(error); ok {
			err = fmt.Errorf(panicMsg+" caused by this error: %w", r.(error))
		} else {
			err = fmt.Errorf(panicMsg+" caused by: %v", r)
		}

		err = fmt.Errorf("%w, with stacktrace: %q", err, debug.Stack())
		logger.Error("job failed", "error", err)

		errors <- err
	}
}

func doWork(errors chan<- error, logger *slog.Logger, work func() error) {
	// NOTE: order is important here
	// if we close the errors chan before we handle the panic,
	// the panic handler will attempt to send on a closed channel
	defer close(errors)
	defer handlePanic(errors, logger)

	logger.Debug("job starting")

	err := work()
	if err != nil {
		logger.Error("job failed", "error", err)
		errors <- err

		return
	}

	logger.Debug("job done")
}
