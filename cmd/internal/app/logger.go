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

package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger builds the CLI logger. It writes to stderr, keeping stdout
// free for command output. Without the verbose flag only warnings and
// errors come through.
func NewLogger(level string, isVerbose, isJSON, noColor bool) (*slog.Logger, error) {
	logLvl := slog.LevelWarn

	if isVerbose {
		if err := logLvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	if isJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLvl})), nil
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLvl,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	})), nil
}
