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

package flags

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/vishwaraja/reddit-cli/cmd/internal/models"
)

type Retry struct {
	models.Retry
}

func NewRetry() *Retry {
	return &Retry{}
}

func (f *Retry) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.UintVar(&f.MaxAttempts, "max-attempts",
		3,
		"Total number of attempts per API call, including the first one.")
	flagSet.DurationVar(&f.BaseDelay, "base-delay",
		5*time.Second,
		"Delay before the second attempt.\n"+
			"Every further attempt multiplies the delay by --retry-multiplier.")
	flagSet.Float64Var(&f.Multiplier, "retry-multiplier",
		2,
		"Backoff multiplier applied between attempts.")

	return flagSet
}

func (f *Retry) GetRetry() *models.Retry {
	return &f.Retry
}
