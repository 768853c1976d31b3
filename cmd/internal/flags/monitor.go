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

type Monitor struct {
	models.Monitor
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (f *Monitor) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.DurationVarP(&f.Interval, "interval", "i",
		30*time.Second,
		"Delay between two comment checks.")
	flagSet.UintVar(&f.MaxChecks, "max-checks",
		10,
		"Number of checks to run before the monitor stops.")
	flagSet.IntVarP(&f.Limit, "limit", "l",
		0,
		"Maximum number of comments to fetch per check. 0 means the server default.")

	return flagSet
}

func (f *Monitor) GetMonitor() *models.Monitor {
	return &f.Monitor
}
