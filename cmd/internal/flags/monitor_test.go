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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonitor_NewFlagSet(t *testing.T) {
	t.Parallel()
	monitor := NewMonitor()

	flagSet := monitor.NewFlagSet()

	args := []string{
		"--interval", "5s",
		"--max-checks", "20",
		"--limit", "50",
	}

	err := flagSet.Parse(args)
	assert.NoError(t, err)

	result := monitor.GetMonitor()

	assert.Equal(t, 5*time.Second, result.Interval, "The interval flag should be parsed correctly")
	assert.Equal(t, uint(20), result.MaxChecks, "The max-checks flag should be parsed correctly")
	assert.Equal(t, 50, result.Limit, "The limit flag should be parsed correctly")
}

func TestMonitor_NewFlagSet_DefaultValues(t *testing.T) {
	t.Parallel()
	monitor := NewMonitor()

	flagSet := monitor.NewFlagSet()

	err := flagSet.Parse([]string{})
	assert.NoError(t, err)

	result := monitor.GetMonitor()

	assert.Equal(t, 30*time.Second, result.Interval, "The default value for interval should be 30s")
	assert.Equal(t, uint(10), result.MaxChecks, "The default value for max-checks should be 10")
	assert.Equal(t, 0, result.Limit, "The default value for limit should be 0")
}
