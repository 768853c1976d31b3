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

	"github.com/stretchr/testify/assert"
)

func TestApp_NewFlagSet(t *testing.T) {
	t.Parallel()
	app := NewApp()

	flagSet := app.NewFlagSet()

	args := []string{
		"--version",
		"--verbose",
		"--log-level", "info",
		"--log-json",
		"--no-color",
		"--config", "creds.json",
	}

	err := flagSet.Parse(args)
	assert.NoError(t, err)

	result := app.GetApp()

	assert.True(t, result.Version, "The version flag should be parsed correctly")
	assert.True(t, result.Verbose, "The verbose flag should be parsed correctly")
	assert.Equal(t, "info", result.LogLevel, "The log-level flag should be parsed correctly")
	assert.True(t, result.LogJSON, "The log-json flag should be parsed correctly")
	assert.True(t, result.NoColor, "The no-color flag should be parsed correctly")
	assert.Equal(t, "creds.json", result.Config, "The config flag should be parsed correctly")
}

func TestApp_NewFlagSet_DefaultValues(t *testing.T) {
	t.Parallel()
	app := NewApp()

	flagSet := app.NewFlagSet()

	err := flagSet.Parse([]string{})
	assert.NoError(t, err)

	result := app.GetApp()

	assert.False(t, result.Version, "The default value for version should be false")
	assert.False(t, result.Verbose, "The default value for verbose should be false")
	assert.Equal(t, "debug", result.LogLevel, "The default value for log-level should be 'debug'")
	assert.False(t, result.LogJSON, "The default value for log-json should be false")
	assert.False(t, result.NoColor, "The default value for no-color should be false")
	assert.Equal(t, "reddit_config.json", result.Config,
		"The default value for config should be 'reddit_config.json'")
}
