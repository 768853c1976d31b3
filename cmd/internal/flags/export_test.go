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

func TestExport_NewFlagSet(t *testing.T) {
	t.Parallel()
	export := NewExport()

	flagSet := export.NewFlagSet()

	args := []string{
		"--kind", "saved,inbox",
		"--output-file", "dump.ndjson",
		"--limit", "25",
	}

	err := flagSet.Parse(args)
	assert.NoError(t, err)

	result := export.GetExport()

	assert.Equal(t, []string{"saved", "inbox"}, result.Kinds, "The kind flag should be parsed correctly")
	assert.Equal(t, "dump.ndjson", result.OutputFile, "The output-file flag should be parsed correctly")
	assert.Equal(t, 25, result.Limit, "The limit flag should be parsed correctly")
}

func TestExport_NewFlagSet_RepeatedKinds(t *testing.T) {
	t.Parallel()
	export := NewExport()

	flagSet := export.NewFlagSet()

	err := flagSet.Parse([]string{"--kind", "saved", "--kind", "posts"})
	assert.NoError(t, err)

	result := export.GetExport()

	assert.Equal(t, []string{"saved", "posts"}, result.Kinds,
		"Repeating the kind flag should accumulate values")
}

func TestExport_NewFlagSet_DefaultValues(t *testing.T) {
	t.Parallel()
	export := NewExport()

	flagSet := export.NewFlagSet()

	err := flagSet.Parse([]string{})
	assert.NoError(t, err)

	result := export.GetExport()

	assert.Equal(t, []string{"saved", "posts", "inbox"}, result.Kinds,
		"The default value for kind should cover every data set")
	assert.Equal(t, "reddit-export.ndjson", result.OutputFile,
		"The default value for output-file should be 'reddit-export.ndjson'")
	assert.Equal(t, 100, result.Limit, "The default value for limit should be 100")
}
