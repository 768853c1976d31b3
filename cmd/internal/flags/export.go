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
	"github.com/spf13/pflag"
	"github.com/vishwaraja/reddit-cli/cmd/internal/models"
)

type Export struct {
	models.Export
}

func NewExport() *Export {
	return &Export{}
}

func (f *Export) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.StringSliceVarP(&f.Kinds, "kind", "k",
		[]string{"saved", "posts", "inbox"},
		"Data sets to export: saved, posts, inbox.\n"+
			"Repeat the flag or comma-separate the values to export several.")
	flagSet.StringVarP(&f.OutputFile, "output-file", "o",
		"reddit-export.ndjson",
		"Path of the export archive. One JSON record per line.")
	flagSet.IntVarP(&f.Limit, "limit", "l",
		100,
		"Maximum number of records per data set.")

	return flagSet
}

func (f *Export) GetExport() *models.Export {
	return &f.Export
}
