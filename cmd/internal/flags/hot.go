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
	"fmt"

	"github.com/spf13/pflag"
	"github.com/vishwaraja/reddit-cli/cmd/internal/models"
)

type Hot struct {
	models.Hot
}

func NewHot() *Hot {
	return &Hot{}
}

func (f *Hot) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.IntVarP(&f.Parallel, "parallel", "w",
		1,
		fmt.Sprintf("Number of subreddits fetched concurrently.\n"+
			"Accepts values from 1-%d inclusive. Results print in the order requested.", models.MaxParallel))
	flagSet.IntVarP(&f.Limit, "limit", "l",
		10,
		"Maximum number of posts per subreddit.")

	return flagSet
}

func (f *Hot) GetHot() *models.Hot {
	return &f.Hot
}
