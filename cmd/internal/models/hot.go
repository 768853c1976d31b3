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

package models

import "fmt"

// MaxParallel bounds the number of subreddits fetched concurrently.
const MaxParallel = 32

// Hot carries the hot command flags.
type Hot struct {
	Parallel int
	Limit    int
}

func (h *Hot) Validate() error {
	if h == nil {
		return nil
	}

	if h.Parallel < 1 || h.Parallel > MaxParallel {
		return fmt.Errorf("parallel must be between 1 and %d, got %d", MaxParallel, h.Parallel)
	}

	if h.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}

	return nil
}
