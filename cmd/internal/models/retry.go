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

import (
	"fmt"
	"time"
)

// Retry shapes the retry policy applied to every remote call.
type Retry struct {
	MaxAttempts uint
	BaseDelay   time.Duration
	Multiplier  float64
}

func (r *Retry) Validate() error {
	if r == nil {
		return nil
	}

	if r.MaxAttempts < 1 {
		return fmt.Errorf("max-attempts must be at least 1")
	}

	if r.BaseDelay < 0 {
		return fmt.Errorf("base-delay must be non-negative")
	}

	if r.Multiplier < 1 {
		return fmt.Errorf("retry-multiplier must be at least 1, got %.2f", r.Multiplier)
	}

	return nil
}
