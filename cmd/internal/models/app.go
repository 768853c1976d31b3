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

// Package models describes the flag values the CLI commands run with.
package models

// App carries the flags every command honors.
type App struct {
	Version  bool
	Verbose  bool
	LogLevel string
	LogJSON  bool
	NoColor  bool

	// Config is the path of the JSON credentials file.
	Config string
}
