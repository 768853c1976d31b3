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

package local

type options struct {
	// path contains the archive file or directory path.
	path string
	// isDir flag describes what we have in path, file or directory.
	isDir bool
	// overwrite allows replacing an existing archive file.
	overwrite bool
}

// Opt is a functional option that allows configuring the [Writer].
type Opt func(*options)

// WithDir adds a directory to write archive files to.
// The directory is created if it does not exist.
func WithDir(path string) Opt {
	return func(r *options) {
		r.path = path
		r.isDir = true
	}
}

// WithFile adds an archive file path to write to.
func WithFile(path string) Opt {
	return func(r *options) {
		r.path = path
		r.isDir = false
	}
}

// WithOverwrite allows the writer to replace an existing archive file.
func WithOverwrite() Opt {
	return func(r *options) {
		r.overwrite = true
	}
}
