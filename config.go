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

package reddit

import (
	"errors"
	"fmt"
)

// Config contains the script-app credentials a Client authenticates
// with.
type Config struct {
	// ClientID and ClientSecret identify the registered script app.
	ClientID     string
	ClientSecret string
	// Username and Password belong to the account the app acts as.
	Username string
	Password string
	// UserAgent is sent with every request. The API expects a
	// descriptive value naming the app and the operating user.
	UserAgent string
}

// Validate checks that every credential field is set.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	required := []struct {
		name  string
		value string
	}{
		{"client_id", c.ClientID},
		{"client_secret", c.ClientSecret},
		{"username", c.Username},
		{"password", c.Password},
		{"user_agent", c.UserAgent},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%s is required", field.name)
		}
	}

	return nil
}
