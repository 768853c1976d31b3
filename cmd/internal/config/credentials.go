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

// Package config loads the API credentials the CLI authenticates with.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/vishwaraja/reddit-cli"
)

// DefaultPath is where the credentials file lives unless --config says
// otherwise.
const DefaultPath = "reddit_config.json"

const defaultUserAgent = "reddit-cli/1.0"

// ErrTemplateWritten reports that no credentials file existed and a
// template was bootstrapped in its place.
var ErrTemplateWritten = errors.New("credentials template written")

// Credentials is the JSON shape of the credentials file.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	UserAgent    string `json:"user_agent"`
}

// credentialsTemplate is written verbatim on first run. Load treats
// its placeholder values the same as missing ones.
var credentialsTemplate = Credentials{
	ClientID:     "your_client_id_here",
	ClientSecret: "your_client_secret_here",
	Username:     "your_reddit_username",
	Password:     "your_reddit_password",
	UserAgent:    "reddit-cli/1.0 by /u/your_reddit_username",
}

// Load reads the credentials file at path. A .env file in the working
// directory is loaded first, and ${VAR} references inside the file are
// expanded from the environment, so secrets can stay out of the file
// itself.
//
// When the file does not exist, a template is written in its place and
// the returned error wraps ErrTemplateWritten.
func Load(path string) (*reddit.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	body, err := os.ReadFile(path)

	switch {
	case errors.Is(err, os.ErrNotExist):
		if wErr := writeTemplate(path); wErr != nil {
			return nil, fmt.Errorf("failed to write credentials template to %s: %w", path, wErr)
		}

		return nil, fmt.Errorf(
			"no credentials file at %s, a template has been written there; "+
				"fill in your API credentials and run again: %w",
			path, ErrTemplateWritten)
	case err != nil:
		return nil, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(os.ExpandEnv(string(body))), &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}

	if err := creds.validate(path); err != nil {
		return nil, err
	}

	if creds.UserAgent == "" || creds.UserAgent == credentialsTemplate.UserAgent {
		creds.UserAgent = defaultUserAgent + " by /u/" + creds.Username
	}

	return &reddit.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Username:     creds.Username,
		Password:     creds.Password,
		UserAgent:    creds.UserAgent,
	}, nil
}

// validate rejects empty and placeholder values. The user agent is
// optional and defaulted by Load.
func (c *Credentials) validate(path string) error {
	required := []struct {
		name        string
		value       string
		placeholder string
	}{
		{"client_id", c.ClientID, credentialsTemplate.ClientID},
		{"client_secret", c.ClientSecret, credentialsTemplate.ClientSecret},
		{"username", c.Username, credentialsTemplate.Username},
		{"password", c.Password, credentialsTemplate.Password},
	}

	for _, field := range required {
		if field.value == "" || field.value == field.placeholder {
			return fmt.Errorf("%s is not set in %s", field.name, path)
		}
	}

	return nil
}

func writeTemplate(path string) error {
	body, err := json.MarshalIndent(credentialsTemplate, "", "  ")
	if err != nil {
		return err
	}

	// The file will hold secrets, keep it owner-only.
	return os.WriteFile(path, append(body, '\n'), 0o600)
}
