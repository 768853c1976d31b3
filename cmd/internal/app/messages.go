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

package app

import (
	"context"
	"fmt"

	"github.com/vishwaraja/reddit-cli"
	"github.com/vishwaraja/reddit-cli/cmd/internal/logging"
	rModels "github.com/vishwaraja/reddit-cli/models"
)

// Message sends a private message.
func (s *Service) Message(ctx context.Context, to, subject, body string) error {
	to = ParseUsername(to)

	if err := reddit.Do(ctx, s.client.RetryPolicy(), s.logger, func() error {
		return s.client.Compose(ctx, to, subject, body)
	}); err != nil {
		s.reportFailure("send message", err)
		return nil
	}

	fmt.Printf("Message sent to /u/%s.\n", to)

	return nil
}

// Inbox prints the account's inbox.
func (s *Service) Inbox(ctx context.Context, unreadOnly bool, limit int) error {
	messages, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() ([]rModels.Message, error) {
		return s.client.Inbox(ctx, unreadOnly, limit)
	})
	if err != nil {
		s.reportFailure("fetch inbox", err)
		return nil
	}

	logging.PrintMessages(messages)

	return nil
}
