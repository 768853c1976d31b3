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
	"github.com/vishwaraja/reddit-cli/cmd/internal/models"
	rModels "github.com/vishwaraja/reddit-cli/models"
)

// Monitor polls a post for new comments, printing each one as it
// appears, and reports totals once the checks are done.
func (s *Service) Monitor(ctx context.Context, postRef string, monitorParams *models.Monitor) error {
	postID := ParsePostID(postRef)

	post, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Post, error) {
		return s.client.PostByID(ctx, postID)
	})
	if err != nil {
		s.reportFailure("monitor post", err)
		return nil
	}

	fmt.Printf("Monitoring %q for new comments...\n", post.Title)

	config := reddit.NewDefaultConfigMonitor()
	config.RetryPolicy = s.client.RetryPolicy()
	config.PostID = postID
	config.Interval = monitorParams.Interval
	config.MaxChecks = monitorParams.MaxChecks
	config.Limit = monitorParams.Limit
	config.OnComment = func(comment rModels.Comment) {
		fmt.Printf("New comment by /u/%s: %s\n", comment.Author, comment.Body)
	}

	handler, err := s.client.Monitor(ctx, config)
	if err != nil {
		return err
	}

	if err := handler.Wait(ctx); err != nil {
		s.reportFailure("monitor post", err)
	}

	logging.ReportMonitor(handler.GetStats(), s.isJSON, s.logger)

	return nil
}
