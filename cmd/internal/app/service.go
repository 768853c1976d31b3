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

// Package app glues the CLI commands to the client library.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vishwaraja/reddit-cli"
	"github.com/vishwaraja/reddit-cli/cmd/internal/config"
	"github.com/vishwaraja/reddit-cli/cmd/internal/logging"
	"github.com/vishwaraja/reddit-cli/cmd/internal/models"
	rModels "github.com/vishwaraja/reddit-cli/models"
)

const idCLI = "reddit-cli"

// Service runs the CLI commands against one authenticated client.
// Terminal operation failures are rendered on stdout with a
// remediation hint; they do not propagate to the exit status.
type Service struct {
	client  *reddit.Client
	logger  *slog.Logger
	cfgPath string
	isJSON  bool
}

// NewService loads the credentials, builds the client and verifies
// connectivity. Any error here is fatal to the command. Extra client
// options append to the defaults.
func NewService(
	ctx context.Context,
	appParams *models.App,
	retryParams *models.Retry,
	logger *slog.Logger,
	opts ...reddit.ClientOpt,
) (*Service, error) {
	if err := retryParams.Validate(); err != nil {
		return nil, err
	}

	cfgPath := appParams.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	policy := rModels.NewRetryPolicy(retryParams.BaseDelay, retryParams.Multiplier, retryParams.MaxAttempts)

	clientOpts := []reddit.ClientOpt{
		reddit.WithID(idCLI),
		reddit.WithLogger(logger),
		reddit.WithRetryPolicy(policy),
	}
	clientOpts = append(clientOpts, opts...)

	client, err := reddit.NewClient(cfg, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s := &Service{
		client:  client,
		logger:  logger,
		cfgPath: cfgPath,
		isJSON:  appParams.LogJSON,
	}

	if err := s.checkConnection(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// checkConnection verifies the credentials against the live API before
// any command work starts.
func (s *Service) checkConnection(ctx context.Context) error {
	account, err := reddit.Execute(ctx, s.client.RetryPolicy(), s.logger, func() (*rModels.Account, error) {
		return s.client.Me(ctx)
	})
	if err != nil {
		if termErr, ok := reddit.AsTerminalError(err); ok && termErr.Kind == reddit.Unauthorized {
			return fmt.Errorf("authentication failed, check the credentials in %s: %w", s.cfgPath, err)
		}

		return fmt.Errorf("cannot reach the API, check network connectivity: %w", err)
	}

	s.logger.Info("authenticated",
		slog.String("username", account.Name),
	)

	return nil
}

// reportFailure renders a terminally failed operation. The command
// still exits zero; only startup errors are fatal.
func (s *Service) reportFailure(op string, err error) {
	logging.PrintFailure(op, err, s.cfgPath)
}
