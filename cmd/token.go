// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/erp-service/internal/config"
	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/pkg/authentication"
)

var userID string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for an existing user",
	Long:  `Issue an access token signed with JWT_SECRET for the given user, useful for scripting against the API.`,
	Run: func(cmd *cobra.Command, args []string) {
		specs := new(config.EnvSpec)
		if err := envconfig.Process("", specs); err != nil {
			cmd.PrintErrf("issues with environment sourcing: %s\n", err)
			os.Exit(1)
		}

		token, err := issueToken(cmd, specs, userID)
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
	},
}

func init() {
	tokenCmd.Flags().StringVar(&userID, "user-id", "", "ID of the user the token is issued for")
	_ = tokenCmd.MarkFlagRequired("user-id")

	rootCmd.AddCommand(tokenCmd)
}

func issueToken(cmd *cobra.Command, specs *config.EnvSpec, id string) (string, error) {
	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("erp-service")

	dbClient, err := db.NewDBClient(dbConfig(specs), tracer, monitor, logger)
	if err != nil {
		return "", fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	user, err := storage.NewStorage(dbClient, tracer, monitor, logger).GetUserByID(cmd.Context(), id)
	if err != nil {
		return "", fmt.Errorf("failed to load user %s: %v", id, err)
	}

	if !user.Active {
		return "", fmt.Errorf("user %s is inactive", id)
	}

	tokens := authentication.NewTokenManager(specs.JWTSecret, specs.JWTIssuer, specs.AccessTokenTTL, specs.RefreshTokenTTL, tracer, monitor, logger)

	return tokens.IssueAccessToken(cmd.Context(), user)
}
