// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/erp-service/internal/authorization/catalog"
	"github.com/canonical/erp-service/internal/config"
	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the permission catalog",
	Long:  `Insert every permission of the built-in catalog, existing keys are left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		specs := new(config.EnvSpec)
		if err := envconfig.Process("", specs); err != nil {
			cmd.PrintErrf("issues with environment sourcing: %s\n", err)
			os.Exit(1)
		}

		n, err := seed(cmd, specs)
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d permissions inserted\n", n)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command, specs *config.EnvSpec) (int, error) {
	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("erp-service")

	dbClient, err := db.NewDBClient(dbConfig(specs), tracer, monitor, logger)
	if err != nil {
		return 0, fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	return catalog.NewSeeder(s, catalog.Default(), tracer, monitor, logger).Seed(cmd.Context())
}
