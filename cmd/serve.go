// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/canonical/erp-service/internal/authorization"
	"github.com/canonical/erp-service/internal/authorization/catalog"
	"github.com/canonical/erp-service/internal/config"
	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/monitoring/prometheus"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/pkg/account"
	"github.com/canonical/erp-service/pkg/authentication"
	"github.com/canonical/erp-service/pkg/crm"
	"github.com/canonical/erp-service/pkg/dashboard"
	"github.com/canonical/erp-service/pkg/finance"
	"github.com/canonical/erp-service/pkg/hrm"
	"github.com/canonical/erp-service/pkg/inventory"
	"github.com/canonical/erp-service/pkg/projects"
	"github.com/canonical/erp-service/pkg/roles"
	"github.com/canonical/erp-service/pkg/tenant"
	"github.com/canonical/erp-service/pkg/users"
	"github.com/canonical/erp-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %s", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("erp-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(dbConfig(specs), tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	if specs.SeedPermissions {
		n, err := catalog.NewSeeder(s, catalog.Default(), tracer, monitor, logger).Seed(context.Background())
		if err != nil {
			return fmt.Errorf("failed to seed permission catalog: %v", err)
		}
		logger.Infof("permission catalog seeded, %d new permissions", n)
	}

	publisher, closePublisher, err := newPublisher(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	external, err := newExternalVerifier(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)
	guard := authorization.NewMiddleware(authorizer, tracer, monitor, logger)
	tokens := authentication.NewTokenManager(specs.JWTSecret, specs.JWTIssuer, specs.AccessTokenTTL, specs.RefreshTokenTTL, tracer, monitor, logger)
	authn := authentication.NewMiddleware(tokens, s, tracer, monitor, logger)

	accountAPI := account.NewAPI(
		account.NewService(s, dbClient, tokens, external, authorizer, tracer, monitor, logger),
		logger,
	)

	apis := []web.EndpointsInterface{
		tenant.NewAPI(tenant.NewService(s, tracer, monitor, logger), guard, logger),
		users.NewAPI(users.NewService(s, tracer, monitor, logger), guard, logger),
		roles.NewAPI(roles.NewService(s, tracer, monitor, logger), guard, logger),
		crm.NewAPI(crm.NewService(s, dbClient, publisher, tracer, monitor, logger), guard, logger),
		hrm.NewAPI(hrm.NewService(s, dbClient, publisher, tracer, monitor, logger), guard, logger),
		inventory.NewAPI(inventory.NewService(s, dbClient, publisher, tracer, monitor, logger), guard, logger),
		projects.NewAPI(projects.NewService(s, dbClient, tracer, monitor, logger), guard, logger),
		finance.NewAPI(finance.NewService(s, dbClient, publisher, tracer, monitor, logger), guard, logger),
		dashboard.NewAPI(dashboard.NewService(s, tracer, monitor, logger), logger),
	}

	router := web.NewRouter(accountAPI, apis, authn, dbClient, specs.CORSAllowedOrigins, tracer, monitor, logger)

	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%v", specs.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %v", err)
	}

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	go func() {
		logger.Infof("Starting gRPC health server on port %v", specs.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Errorf("failed to serve gRPC: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("Starting HTTP server on port %v", specs.Port)
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	healthServer.Shutdown()
	grpcServer.GracefulStop()

	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func dbConfig(specs *config.EnvSpec) db.Config {
	return db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
}

// newPublisher connects to nats when configured, events are dropped otherwise.
func newPublisher(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (events.PublisherInterface, func(), error) {
	if specs.NATSURL == "" {
		logger.Info("NATS_URL not set, domain events are not published")
		return events.NewNoopPublisher(logger), func() {}, nil
	}

	conn, err := events.Connect(specs.NATSURL, logger)
	if err != nil {
		return nil, nil, err
	}

	publisher := events.NewPublisher(conn, specs.NATSSubjectPrefix, tracer, monitor, logger)
	logger.Infof("Publishing domain events to %s", specs.NATSURL)

	return publisher, publisher.Close, nil
}

func newExternalVerifier(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (authentication.ExternalVerifierInterface, error) {
	if !specs.OIDCEnabled {
		logger.Info("OIDC sign-in is disabled")
		return authentication.NewNoopVerifier(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	verifier, err := authentication.NewExternalVerifier(ctx, specs.OIDCIssuer, specs.OIDCJWKSURL, specs.OIDCClientID, tracer, monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OIDC verifier: %v", err)
	}

	return verifier, nil
}
