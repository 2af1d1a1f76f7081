// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port     int `envconfig:"port" default:"8080"`
	GRPCPort int `envconfig:"grpc_port" default:"50051"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	JWTSecret       string        `envconfig:"jwt_secret" required:"true"`
	JWTIssuer       string        `envconfig:"jwt_issuer" default:"erp-service"`
	AccessTokenTTL  time.Duration `envconfig:"jwt_access_token_ttl" default:"24h"`
	RefreshTokenTTL time.Duration `envconfig:"jwt_refresh_token_ttl" default:"168h"`

	OIDCEnabled  bool   `envconfig:"oidc_enabled" default:"false"`
	OIDCIssuer   string `envconfig:"oidc_issuer" default:"https://accounts.google.com"`
	OIDCClientID string `envconfig:"oidc_client_id"`
	OIDCJWKSURL  string `envconfig:"oidc_jwks_url"`

	NATSURL           string `envconfig:"nats_url"`
	NATSSubjectPrefix string `envconfig:"nats_subject_prefix" default:"erp"`

	SeedPermissions bool `envconfig:"seed_permissions" default:"true"`
}
