// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const securityLoggerName = "security"

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name string, level zapcore.Level, fields ...zap.Field) {
	fields = append(fields, zap.String("event", name))

	if ce := s.l.Check(level, name); ce != nil {
		ce.Write(fields...)
	}
}

func (s *SecurityLogger) SystemStartup() {
	s.event("sys_startup", zapcore.InfoLevel)
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("sys_shutdown", zapcore.InfoLevel)
}

func (s *SecurityLogger) AuthnSuccess(userID string) {
	s.event("authn_login_success", zapcore.InfoLevel, zap.String("user_id", userID))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.event("authn_login_fail", zapcore.WarnLevel, zap.String("subject", subject), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.event("authz_fail", zapcore.WarnLevel, zap.String("user_id", userID), zap.String("resource", resource))
}

func (s *SecurityLogger) AdminAction(userID, action, resource, resourceID string) {
	s.event(
		"admin_action",
		zapcore.InfoLevel,
		zap.String("user_id", userID),
		zap.String("action", action),
		zap.String("resource", resource),
		zap.String("resource_id", resourceID),
	)
}

// NewLogger creates a json production logger, the level is parsed from l and
// falls back to error when it is not recognized
func NewLogger(l string) *Logger {
	var lvl zapcore.Level

	switch strings.ToLower(l) {
	case "debug":
		lvl = zap.DebugLevel
	case "info":
		lvl = zap.InfoLevel
	case "warn", "warning":
		lvl = zap.WarnLevel
	default:
		lvl = zap.ErrorLevel
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	z, err := c.Build()
	if err != nil {
		panic(err)
	}

	// security events are always recorded, regardless of the app log level
	sc := zap.NewProductionConfig()
	sc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	sc.EncoderConfig.TimeKey = "@timestamp"
	sc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	s, err := sc.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: z.Sugar(),
		security:      &SecurityLogger{l: s.Named(securityLoggerName)},
	}
}
