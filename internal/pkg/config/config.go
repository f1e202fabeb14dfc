// Package config reads the process configuration from the environment once at
// startup. Nothing here is consulted again after main() has wired the
// components.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	defaultHTTPAddr = ":8080"
	defaultLogLevel = "info"
)

// Config is the startup configuration shared by both binaries.
type Config struct {
	// OutputEnabled selects the console sink (true) or the null sink (false).
	OutputEnabled bool

	LogLevel slog.Level

	// Scenarios limits which demos cmd/solid-demos runs. Empty means all.
	Scenarios []string

	HTTPAddr string

	ServiceName string

	// OTLPEndpoint is the collector address. Tracing is disabled when empty.
	OTLPEndpoint string
}

// Load builds a Config from the environment. serviceName is the fallback for
// OTEL_SERVICE_NAME.
func Load(serviceName string) Config {
	return Config{
		OutputEnabled: getBool("OUTPUT_ENABLED", true),
		LogLevel:      ParseLevel(getEnv("LOG_LEVEL", defaultLogLevel)),
		Scenarios:     ParseCSV(os.Getenv("DEMO_SCENARIOS")),
		HTTPAddr:      getEnv("HTTP_ADDR", defaultHTTPAddr),
		ServiceName:   getEnv("OTEL_SERVICE_NAME", serviceName),
		OTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseCSV splits a comma separated list, dropping blanks.
func ParseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return b
}
