package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/skillcoder/kubenexus/internal/infra/tracing"
)

const (
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultHTTPPort        = "8000"
	defaultMetricsPort     = "9090"
	defaultPingerInterval  = "10s"
	defaultLogTailLines    = "300"
	defaultLogTailLinesMax = "5000"
	defaultOTLPEndpoint    = "localhost:4318"
	defaultServiceName     = "kubenexus"
)

type Config struct {
	KubeConfig           string
	KubeMaster           string
	LogLevel             string
	LogFormat            string
	HTTPPort             string
	MetricsPort          string
	PingerInterval       time.Duration
	ClusterReadyCritical bool
	LogTailLines         int64
	LogTailLinesMax      int64
	TracingExporter      string
	OTLPEndpoint         string
	OTLPInsecure         bool
	ServiceName          string
}

func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:      os.Getenv(envKeyKubeConfig),
		KubeMaster:      getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		LogLevel:        getEnvOrDefault(envKeyLogLevel, defaultLogLevel),
		LogFormat:       getEnvOrDefault(envKeyLogFormat, defaultLogFormat),
		HTTPPort:        getEnvOrDefault(envKeyHTTPPort, defaultHTTPPort),
		MetricsPort:     getEnvOrDefault(envKeyMetricsPort, defaultMetricsPort),
		TracingExporter: getEnvOrDefault(envKeyTracingExporter, tracing.ExporterNone),
		OTLPEndpoint:    getEnvOrDefault(envKeyOTLPEndpoint, defaultOTLPEndpoint),
		ServiceName:     getEnvOrDefault(envKeyServiceName, defaultServiceName),
	}

	pingerInterval, err := parseDurationMin(envKeyPingerInterval, defaultPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	cfg.PingerInterval = pingerInterval

	cfg.ClusterReadyCritical, err = parseBool(envKeyClusterReadyCritical, "false")
	if err != nil {
		return nil, err
	}

	cfg.OTLPInsecure, err = parseBool(envKeyOTLPInsecure, "true")
	if err != nil {
		return nil, err
	}

	cfg.LogTailLines, err = parsePositiveInt(envKeyLogTailLines, defaultLogTailLines)
	if err != nil {
		return nil, err
	}

	cfg.LogTailLinesMax, err = parsePositiveInt(envKeyLogTailLinesMax, defaultLogTailLinesMax)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints. It is also run after flag overrides.
func (c *Config) Validate() error {
	if c.LogTailLines > c.LogTailLinesMax {
		return fmt.Errorf("%w: %s (%d) exceeds %s (%d)", ErrInvalidValue,
			envKeyLogTailLines, c.LogTailLines, envKeyLogTailLinesMax, c.LogTailLinesMax)
	}

	switch c.TracingExporter {
	case tracing.ExporterNone, tracing.ExporterStdout, tracing.ExporterOTLP:
	default:
		return fmt.Errorf("%w: %s %q", ErrInvalidValue, envKeyTracingExporter, c.TracingExporter)
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: %s %q", ErrInvalidValue, envKeyLogFormat, c.LogFormat)
	}

	if _, err := strconv.ParseUint(c.HTTPPort, 10, 16); err != nil {
		return fmt.Errorf("%w: %s %q: %w", ErrInvalidValue, envKeyHTTPPort, c.HTTPPort, err)
	}

	if _, err := strconv.ParseUint(c.MetricsPort, 10, 16); err != nil {
		return fmt.Errorf("%w: %s %q: %w", ErrInvalidValue, envKeyMetricsPort, c.MetricsPort, err)
	}

	return nil
}

func parseDurationMin(key, defaultValue string, minValue time.Duration) (time.Duration, error) {
	raw := getEnvOrDefault(key, defaultValue)

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if d < minValue {
		return 0, fmt.Errorf("%w: %s must be at least %s, got %s", ErrInvalidValue, key, minValue, d)
	}

	return d, nil
}

func parseBool(key, defaultValue string) (bool, error) {
	v, err := strconv.ParseBool(getEnvOrDefault(key, defaultValue))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}

	return v, nil
}

func parsePositiveInt(key, defaultValue string) (int64, error) {
	v, err := strconv.ParseInt(getEnvOrDefault(key, defaultValue), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, key, v)
	}

	return v, nil
}

func getEnvWithFallback(key, fallbackKey string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return os.Getenv(fallbackKey)
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
