package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kubenexus/internal/config"
)

type loadCase struct {
	name    string
	giveEnv map[string]string
	wantErr error
	wantCfg *config.Config
}

func assertConfigFields(t *testing.T, got, want *config.Config) {
	t.Helper()

	if want == nil {
		return
	}

	if want.KubeConfig != "" {
		require.Equal(t, want.KubeConfig, got.KubeConfig)
	}

	if want.KubeMaster != "" {
		require.Equal(t, want.KubeMaster, got.KubeMaster)
	}

	if want.HTTPPort != "" {
		require.Equal(t, want.HTTPPort, got.HTTPPort)
	}

	if want.MetricsPort != "" {
		require.Equal(t, want.MetricsPort, got.MetricsPort)
	}

	if want.PingerInterval != 0 {
		require.Equal(t, want.PingerInterval, got.PingerInterval)
	}

	if want.LogLevel != "" {
		require.Equal(t, want.LogLevel, got.LogLevel)
	}

	if want.LogFormat != "" {
		require.Equal(t, want.LogFormat, got.LogFormat)
	}

	if want.LogTailLines != 0 {
		require.Equal(t, want.LogTailLines, got.LogTailLines)
	}

	if want.LogTailLinesMax != 0 {
		require.Equal(t, want.LogTailLinesMax, got.LogTailLinesMax)
	}

	if want.TracingExporter != "" {
		require.Equal(t, want.TracingExporter, got.TracingExporter)
	}

	if want.OTLPEndpoint != "" {
		require.Equal(t, want.OTLPEndpoint, got.OTLPEndpoint)
	}

	if want.ServiceName != "" {
		require.Equal(t, want.ServiceName, got.ServiceName)
	}

	require.Equal(t, want.ClusterReadyCritical, got.ClusterReadyCritical)
	require.Equal(t, want.OTLPInsecure, got.OTLPInsecure)
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"KUBECONFIG",
		"KUBERNETES_MASTER",
		"KUBENEXUS_KUBECONFIG",
		"KUBENEXUS_KUBE_MASTER",
		"KUBENEXUS_LOG_LEVEL",
		"KUBENEXUS_LOG_FORMAT",
		"KUBENEXUS_HTTP_PORT",
		"KUBENEXUS_METRICS_PORT",
		"KUBENEXUS_PINGER_INTERVAL",
		"KUBENEXUS_CLUSTER_READY_CRITICAL",
		"KUBENEXUS_LOG_TAIL_LINES",
		"KUBENEXUS_LOG_TAIL_LINES_MAX",
		"KUBENEXUS_TRACING_EXPORTER",
		"KUBENEXUS_OTLP_ENDPOINT",
		"KUBENEXUS_OTLP_INSECURE",
		"KUBENEXUS_SERVICE_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []loadCase{
		{
			name:    "all defaults",
			giveEnv: map[string]string{},
			wantCfg: &config.Config{
				LogLevel:        "info",
				LogFormat:       "json",
				HTTPPort:        "8000",
				MetricsPort:     "9090",
				PingerInterval:  10 * time.Second,
				LogTailLines:    300,
				LogTailLinesMax: 5000,
				TracingExporter: "none",
				OTLPEndpoint:    "localhost:4318",
				OTLPInsecure:    true,
				ServiceName:     "kubenexus",
			},
		},
		{
			name: "override ports and pinger interval",
			giveEnv: map[string]string{
				"KUBENEXUS_HTTP_PORT":       "8080",
				"KUBENEXUS_METRICS_PORT":    "9091",
				"KUBENEXUS_PINGER_INTERVAL": "1m",
			},
			wantCfg: &config.Config{
				HTTPPort:       "8080",
				MetricsPort:    "9091",
				PingerInterval: time.Minute,
				OTLPInsecure:   true,
			},
		},
		{
			name: "kube master falls back to standard env",
			giveEnv: map[string]string{
				"KUBERNETES_MASTER": "https://10.0.0.1:6443",
			},
			wantCfg: &config.Config{
				KubeMaster:   "https://10.0.0.1:6443",
				OTLPInsecure: true,
			},
		},
		{
			name: "prefixed kube settings win over fallback",
			giveEnv: map[string]string{
				"KUBECONFIG":            "/home/dev/.kube/config",
				"KUBENEXUS_KUBECONFIG":  "/etc/kubenexus/kubeconfig",
				"KUBENEXUS_KUBE_MASTER": "https://api.example:6443",
			},
			wantCfg: &config.Config{
				KubeConfig:   "/etc/kubenexus/kubeconfig",
				KubeMaster:   "https://api.example:6443",
				OTLPInsecure: true,
			},
		},
		{
			name: "tracing and readiness",
			giveEnv: map[string]string{
				"KUBENEXUS_TRACING_EXPORTER":       "otlp",
				"KUBENEXUS_OTLP_ENDPOINT":          "otel-collector:4318",
				"KUBENEXUS_OTLP_INSECURE":          "false",
				"KUBENEXUS_CLUSTER_READY_CRITICAL": "true",
				"KUBENEXUS_SERVICE_NAME":           "kubenexus-dev",
			},
			wantCfg: &config.Config{
				TracingExporter:      "otlp",
				OTLPEndpoint:         "otel-collector:4318",
				OTLPInsecure:         false,
				ClusterReadyCritical: true,
				ServiceName:          "kubenexus-dev",
			},
		},
		{
			name: "log tail lines",
			giveEnv: map[string]string{
				"KUBENEXUS_LOG_TAIL_LINES":     "100",
				"KUBENEXUS_LOG_TAIL_LINES_MAX": "1000",
			},
			wantCfg: &config.Config{
				LogTailLines:    100,
				LogTailLinesMax: 1000,
				OTLPInsecure:    true,
			},
		},
		{
			name: "invalid pinger interval",
			giveEnv: map[string]string{
				"KUBENEXUS_PINGER_INTERVAL": "not-a-duration",
			},
		},
		{
			name: "pinger interval below minimum",
			giveEnv: map[string]string{
				"KUBENEXUS_PINGER_INTERVAL": "500ms",
			},
			wantErr: config.ErrInvalidValue,
		},
		{
			name: "invalid bool",
			giveEnv: map[string]string{
				"KUBENEXUS_CLUSTER_READY_CRITICAL": "maybe",
			},
		},
		{
			name: "zero tail lines",
			giveEnv: map[string]string{
				"KUBENEXUS_LOG_TAIL_LINES": "0",
			},
			wantErr: config.ErrInvalidValue,
		},
		{
			name: "tail lines above max",
			giveEnv: map[string]string{
				"KUBENEXUS_LOG_TAIL_LINES":     "600",
				"KUBENEXUS_LOG_TAIL_LINES_MAX": "500",
			},
			wantErr: config.ErrInvalidValue,
		},
		{
			name: "unknown exporter",
			giveEnv: map[string]string{
				"KUBENEXUS_TRACING_EXPORTER": "jaeger",
			},
			wantErr: config.ErrInvalidValue,
		},
		{
			name: "unknown log format",
			giveEnv: map[string]string{
				"KUBENEXUS_LOG_FORMAT": "xml",
			},
			wantErr: config.ErrInvalidValue,
		},
		{
			name: "invalid port",
			giveEnv: map[string]string{
				"KUBENEXUS_HTTP_PORT": "http",
			},
			wantErr: config.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			for k, v := range tt.giveEnv {
				t.Setenv(k, v)
			}

			got, err := config.Load()
			if tt.wantCfg == nil {
				require.Error(t, err)

				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			assertConfigFields(t, got, tt.wantCfg)
		})
	}
}

func TestLoad_KubeConfigListLeftToLoadingRules(t *testing.T) {
	clearEnv(t)
	t.Setenv("KUBECONFIG", "/home/dev/.kube/config:/home/dev/.kube/staging")

	got, err := config.Load()
	require.NoError(t, err)
	require.Empty(t, got.KubeConfig)
}
