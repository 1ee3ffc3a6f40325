package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/skillcoder/kubenexus/internal/app"
	"github.com/skillcoder/kubenexus/internal/config"
)

const (
	flagKubeConfig  = "kubeconfig"
	flagKubeMaster  = "kube-master"
	flagHTTPPort    = "http-port"
	flagMetricsPort = "metrics-port"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
)

// serveOptions holds flag values. A flag overrides the environment only when set.
type serveOptions struct {
	kubeConfig  string
	kubeMaster  string
	httpPort    string
	metricsPort string
	logLevel    string
	logFormat   string
}

func (o *serveOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&o.kubeConfig, flagKubeConfig, "", "path to a kubeconfig file (overrides KUBENEXUS_KUBECONFIG)")
	flags.StringVar(&o.kubeMaster, flagKubeMaster, "", "Kubernetes API server URL (overrides KUBENEXUS_KUBE_MASTER)")
	flags.StringVar(&o.httpPort, flagHTTPPort, "", "API listen port (overrides KUBENEXUS_HTTP_PORT)")
	flags.StringVar(&o.metricsPort, flagMetricsPort, "", "metrics listen port (overrides KUBENEXUS_METRICS_PORT)")
	flags.StringVar(&o.logLevel, flagLogLevel, "", "debug, info, warn or error (overrides KUBENEXUS_LOG_LEVEL)")
	flags.StringVar(&o.logFormat, flagLogFormat, "", "json or text (overrides KUBENEXUS_LOG_FORMAT)")
}

// apply copies explicitly set flags over cfg.
func (o *serveOptions) apply(flags *pflag.FlagSet, cfg *config.Config) {
	overrides := []struct {
		name  string
		value string
		dst   *string
	}{
		{name: flagKubeConfig, value: o.kubeConfig, dst: &cfg.KubeConfig},
		{name: flagKubeMaster, value: o.kubeMaster, dst: &cfg.KubeMaster},
		{name: flagHTTPPort, value: o.httpPort, dst: &cfg.HTTPPort},
		{name: flagMetricsPort, value: o.metricsPort, dst: &cfg.MetricsPort},
		{name: flagLogLevel, value: o.logLevel, dst: &cfg.LogLevel},
		{name: flagLogFormat, value: o.logFormat, dst: &cfg.LogFormat},
	}

	for _, ov := range overrides {
		if flags.Changed(ov.name) {
			*ov.dst = ov.value
		}
	}
}

func newServeCmd(signals <-chan os.Signal, version string, opts *serveOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the cluster summary API",
		Long: `Serve the read-only cluster summary API, the operational endpoints
(/-/healthz, /-/readyz, /-/status) and Prometheus metrics on a separate port.

Configuration is read from KUBENEXUS_* environment variables; flags override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, signals, version, opts)
		},
	}
}

func loadConfig(flags *pflag.FlagSet, opts *serveOptions) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	opts.apply(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func runServe(cmd *cobra.Command, signals <-chan os.Signal, version string, opts *serveOptions) error {
	cfg, err := loadConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	application, err := app.New(ctx, cfg, signals, version)
	if err != nil {
		return fmt.Errorf("new application: %w", err)
	}

	return application.Run(ctx)
}
