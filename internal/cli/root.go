package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the kubenexus command tree. Without a subcommand it serves the API.
func NewRootCmd(signals <-chan os.Signal, version string) *cobra.Command {
	opts := &serveOptions{}

	rootCmd := &cobra.Command{
		Use:   "kubenexus",
		Short: "Read-only HTTP summaries of Kubernetes namespaces and pods",
		Long: `kubenexus queries a Kubernetes control plane and serves simplified,
read-only summaries of namespaces and pods over HTTP.

When run without subcommands, it starts the server (equivalent to 'kubenexus serve').`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, signals, version, opts)
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "kubenexus version %s\n" .Version}}`)

	opts.bindFlags(rootCmd)

	rootCmd.AddCommand(newServeCmd(signals, version, opts))
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}
