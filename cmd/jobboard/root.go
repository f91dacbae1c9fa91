package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	dataDir       string
	defaultConfig string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "jobboard",
		Short:         "Job board web server and terminal browser",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory holding config.yml (default $JOBBOARD_DATA_DIR or .)")
	rootCmd.PersistentFlags().StringVar(&opts.defaultConfig, "default-config", "config/config.yml", "file copied to the data dir when it has no config.yml")

	rootCmd.AddCommand(
		newServeCommand(opts),
		newJobsCommand(opts),
		newConfigCommand(opts),
	)

	return rootCmd
}
