// Package cmd implements the command-line interface for the
// cutiepawspedia directory service.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version can be overridden at build time via -ldflags.
var version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug mode for all commands.
	debug bool

	rootCmd = &cobra.Command{
		Use:   "cutiepawspedia",
		Short: "Pet-services directory: SEO link engine and sitemap generator",
		Long: `cutiepawspedia serves the internal-links API and the sitemap
documents for the pet-services directory, and runs the scheduled
sitemap generation job.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command with signal-aware context.
func Execute() error {
	// Load .env early so environment variables are available to the
	// config loader. Missing file is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./config.yaml or ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "cutiepawspedia version %s\n", version)
		},
	})

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newSchedulerCommand())
	rootCmd.AddCommand(newMigrateCommand())
}
