package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipdeck/shipdeck/internal/client/cli"
	"github.com/shipdeck/shipdeck/internal/client/config"
)

// rootCmd starts the interactive shell when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "shipdeck",
	Short: "Interactive client for the shipdeck carrier platform",
	Long: `Interactive client for the shipdeck carrier platform.

Manage carrier API credentials, origin locations and shipments, and test
OAuth token acquisition against FedEx, UPS and USPS — all against a running
shipdeck backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()
		overlayFlags(cmd, cfg)

		app, err := cli.NewApp(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
			os.Exit(1)
		}
		app.Run(cmd.Context())
	},
}

// overlayFlags applies flags the user set explicitly on top of the
// defaults/env/flag layering done by config.LoadConfig.
func overlayFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("api-url") {
		cfg.APIBaseURL, _ = cmd.Flags().GetString("api-url")
	}
	if cmd.Flags().Changed("db-path") {
		cfg.DBPath, _ = cmd.Flags().GetString("db-path")
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("api-url", "a", "http://localhost:3000", "base URL of the backend API")
	rootCmd.PersistentFlags().StringP("db-path", "d", "shipdeck.db", "path of the local session database")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
}
