package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "sar-dashboard",
	Short: "Search and rescue operations dashboard backend",
	Long: `Serves the initial map view, camera commands and the mock backend for the SAR dashboard.
Without a subcommand the HTTP server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to the .env file (missing file is ignored)")
	rootCmd.AddCommand(serveCmd, initialViewCmd, watchCmd)
}

// @title SAR Dashboard API
// @version 1.0
// @description Search and rescue operations dashboard: initial map view, camera commands and the mock backend.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
