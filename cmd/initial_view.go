package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/sar_dashboard/internal/camera"
	"github.com/shenikar/sar_dashboard/internal/config"
	"github.com/shenikar/sar_dashboard/internal/view"
	"github.com/shenikar/sar_dashboard/pkg/logger"
	"github.com/spf13/cobra"
)

var initialViewCmd = &cobra.Command{
	Use:   "initial-view",
	Short: "Print the initial view and camera command for the configured scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// stdout занят JSON, логи уходят в stderr
		log := logger.NewWithOutput(cfg.LogLevel, os.Stderr)

		a, err := newApp(cmd.Context(), cfg, log, prometheus.NewRegistry(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		return printInitialView(cmd.Context(), a, cmd.OutOrStdout())
	},
}

type initialViewOutput struct {
	View    view.InitialView `json:"view"`
	Command *camera.Command  `json:"command"`
}

func printInitialView(ctx context.Context, a *app, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	iv, cmd := a.service.CameraCommand(ctx)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(initialViewOutput{View: iv, Command: cmd}); err != nil {
		return fmt.Errorf("failed to encode initial view: %w", err)
	}
	return nil
}
