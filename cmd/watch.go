package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shenikar/sar_dashboard/internal/config"
	"github.com/shenikar/sar_dashboard/internal/publisher"
	"github.com/shenikar/sar_dashboard/pkg/logger"
	redisclient "github.com/shenikar/sar_dashboard/pkg/redis"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print camera command events published by a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.RedisEnabled() {
			return fmt.Errorf("REDIS_ADDR is not set")
		}
		log := logger.NewWithOutput(cfg.LogLevel, os.Stderr)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		out := cmd.OutOrStdout()
		sub := publisher.NewSubscriber(redisClient, cfg.ViewEventsChannel, log)
		return sub.Run(ctx, func(e publisher.ReceivedEvent) {
			kind := "none"
			if e.Command != nil {
				kind = string(e.Command.Kind)
			}
			fmt.Fprintf(out, "rev=%d view=%s command=%s at=%s\n", e.Revision, e.ViewType, kind, e.Timestamp.Format("15:04:05"))
		})
	},
}
