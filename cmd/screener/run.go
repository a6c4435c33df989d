package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/internal/delivery"
	"github.com/strategic-council/screener/internal/feed"
	"github.com/strategic-council/screener/internal/history"
	"github.com/strategic-council/screener/internal/screener"
	"github.com/strategic-council/screener/internal/telemetry"
	"github.com/strategic-council/screener/provider"
)

func newRunCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one screening cycle now",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			return runOnce(cmd.Context(), cfg, dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "generate reports but skip email delivery")
	return cmd
}

func runOnce(ctx context.Context, cfg *config.Config, dryRun bool) error {
	llm, err := provider.NewProvider(cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm provider: %w", err)
	}

	store, err := history.NewStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("history store: %w", err)
	}
	defer store.Close()

	var deliverer delivery.Deliverer
	if !dryRun {
		deliverer = delivery.NewEmailDeliverer(cfg.Email)
	}

	pipeline := screener.NewPipeline(cfg,
		feed.NewRSSCollector(cfg.Sources),
		llm, store, deliverer,
		telemetry.New(cfg.Telemetry),
	)

	runCtx := ctx
	if cfg.General.DefaultTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.General.DefaultTimeout)
		defer cancel()
	}
	return pipeline.Run(runCtx)
}
