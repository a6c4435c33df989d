package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/internal/history"
	"github.com/strategic-council/screener/models"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect stored report history",
	}
	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistorySearchCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var cadenceFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print stored report summaries, newest last",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, closeFn, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			cadences := models.AllCadences()
			if cadenceFlag != "" {
				c := models.Cadence(cadenceFlag)
				if !c.Valid() {
					return fmt.Errorf("unknown cadence %q", cadenceFlag)
				}
				cadences = []models.Cadence{c}
			}

			for _, c := range cadences {
				entries := snap.Entries[c]
				if len(entries) == 0 {
					continue
				}
				fmt.Printf("== %s (%d entries) ==\n", c.Label(), len(entries))
				for _, e := range entries {
					fmt.Printf("  %s  %s\n", e.Date, e.Summary)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cadenceFlag, "cadence", "", "restrict to one cadence (daily, weekly, monthly, quarterly, semi_annual, annual)")
	return cmd
}

func newHistorySearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over stored summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, closeFn, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			hits, err := history.Search(snap, args[0], limit)
			if err != nil {
				return err
			}
			if len(hits) == 0 {
				fmt.Println("no matches")
				return nil
			}
			for _, h := range hits {
				fmt.Printf("[%s] %s (%.2f)\n  %s\n", h.Cadence, h.Entry.Date, h.Score, h.Entry.Summary)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of hits")
	return cmd
}

func loadSnapshot(ctx context.Context) (*history.Snapshot, func(), error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := history.NewStore(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	snap, err := store.Load(ctx)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return snap, func() { store.Close() }, nil
}
