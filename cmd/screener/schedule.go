package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/spf13/cobra"

	"github.com/strategic-council/screener/config"
)

func newScheduleCmd() *cobra.Command {
	var preview int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run screening cycles on the configured cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			expr, err := cronexpr.Parse(cfg.Schedule.CronSpec)
			if err != nil {
				return fmt.Errorf("schedule.cron_spec: %w", err)
			}

			if preview > 0 {
				for _, t := range expr.NextN(time.Now(), uint(preview)) {
					fmt.Println(t.Format(time.RFC1123))
				}
				return nil
			}
			return scheduleLoop(cmd, cfg, expr)
		},
	}
	cmd.Flags().IntVar(&preview, "preview", 0, "print the next N trigger times and exit")
	return cmd
}

// scheduleLoop sleeps until each cron trigger and runs a full cycle. A failed
// cycle is logged and the loop keeps going; only a signal stops it.
func scheduleLoop(cmd *cobra.Command, cfg *config.Config, expr *cronexpr.Expression) error {
	logger := log.New(log.Writer(), "[SCHEDULE] ", log.LstdFlags)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		next := expr.Next(time.Now())
		if next.IsZero() {
			return fmt.Errorf("cron spec %q yields no future trigger", cfg.Schedule.CronSpec)
		}
		logger.Printf("next run at %s", next.Format(time.RFC1123))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-timer.C:
			if err := runOnce(cmd.Context(), cfg, false); err != nil {
				logger.Printf("cycle failed: %v", err)
			}
		case sig := <-sigCh:
			timer.Stop()
			logger.Printf("received %s, stopping", sig)
			return nil
		}
	}
}
