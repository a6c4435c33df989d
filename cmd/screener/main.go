package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:   "screener",
		Short: "Strategic Council news screener",
		Long:  "Collects market news, scores it with a cheap model tier, analyzes the top slice with a stronger one, and emails cadence reports.",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: ./config/config.json)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newScheduleCmd())
	root.AddCommand(newHistoryCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
