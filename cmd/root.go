package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/retireus/checkpoint/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "checkpoint",
	Short: "Retirement checkpoint assessment engine",
	Long:  "Evaluates checkpoint quiz answers against the red flag rule set, recommends service tiers, and computes pacing, tax planning, and risk of failure scores.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
