package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rkarim/schedule-optimizer/internal/config"
	"github.com/rkarim/schedule-optimizer/internal/csvio"
	"github.com/rkarim/schedule-optimizer/internal/logging"
	"github.com/rkarim/schedule-optimizer/internal/optimizer"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "ScheduleOptimizer",
	Short: "Rank course section combinations by schedule preference",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logging.New("optimizer")

	catalog, _, err := csvio.LoadCatalog(cfg.Input, cfg.Courses, logging.New("csvio"))
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	start := time.Now()
	result, err := optimizer.Run(ctx, catalog, optimizer.Options{
		Required:        cfg.Courses,
		Scorer:          optimizer.Scorer{Rubric: cfg.Rubric, Campuses: cfg.Campuses},
		TopK:            cfg.TopK,
		Workers:         cfg.Workers,
		MaxCombinations: cfg.MaxCombinations,
		Log:             log,
	})
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("run complete")

	if err := csvio.ExportSchedules(cfg.Output, result); err != nil {
		return err
	}
	log.Info().Str("path", cfg.Output).Int("schedules", len(result.Schedules)).Msg("exported ranking")

	csvio.PrintSchedules(os.Stdout, result, cfg.Display)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
