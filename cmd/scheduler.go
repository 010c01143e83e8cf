package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MarvinNL046/cutiepawspedia/internal/scheduler"
)

const schedulerStopTimeout = 30 * time.Second

func newSchedulerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scheduler",
		Short: "Run the periodic sitemap regeneration job",
		Long: `Run sitemap generation on the configured cron schedule and keep
the cache refreshed. Runs until interrupted.`,
		RunE: runScheduler,
	}
}

func runScheduler(cmd *cobra.Command, _ []string) error {
	deps, err := newAppDeps()
	if err != nil {
		return err
	}
	defer deps.close()

	svc := scheduler.New(deps.cfg.Scheduler.CronSpec, deps.generator, deps.store, deps.log)

	if startErr := svc.Start(cmd.Context()); startErr != nil {
		return fmt.Errorf("start scheduler: %w", startErr)
	}

	<-cmd.Context().Done()
	deps.log.Info("shutdown signal received")

	stopCtx, cancel := context.WithTimeout(context.Background(), schedulerStopTimeout)
	defer cancel()

	if stopErr := svc.Stop(stopCtx); stopErr != nil {
		return fmt.Errorf("stop scheduler: %w", stopErr)
	}

	deps.log.Info("scheduler stopped")
	return nil
}
