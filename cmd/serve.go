package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/MarvinNL046/cutiepawspedia/internal/api"
	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
	"github.com/MarvinNL046/cutiepawspedia/internal/logger"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server exposing the internal-links API, the
sitemap index and section documents, health, and metrics.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	deps, err := newAppDeps()
	if err != nil {
		return err
	}
	defer deps.close()

	linksHandler := api.NewLinksHandler(deps.linksSvc, deps.tel, deps.log)

	var lastRun func(ctx context.Context) (domain.SitemapRun, error)
	if deps.runs != nil {
		lastRun = deps.runs.LastRun
	}
	sitemapHandler := api.NewSitemapHandler(deps.generator, deps.store, lastRun, deps.log)

	var dbPing func(ctx context.Context) error
	if deps.stats != nil {
		dbPing = deps.stats.Ping
	}

	router := api.NewRouter(deps.cfg, linksHandler, sitemapHandler, deps.tel, dbPing, deps.log)
	server := router.Server()

	errChan := make(chan error, 1)
	go func() {
		deps.log.Info("http server listening", logger.String("address", deps.cfg.Server.Address))
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	select {
	case serveErr := <-errChan:
		return fmt.Errorf("http server: %w", serveErr)
	case <-cmd.Context().Done():
		deps.log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		return fmt.Errorf("shutdown http server: %w", shutdownErr)
	}

	deps.log.Info("http server stopped")
	return nil
}
