package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Francobelbruno/Portafolio/internal/app"
	"github.com/Francobelbruno/Portafolio/internal/config"
	"github.com/Francobelbruno/Portafolio/internal/handlers"
)

const shutdownTimeout = 10 * time.Second

func buildRootCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		account    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "portfolio-server",
		Short: "Serve the portfolio page and its GitHub project gallery",
		Long: `Serves the portfolio page. The project gallery is loaded once from the
public GitHub API at startup and can be refreshed with POST /api/projects/reload.
A failed load never stops the server; the page shows an error view instead.`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			app.ConfigureLogging(verbose)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ServerAddr = addr
			}
			if account != "" {
				cfg.Account = account
			}

			return serve(command.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: auto-detect)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config and SERVER_ADDR)")
	cmd.Flags().StringVar(&account, "account", "", "GitHub account to show (overrides config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	projectService, err := app.NewProjectService(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg, projectService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("Loading projects for %q", cfg.Account)
		// A failure is recorded by the service and rendered as the error view
		_, _ = projectService.Reload(ctx)
		return nil
	})

	g.Go(func() error {
		logger.Infof("Server listening on %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func main() {
	if err := buildRootCommand().Execute(); err != nil {
		logger.Fatalf("Error executing 'portfolio-server': %s", err)
	}
}
