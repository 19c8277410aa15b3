package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Francobelbruno/Portafolio/internal/app"
	"github.com/Francobelbruno/Portafolio/internal/config"
	"github.com/Francobelbruno/Portafolio/internal/models"
	"github.com/Francobelbruno/Portafolio/internal/render"
	"github.com/Francobelbruno/Portafolio/internal/services"
)

// snapshot is the projects.json document
type snapshot struct {
	Account  string        `json:"account"`
	LoadedAt string        `json:"loaded_at"`
	Projects []models.Card `json:"projects"`
}

func main() {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "generate <output-dir>",
		Short: "Write a static snapshot of the project gallery",
		Long: `Fetches the repositories once and writes projects.json and a rendered
index.html into the output directory. A failed fetch still writes index.html
with the error view so the published page degrades gracefully.`,
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			app.ConfigureLogging(verbose)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return generate(command.Context(), cfg, args[0])
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: auto-detect)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	if err := cmd.Execute(); err != nil {
		logger.Fatalf("Error executing 'generate': %s", err)
	}
}

func generate(ctx context.Context, cfg *config.Config, outputDir string) error {
	// Ensure output directory exists
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	projectService, err := app.NewProjectService(cfg)
	if err != nil {
		return err
	}

	logger.Infof("Fetching projects for %q...", cfg.Account)
	gallery, loadErr := projectService.Reload(ctx)

	if loadErr == nil {
		doc := snapshot{
			Account:  gallery.Account,
			LoadedAt: gallery.LoadedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Projects: projectService.GetAll(),
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal projects: %w", err)
		}
		if err := os.WriteFile(filepath.Join(outputDir, "projects.json"), data, 0644); err != nil {
			return fmt.Errorf("failed to write projects.json: %w", err)
		}
		logger.Infof("  Created projects.json (%d projects)", len(doc.Projects))
	}

	site := render.Site{Title: cfg.Site.Title, Tagline: cfg.Site.Tagline}
	page := render.NewPage(site, cfg.Account, projectService.Snapshot(), models.CategoryAll)

	if err := writePage(filepath.Join(outputDir, "index.html"), page); err != nil {
		return err
	}
	logger.Infof("  Created index.html (%s view)", page.View)

	if loadErr != nil {
		return fmt.Errorf("%s: %w", services.UserMessage(loadErr), loadErr)
	}
	logger.Info("Done!")
	return nil
}

func writePage(path string, page *render.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create index.html: %w", err)
	}
	if err := render.Write(f, page); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write index.html: %w", err)
	}
	return nil
}
