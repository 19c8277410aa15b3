// Package app wires configuration into the services used by the commands.
package app

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/Francobelbruno/Portafolio/internal/config"
	"github.com/Francobelbruno/Portafolio/internal/github"
	"github.com/Francobelbruno/Portafolio/internal/services"
)

// NewProjectService builds the GitHub client, loader and service for cfg
func NewProjectService(cfg *config.Config) (*services.ProjectService, error) {
	client, err := github.NewClient(cfg.Account, github.Options{
		BaseURL:   cfg.GitHub.BaseURL,
		Timeout:   cfg.GitHub.Timeout,
		UserAgent: cfg.GitHub.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create github client: %w", err)
	}
	return services.NewProjectService(services.NewProjectLoader(client)), nil
}

// ConfigureLogging sets the logrus formatter and level
func ConfigureLogging(verbose bool) {
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logger.InfoLevel)
	if verbose || os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}
}
