package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultAccount is the GitHub account whose projects are shown
const DefaultAccount = "Francobelbruno"

// Config holds all application configuration
type Config struct {
	ServerAddr string        `yaml:"server_addr"`
	Account    string        `yaml:"account"`
	GitHub     GitHubConfig  `yaml:"github"`
	Contact    ContactConfig `yaml:"contact"`
	Site       SiteConfig    `yaml:"site"`
}

// GitHubConfig holds REST API settings
type GitHubConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"` // zero disables the timeout
	UserAgent string        `yaml:"user_agent"`
}

// ContactConfig holds contact form settings
type ContactConfig struct {
	Recipient string `yaml:"recipient"`
}

// SiteConfig holds page presentation settings
type SiteConfig struct {
	Title     string `yaml:"title"`
	Tagline   string `yaml:"tagline"`
	StaticDir string `yaml:"static_dir"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		ServerAddr: ":8080",
		Account:    DefaultAccount,
		GitHub: GitHubConfig{
			BaseURL:   "https://api.github.com/",
			UserAgent: "portfolio-gallery",
		},
		Contact: ContactConfig{Recipient: "francobelbruno1@gmail.com"},
		Site: SiteConfig{
			Title:     "Franco Belbruno",
			Tagline:   "Software developer",
			StaticDir: "static",
		},
	}
}

// Load reads the configuration. An empty path means search the default
// locations; not finding a file there is not an error. Environment variables
// SERVER_ADDR and PORTFOLIO_ACCOUNT override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
		}
		path = found
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		data = []byte(expandEnv(string(data)))
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
		logger.Infof("Loaded config from %q", path)
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}
	if account := os.Getenv("PORTFOLIO_ACCOUNT"); account != "" {
		cfg.Account = account
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".portfolio.yaml",
		".portfolio.yml",
		"portfolio.yaml",
		"portfolio.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${VAR} references with their environment values
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Account) == "" {
		return errors.New("account is required")
	}
	if cfg.ServerAddr == "" {
		return errors.New("server_addr is required")
	}
	if cfg.GitHub.Timeout < 0 {
		return fmt.Errorf("github.timeout must not be negative, got %s", cfg.GitHub.Timeout)
	}
	return nil
}
