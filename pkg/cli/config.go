package cli

import (
	"context"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/adapter"
	"github.com/scholaragent/scholaragent/pkg/repository"
	"github.com/scholaragent/scholaragent/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL  = "http://localhost:8000"
	defaultLogLevel = "info"
)

// config holds configuration values
type config struct {
	baseURL  string
	logLevel string
	timeout  time.Duration
	profile  string
}

// profileFile is the optional YAML profile
type profileFile struct {
	BaseURL  string `yaml:"base_url"`
	LogLevel string `yaml:"log_level"`
	Timeout  string `yaml:"timeout"`
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "base-url",
			Aliases:     []string{"u"},
			Usage:       "Backend base URL",
			Value:       defaultBaseURL,
			Sources:     cli.EnvVars("SCHOLARAGENT_BASE_URL"),
			Destination: &cfg.baseURL,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       defaultLogLevel,
			Sources:     cli.EnvVars("SCHOLARAGENT_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "HTTP timeout for backend calls (0 uses per-call defaults)",
			Sources:     cli.EnvVars("SCHOLARAGENT_TIMEOUT"),
			Destination: &cfg.timeout,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to YAML profile",
			Sources:     cli.EnvVars("SCHOLARAGENT_CONFIG"),
			Destination: &cfg.profile,
		},
	}
}

// setup loads the optional profile and attaches a logger to the context.
// Flags and env vars win over profile values.
func (cfg *config) setup(ctx context.Context) (context.Context, error) {
	if cfg.profile != "" {
		if err := cfg.loadProfile(cfg.profile); err != nil {
			return ctx, err
		}
	}

	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger), nil
}

func (cfg *config) loadProfile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read profile", goerr.V("path", path))
	}

	var p profileFile
	if err := yaml.Unmarshal(content, &p); err != nil {
		return goerr.Wrap(err, "failed to parse profile", goerr.V("path", path))
	}

	if p.BaseURL != "" && cfg.baseURL == defaultBaseURL {
		cfg.baseURL = p.BaseURL
	}
	if p.LogLevel != "" && cfg.logLevel == defaultLogLevel {
		cfg.logLevel = p.LogLevel
	}
	if p.Timeout != "" && cfg.timeout == 0 {
		d, err := time.ParseDuration(p.Timeout)
		if err != nil {
			return goerr.Wrap(err, "invalid timeout in profile", goerr.V("timeout", p.Timeout))
		}
		cfg.timeout = d
	}
	return nil
}

// newRepository creates the conversation store client
func (cfg *config) newRepository() (repository.Repository, error) {
	if cfg.baseURL == "" {
		return nil, goerr.New("base-url is required")
	}
	return repository.New(cfg.baseURL, cfg.timeout), nil
}

// newAnswer creates the answer engine client
func (cfg *config) newAnswer() (adapter.Answer, error) {
	if cfg.baseURL == "" {
		return nil, goerr.New("base-url is required")
	}
	return adapter.NewAnswer(cfg.baseURL, cfg.timeout), nil
}

// newPapers creates the document management client
func (cfg *config) newPapers() (adapter.Papers, error) {
	if cfg.baseURL == "" {
		return nil, goerr.New("base-url is required")
	}
	return adapter.NewPapers(cfg.baseURL, cfg.timeout), nil
}

// newExporter creates the export client
func (cfg *config) newExporter() (adapter.Exporter, error) {
	if cfg.baseURL == "" {
		return nil, goerr.New("base-url is required")
	}
	return adapter.NewExporter(cfg.baseURL, cfg.timeout), nil
}

// newHealth creates the health probe client
func (cfg *config) newHealth() (adapter.Health, error) {
	if cfg.baseURL == "" {
		return nil, goerr.New("base-url is required")
	}
	return adapter.NewHealth(cfg.baseURL, cfg.timeout), nil
}
