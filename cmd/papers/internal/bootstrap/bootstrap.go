// Package bootstrap wires the logger provider and module construction shared
// by the papers host binaries.
package bootstrap

import (
	"fmt"
	"strings"

	papers "github.com/openpages/go-papers"
	"github.com/openpages/go-papers/internal/logging"
	"github.com/openpages/go-papers/internal/logging/gologger"
	"github.com/openpages/go-papers/pkg/interfaces"
)

// Options captures configuration for the papers CLI bootstraps.
type Options struct {
	LogLevel   string
	LogFormat  string
	Extensions []string
}

// Runtime wraps the constructed module plus the logging collaborators the
// binaries need directly.
type Runtime struct {
	Module   *papers.Module
	Provider interfaces.LoggerProvider
	Logger   interfaces.Logger
}

// Build constructs a module configured for host-side processing runs.
func Build(opts Options) (*Runtime, error) {
	cfg := papers.DefaultConfig()
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}
	if len(opts.Extensions) > 0 {
		cfg.Parser.Extensions = SplitList(strings.Join(opts.Extensions, ","))
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, fmt.Errorf("initialise logger provider: %w", err)
	}

	module, err := papers.New(cfg, papers.WithLoggerProvider(provider))
	if err != nil {
		return nil, fmt.Errorf("initialise papers module: %w", err)
	}

	return &Runtime{
		Module:   module,
		Provider: provider,
		Logger:   logging.CommandsLogger(provider),
	}, nil
}

// SplitList parses a comma separated list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
