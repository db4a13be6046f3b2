package papers

import "github.com/openpages/go-papers/pkg/interfaces"

// Config controls module construction. Zero values are usable; DefaultConfig
// fills in the extension set matching the reference renderer.
type Config struct {
	Parser  interfaces.ParseOptions
	Logging LoggingConfig
}

// LoggingConfig carries the options forwarded to logger providers built by
// host bootstraps. The module itself only consumes the injected provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the baseline configuration: strikethrough, tables,
// footnotes, and task lists enabled, console logging at info level.
func DefaultConfig() Config {
	return Config{
		Parser: interfaces.ParseOptions{
			Extensions: []string{"strikethrough", "table", "footnote", "tasklist"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
