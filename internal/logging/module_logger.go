package logging

import (
	"context"

	"github.com/openpages/go-papers/pkg/interfaces"
)

const (
	rootModule     = "papers"
	pipelineModule = "papers.pipeline"
	archiveModule  = "papers.archive"
	commandsModule = "papers.commands"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as structured context so downstream entries can be filtered
// predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PipelineLogger returns the logger namespace reserved for the document
// processing pipeline.
func PipelineLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pipelineModule)
}

// ArchiveLogger returns the logger namespace reserved for archive extraction.
func ArchiveLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, archiveModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so components can operate safely when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
