// Package paperscmd exposes the document and archive processing operations as
// go-command message/handler pairs so hosts can dispatch them through a
// command bus or invoke them directly.
package paperscmd

import (
	"context"

	command "github.com/goliatone/go-command"

	papers "github.com/openpages/go-papers"
	"github.com/openpages/go-papers/internal/commands"
	"github.com/openpages/go-papers/pkg/interfaces"
)

const (
	processDocumentOperation = "papers.process_document"
	processArchiveOperation  = "papers.process_archive"
)

var (
	_ command.Commander[ProcessDocumentCommand] = (*ProcessDocumentHandler)(nil)
	_ command.Commander[ProcessArchiveCommand]  = (*ProcessArchiveHandler)(nil)
)

// ProcessDocumentHandler runs single documents through the module pipeline.
type ProcessDocumentHandler struct {
	inner *commands.Handler[ProcessDocumentCommand]
}

// NewProcessDocumentHandler creates a handler bound to the supplied module.
func NewProcessDocumentHandler(module *papers.Module, logger interfaces.Logger, opts ...commands.HandlerOption[ProcessDocumentCommand]) *ProcessDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ProcessDocumentCommand) error {
		_, err := module.ProcessDocument(ctx, msg.Filename, msg.Content)
		return err
	}

	handlerOpts := []commands.HandlerOption[ProcessDocumentCommand]{
		commands.WithLogger[ProcessDocumentCommand](baseLogger),
		commands.WithOperation[ProcessDocumentCommand](processDocumentOperation),
		commands.WithMessageFields(func(msg ProcessDocumentCommand) map[string]any {
			return map[string]any{
				"filename": msg.Filename,
				"bytes":    len(msg.Content),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ProcessDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ProcessDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ProcessDocumentCommand].
func (h *ProcessDocumentHandler) Execute(ctx context.Context, msg ProcessDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ProcessArchiveHandler extracts an archive buffer and processes its members.
type ProcessArchiveHandler struct {
	inner *commands.Handler[ProcessArchiveCommand]
}

// NewProcessArchiveHandler creates a handler bound to the supplied module.
func NewProcessArchiveHandler(module *papers.Module, logger interfaces.Logger, opts ...commands.HandlerOption[ProcessArchiveCommand]) *ProcessArchiveHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ProcessArchiveCommand) error {
		processed, err := module.ProcessArchive(ctx, msg.Archive)
		if len(processed) > 0 {
			baseLogger.Info("archive processing completed", "processed", len(processed))
		}
		return err
	}

	handlerOpts := []commands.HandlerOption[ProcessArchiveCommand]{
		commands.WithLogger[ProcessArchiveCommand](baseLogger),
		commands.WithOperation[ProcessArchiveCommand](processArchiveOperation),
		commands.WithMessageFields(func(msg ProcessArchiveCommand) map[string]any {
			return map[string]any{
				"archive_bytes": len(msg.Archive),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ProcessArchiveCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ProcessArchiveHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ProcessArchiveCommand].
func (h *ProcessArchiveHandler) Execute(ctx context.Context, msg ProcessArchiveCommand) error {
	return h.inner.Execute(ctx, msg)
}
