package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/openpages/go-papers/internal/logging"
	"github.com/openpages/go-papers/pkg/interfaces"
)

const defaultHandlerTimeout = 30 * time.Second

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler wraps command execution with the shared concerns every command in
// this module applies: message validation, context management, structured
// logging, telemetry, and error categorisation.
type Handler[T command.Message] struct {
	exec      command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
	msgFields func(T) map[string]any
	telemetry Telemetry[T]
}

// NewHandler creates a handler that satisfies go-command's Commander
// interface while applying the module-wide execution concerns.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: defaultHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute conforms to command.Commander[T].Execute.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	ctx = EnsureContext(ctx)
	ctx, cancel := WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	messageType := command.GetMessageType(msg)
	fields := map[string]any{
		"command": messageType,
	}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	if h.msgFields != nil {
		for k, v := range h.msgFields(msg) {
			fields[k] = v
		}
	}
	logger := logging.WithFields(h.logger, fields)
	logger.Debug("command.execute.start")

	started := time.Now()
	execErr := h.exec(ctx, msg)
	ctxErr := ctx.Err()

	if h.telemetry != nil {
		info := TelemetryInfo{
			Command:   messageType,
			Operation: h.operation,
			Fields:    fields,
			Duration:  time.Since(started),
			Logger:    logger,
		}
		switch {
		case execErr != nil:
			info.Error = execErr
			info.Status = TelemetryStatusFailed
		case ctxErr != nil:
			info.Error = ctxErr
			info.Status = TelemetryStatusContextError
		default:
			info.Status = TelemetryStatusSuccess
		}
		h.telemetry(ctx, msg, info)
	}

	if execErr != nil {
		logger.Error("command.execute.failed", "error", execErr)
		return wrapExecuteError(execErr)
	}
	if ctxErr != nil {
		logger.Error("command.execute.context_error", "error", ctxErr)
		return wrapContextError(ctxErr)
	}

	logger.Info("command.execute.success")
	return nil
}

// WithTimeout overrides the default execution timeout.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}

// WithOperation sets a human-friendly operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// WithMessageFields derives per-message structured fields included in log
// entries and telemetry for each execution.
func WithMessageFields[T command.Message](fn func(T) map[string]any) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.msgFields = fn
	}
}

// WithTelemetry installs a callback invoked after every execution.
func WithTelemetry[T command.Message](t Telemetry[T]) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.telemetry = t
	}
}
