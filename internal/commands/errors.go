package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeValidationFailed = "PAPERS_CMD_VALIDATION_FAILED"
	codeCanceled         = "PAPERS_CMD_CANCELED"
	codeTimeout          = "PAPERS_CMD_TIMEOUT"
	codeContextFailed    = "PAPERS_CMD_CONTEXT_FAILED"
	codeExecutionFailed  = "PAPERS_CMD_EXECUTION_FAILED"
)

// categorize wraps err exactly once; errors that already carry a category
// pass through so codes assigned closer to the failure win.
func categorize(err error, category goerrors.Category, message, code string) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return categorize(err, goerrors.CategoryValidation, "command validation failed", codeValidationFailed)
}

func wrapExecuteError(err error) error {
	return categorize(err, goerrors.CategoryCommand, "command execution failed", codeExecutionFailed)
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return categorize(err, goerrors.CategoryCommand, "command canceled", codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return categorize(err, goerrors.CategoryCommand, "command deadline exceeded", codeTimeout)
	default:
		return categorize(err, goerrors.CategoryCommand, "command context failed", codeContextFailed)
	}
}
