package paperscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	processDocumentMessageType = "papers.process_document"
	processArchiveMessageType  = "papers.process_archive"
)

// ProcessDocumentCommand runs one document through the processing pipeline.
type ProcessDocumentCommand struct {
	// Filename keys the resulting record; the slug derives from it.
	Filename string `json:"filename"`
	// Content is the raw UTF-8 document text, metadata block included.
	Content string `json:"content"`
}

// Type implements command.Message.
func (ProcessDocumentCommand) Type() string { return processDocumentMessageType }

// Validate ensures a usable filename is present before handlers execute.
func (cmd ProcessDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Filename, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("papers.process_document.filename_required", "filename is required")
			}
			return nil
		})),
	)
}

// ProcessArchiveCommand extracts a tar-style archive buffer and processes
// every Markdown member it contains.
type ProcessArchiveCommand struct {
	// Archive is the raw archive byte buffer.
	Archive []byte `json:"archive"`
}

// Type implements command.Message.
func (ProcessArchiveCommand) Type() string { return processArchiveMessageType }

// Validate ensures the archive buffer is non-empty before handlers execute.
func (cmd ProcessArchiveCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Archive, validation.Required),
	)
}
