package papers

import "errors"

var (
	ErrFilenameRequired = errors.New("papers: filename is required")
	ErrMetadataInvalid  = errors.New("papers: metadata block invalid")
	ErrRenderFailed     = errors.New("papers: markdown render failed")
	ErrPaperNotFound    = errors.New("papers: paper not found")
	ErrEncodeFailed     = errors.New("papers: encode failed")
)
