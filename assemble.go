package papers

import (
	"maps"
	"strings"
	"time"

	"github.com/openpages/go-papers/pkg/interfaces"
)

// Placeholder applied when a document carries no "## Summary" section.
const defaultSummary = "No summary available"

const slugSuffix = ".md"

// assembleInput gathers the independently extracted pieces of one document.
type assembleInput struct {
	Filename string
	Meta     Metadata
	HasMeta  bool
	Sections map[string]string
	TOC      []string
	Body     string
	HTML     string
}

// assemblePaper composes the final record with the deterministic fallback
// ladder: title falls back to the filename-derived slug (with a warning when
// the document had a metadata block that omitted it), summary to a fixed
// placeholder, the TOC to any list declared in metadata, and lastUpdated to
// the injected clock. Inputs are never mutated.
func assemblePaper(in assembleInput, clock interfaces.Clock, logger interfaces.Logger) *Paper {
	slug := strings.TrimSuffix(in.Filename, slugSuffix)

	title := in.Meta.Title
	if title == "" {
		if in.HasMeta {
			logger.Warn("document is missing a title in its metadata block", "filename", in.Filename)
		}
		title = slug
	}

	summary := defaultSummary
	if s, ok := in.Sections["summary"]; ok {
		summary = s
	}

	toc := in.TOC
	if len(toc) == 0 {
		toc = in.Meta.TOC
	}

	lastUpdated := in.Meta.LastUpdated
	if lastUpdated == "" {
		lastUpdated = clock.Now().UTC().Format(time.RFC3339)
	}

	extra := map[string]any{}
	maps.Copy(extra, in.Meta.Extra)

	return &Paper{
		Title:       title,
		Slug:        slug,
		Filename:    in.Filename,
		Summary:     summary,
		Abstract:    in.Sections["abstract"],
		TOC:         toc,
		Content:     in.Body,
		HTML:        in.HTML,
		LastUpdated: lastUpdated,
		Authors:     in.Meta.Authors,
		Tags:        in.Meta.Tags,
		Status:      in.Meta.Status,
		Extra:       extra,
	}
}
