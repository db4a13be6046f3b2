package papers

import (
	"encoding/json"

	"github.com/openpages/go-papers/pkg/interfaces"
)

type (
	// Metadata is the decoded metadata block of a document.
	Metadata = interfaces.Metadata
	// Author identifies a document author.
	Author = interfaces.Author
)

// Paper is the normalized record produced for one input document. It is
// constructed once by the assembler and never mutated afterwards; ownership
// passes to the caller (or the module store) on creation.
type Paper struct {
	Title       string
	Slug        string
	Filename    string
	Summary     string
	Abstract    string
	TOC         []string
	Content     string
	HTML        string
	LastUpdated string
	Authors     []Author
	Tags        []string
	Status      string
	Extra       map[string]any
}

// MarshalJSON flattens the passthrough Extra map into the top-level object,
// keeping the wire keys ("abstract", "lastUpdated", ...) stable. Known fields
// win over colliding passthrough keys. Tags and status serialize as null when
// absent; toc and authors always serialize as arrays.
func (p *Paper) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+13)
	for k, v := range p.Extra {
		out[k] = v
	}

	out["title"] = p.Title
	out["slug"] = p.Slug
	out["filename"] = p.Filename
	out["summary"] = p.Summary
	out["abstract"] = p.Abstract
	out["toc"] = sliceOrEmpty(p.TOC)
	out["content"] = p.Content
	out["html"] = p.HTML
	out["lastUpdated"] = p.LastUpdated
	out["authors"] = authorsOrEmpty(p.Authors)

	if p.Tags != nil {
		out["tags"] = p.Tags
	} else {
		out["tags"] = nil
	}
	if p.Status != "" {
		out["status"] = p.Status
	} else {
		out["status"] = nil
	}

	return json.Marshal(out)
}

// PaperSummary is the reduced list-view projection of a Paper.
type PaperSummary struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Status      *string  `json:"status"`
	Tags        []string `json:"tags"`
	Summary     string   `json:"summary"`
	LastUpdated string   `json:"lastUpdated"`
	Authors     []Author `json:"authors"`
}

// Summarize projects the paper onto its list view.
func (p *Paper) Summarize() PaperSummary {
	summary := PaperSummary{
		Title:       p.Title,
		Slug:        p.Slug,
		Tags:        sliceOrEmpty(p.Tags),
		Summary:     p.Summary,
		LastUpdated: p.LastUpdated,
		Authors:     authorsOrEmpty(p.Authors),
	}
	if p.Status != "" {
		status := p.Status
		summary.Status = &status
	}
	return summary
}

func sliceOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func authorsOrEmpty(values []Author) []Author {
	if values == nil {
		return []Author{}
	}
	return values
}
