// Package papers converts a corpus of Markdown documents with metadata
// headers into normalized, display-ready records, and extracts Markdown
// members from tar-style archive buffers. The module is an in-process library
// boundary: no network surface, no persisted state, and every collaborator
// (logging, clock, encoder) is injected by the host.
package papers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openpages/go-papers/internal/archive"
	"github.com/openpages/go-papers/internal/logging"
	"github.com/openpages/go-papers/internal/markdown"
	"github.com/openpages/go-papers/pkg/interfaces"
)

// Entry is one extracted archive member.
type Entry = archive.Entry

// Module composes the document pipeline, the archive reader, and the paper
// collection. Construct it with New; the zero value is not usable.
type Module struct {
	cfg      Config
	parser   interfaces.MarkdownParser
	clock    interfaces.Clock
	encoder  interfaces.Encoder
	store    *Store
	pipeline interfaces.Logger
	archive  interfaces.Logger
}

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider injects the diagnostic sink used for pipeline warnings.
// Without it the module stays silent.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.pipeline = logging.PipelineLogger(provider)
		m.archive = logging.ArchiveLogger(provider)
	}
}

// WithClock overrides the timestamp source used for the lastUpdated fallback.
func WithClock(clock interfaces.Clock) Option {
	return func(m *Module) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithEncoder overrides the output encoder used by the JSON export helpers.
func WithEncoder(encoder interfaces.Encoder) Option {
	return func(m *Module) {
		if encoder != nil {
			m.encoder = encoder
		}
	}
}

// WithParser overrides the Markdown parser. Useful for hosts that need a
// pre-configured goldmark instance or a different engine entirely.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(m *Module) {
		if parser != nil {
			m.parser = parser
		}
	}
}

// New constructs the module with the supplied configuration and options.
func New(cfg Config, opts ...Option) (*Module, error) {
	m := &Module{
		cfg:      cfg,
		clock:    interfaces.ClockFunc(time.Now),
		encoder:  JSONEncoder{},
		store:    NewStore(),
		pipeline: logging.NoOp(),
		archive:  logging.NoOp(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.parser == nil {
		m.parser = markdown.NewGoldmarkParser(cfg.Parser)
	}

	return m, nil
}

// Store exposes the paper collection for host-side queries.
func (m *Module) Store() *Store {
	return m.store
}

// ProcessDocument runs the full pipeline for one document: metadata split,
// section and TOC extraction, rendering, and record assembly. The assembled
// paper is added to the collection and returned.
//
// A detected-but-malformed metadata block is the only per-document hard
// failure; a missing block or missing title degrades to a warning plus the
// documented fallbacks.
func (m *Module) ProcessDocument(ctx context.Context, filename, content string) (*Paper, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, ErrFilenameRequired
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	meta, bodyBytes, hasMeta, err := markdown.SplitMetadata([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("process document %s: %w: %w", filename, ErrMetadataInvalid, err)
	}
	if !hasMeta {
		m.pipeline.Warn("no metadata block found in document", "filename", filename)
	}

	body := string(bodyBytes)
	sections := markdown.ExtractSections(body)
	toc := markdown.ExtractTOC(body)

	html, err := m.parser.Parse(bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("process document %s: %w: %w", filename, ErrRenderFailed, err)
	}

	paper := assemblePaper(assembleInput{
		Filename: filename,
		Meta:     meta,
		HasMeta:  hasMeta,
		Sections: sections,
		TOC:      toc,
		Body:     body,
		HTML:     string(html),
	}, m.clock, m.pipeline)

	m.store.Add(paper)
	return paper, nil
}

// ExtractArchive decodes the archive buffer into its Markdown members.
// Malformed headers degrade to skipped entries or an early stop; the scan
// itself never fails.
func (m *Module) ExtractArchive(ctx context.Context, data []byte) []Entry {
	select {
	case <-ctx.Done():
		return nil
	default:
	}

	entries := archive.Extract(data)
	m.archive.Debug("archive scan complete", "bytes", len(data), "extracted", len(entries))
	return entries
}

// ProcessArchive extracts every Markdown member and runs each through
// ProcessDocument. One document's failure never aborts the batch: the papers
// that processed cleanly are returned together with the joined per-document
// errors, if any.
func (m *Module) ProcessArchive(ctx context.Context, data []byte) ([]*Paper, error) {
	var (
		processed []*Paper
		failures  []error
	)

	for _, entry := range m.ExtractArchive(ctx, data) {
		paper, err := m.ProcessDocument(ctx, entry.Name, entry.Content)
		if err != nil {
			m.pipeline.Error("document processing failed", "filename", entry.Name, "error", err)
			failures = append(failures, err)
			continue
		}
		processed = append(processed, paper)
	}

	return processed, errors.Join(failures...)
}

// PapersJSON encodes the full collection.
func (m *Module) PapersJSON() ([]byte, error) {
	return m.encode(m.store.List())
}

// ListJSON encodes the reduced list view of the collection.
func (m *Module) ListJSON() ([]byte, error) {
	papers := m.store.List()
	summaries := make([]PaperSummary, len(papers))
	for i, paper := range papers {
		summaries[i] = paper.Summarize()
	}
	return m.encode(summaries)
}

// CategoriesJSON encodes the sorted tag union.
func (m *Module) CategoriesJSON() ([]byte, error) {
	return m.encode(m.store.Categories())
}

// PaperJSON encodes a single paper looked up by slug.
func (m *Module) PaperJSON(slug string) ([]byte, error) {
	paper, err := m.store.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	return m.encode(paper)
}

func (m *Module) encode(v any) ([]byte, error) {
	data, err := m.encoder.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	return data, nil
}
