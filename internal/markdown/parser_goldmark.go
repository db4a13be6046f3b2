package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/openpages/go-papers/pkg/interfaces"
)

// GoldmarkParser implements interfaces.MarkdownParser using the goldmark
// engine. The parser is stateless so callers can reuse a single instance
// across documents without locking.
//
// Heading ids are injected in a post-render pass (InjectHeadingAnchors)
// instead of goldmark's auto-heading-id option, so anchors match the slug
// rule of the reference renderer rather than goldmark's own scheme.
type GoldmarkParser struct {
	defaultOptions interfaces.ParseOptions
}

// NewGoldmarkParser constructs a parser. When no extensions are configured
// the default set enables strikethrough, tables, footnotes, and task lists.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{
		defaultOptions: defaults,
	}
}

// Parse satisfies interfaces.MarkdownParser by rendering Markdown into HTML
// using the parser's default configuration.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaultOptions)
}

// ParseWithOptions renders Markdown into HTML using the provided options and
// rewrites heading elements to carry deterministic anchor identifiers.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	engine := newGoldmarkEngine(opts)

	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}

	return []byte(InjectHeadingAnchors(buf.String())), nil
}

func newGoldmarkEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.Strikethrough,
			extension.Table,
			extension.Footnote,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
