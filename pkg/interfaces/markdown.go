package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations are expected to be stateless so a single instance can be
// shared across documents without locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown rendering behaviour. Extension names map
// onto goldmark extenders; unsupported names are ignored.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	Unsafe     bool
}

// Author identifies a document author with an optional affiliation. The
// affiliation pointer distinguishes "absent" from "empty" in serialized
// output.
type Author struct {
	Name        string  `yaml:"name" json:"name"`
	Affiliation *string `yaml:"affiliation" json:"affiliation,omitempty"`
}

// Metadata models the structured header block prefixed to a document. Every
// field is optional; absence drives the assembler's fallback policy and is
// never an error by itself. Unrecognized fields land in Extra verbatim.
type Metadata struct {
	Title       string         `yaml:"title"`
	Authors     []Author       `yaml:"authors"`
	Tags        []string       `yaml:"tags"`
	Status      string         `yaml:"status"`
	LastUpdated string         `yaml:"lastUpdated"`
	TOC         []string       `yaml:"toc"`
	Extra       map[string]any `yaml:",inline"`
}
