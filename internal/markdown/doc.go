// Package markdown implements the per-document text processing used by the
// paper pipeline: metadata-block splitting, named-section extraction,
// table-of-contents extraction, and HTML rendering with heading anchors.
// Every function is a pure transformation of the input bytes; no component
// here holds state across calls.
package markdown
