package markdown

import "testing"

func TestExtractSections(t *testing.T) {
	body := "## Table of Contents\n1. **Intro**\n2. **Methods**\n## Summary\nHello"

	sections := ExtractSections(body)

	if got := sections["summary"]; got != "Hello" {
		t.Fatalf("summary section mismatch, got %q", got)
	}
	if got := sections["table of contents"]; got != "1. **Intro**\n2. **Methods**" {
		t.Fatalf("toc section mismatch, got %q", got)
	}
}

func TestExtractSections_PreambleDiscarded(t *testing.T) {
	body := "# Title\n\nintro paragraph\n\n## Summary\nText"

	sections := ExtractSections(body)

	if len(sections) != 1 {
		t.Fatalf("expected exactly one section, got %#v", sections)
	}
	if sections["summary"] != "Text" {
		t.Fatalf("summary mismatch: %#v", sections)
	}
}

func TestExtractSections_DuplicateHeadingLaterWins(t *testing.T) {
	body := "## Summary\nfirst\n## summary\nsecond"

	sections := ExtractSections(body)

	if sections["summary"] != "second" {
		t.Fatalf("expected later duplicate to win, got %q", sections["summary"])
	}
}

func TestExtractSections_BlankLinesAccumulate(t *testing.T) {
	body := "## Notes\nline one\n\nline two\n### nested heading\nstill here"

	sections := ExtractSections(body)

	want := "line one\n\nline two\n### nested heading\nstill here"
	if sections["notes"] != want {
		t.Fatalf("section content mismatch, got %q", sections["notes"])
	}
}

func TestExtractSections_Idempotent(t *testing.T) {
	content := "line one\n\nline two"

	sections := ExtractSections("## summary\n" + content)

	if sections["summary"] != content {
		t.Fatalf("re-extraction changed content, got %q", sections["summary"])
	}
}
