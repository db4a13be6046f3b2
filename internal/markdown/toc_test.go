package markdown

import (
	"reflect"
	"testing"
)

func TestExtractTOC(t *testing.T) {
	body := "## Table of Contents\n1. **Intro**\n2. **Methods**\n## Summary\nHello"

	toc := ExtractTOC(body)

	if !reflect.DeepEqual(toc, []string{"Intro", "Methods"}) {
		t.Fatalf("TOC mismatch: %#v", toc)
	}
}

func TestExtractTOC_Absent(t *testing.T) {
	if toc := ExtractTOC("## Summary\nno toc here"); len(toc) != 0 {
		t.Fatalf("expected empty TOC, got %#v", toc)
	}
}

func TestExtractTOC_WindowEndsAtNextHeading(t *testing.T) {
	body := "## Table of Contents\n1. **Kept**\n## Other\n2. **Dropped**"

	toc := ExtractTOC(body)

	if !reflect.DeepEqual(toc, []string{"Kept"}) {
		t.Fatalf("window boundary not respected: %#v", toc)
	}
}

func TestExtractTOC_NonMatchingLinesIgnored(t *testing.T) {
	body := "## Table of Contents\nprose line\n1. **One**\n- bullet\n   2. **Indented**\n2. plain numbered\n3. **Two**"

	toc := ExtractTOC(body)

	// Indented and unbold items must not match; order and duplicates of the
	// matches are preserved.
	if !reflect.DeepEqual(toc, []string{"One", "Two"}) {
		t.Fatalf("TOC mismatch: %#v", toc)
	}
}

func TestExtractTOC_DuplicatesPreserved(t *testing.T) {
	body := "## Table of Contents\n1. **Same**\n2. **Same**"

	toc := ExtractTOC(body)

	if !reflect.DeepEqual(toc, []string{"Same", "Same"}) {
		t.Fatalf("duplicates not preserved: %#v", toc)
	}
}

func TestExtractTOC_DeeperHeadingsDoNotTerminate(t *testing.T) {
	// The window boundary looks only for the second-level marker; a deeper
	// heading inside the list does not end it.
	body := "## Table of Contents\n1. **Before**\n### Note\n2. **After**\n## Next"

	toc := ExtractTOC(body)

	if !reflect.DeepEqual(toc, []string{"Before", "After"}) {
		t.Fatalf("deeper heading terminated the window: %#v", toc)
	}
}
