package markdown

import (
	"regexp"
	"strings"
)

const tocHeading = "## Table of Contents"

// tocItemPattern matches enumerated bold entries ("1. **Intro**") anchored at
// the start of a line. Leading whitespace disqualifies a line on purpose.
var tocItemPattern = regexp.MustCompile(`^\d+\.\s+\*\*(.*?)\*\*`)

// ExtractTOC returns the ordered table-of-contents entries found under the
// literal "## Table of Contents" heading. The scanned window runs from that
// heading to the next second-level heading marker or end of text; lines that
// do not match the item pattern are ignored rather than rejected. The result
// preserves source order and keeps duplicates. A missing heading yields nil.
func ExtractTOC(body string) []string {
	start := strings.Index(body, tocHeading)
	if start < 0 {
		return nil
	}

	window := body[start:]
	if end := strings.Index(window, "\n## "); end >= 0 {
		window = window[:end]
	}

	var items []string
	for _, line := range strings.Split(window, "\n") {
		if m := tocItemPattern.FindStringSubmatch(line); m != nil {
			items = append(items, m[1])
		}
	}
	return items
}
