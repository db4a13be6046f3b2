package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// headingPattern matches rendered heading elements whose inner content is
// plain text. Headings containing child elements are left untouched, which
// matches the reference renderer this pipeline stays anchor-compatible with.
var headingPattern = regexp.MustCompile(`<h(\d)>([^<]+)</h\d>`)

// Slugify derives a heading anchor identifier: lowercase, spaces become
// hyphens, and ASCII punctuation from a fixed set is deleted outright. No
// other character is escaped or re-encoded, and identical heading text always
// produces the identical identifier.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, " ", "-")
	return strings.Map(func(r rune) rune {
		switch r {
		case '!', '?', ':', ';', ',', '.', '"', '\'', '(', ')', '[', ']', '{', '}':
			return -1
		}
		return r
	}, s)
}

// InjectHeadingAnchors rewrites every plain-text heading element in the
// rendered output to carry an id attribute derived from its own text.
// Duplicate heading text yields duplicate ids; no disambiguation pass runs.
func InjectHeadingAnchors(html string) string {
	return headingPattern.ReplaceAllStringFunc(html, func(match string) string {
		m := headingPattern.FindStringSubmatch(match)
		level, text := m[1], m[2]
		return fmt.Sprintf(`<h%s id="%s">%s</h%s>`, level, Slugify(text), text, level)
	})
}
