package markdown

import "strings"

const sectionMarker = "## "

// ExtractSections splits body text into named sections keyed by lowercased
// second-level heading text. A line beginning with exactly "## " opens a new
// section; every following line accumulates into it until the next such
// heading or end of input. Text before the first heading belongs to no
// section and is discarded. Section content is rejoined with newlines and
// trimmed of surrounding whitespace. When two headings lowercase to the same
// key the later occurrence wins.
func ExtractSections(body string) map[string]string {
	sections := make(map[string]string)

	var (
		active bool
		key    string
		lines  []string
	)

	flush := func() {
		if !active {
			return
		}
		sections[key] = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, sectionMarker) {
			flush()
			key = strings.ToLower(line[len(sectionMarker):])
			lines = nil
			active = true
			continue
		}
		if active {
			lines = append(lines, line)
		}
	}
	flush()

	return sections
}
