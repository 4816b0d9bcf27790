package template

import "strings"

// Trim normalizes the whitespace of a multi-line template.
//
// If the first line (up to the first newline) is entirely whitespace, it is
// removed. If the last line is entirely whitespace, it and the newline
// preceding it are removed. The minimum leading-whitespace width among the
// remaining non-blank lines is then stripped from every line uniformly,
// preserving relative indentation.
//
// Exactly one boundary blank line is removed per side, never all of them: a
// template of only blank lines keeps its interior newlines.
//
// Single-line input is returned unchanged.
func Trim(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}

	lines := strings.Split(s, "\n")

	if blank(lines[0]) {
		lines = lines[1:]
	}

	if len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return ""
	}

	indent := -1

	for _, line := range lines {
		if blank(line) {
			continue
		}

		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || width < indent {
			indent = width
		}
	}

	if indent > 0 {
		for i, line := range lines {
			if len(line) >= indent {
				lines[i] = line[indent:]
			} else {
				lines[i] = strings.TrimLeft(line, " \t")
			}
		}
	}

	return strings.Join(lines, "\n")
}

// blank reports whether a line consists entirely of whitespace.
func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// joinContinuations removes backslash-newline sequences, splicing each
// continued line together with its successor. Only templates parsed in
// literal-escape mode opt into this.
func joinContinuations(s string) string {
	if !strings.Contains(s, "\\\n") {
		return s
	}

	return strings.ReplaceAll(s, "\\\n", "")
}
