package template

import (
	"strconv"
	"strings"
)

// ParseError reports a template that cannot be parsed. Offset is the byte
// offset into the prepared source where the problem begins; for an
// unterminated expression this is the offset of the opening delimiter.
type ParseError struct {
	Msg    string
	Source string
	Offset int
	Line   int
	Column int
}

func newParseError(msg, source string, offset int) *ParseError {
	line, col := lineColumn(source, offset)

	return &ParseError{
		Msg:    msg,
		Source: source,
		Offset: offset,
		Line:   line,
		Column: col,
	}
}

// Error implements the error interface. The message includes the error
// location and a caret snippet pointing at the offending column.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString("parse error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))
	buf.WriteString(": ")
	buf.WriteString(e.Msg)

	if snippet := e.snippet(); snippet != "" {
		buf.WriteString("\n")
		buf.WriteString(snippet)
	}

	return buf.String()
}

// snippet renders the offending line with a caret marker under the error
// column.
func (e *ParseError) snippet() string {
	lines := strings.Split(e.Source, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		return ""
	}

	line := lines[e.Line-1]

	var src strings.Builder

	src.WriteString("  ")
	src.WriteString(strconv.Itoa(e.Line))
	src.WriteString(" | ")
	src.WriteString(line)
	src.WriteRune('\n')

	// 2 leading spaces + line number + " | "
	padding := len(strconv.Itoa(e.Line)) + 5
	if e.Column > 0 {
		padding += e.Column - 1
	}

	src.WriteString(strings.Repeat(" ", padding))
	src.WriteString("^")

	return src.String()
}

// lineColumn converts a byte offset into a 1-based line and column.
func lineColumn(source string, offset int) (line, col int) {
	if offset > len(source) {
		offset = len(source)
	}

	line, col = 1, 1

	for _, r := range source[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return line, col
}
