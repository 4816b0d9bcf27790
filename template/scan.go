package template

import "strings"

// scanner walks the prepared source byte by byte, classifying spans as
// plain text, delimiter escapes, or expression blocks.
type scanner struct {
	src     string
	pos     int
	open    string
	close   string
	literal bool
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// at reports whether the source at the current position begins with the
// given marker.
func (s *scanner) at(marker string) bool {
	return strings.HasPrefix(s.src[s.pos:], marker)
}

// scanExpression consumes one expression block starting at the opening
// delimiter and returns the raw text between the delimiters. The close
// delimiter is matched with nesting awareness: nested open/close pairs
// increase and decrease depth, and unless literal-escape mode is active,
// string literals and comments within the expression are skipped so a close
// delimiter inside them does not terminate the block.
func (s *scanner) scanExpression() (string, error) {
	openAt := s.pos
	s.pos += len(s.open)
	start := s.pos
	depth := 1

	for !s.eof() {
		if !s.literal {
			switch c := s.src[s.pos]; c {
			case '"', '\'', '`':
				if err := s.skipString(c); err != nil {
					return "", err
				}

				continue
			case '/':
				if s.at("//") {
					s.skipLineComment()

					continue
				}

				if s.at("/*") {
					s.skipBlockComment()

					continue
				}
			}
		}

		switch {
		case s.at(s.close):
			depth--
			if depth == 0 {
				raw := s.src[start:s.pos]
				s.pos += len(s.close)

				return raw, nil
			}

			s.pos += len(s.close)
		case s.at(s.open):
			depth++
			s.pos += len(s.open)
		default:
			s.pos++
		}
	}

	return "", newParseError("unterminated expression", s.src, openAt)
}

// skipString consumes a string literal delimited by quote. Backslash
// escapes are honored inside double- and single-quoted strings; backtick
// quoting has no escapes.
func (s *scanner) skipString(quote byte) error {
	quoteAt := s.pos
	s.pos++ // opening quote

	for !s.eof() {
		c := s.src[s.pos]

		if c == '\\' && quote != '`' {
			s.pos++
			if !s.eof() {
				s.pos++
			}

			continue
		}

		if c == quote {
			s.pos++

			return nil
		}

		s.pos++
	}

	return newParseError("unterminated string in expression", s.src, quoteAt)
}

// skipLineComment consumes through the end of the current line. The newline
// itself is left for the expression scanner.
func (s *scanner) skipLineComment() {
	for !s.eof() && s.src[s.pos] != '\n' {
		s.pos++
	}
}

// skipBlockComment consumes a /* ... */ comment. An unterminated block
// comment runs to EOF, which the caller then reports as an unterminated
// expression.
func (s *scanner) skipBlockComment() {
	s.pos += 2 // "/*"

	for !s.eof() {
		if s.at("*/") {
			s.pos += 2

			return
		}

		s.pos++
	}
}
