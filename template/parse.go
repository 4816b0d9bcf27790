package template

import "strings"

// Parse parses source into a [Template].
//
// The source is prepared before scanning: in literal-escape mode,
// backslash-newline continuations are joined; with trimming enabled,
// multi-line sources are normalized per [Trim]. The prepared text is
// retained as [Template.Source] and all segment offsets refer to it.
//
// A doubled open delimiter outside an expression emits one literal open
// delimiter character and does not start an expression; a doubled close
// delimiter behaves symmetrically. An expression with no non-whitespace
// content is a parse error, as is an open delimiter with no matching close.
func Parse(source string, opts ...Option) (*Template, error) {
	t := &Template{
		Open:  DefaultOpen,
		Close: DefaultClose,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.Open == t.Close {
		return nil, newParseError("open and close delimiters must differ", source, 0)
	}

	if t.LiteralEscape {
		source = joinContinuations(source)
	}

	if t.trim {
		source = Trim(source)
	}

	t.Source = source

	s := &scanner{
		src:     source,
		open:    t.Open,
		close:   t.Close,
		literal: t.LiteralEscape,
	}

	var (
		lit      strings.Builder
		litStart = 0
	)

	// flush coalesces the pending plain spans into one literal segment.
	flush := func(end int) {
		if lit.Len() == 0 && litStart == end {
			return
		}

		t.Segments = append(t.Segments, Segment{
			Kind:  KindLiteral,
			Text:  lit.String(),
			Start: litStart,
			End:   end,
		})
		lit.Reset()
	}

	escapedOpen := t.Open + t.Open
	escapedClose := t.Close + t.Close

	for !s.eof() {
		switch {
		case s.at(escapedOpen):
			lit.WriteString(t.Open)
			s.pos += len(escapedOpen)

		case s.at(escapedClose):
			lit.WriteString(t.Close)
			s.pos += len(escapedClose)

		case s.at(t.Open):
			start := s.pos
			flush(start)

			raw, err := s.scanExpression()
			if err != nil {
				return nil, err
			}

			if strings.TrimSpace(raw) == "" {
				return nil, newParseError("empty expression", source, start)
			}

			t.Segments = append(t.Segments, Segment{
				Kind:    KindExpression,
				RawText: raw,
				Start:   start,
				End:     s.pos,
			})
			litStart = s.pos

		default:
			// A lone close delimiter outside an expression is plain text.
			lit.WriteByte(source[s.pos])
			s.pos++
		}
	}

	flush(len(source))

	return t, nil
}
