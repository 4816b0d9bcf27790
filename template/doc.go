// Package template parses interpolation templates into an ordered sequence
// of literal and expression segments.
//
// A template is literal text interspersed with expression blocks bounded by
// an open/close delimiter pair (default "{" and "}"). The scanner is a small
// state machine layered over delimiter-depth counting: inside a block it
// understands the string-literal and comment syntax of the expression
// language, so a close delimiter occurring inside a quoted string or a
// comment never terminates the block.
//
// # Grammar
//
// Informal EBNF:
//
//	Template   → (Literal | Escape | Block)* EOF
//	Escape     → open open | close close      (one literal delimiter char)
//	Block      → open Expression close
//	Expression → <balanced text; strings, comments, and nested delimiter
//	              pairs are skipped when matching the close delimiter>
//
// Parsing never evaluates anything. The segment list is immutable after
// Parse returns, and concatenating the raw source spans of all segments
// reproduces the prepared input byte for byte.
package template
