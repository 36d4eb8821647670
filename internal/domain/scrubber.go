// Package domain contains the core scanning and counting logic.
package domain

import "strings"

// scrubState identifies the lexical region the scrubber is inside of.
type scrubState int

const (
	stateNormal scrubState = iota
	stateLineComment
	stateBlockComment
	stateQuoted
	stateRawString
)

// rawPrefixes are the single-letter encoding prefixes that may precede the
// R of a raw string literal.
const rawPrefixes = "uUL"

// Scrub returns src with every comment and every string, character, and
// raw string literal blanked to spaces, delimiters included. The result
// has exactly the same byte length as src and every newline survives in
// place, so line numbers and per-line counts computed on the scrubbed text
// line up with the original. Unterminated constructs blank to end of input.
//
// The scan is byte-wise. All structurally significant characters are
// ASCII, so multi-byte sequences inside comments and literals blank to one
// space per byte without confusing the state machine.
func Scrub(src string) string {
	var out strings.Builder
	out.Grow(len(src))

	state := stateNormal

	var quote byte       // closing quote byte while in stateQuoted
	var escaped bool     // pending backslash escape while in stateQuoted
	var rawCloser string // ")delim\"" terminator while in stateRawString

	i := 0
	for i < len(src) {
		c := src[i]

		switch state {
		case stateNormal:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				out.WriteString("  ")
				i += 2
				state = stateLineComment
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				out.WriteString("  ")
				i += 2
				state = stateBlockComment
			default:
				if closer, next, ok := rawStringOpener(src, i); ok {
					// The opener cannot contain a newline.
					blank(&out, next-i)
					i = next
					rawCloser = closer
					state = stateRawString
				} else if c == '"' || c == '\'' {
					out.WriteByte(' ')
					quote = c
					escaped = false
					i++
					state = stateQuoted
				} else {
					out.WriteByte(c)
					i++
				}
			}

		case stateLineComment:
			if c == '\n' {
				out.WriteByte('\n')
				state = stateNormal
			} else {
				out.WriteByte(' ')
			}
			i++

		case stateBlockComment:
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				out.WriteString("  ")
				i += 2
				state = stateNormal
			} else {
				if c == '\n' {
					out.WriteByte('\n')
				} else {
					out.WriteByte(' ')
				}
				i++
			}

		case stateQuoted:
			switch {
			case escaped:
				// An escaped byte never terminates the literal.
				if c == '\n' {
					out.WriteByte('\n')
				} else {
					out.WriteByte(' ')
				}
				escaped = false
				i++
			case c == '\\':
				out.WriteByte(' ')
				escaped = true
				i++
			case c == quote:
				out.WriteByte(' ')
				i++
				state = stateNormal
			case c == '\n':
				// Lenient: an embedded newline does not end the literal.
				out.WriteByte('\n')
				i++
			default:
				out.WriteByte(' ')
				i++
			}

		case stateRawString:
			if strings.HasPrefix(src[i:], rawCloser) {
				// The closer cannot contain a newline.
				blank(&out, len(rawCloser))
				i += len(rawCloser)
				state = stateNormal
			} else {
				if c == '\n' {
					out.WriteByte('\n')
				} else {
					out.WriteByte(' ')
				}
				i++
			}
		}
	}

	return out.String()
}

// rawStringOpener reports whether a raw string literal opens at position i.
// It accepts an optional encoding prefix letter before R, then a delimiter
// of zero or more bytes other than parentheses and newline, terminated by
// an opening parenthesis. On success it returns the closing terminator
// ")delim\"" and the index just past the opener.
func rawStringOpener(src string, i int) (closer string, next int, ok bool) {
	j := i
	if strings.IndexByte(rawPrefixes, src[j]) >= 0 && j+1 < len(src) && src[j+1] == 'R' {
		j++
	}

	if src[j] != 'R' || j+1 >= len(src) || src[j+1] != '"' {
		return "", 0, false
	}

	k := j + 2
	for k < len(src) && src[k] != '(' && src[k] != ')' && src[k] != '\n' {
		k++
	}

	if k >= len(src) || src[k] != '(' {
		return "", 0, false
	}

	return ")" + src[j+2:k] + `"`, k + 1, true
}

func blank(out *strings.Builder, n int) {
	for range n {
		out.WriteByte(' ')
	}
}
