package markdown

import "strings"

// ResolveInline resolves the raw text content of one block into a nested
// span tree. Resolution is total: unmatched delimiters, unterminated
// brackets, and other malformed constructs degrade to literal text rather
// than failing.
func ResolveInline(text string) []Span {
	return resolveSpans([]rune(text))
}

// resolveSpans performs a single left-to-right scan over the input runes.
func resolveSpans(rs []rune) []Span {
	var out []Span
	var lit []rune

	flush := func() {
		if len(lit) > 0 {
			out = append(out, Span{Kind: SpanText, Literal: string(lit)})
			lit = nil
		}
	}

	i := 0
	for i < len(rs) {
		c := rs[i]
		switch {
		case c == '`':
			// Inline code is bounded by backtick runs of equal length;
			// the content between is not further resolved.
			n := runLength(rs, i, '`')
			if j := findCodeClose(rs, i+n, n); j >= 0 {
				flush()
				out = append(out, Span{Kind: SpanCode, Literal: string(rs[i+n : j])})
				i = j + n
				continue
			}
			lit = append(lit, rs[i:i+n]...)
			i += n

		case c == '!' && i+1 < len(rs) && rs[i+1] == '[':
			if sp, next, ok := parseBracketed(rs, i+1, true); ok {
				flush()
				out = append(out, sp)
				i = next
				continue
			}
			lit = append(lit, c)
			i++

		case c == '[':
			if sp, next, ok := parseBracketed(rs, i, false); ok {
				flush()
				out = append(out, sp)
				i = next
				continue
			}
			lit = append(lit, c)
			i++

		case c == '*' || c == '_':
			n := runLength(rs, i, c)
			if n >= 2 {
				if j, m := findDelimClose(rs, i+n, c, 2); j >= 0 {
					flush()
					// A closing run longer than two leaves its extra
					// delimiters inside, so ***x*** nests emphasis
					// within strong.
					inner := resolveSpans(rs[i+2 : j+m-2])
					out = append(out, Span{Kind: SpanStrong, Children: inner})
					i = j + m
					continue
				}
			}
			if n == 1 {
				if j, _ := findDelimClose(rs, i+1, c, 1); j >= 0 {
					flush()
					inner := resolveSpans(rs[i+1 : j])
					out = append(out, Span{Kind: SpanEmphasis, Children: inner})
					i = j + 1
					continue
				}
			}
			// Unmatched delimiter: emit one literal character and re-scan
			// the remainder of the run.
			lit = append(lit, c)
			i++

		default:
			lit = append(lit, c)
			i++
		}
	}

	flush()
	return out
}

// runLength counts consecutive occurrences of c starting at i.
func runLength(rs []rune, i int, c rune) int {
	n := 0
	for i+n < len(rs) && rs[i+n] == c {
		n++
	}
	return n
}

// findCodeClose finds a closing backtick run of exactly length n starting
// at or after from. Returns the start index of the run, or -1.
func findCodeClose(rs []rune, from, n int) int {
	i := from
	for i < len(rs) {
		if rs[i] != '`' {
			i++
			continue
		}
		m := runLength(rs, i, '`')
		if m == n {
			return i
		}
		i += m
	}
	return -1
}

// findDelimClose finds the first run of delimiter c with length >= minRun
// starting at or after from. Returns the run's start index and length, or
// (-1, 0).
func findDelimClose(rs []rune, from int, c rune, minRun int) (int, int) {
	i := from
	for i < len(rs) {
		if rs[i] != c {
			i++
			continue
		}
		m := runLength(rs, i, c)
		if m >= minRun {
			return i, m
		}
		i += m
	}
	return -1, 0
}

// parseBracketed parses [text](uri) or ![alt](uri) with lb at the opening
// bracket. A missing closing bracket or paren fails the parse and the
// caller degrades the construct to literal text.
func parseBracketed(rs []rune, lb int, isImage bool) (Span, int, bool) {
	depth := 1
	idx := lb + 1
	for idx < len(rs) && depth > 0 {
		switch rs[idx] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				goto closed
			}
		}
		idx++
	}
	return Span{}, 0, false

closed:
	textEnd := idx
	if idx+1 >= len(rs) || rs[idx+1] != '(' {
		return Span{}, 0, false
	}

	uriEnd := -1
	for j := idx + 2; j < len(rs); j++ {
		if rs[j] == ')' {
			uriEnd = j
			break
		}
	}
	if uriEnd < 0 {
		return Span{}, 0, false
	}

	raw := strings.TrimSpace(string(rs[idx+2 : uriEnd]))
	uri := raw
	// Drop an optional quoted title after the URI.
	if sp := strings.IndexAny(raw, " \t"); sp >= 0 {
		uri = raw[:sp]
	}

	inner := rs[lb+1 : textEnd]
	next := uriEnd + 1

	if isImage {
		return Span{Kind: SpanImage, Dest: uri, Literal: string(inner)}, next, true
	}
	return Span{Kind: SpanLink, Dest: uri, Children: resolveSpans(inner)}, next, true
}
