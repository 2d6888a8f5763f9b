// Package markdown provides the structural Markdown front end of the
// converter: a line-oriented block parser and an inline span resolver.
// Parsing is total — any text input yields a block sequence — and malformed
// constructs are coerced with notes rather than rejected.
package markdown

import (
	"fmt"
	"strings"
)

// Parse tokenizes raw Markdown text into an ordered sequence of block-level
// nodes covering every non-blank input line. The returned notes describe
// non-fatal coercions (currently malformed table rows); they never indicate
// failure.
func Parse(src string) ([]Block, []string) {
	p := &parser{}
	blocks := p.parseBlocks(splitLines(src))
	return blocks, p.notes
}

type parser struct {
	notes []string
}

// parseBlocks runs the line-oriented state scan over a line window. It is
// reused for block quote interiors.
func (p *parser) parseBlocks(lines []string) []Block {
	var blocks []Block
	i := 0
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			i++
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")

		var block Block
		switch {
		case strings.HasPrefix(trimmed, "```"):
			block, i = p.parseFence(lines, i)
		case headingLevel(trimmed) > 0:
			block = parseHeading(trimmed)
			i++
		case isThematicBreak(trimmed):
			block = &ThematicBreak{}
			i++
		case strings.HasPrefix(trimmed, ">"):
			block, i = p.parseQuote(lines, i)
		case isListLine(line):
			block, i = p.parseList(lines, i)
		case isTableStart(lines, i):
			block, i = p.parseTable(lines, i)
		case isHTMLStart(trimmed):
			block, i = parseHTMLBlock(lines, i)
		default:
			block, i = parseParagraph(lines, i)
		}
		if block != nil {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// splitLines normalizes line endings and splits the source into lines.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	return strings.Split(src, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// leadingIndent returns the width of a line's leading whitespace, counting
// tabs as four columns.
func leadingIndent(line string) int {
	w := 0
	for _, c := range line {
		switch c {
		case ' ':
			w++
		case '\t':
			w += 4
		default:
			return w
		}
	}
	return w
}

// ============================================================================
// Fenced code blocks
// ============================================================================

// parseFence consumes a fenced code block. All lines up to a closing fence
// of at least the opening length are kept verbatim; an unterminated fence
// consumes the remainder of the input.
func (p *parser) parseFence(lines []string, i int) (Block, int) {
	opening := strings.TrimLeft(lines[i], " \t")
	fenceLen := 0
	for fenceLen < len(opening) && opening[fenceLen] == '`' {
		fenceLen++
	}
	lang := strings.TrimSpace(opening[fenceLen:])

	var body []string
	j := i + 1
	for ; j < len(lines); j++ {
		if isFenceClose(lines[j], fenceLen) {
			j++
			break
		}
		body = append(body, lines[j])
	}

	return &CodeBlock{Language: lang, Literal: strings.Join(body, "\n")}, j
}

// isFenceClose reports whether a line is a closing fence of at least
// minLen backticks with nothing else on it.
func isFenceClose(line string, minLen int) bool {
	t := strings.TrimSpace(line)
	if len(t) < minLen {
		return false
	}
	for _, c := range t {
		if c != '`' {
			return false
		}
	}
	return true
}

// ============================================================================
// Headings
// ============================================================================

// headingLevel returns the ATX heading level (1-6) of a trimmed line, or 0.
func headingLevel(trimmed string) int {
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n < 1 || n > 6 {
		return 0
	}
	if n < len(trimmed) && trimmed[n] != ' ' && trimmed[n] != '\t' {
		return 0
	}
	return n
}

func parseHeading(trimmed string) Block {
	level := headingLevel(trimmed)
	rest := strings.TrimSpace(trimmed[level:])

	// Strip an optional closing hash run: "## Title ##" -> "Title".
	if t := strings.TrimRight(rest, "#"); t != rest {
		if t == "" || strings.HasSuffix(t, " ") {
			rest = strings.TrimRight(t, " ")
		}
	}

	return &Heading{Level: level, Content: ResolveInline(rest)}
}

// ============================================================================
// Thematic breaks
// ============================================================================

// isThematicBreak reports whether a trimmed line is a run of three or more
// identical -, * or _ characters, optionally space-separated.
func isThematicBreak(trimmed string) bool {
	var marker rune
	count := 0
	for _, c := range trimmed {
		if c == ' ' || c == '\t' {
			continue
		}
		if c != '-' && c != '*' && c != '_' {
			return false
		}
		if marker == 0 {
			marker = c
		} else if c != marker {
			return false
		}
		count++
	}
	return count >= 3
}

// ============================================================================
// Block quotes
// ============================================================================

// parseQuote consumes consecutive '>' lines, strips one marker level, and
// recursively parses the interior. Nested markers nest block quotes.
func (p *parser) parseQuote(lines []string, i int) (Block, int) {
	var inner []string
	j := i
	for ; j < len(lines); j++ {
		t := strings.TrimLeft(lines[j], " \t")
		if isBlank(lines[j]) || !strings.HasPrefix(t, ">") {
			break
		}
		t = t[1:]
		t = strings.TrimPrefix(t, " ")
		inner = append(inner, t)
	}
	return &BlockQuote{Blocks: p.parseBlocks(inner)}, j
}

// ============================================================================
// Lists
// ============================================================================

type flatItem struct {
	ordered bool
	indent  int
	depth   int
	text    string
}

func isListLine(line string) bool {
	ok, _, _, _ := listMarker(line)
	return ok
}

// listMarker matches a bullet (-, *, +) or ordered (1. / 1)) list marker
// and returns the marker kind, indent width and remaining content.
func listMarker(line string) (ok, ordered bool, indent int, rest string) {
	indent = leadingIndent(line)
	t := strings.TrimLeft(line, " \t")

	if len(t) > 0 && (t[0] == '-' || t[0] == '*' || t[0] == '+') {
		if len(t) == 1 {
			return true, false, indent, ""
		}
		if t[1] == ' ' || t[1] == '\t' {
			return true, false, indent, strings.TrimSpace(t[1:])
		}
		return false, false, 0, ""
	}

	n := 0
	for n < len(t) && t[n] >= '0' && t[n] <= '9' {
		n++
	}
	if n == 0 || n > 9 || n >= len(t) {
		return false, false, 0, ""
	}
	if t[n] != '.' && t[n] != ')' {
		return false, false, 0, ""
	}
	after := t[n+1:]
	if after != "" && after[0] != ' ' && after[0] != '\t' {
		return false, false, 0, ""
	}
	return true, true, indent, strings.TrimSpace(after)
}

// parseList consumes consecutive list item lines (plus indented
// continuation lines) and assembles a nested item tree. Indentation depth
// changes produce nested children; depth is uncapped here and clamped by
// the document builder.
func (p *parser) parseList(lines []string, i int) (Block, int) {
	var flats []flatItem
	j := i
	for j < len(lines) {
		line := lines[j]
		if isBlank(line) {
			break
		}
		if ok, ordered, indent, rest := listMarker(line); ok {
			flats = append(flats, flatItem{ordered: ordered, indent: indent, text: rest})
			j++
			continue
		}
		// An indented non-marker line continues the previous item.
		if len(flats) > 0 && leadingIndent(line) > flats[len(flats)-1].indent {
			flats[len(flats)-1].text += " " + strings.TrimSpace(line)
			j++
			continue
		}
		break
	}

	assignDepths(flats)
	pos := 0
	items := buildItems(flats, &pos, 0)
	return &List{Items: items}, j
}

// assignDepths converts raw indent widths to 0-based depths using an
// indent stack: an item indented at least two columns past the current
// level opens a new level.
func assignDepths(flats []flatItem) {
	var stack []int
	for k := range flats {
		ind := flats[k].indent
		for len(stack) > 0 && ind < stack[len(stack)-1] {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			stack = append(stack, ind)
		} else if ind > stack[len(stack)-1]+1 {
			stack = append(stack, ind)
		}
		flats[k].depth = len(stack) - 1
	}
}

// buildItems assembles the nested item tree for one depth level.
func buildItems(flats []flatItem, pos *int, depth int) []ListItem {
	var items []ListItem
	for *pos < len(flats) {
		f := flats[*pos]
		if f.depth < depth {
			return items
		}
		if f.depth > depth {
			if len(items) == 0 {
				// No parent at this level to attach to; coerce.
				flats[*pos].depth = depth
				continue
			}
			items[len(items)-1].Children = buildItems(flats, pos, depth+1)
			continue
		}
		items = append(items, ListItem{
			Ordered: f.ordered,
			Depth:   depth,
			Content: ResolveInline(f.text),
		})
		*pos++
	}
	return items
}

// ============================================================================
// Tables
// ============================================================================

// isTableStart reports whether the line at i opens a table: a row line
// followed by a separator row. A pipe line without a separator stays a
// paragraph.
func isTableStart(lines []string, i int) bool {
	if !strings.Contains(lines[i], "|") {
		return false
	}
	return i+1 < len(lines) && isTableSeparator(lines[i+1])
}

// isTableSeparator matches separator rows such as ---|--- or | :--- | ---: |.
func isTableSeparator(line string) bool {
	t := strings.TrimSpace(line)
	if !strings.Contains(t, "-") || !strings.Contains(t, "|") {
		return false
	}
	cells := splitRow(t)
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		c = strings.TrimSpace(c)
		c = strings.TrimPrefix(c, ":")
		c = strings.TrimSuffix(c, ":")
		if c == "" {
			return false
		}
		for _, ch := range c {
			if ch != '-' {
				return false
			}
		}
	}
	return true
}

// splitRow splits a table row line into raw cell strings, dropping the
// outer empties produced by leading/trailing pipes.
func splitRow(line string) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	parts := strings.Split(t, "|")
	for k := range parts {
		parts[k] = strings.TrimSpace(parts[k])
	}
	return parts
}

// parseTable consumes the header, separator, and body rows. Rows whose cell
// count differs from the header are coerced — short rows padded with empty
// cells, long rows truncated — and the coercion is recorded as a note.
func (p *parser) parseTable(lines []string, i int) (Block, int) {
	header := splitRow(lines[i])
	cols := len(header)
	raw := [][]string{header}

	j := i + 2
	for ; j < len(lines); j++ {
		if isBlank(lines[j]) || !strings.Contains(lines[j], "|") {
			break
		}
		raw = append(raw, splitRow(lines[j]))
	}

	table := &Table{}
	for rowIdx, cells := range raw {
		if len(cells) != cols {
			p.notes = append(p.notes, fmt.Sprintf(
				"table row %d has %d cells, expected %d; coerced", rowIdx+1, len(cells), cols))
			for len(cells) < cols {
				cells = append(cells, "")
			}
			cells = cells[:cols]
		}
		row := make([]Cell, cols)
		for c, text := range cells {
			row[c] = Cell{Content: ResolveInline(text)}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, j
}

// ============================================================================
// Raw HTML and paragraphs
// ============================================================================

func isHTMLStart(trimmed string) bool {
	if len(trimmed) < 2 || trimmed[0] != '<' {
		return false
	}
	c := trimmed[1]
	return c == '/' || c == '!' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parseHTMLBlock keeps raw HTML lines verbatim until a blank line; the
// document builder degrades them to styled text.
func parseHTMLBlock(lines []string, i int) (Block, int) {
	var body []string
	j := i
	for ; j < len(lines); j++ {
		if isBlank(lines[j]) {
			break
		}
		body = append(body, lines[j])
	}
	return &HTML{Literal: strings.Join(body, "\n")}, j
}

// parseParagraph accumulates consecutive non-blank lines that do not open
// another block. Soft line breaks within the paragraph become spaces. A
// paragraph whose entire content is a single image construct becomes a
// block-level image.
func parseParagraph(lines []string, i int) (Block, int) {
	var body []string
	j := i
	for ; j < len(lines); j++ {
		line := lines[j]
		if isBlank(line) {
			break
		}
		trimmed := strings.TrimLeft(line, " \t")
		if j > i && opensBlock(lines, j, trimmed) {
			break
		}
		body = append(body, strings.TrimSpace(line))
	}

	spans := ResolveInline(strings.Join(body, " "))
	if len(spans) == 1 && spans[0].Kind == SpanImage {
		return &Image{URI: spans[0].Dest, Alt: spans[0].Literal}, j
	}
	return &Paragraph{Content: spans}, j
}

// opensBlock reports whether the line at j interrupts an open paragraph.
func opensBlock(lines []string, j int, trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") ||
		headingLevel(trimmed) > 0 ||
		isThematicBreak(trimmed) ||
		strings.HasPrefix(trimmed, ">") ||
		isListLine(lines[j]) ||
		isTableStart(lines, j) ||
		isHTMLStart(trimmed)
}
