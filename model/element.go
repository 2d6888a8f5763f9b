package model

import "strings"

// ElementType represents the type of document element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeHeading
	ElementTypeParagraph
	ElementTypeListItem
	ElementTypeCodeBlock
	ElementTypeTable
	ElementTypeRule
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeHeading:
		return "Heading"
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeListItem:
		return "ListItem"
	case ElementTypeCodeBlock:
		return "CodeBlock"
	case ElementTypeTable:
		return "Table"
	case ElementTypeRule:
		return "Rule"
	default:
		return "Unknown"
	}
}

// Element is the interface for all document elements
type Element interface {
	Type() ElementType
}

// TextElement is an interface for elements containing text
type TextElement interface {
	Element
	GetText() string
}

// Heading represents a heading at outline level 1-6
type Heading struct {
	Level int
	Runs  []Run
}

func (h *Heading) Type() ElementType { return ElementTypeHeading }
func (h *Heading) GetText() string   { return runText(h.Runs) }

// Paragraph represents a paragraph of styled runs. QuoteDepth is the
// number of enclosing block quotes; each level adds a left indent.
type Paragraph struct {
	Runs       []Run
	QuoteDepth int
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p *Paragraph) GetText() string   { return runText(p.Runs) }

// ListItem represents a single list paragraph at an outline level.
// Level is 0-based and already clamped to the serializer's maximum.
type ListItem struct {
	Ordered bool
	Level   int
	Runs    []Run
}

func (l *ListItem) Type() ElementType { return ElementTypeListItem }
func (l *ListItem) GetText() string   { return runText(l.Runs) }

// CodeBlock represents a monospace block with preserved line breaks
// and leading whitespace.
type CodeBlock struct {
	Language string
	Lines    []string
}

func (c *CodeBlock) Type() ElementType { return ElementTypeCodeBlock }
func (c *CodeBlock) GetText() string   { return strings.Join(c.Lines, "\n") }

// Table represents a native table structure
type Table struct {
	Rows []TableRow
}

func (t *Table) Type() ElementType { return ElementTypeTable }
func (t *Table) GetText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(runText(cell.Runs))
		}
	}
	return sb.String()
}

// ColCount returns the number of columns in the table.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}

// TableRow represents a single table row
type TableRow struct {
	Cells  []TableCell
	Header bool
}

// TableCell represents a single table cell; empty cells are valid.
type TableCell struct {
	Runs []Run
}

// Rule represents a horizontal rule
type Rule struct{}

func (r *Rule) Type() ElementType { return ElementTypeRule }

// Run represents a contiguous stretch of identically styled text within a
// paragraph-like element. A run carries either text or an embedded image.
type Run struct {
	Text  string
	Style TextStyle
	Link  string // hyperlink target, empty for plain runs
	Image *ImageRun
}

// ImageRun holds the resolved bytes of an inline embedded picture.
type ImageRun struct {
	Data []byte
	MIME string
	Alt  string
}

// TextStyle represents run styling
type TextStyle struct {
	Bold   bool
	Italic bool
	Code   bool // monospace with shaded background
}

func runText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		if r.Image != nil {
			sb.WriteString(r.Image.Alt)
			continue
		}
		sb.WriteString(r.Text)
	}
	return sb.String()
}
