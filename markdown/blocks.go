package markdown

// BlockType represents the type of a block-level node
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeHeading
	BlockTypeParagraph
	BlockTypeList
	BlockTypeCodeBlock
	BlockTypeBlockQuote
	BlockTypeTable
	BlockTypeThematicBreak
	BlockTypeImage
	BlockTypeHTML
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeHeading:
		return "Heading"
	case BlockTypeParagraph:
		return "Paragraph"
	case BlockTypeList:
		return "List"
	case BlockTypeCodeBlock:
		return "CodeBlock"
	case BlockTypeBlockQuote:
		return "BlockQuote"
	case BlockTypeTable:
		return "Table"
	case BlockTypeThematicBreak:
		return "ThematicBreak"
	case BlockTypeImage:
		return "Image"
	case BlockTypeHTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Block is the interface for all block-level nodes
type Block interface {
	Type() BlockType
}

// Heading is an ATX heading at level 1-6.
type Heading struct {
	Level   int
	Content []Span
}

func (h *Heading) Type() BlockType { return BlockTypeHeading }

// Paragraph is a run of consecutive non-blank text lines.
type Paragraph struct {
	Content []Span
}

func (p *Paragraph) Type() BlockType { return BlockTypeParagraph }

// List is a group of consecutive list items. Items hold their own nested
// children; depth changes in the source produce nesting.
type List struct {
	Items []ListItem
}

func (l *List) Type() BlockType { return BlockTypeList }

// ListItem is a single list item. Depth is 0-based nesting depth.
type ListItem struct {
	Ordered  bool
	Depth    int
	Content  []Span
	Children []ListItem
}

// CodeBlock is a fenced code block. Literal holds the raw lines verbatim,
// including leading whitespace. An unterminated fence consumes the rest of
// the input.
type CodeBlock struct {
	Language string
	Literal  string
}

func (c *CodeBlock) Type() BlockType { return BlockTypeCodeBlock }

// BlockQuote holds a nested block sequence.
type BlockQuote struct {
	Blocks []Block
}

func (b *BlockQuote) Type() BlockType { return BlockTypeBlockQuote }

// Table has a uniform column count; short rows are padded and long rows
// truncated during parsing. The first row is the header row.
type Table struct {
	Rows [][]Cell
}

func (t *Table) Type() BlockType { return BlockTypeTable }

// ColCount returns the table's column count.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Cell is a single table cell.
type Cell struct {
	Content []Span
}

// ThematicBreak is a horizontal rule marker.
type ThematicBreak struct{}

func (t *ThematicBreak) Type() BlockType { return BlockTypeThematicBreak }

// Image is a block-level image: a paragraph whose entire content is a
// single image construct.
type Image struct {
	URI string
	Alt string
}

func (i *Image) Type() BlockType { return BlockTypeImage }

// HTML is a block of raw HTML lines, kept verbatim for downstream
// degradation.
type HTML struct {
	Literal string
}

func (h *HTML) Type() BlockType { return BlockTypeHTML }
