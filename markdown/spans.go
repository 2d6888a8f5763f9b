package markdown

import "strings"

// SpanKind represents the kind of an inline span
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanEmphasis
	SpanStrong
	SpanCode
	SpanLink
	SpanImage
)

func (sk SpanKind) String() string {
	switch sk {
	case SpanText:
		return "Text"
	case SpanEmphasis:
		return "Emphasis"
	case SpanStrong:
		return "Strong"
	case SpanCode:
		return "Code"
	case SpanLink:
		return "Link"
	case SpanImage:
		return "Image"
	default:
		return "Unknown"
	}
}

// Span is an inline node. Text and Code spans carry their content in
// Literal and have no children. Emphasis, Strong and Link spans nest via
// Children. Link spans carry the target in Dest; Image spans carry the
// source URI in Dest and the alt text in Literal. Code and Image spans
// are leaves.
type Span struct {
	Kind     SpanKind
	Literal  string
	Dest     string
	Children []Span
}

// Text returns the visible text of a span tree.
func Text(spans []Span) string {
	var sb strings.Builder
	writeText(&sb, spans)
	return sb.String()
}

func writeText(sb *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch s.Kind {
		case SpanText, SpanCode, SpanImage:
			sb.WriteString(s.Literal)
		default:
			writeText(sb, s.Children)
		}
	}
}
