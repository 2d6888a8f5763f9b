package md2word

import (
	"fmt"
	"strings"

	"github.com/zzzj131/md2word/markdown"
	"github.com/zzzj131/md2word/model"
	"github.com/zzzj131/md2word/resolver"
)

// maxOutlineLevel is the deepest list outline level the output format
// represents; deeper nesting clamps here.
const maxOutlineLevel = 8

// builder maps parsed blocks to the document model. Content never aborts
// the build: unsupported or unresolvable input degrades with a warning.
type builder struct {
	doc      *model.Document
	res      *resolver.Resolver
	warnings []Warning
}

// buildDocument converts a block sequence into a document model, resolving
// image references through res.
func buildDocument(blocks []markdown.Block, res *resolver.Resolver) (*model.Document, []Warning) {
	b := &builder{doc: model.NewDocument(), res: res}
	for _, blk := range blocks {
		b.block(blk, 0)
	}
	return b.doc, b.warnings
}

func (b *builder) warn(kind WarningKind, msg string, args ...interface{}) {
	b.warnings = append(b.warnings, Warning{
		Kind:    kind,
		Message: fmt.Sprintf(msg, args...),
	})
}

func (b *builder) block(blk markdown.Block, quoteDepth int) {
	switch blk := blk.(type) {
	case *markdown.Heading:
		level := blk.Level
		if level < 1 || level > 6 {
			b.warn(WarningDegradedStructure, "heading level %d clamped", level)
			if level < 1 {
				level = 1
			} else {
				level = 6
			}
		}
		b.doc.AddElement(&model.Heading{Level: level, Runs: b.runs(blk.Content, model.TextStyle{}, "")})

	case *markdown.Paragraph:
		b.doc.AddElement(&model.Paragraph{
			Runs:       b.runs(blk.Content, model.TextStyle{}, ""),
			QuoteDepth: quoteDepth,
		})

	case *markdown.List:
		b.listItems(blk.Items)

	case *markdown.CodeBlock:
		b.doc.AddElement(&model.CodeBlock{
			Language: blk.Language,
			Lines:    strings.Split(blk.Literal, "\n"),
		})

	case *markdown.BlockQuote:
		for _, child := range blk.Blocks {
			b.block(child, quoteDepth+1)
		}

	case *markdown.Table:
		b.table(blk)

	case *markdown.ThematicBreak:
		b.doc.AddElement(&model.Rule{})

	case *markdown.Image:
		b.doc.AddElement(&model.Paragraph{
			Runs:       []model.Run{b.imageRun(blk.URI, blk.Alt, model.TextStyle{}, "")},
			QuoteDepth: quoteDepth,
		})

	case *markdown.HTML:
		b.html(blk, quoteDepth)

	default:
		b.warn(WarningUnsupportedConstruct, "unhandled block type %T", blk)
	}
}

func (b *builder) listItems(items []markdown.ListItem) {
	for _, it := range items {
		level := it.Depth
		if level < 0 {
			level = 0
		}
		if level > maxOutlineLevel {
			b.warn(WarningDegradedStructure,
				"list nesting depth %d exceeds maximum, clamped to %d", level, maxOutlineLevel)
			level = maxOutlineLevel
		}
		b.doc.AddElement(&model.ListItem{
			Ordered: it.Ordered,
			Level:   level,
			Runs:    b.runs(it.Content, model.TextStyle{}, ""),
		})
		b.listItems(it.Children)
	}
}

func (b *builder) table(t *markdown.Table) {
	tbl := &model.Table{}
	for i, row := range t.Rows {
		tr := model.TableRow{Header: i == 0}
		for _, cell := range row {
			tr.Cells = append(tr.Cells, model.TableCell{
				Runs: b.runs(cell.Content, model.TextStyle{}, ""),
			})
		}
		tbl.Rows = append(tbl.Rows, tr)
	}
	b.doc.AddElement(tbl)
}

// html degrades a raw HTML block to a plain paragraph: text content keeps
// basic styling, images keep their references, markup is dropped.
func (b *builder) html(h *markdown.HTML, quoteDepth int) {
	spans := markdown.FlattenHTML(h.Literal)
	b.warn(WarningUnsupportedConstruct, "raw HTML block flattened to text")

	runs := b.runs(spans, model.TextStyle{}, "")
	if len(runs) == 0 {
		return
	}
	b.doc.AddElement(&model.Paragraph{Runs: runs, QuoteDepth: quoteDepth})
}

// runs flattens a span tree into styled runs. Styling inherits downward;
// a link destination propagates to every run inside the link.
func (b *builder) runs(spans []markdown.Span, st model.TextStyle, link string) []model.Run {
	var out []model.Run
	for _, sp := range spans {
		switch sp.Kind {
		case markdown.SpanText:
			out = append(out, model.Run{Text: sp.Literal, Style: st, Link: link})
		case markdown.SpanCode:
			cst := st
			cst.Code = true
			out = append(out, model.Run{Text: sp.Literal, Style: cst, Link: link})
		case markdown.SpanEmphasis:
			ist := st
			ist.Italic = true
			out = append(out, b.runs(sp.Children, ist, link)...)
		case markdown.SpanStrong:
			bst := st
			bst.Bold = true
			out = append(out, b.runs(sp.Children, bst, link)...)
		case markdown.SpanLink:
			out = append(out, b.runs(sp.Children, st, sp.Dest)...)
		case markdown.SpanImage:
			out = append(out, b.imageRun(sp.Dest, sp.Literal, st, link))
		}
	}
	return out
}

// imageRun resolves an image reference to an embedded picture run. Any
// resolution failure falls back to the alt text with one warning.
func (b *builder) imageRun(uri, alt string, st model.TextStyle, link string) model.Run {
	res, err := b.res.Resolve(uri)
	if err == nil && !strings.HasPrefix(res.MIME, "image/") {
		err = fmt.Errorf("resource %q is not an image (%s)", uri, res.MIME)
	}
	if err == nil && res.MIME == "image/svg+xml" {
		err = fmt.Errorf("resource %q: SVG cannot be embedded", uri)
	}
	if err != nil {
		b.warn(WarningUnresolvedResource, "%v", err)
		text := alt
		if text == "" {
			text = uri
		}
		return model.Run{Text: text, Style: st, Link: link}
	}

	return model.Run{
		Image: &model.ImageRun{Data: res.Data, MIME: res.MIME, Alt: alt},
		Style: st,
		Link:  link,
	}
}
