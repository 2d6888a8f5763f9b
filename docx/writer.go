package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/zzzj131/md2word/model"
)

// contentWidthTwips is the usable width between one-inch margins on a
// Letter page, used to size table columns.
const contentWidthTwips = 9360

// Writer serializes a document model to a DOCX package.
type Writer struct {
	cfg StyleConfig

	// MaxImageWidth caps embedded picture width in EMUs. Pictures wider
	// than this are scaled down preserving aspect ratio.
	MaxImageWidth int64
}

// NewWriter creates a writer with the given style configuration.
func NewWriter(cfg StyleConfig) *Writer {
	return &Writer{cfg: cfg, MaxImageWidth: DefaultMaxImageWidth}
}

// Write serializes doc as a complete DOCX package to out. The document
// model is not modified; Write may be called repeatedly with the same
// document.
func (w *Writer) Write(doc *model.Document, out io.Writer) error {
	s := &serializer{
		cfg:           w.cfg,
		maxImageWidth: w.MaxImageWidth,
		rels: relationshipsXML{Xmlns: nsRel, Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
			{ID: "rId2", Type: relTypeNumbering, Target: "numbering.xml"},
		}},
		nextRel: 3,
	}

	var body bodyXML
	for _, e := range doc.Elements {
		body.Content = append(body.Content, s.element(e)...)
	}
	body.SectPr = defaultSectPr()

	document := documentXML{
		XmlnsW:   nsW,
		XmlnsR:   nsR,
		XmlnsWP:  nsWP,
		XmlnsA:   nsA,
		XmlnsPic: nsPic,
		Body:     body,
	}

	zw := zip.NewWriter(out)

	parts := []struct {
		name string
		root interface{}
	}{
		{"[Content_Types].xml", s.contentTypes()},
		{"_rels/.rels", packageRels()},
		{"word/document.xml", document},
		{"word/_rels/document.xml.rels", s.rels},
		{"word/styles.xml", buildStyles(w.cfg)},
		{"word/numbering.xml", buildNumbering()},
		{"docProps/core.xml", coreProps(doc.Metadata)},
		{"docProps/app.xml", appPropsXML{Xmlns: nsEP, Application: "md2word"}},
	}
	for _, p := range parts {
		if err := writeXMLPart(zw, p.name, p.root); err != nil {
			return err
		}
	}

	for _, m := range s.media {
		f, err := zw.Create("word/media/" + m.name)
		if err != nil {
			return fmt.Errorf("creating media part %s: %w", m.name, err)
		}
		if _, err := f.Write(m.data); err != nil {
			return fmt.Errorf("writing media part %s: %w", m.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing package: %w", err)
	}
	return nil
}

func writeXMLPart(zw *zip.Writer, name string, root interface{}) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", name, err)
	}
	if _, err := f.Write([]byte(xml.Header)); err != nil {
		return fmt.Errorf("writing part %s: %w", name, err)
	}
	enc := xml.NewEncoder(f)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encoding part %s: %w", name, err)
	}
	return nil
}

func packageRels() relationshipsXML {
	return relationshipsXML{Xmlns: nsRel, Rels: []relationshipXML{
		{ID: "rId1", Type: relTypeDocument, Target: "word/document.xml"},
		{ID: "rId2", Type: relTypeCore, Target: "docProps/core.xml"},
		{ID: "rId3", Type: relTypeApp, Target: "docProps/app.xml"},
	}}
}

func coreProps(m model.Metadata) corePropsXML {
	creator := m.Creator
	if creator == "" {
		creator = m.Author
	}
	return corePropsXML{
		XmlnsCP: nsCP,
		XmlnsDC: nsDC,
		Title:   m.Title,
		Creator: creator,
	}
}

// mediaPart is an image payload staged for the word/media/ directory.
type mediaPart struct {
	name string
	data []byte
	ext  string
}

// serializer walks the document model emitting body content while
// accumulating the relationships and media parts the content references.
type serializer struct {
	cfg           StyleConfig
	maxImageWidth int64

	rels    relationshipsXML
	media   []mediaPart
	nextRel int
	shapeID int
}

func (s *serializer) addRel(relType, target, mode string) string {
	id := "rId" + strconv.Itoa(s.nextRel)
	s.nextRel++
	s.rels.Rels = append(s.rels.Rels, relationshipXML{
		ID: id, Type: relType, Target: target, TargetMode: mode,
	})
	return id
}

func (s *serializer) addImage(data []byte, mime string) string {
	ext := imageExtension(mime)
	name := fmt.Sprintf("image%d.%s", len(s.media)+1, ext)
	s.media = append(s.media, mediaPart{name: name, data: data, ext: ext})
	return s.addRel(relTypeImage, "media/"+name, "")
}

// contentTypes builds [Content_Types].xml including a Default entry for
// every media extension present in the package.
func (s *serializer) contentTypes() contentTypesXML {
	ct := contentTypesXML{
		Xmlns: nsCT,
		Defaults: []ctDefaultXML{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []ctOverrideXML{
			{PartName: "/word/document.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
			{PartName: "/word/styles.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
			{PartName: "/word/numbering.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"},
			{PartName: "/docProps/core.xml", ContentType: "application/vnd.openxmlformats-package.core-properties+xml"},
			{PartName: "/docProps/app.xml", ContentType: "application/vnd.openxmlformats-officedocument.extended-properties+xml"},
		},
	}

	seen := make(map[string]bool)
	for _, m := range s.media {
		seen[m.ext] = true
	}
	exts := make([]string, 0, len(seen))
	for ext := range seen {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		ct.Defaults = append(ct.Defaults, ctDefaultXML{
			Extension: ext, ContentType: imageContentType(ext),
		})
	}

	return ct
}

// element maps one model element to body content.
func (s *serializer) element(e model.Element) []interface{} {
	switch e := e.(type) {
	case *model.Heading:
		return []interface{}{s.heading(e)}
	case *model.Paragraph:
		return []interface{}{s.paragraph(e)}
	case *model.ListItem:
		return []interface{}{s.listItem(e)}
	case *model.CodeBlock:
		return []interface{}{s.codeBlock(e)}
	case *model.Table:
		return []interface{}{s.table(e)}
	case *model.Rule:
		return []interface{}{s.rule()}
	default:
		return nil
	}
}

func (s *serializer) heading(h *model.Heading) paragraphXML {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return paragraphXML{
		Props:   &pPrXML{Style: &valXML{Val: fmt.Sprintf("Heading%d", level)}},
		Content: s.runs(h.Runs),
	}
}

func (s *serializer) paragraph(p *model.Paragraph) paragraphXML {
	para := paragraphXML{Content: s.runs(p.Runs)}
	if p.QuoteDepth > 0 {
		para.Props = &pPrXML{
			Borders: &pBdrXML{
				Left: &borderXML{Val: "single", Sz: 12, Space: 4, Color: "CCCCCC"},
			},
			Ind: &indXML{Left: strconv.Itoa(720 * p.QuoteDepth)},
		}
	}
	return para
}

func (s *serializer) listItem(li *model.ListItem) paragraphXML {
	level := li.Level
	if level < 0 {
		level = 0
	}
	if level > maxListLevel {
		level = maxListLevel
	}
	numID := numIDBullet
	if li.Ordered {
		numID = numIDOrdered
	}
	return paragraphXML{
		Props: &pPrXML{
			Style: &valXML{Val: "ListParagraph"},
			NumPr: &numPrXML{
				Ilvl:  valXML{Val: strconv.Itoa(level)},
				NumID: valXML{Val: strconv.Itoa(numID)},
			},
		},
		Content: s.runs(li.Runs),
	}
}

// codeBlock renders as a single shaded paragraph with explicit line breaks
// so indentation and blank lines inside the block survive.
func (s *serializer) codeBlock(cb *model.CodeBlock) paragraphXML {
	cs := s.cfg.CodeBlock
	para := paragraphXML{
		Props: &pPrXML{
			Shd:     &shdXML{Val: "clear", Color: "auto", Fill: cs.BackgroundColor},
			Spacing: &spacingXML{Before: twips(cs.SpaceBeforePt), After: twips(cs.SpaceAfterPt)},
		},
	}

	rp := &rPrXML{
		Fonts:  &fontsXML{ASCII: cs.FontName, HAnsi: cs.FontName, CS: cs.FontName},
		Size:   &valXML{Val: halfPoints(cs.FontSize)},
		SizeCs: &valXML{Val: halfPoints(cs.FontSize)},
	}
	var content []interface{}
	for i, line := range cb.Lines {
		if i > 0 {
			content = append(content, breakXML{})
		}
		content = append(content, textXML{Space: "preserve", Text: line})
	}
	para.Content = []interface{}{runXML{Props: rp, Content: content}}
	return para
}

func (s *serializer) table(t *model.Table) tableXML {
	cols := t.ColCount()
	if cols == 0 {
		cols = 1
	}
	colWidth := contentWidthTwips / cols

	thin := borderXML{Val: "single", Sz: 4, Space: 0, Color: "auto"}
	tbl := tableXML{
		Props: tblPrXML{
			Style: &valXML{Val: "TableGrid"},
			Width: &tblWidthXML{W: strconv.Itoa(contentWidthTwips), Type: "dxa"},
			Borders: &tblBordersXML{
				Top: thin, Left: thin, Bottom: thin, Right: thin,
				InsideH: thin, InsideV: thin,
			},
		},
	}
	for i := 0; i < cols; i++ {
		tbl.Grid.Cols = append(tbl.Grid.Cols, gridColXML{W: colWidth})
	}

	for _, row := range t.Rows {
		tr := tableRowXML{}
		for _, cell := range row.Cells {
			para := paragraphXML{Content: s.runs(cell.Runs)}
			tc := tableCellXML{
				Props: tcPrXML{Width: tblWidthXML{W: strconv.Itoa(colWidth), Type: "dxa"}},
			}
			if row.Header {
				para.Props = &pPrXML{Jc: &valXML{Val: "center"}}
				boldRuns(para.Content)
				tc.Props.Shd = &shdXML{Val: "clear", Color: "auto", Fill: "EDEDED"}
			}
			// a w:tc must contain at least one paragraph; an empty
			// paragraphXML satisfies that for empty cells
			tc.Paragraphs = []paragraphXML{para}
			tr.Cells = append(tr.Cells, tc)
		}
		tbl.Rows = append(tbl.Rows, tr)
	}

	return tbl
}

// rule renders as an empty paragraph carrying a bottom border, which Word
// displays as a full-width horizontal line.
func (s *serializer) rule() paragraphXML {
	return paragraphXML{
		Props: &pPrXML{
			Borders: &pBdrXML{
				Bottom: &borderXML{Val: "single", Sz: 6, Space: 1, Color: "auto"},
			},
			Spacing: &spacingXML{Before: "120", After: "120"},
		},
	}
}

// runs maps model runs to run-level content: plain and styled runs,
// hyperlink wrappers, and inline pictures.
func (s *serializer) runs(runs []model.Run) []interface{} {
	var out []interface{}
	for _, r := range runs {
		if r.Image != nil {
			out = append(out, s.imageRun(r.Image))
			continue
		}
		if r.Text == "" {
			continue
		}

		run := runXML{
			Props:   s.runProps(r.Style),
			Content: []interface{}{runText(r.Text)},
		}
		if r.Link != "" {
			if run.Props == nil {
				run.Props = &rPrXML{}
			}
			run.Props.Style = &valXML{Val: "Hyperlink"}
			id := s.addRel(relTypeHyperlink, r.Link, "External")
			out = append(out, hyperlinkXML{ID: id, History: "1", Runs: []runXML{run}})
			continue
		}
		out = append(out, run)
	}
	return out
}

func runText(text string) textXML {
	t := textXML{Text: text}
	if text != "" && (text[0] == ' ' || text[len(text)-1] == ' ') {
		t.Space = "preserve"
	}
	return t
}

// runProps maps run styling to run properties, or nil for plain text.
func (s *serializer) runProps(st model.TextStyle) *rPrXML {
	if st == (model.TextStyle{}) {
		return nil
	}

	rp := &rPrXML{}
	if st.Bold {
		rp.Bold = &onOffXML{}
	}
	if st.Italic {
		rp.Italic = &onOffXML{}
	}
	if st.Code {
		ic := s.cfg.InlineCode
		if ic.FontName != "" {
			rp.Fonts = &fontsXML{ASCII: ic.FontName, HAnsi: ic.FontName, CS: ic.FontName}
		}
		if ic.ColorRGB != [3]uint8{} {
			rp.Color = &valXML{Val: hexColor(ic.ColorRGB)}
		}
		size := ic.FontSize
		if size == 0 && ic.FontSizeRatio > 0 {
			size = s.cfg.Paragraph.FontSize * ic.FontSizeRatio
		}
		if size > 0 {
			rp.Size = &valXML{Val: halfPoints(size)}
			rp.SizeCs = &valXML{Val: halfPoints(size)}
		}
		if ic.BackgroundColor != "" {
			rp.Shd = &shdXML{Val: "clear", Color: "auto", Fill: ic.BackgroundColor}
		}
	}
	return rp
}

func (s *serializer) imageRun(img *model.ImageRun) runXML {
	relID := s.addImage(img.Data, img.MIME)
	s.shapeID++

	cx, cy := imageExtent(img.Data, s.maxImageWidth)
	name := fmt.Sprintf("Picture %d", s.shapeID)
	return runXML{
		Content: []interface{}{
			inlinePicture(relID, s.shapeID, name, img.Alt, cx, cy),
		},
	}
}

// boldRuns forces bold on every text run in a slice of run content,
// used for table header cells.
func boldRuns(content []interface{}) {
	for i, c := range content {
		switch run := c.(type) {
		case runXML:
			if run.Props == nil {
				run.Props = &rPrXML{}
			}
			run.Props.Bold = &onOffXML{}
			content[i] = run
		case hyperlinkXML:
			for j := range run.Runs {
				if run.Runs[j].Props == nil {
					run.Runs[j].Props = &rPrXML{}
				}
				run.Runs[j].Props.Bold = &onOffXML{}
			}
			content[i] = run
		}
	}
}
