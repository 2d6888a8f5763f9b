package docx

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCP  = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC  = "http://purl.org/dc/elements/1.1/"
	nsEP  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
)

// Relationship types for parts referenced from the package
const (
	relTypeDocument  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeNumbering = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relTypeHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	relTypeImage     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeCore      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeApp       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// documentXML is the root of word/document.xml.
type documentXML struct {
	XMLName  xml.Name `xml:"w:document"`
	XmlnsW   string   `xml:"xmlns:w,attr"`
	XmlnsR   string   `xml:"xmlns:r,attr"`
	XmlnsWP  string   `xml:"xmlns:wp,attr"`
	XmlnsA   string   `xml:"xmlns:a,attr"`
	XmlnsPic string   `xml:"xmlns:pic,attr"`
	Body     bodyXML  `xml:"w:body"`
}

type bodyXML struct {
	Content []interface{}
	SectPr  sectPrXML `xml:"w:sectPr"`
}

// sectPrXML holds the section geometry: US Letter with one-inch margins.
type sectPrXML struct {
	PgSz  pgSzXML  `xml:"w:pgSz"`
	PgMar pgMarXML `xml:"w:pgMar"`
}

type pgSzXML struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type pgMarXML struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

func defaultSectPr() sectPrXML {
	return sectPrXML{
		PgSz:  pgSzXML{W: 12240, H: 15840},
		PgMar: pgMarXML{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
	}
}

// valXML is the ubiquitous single-value element (<w:x w:val="..."/>).
type valXML struct {
	Val string `xml:"w:val,attr"`
}

// onOffXML marks a toggle property; its presence turns the property on.
type onOffXML struct{}

// emptyXML marks elements that carry no attributes or children.
type emptyXML struct{}

// paragraphXML is a w:p element. Props must precede run content.
type paragraphXML struct {
	XMLName xml.Name   `xml:"w:p"`
	Props   *pPrXML    `xml:"w:pPr,omitempty"`
	Content []interface{}
}

// pPrXML lists paragraph properties in schema order.
type pPrXML struct {
	Style      *valXML      `xml:"w:pStyle,omitempty"`
	NumPr      *numPrXML    `xml:"w:numPr,omitempty"`
	Borders    *pBdrXML     `xml:"w:pBdr,omitempty"`
	Shd        *shdXML      `xml:"w:shd,omitempty"`
	Spacing    *spacingXML  `xml:"w:spacing,omitempty"`
	Ind        *indXML      `xml:"w:ind,omitempty"`
	Jc         *valXML      `xml:"w:jc,omitempty"`
	OutlineLvl *valXML      `xml:"w:outlineLvl,omitempty"`
}

type numPrXML struct {
	Ilvl  valXML `xml:"w:ilvl"`
	NumID valXML `xml:"w:numId"`
}

type pBdrXML struct {
	Top    *borderXML `xml:"w:top,omitempty"`
	Left   *borderXML `xml:"w:left,omitempty"`
	Bottom *borderXML `xml:"w:bottom,omitempty"`
	Right  *borderXML `xml:"w:right,omitempty"`
}

type borderXML struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type shdXML struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr"`
	Fill  string `xml:"w:fill,attr"`
}

// spacingXML measures before/after in twips and line in 240ths when
// LineRule is "auto".
type spacingXML struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type indXML struct {
	Left      string `xml:"w:left,attr,omitempty"`
	Right     string `xml:"w:right,attr,omitempty"`
	Hanging   string `xml:"w:hanging,attr,omitempty"`
	FirstLine string `xml:"w:firstLine,attr,omitempty"`
}

// runXML is a w:r element. Props must precede text content.
type runXML struct {
	XMLName xml.Name `xml:"w:r"`
	Props   *rPrXML  `xml:"w:rPr,omitempty"`
	Content []interface{}
}

// rPrXML lists run properties in schema order.
type rPrXML struct {
	Style     *valXML   `xml:"w:rStyle,omitempty"`
	Fonts     *fontsXML `xml:"w:rFonts,omitempty"`
	Bold      *onOffXML `xml:"w:b,omitempty"`
	Italic    *onOffXML `xml:"w:i,omitempty"`
	Color     *valXML   `xml:"w:color,omitempty"`
	Size      *valXML   `xml:"w:sz,omitempty"`
	SizeCs    *valXML   `xml:"w:szCs,omitempty"`
	Underline *valXML   `xml:"w:u,omitempty"`
	Shd       *shdXML   `xml:"w:shd,omitempty"`
}

type fontsXML struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	CS       string `xml:"w:cs,attr,omitempty"`
}

type textXML struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

type breakXML struct {
	XMLName xml.Name `xml:"w:br"`
}

type hyperlinkXML struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	ID      string   `xml:"r:id,attr"`
	History string   `xml:"w:history,attr"`
	Runs    []runXML
}

// tableXML is a w:tbl element: properties, grid, then rows.
type tableXML struct {
	XMLName xml.Name      `xml:"w:tbl"`
	Props   tblPrXML      `xml:"w:tblPr"`
	Grid    tblGridXML    `xml:"w:tblGrid"`
	Rows    []tableRowXML
}

type tblPrXML struct {
	Style   *valXML        `xml:"w:tblStyle,omitempty"`
	Width   *tblWidthXML   `xml:"w:tblW,omitempty"`
	Borders *tblBordersXML `xml:"w:tblBorders,omitempty"`
}

type tblWidthXML struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type tblBordersXML struct {
	Top     borderXML `xml:"w:top"`
	Left    borderXML `xml:"w:left"`
	Bottom  borderXML `xml:"w:bottom"`
	Right   borderXML `xml:"w:right"`
	InsideH borderXML `xml:"w:insideH"`
	InsideV borderXML `xml:"w:insideV"`
}

type tblGridXML struct {
	Cols []gridColXML `xml:"w:gridCol"`
}

type gridColXML struct {
	W int `xml:"w:w,attr"`
}

type tableRowXML struct {
	XMLName xml.Name       `xml:"w:tr"`
	Cells   []tableCellXML
}

type tableCellXML struct {
	XMLName    xml.Name       `xml:"w:tc"`
	Props      tcPrXML        `xml:"w:tcPr"`
	Paragraphs []paragraphXML
}

type tcPrXML struct {
	Width tblWidthXML `xml:"w:tcW"`
	Shd   *shdXML     `xml:"w:shd,omitempty"`
}

// relationshipsXML is the root of a .rels part.
type relationshipsXML struct {
	XMLName xml.Name          `xml:"Relationships"`
	Xmlns   string            `xml:"xmlns,attr"`
	Rels    []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// contentTypesXML is the root of [Content_Types].xml.
type contentTypesXML struct {
	XMLName   xml.Name         `xml:"Types"`
	Xmlns     string           `xml:"xmlns,attr"`
	Defaults  []ctDefaultXML   `xml:"Default"`
	Overrides []ctOverrideXML  `xml:"Override"`
}

type ctDefaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// corePropsXML is the root of docProps/core.xml.
type corePropsXML struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	XmlnsCP string   `xml:"xmlns:cp,attr"`
	XmlnsDC string   `xml:"xmlns:dc,attr"`
	Title   string   `xml:"dc:title,omitempty"`
	Creator string   `xml:"dc:creator,omitempty"`
}

// appPropsXML is the root of docProps/app.xml.
type appPropsXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
}
