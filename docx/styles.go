package docx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// stylesXML is the root of word/styles.xml.
type stylesXML struct {
	XMLName     xml.Name       `xml:"w:styles"`
	XmlnsW      string         `xml:"xmlns:w,attr"`
	DocDefaults docDefaultsXML `xml:"w:docDefaults"`
	Styles      []styleXML
}

type docDefaultsXML struct {
	RPrDefault rPrDefaultXML `xml:"w:rPrDefault"`
}

type rPrDefaultXML struct {
	RPr *rPrXML `xml:"w:rPr,omitempty"`
}

type styleXML struct {
	XMLName xml.Name  `xml:"w:style"`
	Type    string    `xml:"w:type,attr"`
	StyleID string    `xml:"w:styleId,attr"`
	Default string    `xml:"w:default,attr,omitempty"`
	Name    valXML    `xml:"w:name"`
	BasedOn *valXML   `xml:"w:basedOn,omitempty"`
	PPr     *pPrXML   `xml:"w:pPr,omitempty"`
	RPr     *rPrXML   `xml:"w:rPr,omitempty"`
	TblPr   *tblPrXML `xml:"w:tblPr,omitempty"`
}

// halfPoints converts a point size to the half-point string OOXML expects.
func halfPoints(pt float64) string {
	return strconv.Itoa(int(pt * 2))
}

// twips converts a point measure to twentieths of a point.
func twips(pt float64) string {
	return strconv.Itoa(int(pt * 20))
}

// lineSpacing converts a spacing multiple to 240ths for lineRule "auto".
func lineSpacing(x float64) string {
	return strconv.Itoa(int(x * 240))
}

// cmToTwips converts centimeters to twips (567 twips per cm).
func cmToTwips(cm float64) string {
	return strconv.Itoa(int(cm * 567))
}

func hexColor(rgb [3]uint8) string {
	return fmt.Sprintf("%02X%02X%02X", rgb[0], rgb[1], rgb[2])
}

// styleRunProps converts a text style to run properties. Zero-valued
// fields are left unset so the style inherits from its base.
func styleRunProps(ts TextStyleConfig) *rPrXML {
	rp := &rPrXML{}
	if ts.FontName != "" {
		rp.Fonts = &fontsXML{ASCII: ts.FontName, HAnsi: ts.FontName, CS: ts.FontName}
	}
	if ts.Bold {
		rp.Bold = &onOffXML{}
	}
	if ts.Italic {
		rp.Italic = &onOffXML{}
	}
	if ts.ColorRGB != [3]uint8{} {
		rp.Color = &valXML{Val: hexColor(ts.ColorRGB)}
	}
	if ts.FontSize > 0 {
		rp.Size = &valXML{Val: halfPoints(ts.FontSize)}
		rp.SizeCs = &valXML{Val: halfPoints(ts.FontSize)}
	}
	return rp
}

// styleParaProps converts a text style to paragraph properties, or nil if
// the style sets none.
func styleParaProps(ts TextStyleConfig) *pPrXML {
	pp := &pPrXML{}
	sp := &spacingXML{}
	if ts.SpaceBeforePt > 0 {
		sp.Before = twips(ts.SpaceBeforePt)
	}
	if ts.SpaceAfterPt > 0 {
		sp.After = twips(ts.SpaceAfterPt)
	}
	if ts.LineSpacing > 0 {
		sp.Line = lineSpacing(ts.LineSpacing)
		sp.LineRule = "auto"
	}
	if *sp != (spacingXML{}) {
		pp.Spacing = sp
	}
	if ts.FirstLineIndentCm > 0 {
		pp.Ind = &indXML{FirstLine: cmToTwips(ts.FirstLineIndentCm)}
	}
	if pp.Spacing == nil && pp.Ind == nil {
		return nil
	}
	return pp
}

// buildStyles produces the styles part: a Normal base style from the
// paragraph configuration, six heading styles carrying outline levels so
// navigation panes and tables of contents work, character styles for
// hyperlinks, a list paragraph style, and a bordered table style.
func buildStyles(cfg StyleConfig) stylesXML {
	styles := stylesXML{
		XmlnsW: nsW,
		DocDefaults: docDefaultsXML{
			RPrDefault: rPrDefaultXML{RPr: styleRunProps(cfg.Paragraph)},
		},
	}

	normal := styleXML{
		Type:    "paragraph",
		StyleID: "Normal",
		Default: "1",
		Name:    valXML{Val: "Normal"},
		PPr:     styleParaProps(cfg.Paragraph),
		RPr:     styleRunProps(cfg.Paragraph),
	}
	styles.Styles = append(styles.Styles, normal)

	for level := 1; level <= 6; level++ {
		hs := cfg.Heading(level)
		pp := styleParaProps(hs)
		if pp == nil {
			pp = &pPrXML{}
		}
		pp.OutlineLvl = &valXML{Val: strconv.Itoa(level - 1)}
		styles.Styles = append(styles.Styles, styleXML{
			Type:    "paragraph",
			StyleID: fmt.Sprintf("Heading%d", level),
			Name:    valXML{Val: fmt.Sprintf("heading %d", level)},
			BasedOn: &valXML{Val: "Normal"},
			PPr:     pp,
			RPr:     styleRunProps(hs),
		})
	}

	styles.Styles = append(styles.Styles, styleXML{
		Type:    "character",
		StyleID: "Hyperlink",
		Name:    valXML{Val: "Hyperlink"},
		RPr: &rPrXML{
			Color:     &valXML{Val: "0563C1"},
			Underline: &valXML{Val: "single"},
		},
	})

	styles.Styles = append(styles.Styles, styleXML{
		Type:    "paragraph",
		StyleID: "ListParagraph",
		Name:    valXML{Val: "List Paragraph"},
		BasedOn: &valXML{Val: "Normal"},
		PPr:     &pPrXML{Ind: &indXML{Left: "720"}},
	})

	thin := borderXML{Val: "single", Sz: 4, Space: 0, Color: "auto"}
	styles.Styles = append(styles.Styles, styleXML{
		Type:    "table",
		StyleID: "TableGrid",
		Name:    valXML{Val: "Table Grid"},
		TblPr: &tblPrXML{
			Borders: &tblBordersXML{
				Top: thin, Left: thin, Bottom: thin, Right: thin,
				InsideH: thin, InsideV: thin,
			},
		},
	})

	return styles
}
