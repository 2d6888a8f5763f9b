package docx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// List numbering identifiers referenced from paragraph properties.
const (
	numIDBullet  = 1
	numIDOrdered = 2

	// maxListLevel is the deepest indent level (0-based) a list paragraph
	// may reference; deeper nesting is clamped here.
	maxListLevel = 8
)

// numberingXML is the root of word/numbering.xml.
type numberingXML struct {
	XMLName      xml.Name         `xml:"w:numbering"`
	XmlnsW       string           `xml:"xmlns:w,attr"`
	AbstractNums []abstractNumXML
	Nums         []numXML
}

type abstractNumXML struct {
	XMLName xml.Name   `xml:"w:abstractNum"`
	ID      int        `xml:"w:abstractNumId,attr"`
	Levels  []levelXML
}

type levelXML struct {
	XMLName xml.Name `xml:"w:lvl"`
	Ilvl    int      `xml:"w:ilvl,attr"`
	Start   valXML   `xml:"w:start"`
	NumFmt  valXML   `xml:"w:numFmt"`
	LvlText valXML   `xml:"w:lvlText"`
	LvlJc   valXML   `xml:"w:lvlJc"`
	PPr     *pPrXML  `xml:"w:pPr,omitempty"`
	RPr     *rPrXML  `xml:"w:rPr,omitempty"`
}

type numXML struct {
	XMLName       xml.Name `xml:"w:num"`
	ID            int      `xml:"w:numId,attr"`
	AbstractNumID valXML   `xml:"w:abstractNumId"`
}

// bulletGlyphs cycle by depth the way Word's default bullet list does.
var bulletGlyphs = []string{"", "o", ""}
var bulletFonts = []string{"Symbol", "Courier New", "Wingdings"}

// buildNumbering produces the numbering part: one abstract bullet
// definition and one abstract decimal definition, each with nine levels at
// half-inch indent steps, referenced by the fixed bullet and ordered num IDs.
func buildNumbering() numberingXML {
	n := numberingXML{XmlnsW: nsW}

	bullets := abstractNumXML{ID: 0}
	for i := 0; i <= maxListLevel; i++ {
		bullets.Levels = append(bullets.Levels, levelXML{
			Ilvl:    i,
			Start:   valXML{Val: "1"},
			NumFmt:  valXML{Val: "bullet"},
			LvlText: valXML{Val: bulletGlyphs[i%len(bulletGlyphs)]},
			LvlJc:   valXML{Val: "left"},
			PPr:     levelIndent(i),
			RPr: &rPrXML{
				Fonts: &fontsXML{
					ASCII: bulletFonts[i%len(bulletFonts)],
					HAnsi: bulletFonts[i%len(bulletFonts)],
				},
			},
		})
	}
	n.AbstractNums = append(n.AbstractNums, bullets)

	ordered := abstractNumXML{ID: 1}
	for i := 0; i <= maxListLevel; i++ {
		ordered.Levels = append(ordered.Levels, levelXML{
			Ilvl:    i,
			Start:   valXML{Val: "1"},
			NumFmt:  valXML{Val: "decimal"},
			LvlText: valXML{Val: fmt.Sprintf("%%%d.", i+1)},
			LvlJc:   valXML{Val: "left"},
			PPr:     levelIndent(i),
		})
	}
	n.AbstractNums = append(n.AbstractNums, ordered)

	n.Nums = []numXML{
		{ID: numIDBullet, AbstractNumID: valXML{Val: "0"}},
		{ID: numIDOrdered, AbstractNumID: valXML{Val: "1"}},
	}

	return n
}

func levelIndent(ilvl int) *pPrXML {
	return &pPrXML{
		Ind: &indXML{
			Left:    strconv.Itoa(720 * (ilvl + 1)),
			Hanging: "360",
		},
	}
}
