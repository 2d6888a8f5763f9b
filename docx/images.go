package docx

import (
	"bytes"
	"encoding/xml"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// EMU (English Metric Units) conversion constants. DOCX drawing extents
// are measured in EMUs; pixel sizes are interpreted at 96 DPI.
const (
	emuPerInch  = 914400
	emuPerPixel = emuPerInch / 96

	// DefaultMaxImageWidth caps embedded pictures at six inches so they
	// fit the printable area of a Letter page with one-inch margins.
	DefaultMaxImageWidth = 6 * emuPerInch
)

// imageExtent returns the display extent of an image in EMUs, scaled down
// proportionally when the natural width exceeds maxWidth. Undecodable data
// falls back to a 4:3 box at half the maximum width.
func imageExtent(data []byte, maxWidth int64) (cx, cy int64) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return maxWidth / 2, maxWidth * 3 / 8
	}

	cx = int64(cfg.Width) * emuPerPixel
	cy = int64(cfg.Height) * emuPerPixel
	if cx > maxWidth {
		cy = cy * maxWidth / cx
		cx = maxWidth
	}
	return cx, cy
}

// drawingXML is the inline picture markup hung off a run: a wp:inline
// anchor wrapping a DrawingML graphic with a single picture shape.
type drawingXML struct {
	XMLName xml.Name        `xml:"w:drawing"`
	Inline  inlineAnchorXML `xml:"wp:inline"`
}

type inlineAnchorXML struct {
	DistT   int          `xml:"distT,attr"`
	DistB   int          `xml:"distB,attr"`
	DistL   int          `xml:"distL,attr"`
	DistR   int          `xml:"distR,attr"`
	Extent  wpExtentXML  `xml:"wp:extent"`
	DocPr   wpDocPrXML   `xml:"wp:docPr"`
	Graphic graphicXML   `xml:"a:graphic"`
}

type wpExtentXML struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type wpDocPrXML struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr,omitempty"`
}

type graphicXML struct {
	Data graphicDataXML `xml:"a:graphicData"`
}

type graphicDataXML struct {
	URI string `xml:"uri,attr"`
	Pic picXML `xml:"pic:pic"`
}

type picXML struct {
	NvPicPr  nvPicPrXML  `xml:"pic:nvPicPr"`
	BlipFill blipFillXML `xml:"pic:blipFill"`
	SpPr     spPrXML     `xml:"pic:spPr"`
}

type nvPicPrXML struct {
	CNvPr    wpDocPrXML `xml:"pic:cNvPr"`
	CNvPicPr emptyXML   `xml:"pic:cNvPicPr"`
}

type blipFillXML struct {
	Blip    blipXML    `xml:"a:blip"`
	Stretch stretchXML `xml:"a:stretch"`
}

type blipXML struct {
	Embed string `xml:"r:embed,attr"`
}

type stretchXML struct {
	FillRect emptyXML `xml:"a:fillRect"`
}

type spPrXML struct {
	Xfrm xfrmXML     `xml:"a:xfrm"`
	Geom prstGeomXML `xml:"a:prstGeom"`
}

type xfrmXML struct {
	Off offXML      `xml:"a:off"`
	Ext wpExtentXML `xml:"a:ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type prstGeomXML struct {
	Prst  string   `xml:"prst,attr"`
	AvLst emptyXML `xml:"a:avLst"`
}

// inlinePicture assembles the drawing markup for an embedded picture
// relationship with the given identifiers and extent.
func inlinePicture(relID string, shapeID int, name, descr string, cx, cy int64) drawingXML {
	return drawingXML{
		Inline: inlineAnchorXML{
			Extent: wpExtentXML{CX: cx, CY: cy},
			DocPr:  wpDocPrXML{ID: shapeID, Name: name, Descr: descr},
			Graphic: graphicXML{
				Data: graphicDataXML{
					URI: nsPic,
					Pic: picXML{
						NvPicPr: nvPicPrXML{
							CNvPr: wpDocPrXML{ID: shapeID, Name: name, Descr: descr},
						},
						BlipFill: blipFillXML{
							Blip: blipXML{Embed: relID},
						},
						SpPr: spPrXML{
							Xfrm: xfrmXML{Ext: wpExtentXML{CX: cx, CY: cy}},
							Geom: prstGeomXML{Prst: "rect"},
						},
					},
				},
			},
		},
	}
}

// imageExtension maps a MIME type to the media part file extension.
func imageExtension(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpeg"
	case "image/gif":
		return "gif"
	case "image/bmp":
		return "bmp"
	case "image/tiff":
		return "tiff"
	case "image/webp":
		return "webp"
	default:
		return "bin"
	}
}

// imageContentType maps a media part extension back to its content type.
func imageContentType(ext string) string {
	switch ext {
	case "png", "gif", "bmp", "tiff", "webp":
		return "image/" + ext
	case "jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
