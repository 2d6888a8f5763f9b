// Package format provides source format detection and text decoding for the
// md2word library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Format represents a recognized source format.
type Format int

const (
	// Unknown indicates an unrecognized format. Unknown sources are still
	// parsed as Markdown — parsing is total — detection exists for callers
	// that want to filter inputs up front.
	Unknown Format = iota
	// Markdown indicates a Markdown source.
	Markdown
	// Text indicates a plain text source.
	Text
	// HTML indicates an HTML document.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "Markdown"
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Detect determines the source format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return Markdown
	case ".txt", ".text":
		return Text
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to distinguish HTML documents from
// plain Markdown/text. Returns Unknown when nothing identifiable is found.
func DetectFromMagic(data []byte) Format {
	data = stripBOM(data)

	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return Unknown
	}

	upper := strings.ToUpper(string(data[start:min(start+512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return HTML
	}

	return Unknown
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

func stripBOM(data []byte) []byte {
	if bytes.HasPrefix(data, bomUTF8) {
		return data[len(bomUTF8):]
	}
	return data
}

// DecodeText decodes raw source bytes to a UTF-8 string with normalized
// line endings. UTF-16 sources are recognized by their byte order mark;
// everything else is treated as UTF-8 (with an optional BOM).
func DecodeText(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(dec, data)
		if err != nil {
			return "", err
		}
		data = decoded
	default:
		data = stripBOM(data)
	}

	text := string(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
