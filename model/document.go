package model

import "strings"

// Metadata holds document metadata written to the output package.
type Metadata struct {
	Title   string
	Author  string
	Creator string
}

// Document represents a complete output document: an ordered sequence of
// structural elements plus metadata.
type Document struct {
	Metadata Metadata
	Elements []Element
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{}
}

// AddElement appends an element to the document in order.
func (d *Document) AddElement(e Element) {
	d.Elements = append(d.Elements, e)
}

// GetText returns the visible text of the document, one block per line.
func (d *Document) GetText() string {
	var parts []string
	for _, e := range d.Elements {
		if te, ok := e.(TextElement); ok {
			parts = append(parts, te.GetText())
		}
	}
	return strings.Join(parts, "\n")
}
