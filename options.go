package md2word

import (
	"github.com/zzzj131/md2word/docx"
	"github.com/zzzj131/md2word/resolver"
)

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Output styling
	styles docx.StyleConfig

	// Resource resolution
	fetcher     resolver.Fetcher
	maxResource int64

	// Image sizing
	maxImageWidth int64

	// Document metadata
	title  string
	author string

	// Stage observation
	onState func(State)
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		styles:        docx.DefaultStyleConfig(),
		maxResource:   resolver.DefaultMaxSize,
		maxImageWidth: docx.DefaultMaxImageWidth,
	}
}

// clone creates a copy of ConvertOptions. All fields are values or shared
// read-only collaborators, so a shallow copy preserves immutability.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		styles:        o.styles,
		fetcher:       o.fetcher,
		maxResource:   o.maxResource,
		maxImageWidth: o.maxImageWidth,
		title:         o.title,
		author:        o.author,
		onState:       o.onState,
	}
}
