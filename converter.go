package md2word

import (
	"github.com/zzzj131/md2word/docx"
	"github.com/zzzj131/md2word/resolver"
)

// Converter provides a fluent interface for converting Markdown to DOCX.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source: a file path, or in-memory text
	filename  string
	source    string
	hasSource bool

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:  c.filename,
		source:    c.source,
		hasSource: c.hasSource,
		options:   c.options.clone(),
		err:       c.err,
	}
}

// Styles sets the output style configuration, replacing the defaults.
func (c *Converter) Styles(cfg docx.StyleConfig) *Converter {
	nc := c.clone()
	nc.options.styles = cfg
	return nc
}

// StylesFromFile loads a JSON style configuration from path. A load
// failure is carried forward and reported by the terminal operation.
func (c *Converter) StylesFromFile(path string) *Converter {
	nc := c.clone()
	cfg, err := docx.LoadStyleConfig(path)
	if err != nil && nc.err == nil {
		nc.err = err
		return nc
	}
	nc.options.styles = cfg
	return nc
}

// WithFetcher supplies a collaborator for resolving remote http(s) image
// references. Without one, remote references fall back to their alt text.
func (c *Converter) WithFetcher(f resolver.Fetcher) *Converter {
	nc := c.clone()
	nc.options.fetcher = f
	return nc
}

// MaxResourceSize caps resolved image resources at n bytes; larger
// resources fall back to alt text with a warning.
func (c *Converter) MaxResourceSize(n int64) *Converter {
	nc := c.clone()
	nc.options.maxResource = n
	return nc
}

// MaxImageWidth caps embedded picture width at the given number of inches.
// Wider pictures are scaled down preserving aspect ratio.
func (c *Converter) MaxImageWidth(inches float64) *Converter {
	nc := c.clone()
	nc.options.maxImageWidth = int64(inches * 914400)
	return nc
}

// Title sets the document title written to the package metadata.
func (c *Converter) Title(title string) *Converter {
	nc := c.clone()
	nc.options.title = title
	return nc
}

// Author sets the document author written to the package metadata.
func (c *Converter) Author(author string) *Converter {
	nc := c.clone()
	nc.options.author = author
	return nc
}

// OnState registers a callback invoked at each state transition of the
// conversion pipeline. The callback runs on the converting goroutine and
// must not block.
func (c *Converter) OnState(fn func(State)) *Converter {
	nc := c.clone()
	nc.options.onState = fn
	return nc
}
