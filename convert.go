package md2word

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zzzj131/md2word/docx"
	"github.com/zzzj131/md2word/format"
	"github.com/zzzj131/md2word/markdown"
	"github.com/zzzj131/md2word/model"
	"github.com/zzzj131/md2word/resolver"
)

// State identifies a stage of the conversion pipeline.
type State int

const (
	StateIdle State = iota
	StateParsing
	StateBuilding
	StateSerializing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateParsing:
		return "Parsing"
	case StateBuilding:
		return "Building"
	case StateSerializing:
		return "Serializing"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Result is the outcome of an asynchronous conversion started with Start.
type Result struct {
	Warnings []Warning
	Err      error
}

// pipeline runs one conversion through its stages. One conversion is one
// pipeline on one goroutine; pipelines share nothing.
type pipeline struct {
	conv     *Converter
	state    State
	warnings []Warning
}

func newPipeline(c *Converter) *pipeline {
	p := &pipeline{conv: c, state: StateIdle}
	p.notify()
	return p
}

func (p *pipeline) notify() {
	if p.conv.options.onState != nil {
		p.conv.options.onState(p.state)
	}
}

// advance moves to the next stage, honoring cancellation at the
// transition. A cancelled context fails the pipeline.
func (p *pipeline) advance(ctx context.Context, next State) error {
	if err := ctx.Err(); err != nil {
		p.state = StateFailed
		p.notify()
		return err
	}
	p.state = next
	p.notify()
	return nil
}

func (p *pipeline) finish(err error) error {
	if err != nil {
		if p.state != StateFailed {
			p.state = StateFailed
			p.notify()
		}
		return err
	}
	p.state = StateDone
	p.notify()
	return nil
}

func (p *pipeline) warn(kind WarningKind, msg string, args ...interface{}) {
	p.warnings = append(p.warnings, Warning{
		Kind:    kind,
		Message: fmt.Sprintf(msg, args...),
	})
}

// readSource returns the Markdown text and the directory relative image
// references resolve against.
func (p *pipeline) readSource() (text, baseDir string, err error) {
	c := p.conv
	if c.hasSource {
		return c.source, ".", nil
	}

	data, err := os.ReadFile(c.filename)
	if err != nil {
		return "", "", &FatalError{Kind: KindSourceUnreadable, Path: c.filename, Err: err}
	}
	text, err = format.DecodeText(data)
	if err != nil {
		return "", "", &FatalError{Kind: KindSourceUnreadable, Path: c.filename, Err: err}
	}
	return text, filepath.Dir(c.filename), nil
}

// buildModel runs the parse and build stages, producing the document
// model. It is shared by every terminal operation.
func (p *pipeline) buildModel(ctx context.Context) (*model.Document, error) {
	if p.conv.err != nil {
		return nil, p.finish(p.conv.err)
	}

	text, baseDir, err := p.readSource()
	if err != nil {
		return nil, p.finish(err)
	}

	if err := p.advance(ctx, StateParsing); err != nil {
		return nil, err
	}
	blocks, notes := markdown.Parse(text)
	for _, n := range notes {
		p.warn(WarningMalformedTable, "%s", n)
	}

	if err := p.advance(ctx, StateBuilding); err != nil {
		return nil, err
	}
	var ropts []resolver.Option
	ropts = append(ropts, resolver.WithMaxSize(p.conv.options.maxResource))
	if p.conv.options.fetcher != nil {
		ropts = append(ropts, resolver.WithFetcher(p.conv.options.fetcher))
	}
	res := resolver.New(baseDir, ropts...)

	doc, warnings := buildDocument(blocks, res)
	p.warnings = append(p.warnings, warnings...)

	doc.Metadata = model.Metadata{
		Title:   p.conv.options.title,
		Author:  p.conv.options.author,
		Creator: "md2word",
	}
	return doc, nil
}

// serialize writes the document to dst atomically: the package is staged
// in a temp file in the destination directory and renamed into place, so a
// failed or cancelled conversion never leaves a partial destination.
func (p *pipeline) serialize(ctx context.Context, doc *model.Document, dst string) error {
	if err := p.advance(ctx, StateSerializing); err != nil {
		return err
	}

	w := docx.NewWriter(p.conv.options.styles)
	w.MaxImageWidth = p.conv.options.maxImageWidth

	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, ".md2word-*.tmp")
	if err != nil {
		return &FatalError{Kind: KindDestinationUnwritable, Path: dst, Err: err}
	}
	tmpName := tmp.Name()

	if err := w.Write(doc, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &FatalError{Kind: KindDestinationUnwritable, Path: dst, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &FatalError{Kind: KindDestinationUnwritable, Path: dst, Err: err}
	}

	if err := ctx.Err(); err != nil {
		os.Remove(tmpName)
		return err
	}

	os.Chmod(tmpName, 0644)
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return &FatalError{Kind: KindDestinationUnwritable, Path: dst, Err: err}
	}
	return nil
}

// Convert runs the full pipeline and writes the DOCX file to dst.
// Warnings describe content that was degraded; a non-nil error means no
// output file was produced.
func (c *Converter) Convert(dst string) ([]Warning, error) {
	return c.ConvertContext(context.Background(), dst)
}

// ConvertContext is Convert with cancellation. The context is checked at
// every stage transition and before the final rename; a cancelled
// conversion leaves the destination untouched.
func (c *Converter) ConvertContext(ctx context.Context, dst string) ([]Warning, error) {
	p := newPipeline(c)

	doc, err := p.buildModel(ctx)
	if err != nil {
		return p.warnings, err
	}
	if err := p.serialize(ctx, doc, dst); err != nil {
		return p.warnings, p.finish(err)
	}
	return p.warnings, p.finish(nil)
}

// Document runs the parse and build stages and returns the document model
// without serializing. Converting the same source twice yields the same
// model regardless of destination.
func (c *Converter) Document() (*model.Document, []Warning, error) {
	return c.DocumentContext(context.Background())
}

// DocumentContext is Document with cancellation.
func (c *Converter) DocumentContext(ctx context.Context) (*model.Document, []Warning, error) {
	p := newPipeline(c)

	doc, err := p.buildModel(ctx)
	if err != nil {
		return nil, p.warnings, err
	}
	return doc, p.warnings, p.finish(nil)
}

// Start runs the conversion on its own goroutine and returns a channel
// that receives exactly one Result. Intended for callers on an event loop
// that must not block; everyone else should call Convert.
func (c *Converter) Start(ctx context.Context, dst string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		warnings, err := c.ConvertContext(ctx, dst)
		ch <- Result{Warnings: warnings, Err: err}
		close(ch)
	}()
	return ch
}
