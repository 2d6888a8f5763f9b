package md2word_test

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zzzj131/md2word"
	"github.com/zzzj131/md2word/model"
)

// writeSource writes Markdown to a temp file and returns its path.
func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}
	return path
}

// readPart opens a produced DOCX file and returns one part's content.
func readPart(t *testing.T, docxPath, partName string) string {
	t.Helper()
	zr, err := zip.OpenReader(docxPath)
	if err != nil {
		t.Fatalf("opening %s: %v", docxPath, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != partName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening part %s: %v", partName, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading part %s: %v", partName, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found in %s", partName, docxPath)
	return ""
}

func TestConvertRoundTrip(t *testing.T) {
	src := writeSource(t, "# Title\n\nHello **world**.")
	dst := filepath.Join(t.TempDir(), "out.docx")

	warnings, err := md2word.Open(src).Convert(dst)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	docXML := readPart(t, dst, "word/document.xml")
	for _, want := range []string{"Title", "Hello", "world", `<w:pStyle w:val="Heading1">`, "<w:b>"} {
		if !strings.Contains(docXML, want) {
			t.Errorf("document.xml missing %s", want)
		}
	}
}

func TestDocumentModel(t *testing.T) {
	doc, warnings, err := md2word.FromString("# Title\n\nHello **world**.").Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(doc.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(doc.Elements))
	}

	h, ok := doc.Elements[0].(*model.Heading)
	if !ok || h.Level != 1 || h.GetText() != "Title" {
		t.Errorf("element 0 = %+v", doc.Elements[0])
	}

	p, ok := doc.Elements[1].(*model.Paragraph)
	if !ok {
		t.Fatalf("element 1 is %T", doc.Elements[1])
	}
	wantRuns := []model.Run{
		{Text: "Hello "},
		{Text: "world", Style: model.TextStyle{Bold: true}},
		{Text: "."},
	}
	if len(p.Runs) != len(wantRuns) {
		t.Fatalf("got %d runs, want %d: %+v", len(p.Runs), len(wantRuns), p.Runs)
	}
	for i, want := range wantRuns {
		if p.Runs[i].Text != want.Text || p.Runs[i].Style != want.Style {
			t.Errorf("run %d = %+v, want %+v", i, p.Runs[i], want)
		}
	}
}

func TestMissingImageDegrades(t *testing.T) {
	src := writeSource(t, "before\n\n![chart](missing.png)\n\nafter")
	dst := filepath.Join(t.TempDir(), "out.docx")

	warnings, err := md2word.Open(src).Convert(dst)
	if err != nil {
		t.Fatalf("Convert should succeed, got %v", err)
	}

	var unresolved int
	for _, w := range warnings {
		if w.Kind == md2word.WarningUnresolvedResource {
			unresolved++
		}
	}
	if unresolved != 1 {
		t.Errorf("got %d unresolved-resource warnings, want exactly 1: %v", unresolved, warnings)
	}

	// The alt text stands in for the picture.
	docXML := readPart(t, dst, "word/document.xml")
	if !strings.Contains(docXML, "chart") {
		t.Error("alt text missing from output")
	}
	if strings.Contains(docXML, "<w:drawing>") {
		t.Error("no picture should be embedded")
	}
}

func TestUnterminatedFence(t *testing.T) {
	doc, warnings, err := md2word.FromString("```go\nfmt.Println(1)\nfmt.Println(2)").Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(doc.Elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(doc.Elements))
	}
	cb, ok := doc.Elements[0].(*model.CodeBlock)
	if !ok {
		t.Fatalf("got %T, want *model.CodeBlock", doc.Elements[0])
	}
	if cb.GetText() != "fmt.Println(1)\nfmt.Println(2)" {
		t.Errorf("code text = %q", cb.GetText())
	}
}

func TestDeepListClampsOutlineLevel(t *testing.T) {
	var sb strings.Builder
	for d := 0; d < 15; d++ {
		sb.WriteString(strings.Repeat("  ", d))
		sb.WriteString("- item\n")
	}

	doc, warnings, err := md2word.FromString(sb.String()).Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	maxLevel := 0
	for _, e := range doc.Elements {
		li, ok := e.(*model.ListItem)
		if !ok {
			t.Fatalf("element is %T, want *model.ListItem", e)
		}
		if li.Level > maxLevel {
			maxLevel = li.Level
		}
	}
	if maxLevel != 8 {
		t.Errorf("deepest level = %d, want 8", maxLevel)
	}

	var degraded bool
	for _, w := range warnings {
		if w.Kind == md2word.WarningDegradedStructure {
			degraded = true
		}
	}
	if !degraded {
		t.Error("expected a degraded-structure warning for clamped nesting")
	}
}

func TestMalformedTableWarns(t *testing.T) {
	src := "| A | B |\n|---|---|\n| only |"
	doc, warnings, err := md2word.FromString(src).Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	var coerced bool
	for _, w := range warnings {
		if w.Kind == md2word.WarningMalformedTable {
			coerced = true
		}
	}
	if !coerced {
		t.Fatalf("expected malformed-table warning, got %v", warnings)
	}

	tbl := doc.Elements[0].(*model.Table)
	if tbl.ColCount() != 2 || len(tbl.Rows) != 2 {
		t.Errorf("table shape = %d rows x %d cols", len(tbl.Rows), tbl.ColCount())
	}
}

func TestHTMLBlockDegrades(t *testing.T) {
	doc, warnings, err := md2word.FromString("<div><b>important</b> note</div>").Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	var unsupported bool
	for _, w := range warnings {
		if w.Kind == md2word.WarningUnsupportedConstruct {
			unsupported = true
		}
	}
	if !unsupported {
		t.Fatalf("expected unsupported-construct warning, got %v", warnings)
	}

	p, ok := doc.Elements[0].(*model.Paragraph)
	if !ok {
		t.Fatalf("got %T, want *model.Paragraph", doc.Elements[0])
	}
	if p.Runs[0].Text != "important" || !p.Runs[0].Style.Bold {
		t.Errorf("first run = %+v", p.Runs[0])
	}
}

func TestUnreadableSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.docx")
	_, err := md2word.Open(filepath.Join(t.TempDir(), "missing.md")).Convert(dst)
	if err == nil {
		t.Fatal("expected error for missing source")
	}

	var fatal *md2word.FatalError
	if !errors.As(err, &fatal) || fatal.Kind != md2word.KindSourceUnreadable {
		t.Errorf("got %v, want FatalError KindSourceUnreadable", err)
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Error("destination should not exist after a fatal error")
	}
}

func TestUnwritableDestination(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "no-such-dir", "out.docx")
	_, err := md2word.FromString("# x").Convert(dst)
	if err == nil {
		t.Fatal("expected error for unwritable destination")
	}

	var fatal *md2word.FatalError
	if !errors.As(err, &fatal) || fatal.Kind != md2word.KindDestinationUnwritable {
		t.Errorf("got %v, want FatalError KindDestinationUnwritable", err)
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Error("destination should not exist after a fatal error")
	}
}

func TestModelIsIdempotent(t *testing.T) {
	conv := md2word.FromString("# A\n\n- one\n- two\n\ntext")

	first, _, err := conv.Document()
	if err != nil {
		t.Fatalf("first Document: %v", err)
	}
	second, _, err := conv.Document()
	if err != nil {
		t.Fatalf("second Document: %v", err)
	}
	if first.GetText() != second.GetText() {
		t.Error("repeated conversions produced different models")
	}

	// Converting to two destinations yields identical content.
	dir := t.TempDir()
	dstA := filepath.Join(dir, "a.docx")
	dstB := filepath.Join(dir, "b.docx")
	if _, err := conv.Convert(dstA); err != nil {
		t.Fatalf("Convert a: %v", err)
	}
	if _, err := conv.Convert(dstB); err != nil {
		t.Fatalf("Convert b: %v", err)
	}
	if readPart(t, dstA, "word/document.xml") != readPart(t, dstB, "word/document.xml") {
		t.Error("document.xml differs between destinations")
	}
}

func TestConverterImmutability(t *testing.T) {
	base := md2word.FromString("# x")
	titled := base.Title("Report")

	baseDoc, _, err := base.Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	titledDoc, _, err := titled.Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	if baseDoc.Metadata.Title != "" {
		t.Error("configuring a clone mutated the original")
	}
	if titledDoc.Metadata.Title != "Report" {
		t.Errorf("title = %q, want Report", titledDoc.Metadata.Title)
	}
}

func TestStartAsync(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.docx")
	result := <-md2word.FromString("# async").Start(context.Background(), dst)
	if result.Err != nil {
		t.Fatalf("Start: %v", result.Err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("destination missing: %v", err)
	}
}

func TestStartCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dst := filepath.Join(t.TempDir(), "out.docx")
	result := <-md2word.FromString("# cancelled").Start(ctx, dst)
	if !errors.Is(result.Err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", result.Err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("cancelled conversion should leave no destination file")
	}
}

func TestOnStateTransitions(t *testing.T) {
	var states []md2word.State
	dst := filepath.Join(t.TempDir(), "out.docx")

	_, err := md2word.FromString("# states").
		OnState(func(s md2word.State) { states = append(states, s) }).
		Convert(dst)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := []md2word.State{
		md2word.StateIdle,
		md2word.StateParsing,
		md2word.StateBuilding,
		md2word.StateSerializing,
		md2word.StateDone,
	}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("states = %v, want %v", states, want)
		}
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []md2word.Warning{
		{Kind: md2word.WarningUnresolvedResource, Message: "a"},
		{Kind: md2word.WarningMalformedTable, Message: "b"},
	}
	got := md2word.FormatWarnings(warnings)
	if !strings.Contains(got, "unresolved resource: a") || !strings.Contains(got, "malformed table: b") {
		t.Errorf("FormatWarnings = %q", got)
	}
	if md2word.FormatWarnings(nil) != "" {
		t.Error("no warnings should format to an empty string")
	}
}

func TestEmbeddedImage(t *testing.T) {
	dir := t.TempDir()

	// A 1x1 PNG, pre-encoded.
	png := []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D,
		0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89, 0x00, 0x00, 0x00,
		0x0D, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
		0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00, 0x00, 0x00, 0x00, 0x49,
		0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
	}
	if err := os.WriteFile(filepath.Join(dir, "dot.png"), png, 0644); err != nil {
		t.Fatalf("writing image: %v", err)
	}
	src := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(src, []byte("![a dot](dot.png)"), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	dst := filepath.Join(dir, "out.docx")
	warnings, err := md2word.Open(src).Convert(dst)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	docXML := readPart(t, dst, "word/document.xml")
	if !strings.Contains(docXML, "<w:drawing>") {
		t.Error("image not embedded as a drawing")
	}
	readPart(t, dst, "word/media/image1.png")
}
