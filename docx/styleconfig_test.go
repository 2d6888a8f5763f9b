package docx

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStyleConfig(t *testing.T) {
	cfg := DefaultStyleConfig()

	if cfg.H1.FontSize != 24 || !cfg.H1.Bold {
		t.Errorf("H1 = %+v", cfg.H1)
	}
	if cfg.H6.FontSize != 12 {
		t.Errorf("H6 size = %v", cfg.H6.FontSize)
	}
	if cfg.Paragraph.FontSize != 12 || cfg.Paragraph.LineSpacing != 1.5 {
		t.Errorf("Paragraph = %+v", cfg.Paragraph)
	}
	if cfg.CodeBlock.FontName != "Courier New" || cfg.CodeBlock.BackgroundColor != "F0F0F0" {
		t.Errorf("CodeBlock = %+v", cfg.CodeBlock)
	}
	if cfg.InlineCode.FontSizeRatio != 0.9 {
		t.Errorf("InlineCode ratio = %v", cfg.InlineCode.FontSizeRatio)
	}
}

func TestHeadingClamps(t *testing.T) {
	cfg := DefaultStyleConfig()
	if got := cfg.Heading(0); got != cfg.H1 {
		t.Error("level 0 should clamp to H1")
	}
	if got := cfg.Heading(9); got != cfg.H6 {
		t.Error("level 9 should clamp to H6")
	}
	if got := cfg.Heading(3); got != cfg.H3 {
		t.Error("level 3 should be H3")
	}
}

func TestStyleConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles_config.json")

	cfg := DefaultStyleConfig()
	cfg.H1.FontSize = 30
	cfg.Paragraph.FontName = "Georgia"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadStyleConfig(path)
	if err != nil {
		t.Fatalf("LoadStyleConfig: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadStyleConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	partial := `{"paragraph": {"font_size": 14}}`
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadStyleConfig(path)
	if err != nil {
		t.Fatalf("LoadStyleConfig: %v", err)
	}
	if cfg.Paragraph.FontSize != 14 {
		t.Errorf("overridden size = %v, want 14", cfg.Paragraph.FontSize)
	}
	// Keys absent from the file keep their defaults.
	if cfg.H1.FontSize != 24 || cfg.CodeBlock.FontName != "Courier New" {
		t.Error("absent keys lost their defaults")
	}
}

func TestLoadStyleConfigMissingFile(t *testing.T) {
	if _, err := LoadStyleConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadStyleConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{not json"), 0644)
	if _, err := LoadStyleConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
