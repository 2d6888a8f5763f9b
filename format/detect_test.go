package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"notes.md", Markdown},
		{"NOTES.MD", Markdown},
		{"doc.markdown", Markdown},
		{"a.mdown", Markdown},
		{"a.mkd", Markdown},
		{"readme.txt", Text},
		{"page.html", HTML},
		{"page.htm", HTML},
		{"archive.zip", Unknown},
		{"no-extension", Unknown},
	}
	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %s, want %s", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"doctype", []byte("<!DOCTYPE html><html>"), HTML},
		{"html tag", []byte("  \n<html lang=\"en\">"), HTML},
		{"case insensitive", []byte("<HTML>"), HTML},
		{"markdown", []byte("# Heading"), Unknown},
		{"empty", nil, Unknown},
		{"bom then html", append([]byte{0xEF, 0xBB, 0xBF}, []byte("<html>")...), HTML},
	}
	for _, tt := range tests {
		if got := DetectFromMagic(tt.data); got != tt.want {
			t.Errorf("%s: DetectFromMagic = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain utf8", []byte("hello"), "hello"},
		{"utf8 bom stripped", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "hi"},
		{"crlf normalized", []byte("a\r\nb\rc\nd"), "a\nb\nc\nd"},
		{"utf16 le", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "hi"},
		{"utf16 be", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, "hi"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		got, err := DecodeText(tt.data)
		if err != nil {
			t.Errorf("%s: DecodeText error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: DecodeText = %q, want %q", tt.name, got, tt.want)
		}
	}
}
