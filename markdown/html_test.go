package markdown

import (
	"reflect"
	"testing"
)

func TestFlattenHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "plain text survives",
			input: "<div>just text</div>",
			want:  []Span{text("just text")},
		},
		{
			name:  "bold tag",
			input: "Hello <b>world</b>",
			want:  []Span{text("Hello "), strong(text("world"))},
		},
		{
			name:  "strong and em",
			input: "<strong>a</strong><em>b</em>",
			want:  []Span{strong(text("a")), em(text("b"))},
		},
		{
			name:  "code tag",
			input: "<code>x := 1</code>",
			want:  []Span{code("x := 1")},
		},
		{
			name:  "nested styling",
			input: "<b><i>both</i></b>",
			want:  []Span{strong(em(text("both")))},
		},
		{
			name:  "image keeps reference",
			input: `<img src="logo.png" alt="logo">`,
			want:  []Span{{Kind: SpanImage, Dest: "logo.png", Literal: "logo"}},
		},
		{
			name:  "br becomes space",
			input: "a<br>b",
			want:  []Span{text("a"), text(" "), text("b")},
		},
		{
			name:  "unknown markup dropped",
			input: `<span style="color:red">styled</span>`,
			want:  []Span{text("styled")},
		},
		{
			name:  "malformed input never fails",
			input: "<div><b>unclosed",
			want:  []Span{strong(text("unclosed"))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenHTML(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FlattenHTML(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFlattenHTMLWhitespace(t *testing.T) {
	got := FlattenHTML("<p>several\n  words   here</p>")
	if want := "several words here"; Text(got) != want {
		t.Errorf("flattened text = %q, want %q", Text(got), want)
	}
}
