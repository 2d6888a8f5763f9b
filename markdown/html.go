package markdown

import (
	"strings"

	"golang.org/x/net/html"
)

// FlattenHTML degrades a raw HTML fragment to a flat span sequence. Text
// content survives with bold/italic/code styling from the enclosing tags;
// <img> elements become image spans; <br> becomes a space; everything else
// is dropped. The tokenizer never fails on malformed input, so flattening
// is total.
func FlattenHTML(fragment string) []Span {
	tz := html.NewTokenizer(strings.NewReader(fragment))

	var spans []Span
	var strong, em, code int

	appendText := func(text string) {
		if text == "" {
			return
		}
		sp := Span{Kind: SpanText, Literal: text}
		if code > 0 {
			sp = Span{Kind: SpanCode, Literal: text}
		}
		if em > 0 {
			sp = Span{Kind: SpanEmphasis, Children: []Span{sp}}
		}
		if strong > 0 {
			sp = Span{Kind: SpanStrong, Children: []Span{sp}}
		}
		spans = append(spans, sp)
	}

	for {
		tt := tz.Next()
		if tt == html.ErrorToken {
			return spans
		}

		switch tt {
		case html.TextToken:
			raw := string(tz.Text())
			text := strings.Join(strings.Fields(raw), " ")
			if text != "" {
				// Collapse runs of whitespace but keep boundary spaces so
				// adjacent styled segments stay separated.
				if raw[0] == ' ' || raw[0] == '\t' || raw[0] == '\n' {
					text = " " + text
				}
				last := raw[len(raw)-1]
				if last == ' ' || last == '\t' || last == '\n' {
					text = text + " "
				}
			}
			appendText(text)

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tz.TagName()
			switch string(name) {
			case "strong", "b":
				strong++
			case "em", "i":
				em++
			case "code", "tt":
				code++
			case "br":
				appendText(" ")
			case "img":
				var src, alt string
				for hasAttr {
					var key, val []byte
					key, val, hasAttr = tz.TagAttr()
					switch string(key) {
					case "src":
						src = string(val)
					case "alt":
						alt = string(val)
					}
				}
				if src != "" {
					spans = append(spans, Span{Kind: SpanImage, Dest: src, Literal: alt})
				}
			}

		case html.EndTagToken:
			name, _ := tz.TagName()
			switch string(name) {
			case "strong", "b":
				if strong > 0 {
					strong--
				}
			case "em", "i":
				if em > 0 {
					em--
				}
			case "code", "tt":
				if code > 0 {
					code--
				}
			}
		}
	}
}
