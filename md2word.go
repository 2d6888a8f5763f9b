// Package md2word provides a fluent API for converting Markdown files to
// Word (.docx) documents.
//
// Basic usage:
//
//	warnings, err := md2word.Open("README.md").Convert("README.docx")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", md2word.FormatWarnings(warnings))
//	}
//
// With options:
//
//	warnings, err := md2word.Open("notes.md").
//	    Title("Release Notes").
//	    StylesFromFile("styles_config.json").
//	    Convert("notes.docx")
//
// Conversion never fails on content: malformed Markdown, broken tables and
// missing images degrade to plainer output and are reported as warnings.
// Only an unreadable source or an unwritable destination returns an error.
package md2word

// Open prepares a conversion of the Markdown file at filename. Relative
// image references in the source resolve against the file's directory.
//
// Example:
//
//	warnings, err := md2word.Open("document.md").Convert("document.docx")
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultConvertOptions(),
	}
}

// FromString prepares a conversion of in-memory Markdown text. Relative
// image references resolve against the current working directory.
//
// Example:
//
//	warnings, err := md2word.FromString("# Hi").Convert("hi.docx")
func FromString(source string) *Converter {
	return &Converter{
		source:    source,
		hasSource: true,
		options:   defaultConvertOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	cfg := md2word.Must(docx.LoadStyleConfig("styles_config.json"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument is a helper that wraps a call to Document() and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	doc := md2word.MustDocument(md2word.FromString("# Hi").Document())
func MustDocument[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
