package md2word

import "fmt"

// FatalKind classifies conversion-aborting failures. Only I/O at the
// boundaries is fatal; everything inside the source degrades to warnings.
type FatalKind int

const (
	// KindSourceUnreadable indicates the Markdown source could not be
	// read or decoded.
	KindSourceUnreadable FatalKind = iota
	// KindDestinationUnwritable indicates the output file could not be
	// created or written.
	KindDestinationUnwritable
)

func (k FatalKind) String() string {
	switch k {
	case KindSourceUnreadable:
		return "source unreadable"
	case KindDestinationUnwritable:
		return "destination unwritable"
	default:
		return "unknown"
	}
}

// FatalError is a conversion-aborting failure tied to a file path.
type FatalError struct {
	Kind FatalKind
	Path string
	Err  error
}

func (e *FatalError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }
