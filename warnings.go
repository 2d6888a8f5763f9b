package md2word

import "strings"

// WarningKind classifies a non-fatal conversion issue.
type WarningKind int

const (
	// WarningUnresolvedResource marks an image reference that could not be
	// resolved; its alt text was emitted instead.
	WarningUnresolvedResource WarningKind = iota
	// WarningMalformedTable marks a table row coerced to the column count
	// of its header.
	WarningMalformedTable
	// WarningUnsupportedConstruct marks input the converter degraded to a
	// plainer form, such as raw HTML flattened to text.
	WarningUnsupportedConstruct
	// WarningDegradedStructure marks structure the output format cannot
	// represent exactly, such as list nesting beyond the supported depth.
	WarningDegradedStructure
)

func (k WarningKind) String() string {
	switch k {
	case WarningUnresolvedResource:
		return "unresolved resource"
	case WarningMalformedTable:
		return "malformed table"
	case WarningUnsupportedConstruct:
		return "unsupported construct"
	case WarningDegradedStructure:
		return "degraded structure"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue encountered during conversion.
// Warnings never stop a conversion; they accompany a successful result so
// callers can decide whether the degradation matters.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}

// FormatWarnings renders warnings one per line for display or logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
