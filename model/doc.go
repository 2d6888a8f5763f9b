// Package model defines the abstract word-processing document model produced
// by conversion: an ordered stream of structural elements (headings,
// paragraphs of styled runs, list paragraphs, code blocks, tables) that a
// serializer turns into an output file. The model is owned by a single
// conversion and discarded when the conversion completes.
package model
