// Package docx serializes the document model to a DOCX (Office Open XML)
// package: a zip archive holding word/document.xml plus its styles,
// numbering definitions, relationships, media parts and package metadata.
// The writer emits a fixed, self-contained part set so the output opens in
// Word, LibreOffice and Google Docs without repair prompts.
package docx
