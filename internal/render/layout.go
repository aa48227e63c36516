// Package render transforms a resume document into a paginated layout tree
// and encodes that tree as a printable HTML page. Both steps are pure: no
// I/O, no clock, byte-identical output for equal input.
package render

import "resume-builder/pkg/pdfs"

// BlockKind tags one positioned element of the layout tree.
type BlockKind string

const (
	BlockName       BlockKind = "name"
	BlockLine       BlockKind = "line"
	BlockHeading    BlockKind = "heading"
	BlockDivider    BlockKind = "divider"
	BlockSubHeading BlockKind = "subheading"
	BlockDateRange  BlockKind = "daterange"
	BlockRichText   BlockKind = "richtext"
)

// Span is a run of text with uniform styling.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// Paragraph is one block of rich text.
type Paragraph struct {
	Spans []Span
}

// Block is one element of a layout column. Text carries the content for
// every kind except BlockRichText, which uses Paragraphs, and BlockDivider,
// which carries nothing.
type Block struct {
	Kind       BlockKind
	Text       string
	Paragraphs []Paragraph
}

// LayoutTree is the renderer output: a single logical page split into a
// sidebar and a main column. Overflow past the paper size is clipped by the
// page renderer, not reflowed.
type LayoutTree struct {
	Paper   pdfs.PaperSize
	Sidebar []Block
	Main    []Block
}

func textBlock(kind BlockKind, text string) Block {
	return Block{Kind: kind, Text: text}
}
