package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseRichText interprets the restricted markup subset accepted from the
// text-editing widget: paragraphs, bold and italics. Any other markup is
// stripped, keeping its text content. Malformed input never errors; the
// worst case is an empty result.
func parseRichText(markup string) []Paragraph {
	markup = strings.TrimSpace(markup)
	if markup == "" {
		return nil
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil
	}

	var paragraphs []Paragraph
	var current []Span
	flush := func() {
		if p := trimParagraph(current); len(p.Spans) > 0 {
			paragraphs = append(paragraphs, p)
		}
		current = nil
	}

	var walk func(n *html.Node, bold, italic bool)
	walk = func(n *html.Node, bold, italic bool) {
		switch n.Type {
		case html.TextNode:
			if text := collapseSpace(n.Data); text != "" {
				current = append(current, Span{Text: text, Bold: bold, Italic: italic})
			}
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.P:
				flush()
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c, bold, italic)
				}
				flush()
				return
			case atom.Strong, atom.B:
				bold = true
			case atom.Em, atom.I:
				italic = true
			case atom.Script, atom.Style:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, bold, italic)
		}
	}
	for _, n := range nodes {
		walk(n, false, false)
	}
	flush()
	return paragraphs
}

// trimParagraph merges adjacent spans with the same styling and drops
// leading/trailing whitespace-only runs.
func trimParagraph(spans []Span) Paragraph {
	var merged []Span
	for _, s := range spans {
		if n := len(merged); n > 0 && merged[n-1].Bold == s.Bold && merged[n-1].Italic == s.Italic {
			merged[n-1].Text += s.Text
			continue
		}
		merged = append(merged, s)
	}
	for len(merged) > 0 && strings.TrimSpace(merged[0].Text) == "" {
		merged = merged[1:]
	}
	for len(merged) > 0 && strings.TrimSpace(merged[len(merged)-1].Text) == "" {
		merged = merged[:len(merged)-1]
	}
	if len(merged) > 0 {
		merged[0].Text = strings.TrimLeft(merged[0].Text, " ")
		merged[len(merged)-1].Text = strings.TrimRight(merged[len(merged)-1].Text, " ")
	}
	return Paragraph{Spans: merged}
}

// collapseSpace squeezes runs of whitespace to single spaces while keeping
// boundary spaces, so word breaks survive across styled span borders.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
