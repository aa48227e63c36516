package render

import (
	"bytes"
	_ "embed"
	"html/template"
)

//go:embed template.html
var pageTemplate string

//go:embed style.css
var pageStyle string

// Compiled once; the template is embedded and must parse.
var pageTpl = template.Must(template.New("page").Parse(pageTemplate))

// EncodeHTML serializes a layout tree into a self-contained printable HTML
// page with the stylesheet inlined, ready for the PDF encoder.
func EncodeHTML(tree *LayoutTree) (string, error) {
	var buf bytes.Buffer
	data := struct {
		CSS  template.CSS
		Tree *LayoutTree
	}{
		CSS:  template.CSS(pageStyle),
		Tree: tree,
	}
	if err := pageTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
