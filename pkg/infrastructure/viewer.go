package infrastructure

import (
	"fmt"

	"resume-builder/pkg/pdfs"
)

// PDFViewer stands in for the browser-side rasterizer: it validates the
// document it is handed and reports the page count the way a viewer would.
// Actual pixel rasterization happens in the client consuming the preview
// endpoint.
type PDFViewer struct{}

func NewPDFViewer() *PDFViewer { return &PDFViewer{} }

func (v *PDFViewer) Display(pdf []byte, page int, width int) (int, error) {
	if !pdfs.IsPDF(pdf) {
		return 0, fmt.Errorf("not a PDF document (len=%d)", len(pdf))
	}
	count := pdfs.CountPages(pdf)
	if page < 1 || page > count {
		return count, fmt.Errorf("page %d out of range [1, %d]", page, count)
	}
	return count, nil
}
