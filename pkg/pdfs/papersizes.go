package pdfs

type PaperSize struct {
	Name   string
	Width  float64 // in `pt` (1" = 72pts)
	Height float64 // in `pt`
}

// Inches converts the size to inches for encoders that take imperial paper
// dimensions.
func (p PaperSize) Inches() (width, height float64) {
	return p.Width / 72, p.Height / 72
}

var (
	LetterSize = PaperSize{Name: "Letter", Width: 612, Height: 792}       // 8.5" x 11"
	A4Size     = PaperSize{Name: "A4", Width: 595.27559, Height: 841.88976} // 210mm x 297mm
)
