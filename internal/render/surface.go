package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Surface is the drawing capability the section builders render against.
// All coordinates are millimetres on an A4 portrait page with the origin in
// the top-left corner. Production code draws on a PDF page; tests inject a
// recording fake to assert on the drawn content without touching PDF bytes.
type Surface interface {
	// SetFont selects the font style ("" regular, "B" bold) and size in points.
	SetFont(style string, size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetLineWidth(w float64)

	// Text places s with its baseline at (x, y), left-aligned.
	Text(x, y float64, s string)
	// TextRight places s so that it ends at x.
	TextRight(x, y float64, s string)
	// TextCenter places s centered on x.
	TextCenter(x, y float64, s string)

	Line(x1, y1, x2, y2 float64)
	// Rect draws a rectangle, filled with the current fill color when fill
	// is true, stroked otherwise.
	Rect(x, y, w, h float64, fill bool)
	// Image places a raster image read from r (format "PNG" or "JPG").
	Image(r io.Reader, format string, x, y, w, h float64) error

	// SplitText wraps s into lines no wider than w.
	SplitText(s string, w float64) []string
	// PageWidth returns the page width.
	PageWidth() float64
}

const surfaceFontFamily = "Helvetica"

// pdfSurface implements Surface on top of a single-page fpdf document.
type pdfSurface struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string // cp1252 translator for €, umlauts, §
	imageSeq int
}

// newPDFSurface opens a fresh A4 portrait page.
func newPDFSurface() *pdfSurface {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont(surfaceFontFamily, "", 10)
	pdf.AddPage()
	return &pdfSurface{pdf: pdf, tr: tr}
}

func (s *pdfSurface) SetFont(style string, size float64) {
	s.pdf.SetFont(surfaceFontFamily, style, size)
}

func (s *pdfSurface) SetTextColor(r, g, b int) { s.pdf.SetTextColor(r, g, b) }
func (s *pdfSurface) SetDrawColor(r, g, b int) { s.pdf.SetDrawColor(r, g, b) }
func (s *pdfSurface) SetFillColor(r, g, b int) { s.pdf.SetFillColor(r, g, b) }
func (s *pdfSurface) SetLineWidth(w float64)   { s.pdf.SetLineWidth(w) }

func (s *pdfSurface) Text(x, y float64, text string) {
	s.pdf.Text(x, y, s.tr(text))
}

func (s *pdfSurface) TextRight(x, y float64, text string) {
	t := s.tr(text)
	s.pdf.Text(x-s.pdf.GetStringWidth(t), y, t)
}

func (s *pdfSurface) TextCenter(x, y float64, text string) {
	t := s.tr(text)
	s.pdf.Text(x-s.pdf.GetStringWidth(t)/2, y, t)
}

func (s *pdfSurface) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *pdfSurface) Rect(x, y, w, h float64, fill bool) {
	style := "D"
	if fill {
		style = "F"
	}
	s.pdf.Rect(x, y, w, h, style)
}

func (s *pdfSurface) Image(r io.Reader, format string, x, y, w, h float64) error {
	s.imageSeq++
	name := fmt.Sprintf("img%d", s.imageSeq)
	opts := fpdf.ImageOptions{ImageType: format, ReadDpi: true}
	s.pdf.RegisterImageOptionsReader(name, opts, r)
	if s.pdf.Err() {
		err := s.pdf.Error()
		s.pdf.ClearError()
		return err
	}
	s.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if s.pdf.Err() {
		err := s.pdf.Error()
		s.pdf.ClearError()
		return err
	}
	return nil
}

func (s *pdfSurface) SplitText(text string, w float64) []string {
	// Splitting happens on the raw UTF-8 text; translation to the page
	// encoding is applied once, at draw time.
	return s.pdf.SplitText(text, w)
}

func (s *pdfSurface) PageWidth() float64 {
	w, _ := s.pdf.GetPageSize()
	return w
}

// output finalizes the page and returns the PDF bytes.
func (s *pdfSurface) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
