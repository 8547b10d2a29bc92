package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFRenderer writes A4 documents with the core Helvetica font
type PDFRenderer struct{}

func (PDFRenderer) Format() string      { return "pdf" }
func (PDFRenderer) Ext() string         { return "pdf" }
func (PDFRenderer) ContentType() string { return "application/pdf" }

func (PDFRenderer) Render(blocks []Block) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAuthor("Meeting Notes", true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, b := range blocks {
		switch b.Kind {
		case BlockTitle:
			pdf.SetTitle(b.Text, true)
			pdf.SetFont("Helvetica", "B", 24)
			pdf.MultiCell(0, 11, tr(b.Text), "", "C", false)
			pdf.Ln(4)
		case BlockMeta:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(b.Text), "", "C", false)
			pdf.Ln(6)
		case BlockHeading:
			pdf.Ln(4)
			pdf.SetFont("Helvetica", "B", 16)
			pdf.Cell(0, 8, tr(b.Text))
			pdf.Ln(10)
		case BlockParagraph:
			pdf.SetFont("Helvetica", "", 11)
			for _, line := range strings.Split(b.Text, "\n") {
				pdf.MultiCell(0, 5.5, tr(line), "", "L", false)
			}
			pdf.Ln(2)
		case BlockActionText:
			pdf.SetFont("Helvetica", "", 12)
			pdf.MultiCell(0, 6, tr(b.Text), "", "L", false)
		case BlockActionMeta:
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetX(pdf.GetX() + 6)
			pdf.MultiCell(0, 5, tr(b.Text), "", "L", false)
			pdf.Ln(2)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
