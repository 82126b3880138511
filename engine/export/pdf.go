package export

import (
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfLabelWidth = 45.0
	pdfRowHeight  = 8.0
)

type PDFExporter struct {
	// Compress enables stream compression in the output file.
	Compress bool
}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{Compress: true}
}

func (e *PDFExporter) Extension() string {
	return "pdf"
}

func (e *PDFExporter) Export(ctx context.Context, doc *Document, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.Compress)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetCreator("gofpatterns", true)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range doc.Rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(pdfLabelWidth, pdfRowHeight, tr(row.Label), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, pdfRowHeight, tr(row.Value), "1", 1, "L", false, 0, "")
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
