package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Report"

type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) Extension() string {
	return "xlsx"
}

// Export writes the title in A1 and one row per document row from A3 onward.
func (e *ExcelExporter) Export(ctx context.Context, doc *Document, w io.Writer) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()
	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   doc.Title,
		Creator: doc.Author,
		Created: doc.GeneratedAt.Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetCellValue(excelSheet, "A1", doc.Title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	if err := f.SetCellStyle(excelSheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("failed to style title: %w", err)
	}
	for i, row := range doc.Rows {
		if err := writeExcelRow(f, i+3, row, bold); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(excelSheet, "A", "B", 28); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to render workbook: %w", err)
	}
	return nil
}

func writeExcelRow(f *excelize.File, line int, row Row, labelStyle int) error {
	label, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}
	value, err := excelize.CoordinatesToCellName(2, line)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(excelSheet, label, row.Label); err != nil {
		return fmt.Errorf("failed to write %s: %w", label, err)
	}
	if err := f.SetCellStyle(excelSheet, label, label, labelStyle); err != nil {
		return fmt.Errorf("failed to style %s: %w", label, err)
	}
	if err := f.SetCellValue(excelSheet, value, row.Value); err != nil {
		return fmt.Errorf("failed to write %s: %w", value, err)
	}
	return nil
}
