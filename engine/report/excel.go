package report

import "io"

type ExcelReport struct {
	out io.Writer
}

func (r *ExcelReport) GenerateReport() {
	notice(r.out, KindExcel)
}

// ExcelFactory always yields *ExcelReport values writing to its sink.
type ExcelFactory struct {
	out io.Writer
}

// NewExcelFactory returns a factory whose reports write to out (stdout when nil).
func NewExcelFactory(out io.Writer) *ExcelFactory {
	return &ExcelFactory{out: out}
}

func (f *ExcelFactory) CreateReport() Report {
	return &ExcelReport{out: f.out}
}
