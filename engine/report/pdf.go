package report

import "io"

type PDFReport struct {
	out io.Writer
}

func (r *PDFReport) GenerateReport() {
	notice(r.out, KindPDF)
}

// PDFFactory always yields *PDFReport values writing to its sink.
type PDFFactory struct {
	out io.Writer
}

// NewPDFFactory returns a factory whose reports write to out (stdout when nil).
func NewPDFFactory(out io.Writer) *PDFFactory {
	return &PDFFactory{out: out}
}

func (f *PDFFactory) CreateReport() Report {
	return &PDFReport{out: f.out}
}
