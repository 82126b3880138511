package report

import (
	"fmt"
	"io"
	"os"
)

// Report is a generated report. GenerateReport emits a notice naming the
// report kind and cannot fail.
type Report interface {
	GenerateReport()
}

// Factory creates reports of a single, fixed kind.
type Factory interface {
	CreateReport() Report
}

// notice writes the line announcing a generated report. Sink errors are dropped
// so that generation stays total.
func notice(out io.Writer, k Kind) {
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprintf(out, "generating %s Report...\n", k.Label())
}

// Generate runs the create-then-generate pipeline against any factory and
// returns the product it generated.
func Generate(f Factory) Report {
	r := f.CreateReport()
	r.GenerateReport()
	return r
}
