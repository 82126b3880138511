package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/compozy/gofpatterns/engine/report"
)

// ErrUnsupportedKind is returned when no exporter exists for a report kind.
var ErrUnsupportedKind = errors.New("unsupported export kind")

// Exporter renders a document in one file format.
type Exporter interface {
	Export(ctx context.Context, doc *Document, w io.Writer) error
	Extension() string
}

// New returns the exporter for kind.
func New(kind report.Kind) (Exporter, error) {
	switch kind {
	case report.KindPDF:
		return NewPDFExporter(), nil
	case report.KindExcel:
		return NewExcelExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, string(kind))
	}
}
