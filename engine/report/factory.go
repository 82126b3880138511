package report

import (
	"fmt"
	"io"
)

// NewFactory selects the factory for kind. Callers pick the kind; each
// factory's product type stays fixed.
func NewFactory(kind Kind, out io.Writer) (Factory, error) {
	switch kind {
	case KindPDF:
		return NewPDFFactory(out), nil
	case KindExcel:
		return NewExcelFactory(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
