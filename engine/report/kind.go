package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a report kind name is not recognized.
var ErrUnknownKind = errors.New("unknown report kind")

// Kind identifies a report variant.
type Kind string

const (
	KindPDF   Kind = "pdf"
	KindExcel Kind = "excel"
)

func (k Kind) String() string {
	return string(k)
}

// Label returns the human-readable name used in notices.
func (k Kind) Label() string {
	switch k {
	case KindPDF:
		return "PDF"
	case KindExcel:
		return "Excel"
	default:
		return string(k)
	}
}

// Kinds returns every known kind in demonstration order.
func Kinds() []Kind {
	return []Kind{KindPDF, KindExcel}
}

// ParseKind resolves a kind name, ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
