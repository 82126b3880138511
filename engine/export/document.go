package export

import (
	"fmt"
	"time"

	"github.com/compozy/gofpatterns/engine/report"
	"github.com/gosimple/slug"
	"github.com/segmentio/ksuid"
)

// Row is a labelled value rendered as one line of a document.
type Row struct {
	Label string
	Value string
}

// Document is the content written to disk for a generated report.
type Document struct {
	ID          string
	Kind        report.Kind
	Title       string
	Author      string
	GeneratedAt time.Time
	Rows        []Row
}

// NewDocument builds the summary document for a report of the given kind.
func NewDocument(kind report.Kind, title, author string, now time.Time) *Document {
	if title == "" {
		title = fmt.Sprintf("%s Report", kind.Label())
	}
	doc := &Document{
		ID:          ksuid.New().String(),
		Kind:        kind,
		Title:       title,
		Author:      author,
		GeneratedAt: now.UTC(),
	}
	doc.Rows = []Row{
		{Label: "Report ID", Value: doc.ID},
		{Label: "Kind", Value: kind.Label()},
		{Label: "Author", Value: author},
		{Label: "Generated at", Value: doc.GeneratedAt.Format(time.RFC3339)},
	}
	return doc
}

// FileName returns "<slug of title>-<kind>.<ext>".
func FileName(doc *Document, ext string) string {
	base := slug.Make(doc.Title)
	if base == "" {
		base = "report"
	}
	return fmt.Sprintf("%s-%s.%s", base, doc.Kind, ext)
}
