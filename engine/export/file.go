package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/compozy/gofpatterns/pkg/logger"
	"github.com/spf13/afero"
)

// WriteFile renders doc into dir and returns the written path. A failed render
// leaves no partial file behind.
func WriteFile(ctx context.Context, fs afero.Fs, dir string, exp Exporter, doc *Document) (path string, err error) {
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	path = filepath.Join(dir, FileName(doc, exp.Extension()))
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	err = exp.Export(ctx, doc, f)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		_ = fs.Remove(path)
		return "", fmt.Errorf("failed to export %s: %w", path, err)
	}
	logger.FromContext(ctx).Debug("Exported report", "kind", doc.Kind, "path", path, "id", doc.ID)
	return path, nil
}
