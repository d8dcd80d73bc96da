// Package text provides the plain-text exporter.
// Binary formats (PDF, DOCX) are external collaborators consuming the
// same plain text plus the document-type title.
package text

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter writes assembled documents as plain UTF-8 text files with
// a title heading derived from the document type.
type Exporter struct{}

// New creates a plain-text exporter.
func New() *Exporter {
	return &Exporter{}
}

// Export writes the document to dest and returns the path written.
// A missing .txt extension is added.
func (e *Exporter) Export(_ context.Context, docType domain.DocumentType, content, dest string) (string, error) {
	if dest == "" {
		return "", domain.ErrInvalidInput
	}
	if filepath.Ext(dest) == "" {
		dest += ".txt"
	}

	title := docType.Title()
	body := title + "\n" + strings.Repeat("=", len(title)) + "\n\n" + content
	if err := os.WriteFile(dest, []byte(body), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	return dest, nil
}
