package driven

import (
	"context"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

// Exporter writes an assembled document to an output destination.
// The document type is passed purely for the title heading; the body
// is the plain UTF-8 text produced by the renderer.
//
// Binary formats (PDF, DOCX) are external collaborators consuming the
// same inputs; this repository ships a plain-text implementation only.
type Exporter interface {
	// Export writes the document and returns the destination path.
	Export(ctx context.Context, docType domain.DocumentType, content, dest string) (string, error)
}
