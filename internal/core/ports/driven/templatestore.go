package driven

import (
	"context"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

// TemplateStore locates and saves document template sources.
//
// Resolution order for Resolve is fixed: the language-specific file,
// then the base-language (English) file, then the embedded fallback
// template for the document type. A successful resolve never returns
// an empty source; when all three locations miss, the store returns
// domain.ErrTemplateNotFound naming the path it looked for.
//
// Template files are re-read on every call so user edits take effect
// without a restart.
type TemplateStore interface {
	// Resolve returns the best-matching template source for a
	// document type and language.
	Resolve(ctx context.Context, docType domain.DocumentType, lang string) (string, error)

	// Save writes the template source for a document type and
	// language. Callers are responsible for snapshotting the
	// previous body through a VersionStore.
	Save(ctx context.Context, docType domain.DocumentType, lang, source string) error

	// Path returns the file path Resolve would try first for the
	// given type and language. Used in error reporting.
	Path(docType domain.DocumentType, lang string) string
}
