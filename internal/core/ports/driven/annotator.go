package driven

import (
	"context"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

// Annotator is the named-entity recognition capability consumed by the
// extractor. Given text, it returns spans tagged with semantic
// categories. The engine consumes PERSON and location labels and
// ignores everything else.
//
// Annotators are black boxes: span order must follow encounter order
// in the input, since role assignment is ordinal.
type Annotator interface {
	// Annotate tags spans in text with semantic categories.
	Annotate(ctx context.Context, text string) ([]domain.Annotation, error)
}
