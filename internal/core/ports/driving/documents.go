package driving

import (
	"context"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

// GenerateRequest describes a direct document generation call.
type GenerateRequest struct {
	// DocumentType must be one of the registered types.
	DocumentType domain.DocumentType

	// Language is the template language code (e.g. "en", "hi", "ta").
	// Empty means the configured default.
	Language string

	// Fields are caller-supplied field values. They take precedence
	// over every default layer.
	Fields map[string]string

	// Template, when non-empty, is an ad-hoc template source used
	// instead of the stored template for the document type.
	Template string
}

// GenerateResult is the outcome of a generation call.
type GenerateResult struct {
	// DocumentType is the type the document was generated as.
	DocumentType domain.DocumentType `json:"document_type"`

	// Content is the assembled plain-text document.
	Content string `json:"content"`

	// Fields is the fully resolved field set used for rendering.
	Fields domain.FieldSet `json:"fields"`

	// MissingFields lists required fields the caller did not supply.
	// Generation proceeds regardless; placeholders fill the gaps.
	MissingFields []string `json:"missing_fields"`

	// Annotations are entities detected in the generated text,
	// returned for display alongside the document.
	Annotations []domain.Annotation `json:"annotations,omitempty"`
}

// DocumentService is the engine's primary driving port: it interprets
// free-text prompts and assembles documents.
type DocumentService interface {
	// Interpret classifies a prompt and extracts structured entities.
	Interpret(ctx context.Context, prompt string) (*domain.InterpretResult, error)

	// Generate assembles a document from explicit field values.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)

	// GenerateFromPrompt runs the full pipeline: classify, extract,
	// resolve fields and render.
	GenerateFromPrompt(ctx context.Context, prompt, lang string) (*GenerateResult, error)

	// Simplify rewrites archaic legalese in text into plain language.
	Simplify(ctx context.Context, text string) (string, error)

	// Validate runs per-type presence rules over a draft and returns
	// the issues found. An empty list means a clean draft.
	Validate(ctx context.Context, docType domain.DocumentType, jurisdiction, text string) ([]domain.ValidationIssue, error)

	// SaveTemplate stores a template source for a document type and
	// language after checking its syntax, and snapshots the body.
	SaveTemplate(ctx context.Context, docType domain.DocumentType, lang, source string) error
}
