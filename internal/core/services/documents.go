package services

import (
	"context"
	"fmt"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
	"github.com/lexdraft-labs/lexdraft-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService orchestrates the interpretation and assembly
// pipeline: classify, extract, resolve fields, render.
type DocumentService struct {
	registry   *domain.Registry
	classifier *Classifier
	extractor  *Extractor
	resolver   *FieldResolver
	renderer   *Renderer
	templates  driven.TemplateStore
	versions   driven.VersionStore
	annotator  driven.Annotator
}

// NewDocumentService creates a document service.
func NewDocumentService(
	registry *domain.Registry,
	classifier *Classifier,
	extractor *Extractor,
	resolver *FieldResolver,
	renderer *Renderer,
	templates driven.TemplateStore,
	versions driven.VersionStore,
	annotator driven.Annotator,
) *DocumentService {
	return &DocumentService{
		registry:   registry,
		classifier: classifier,
		extractor:  extractor,
		resolver:   resolver,
		renderer:   renderer,
		templates:  templates,
		versions:   versions,
		annotator:  annotator,
	}
}

// Interpret classifies a prompt and extracts structured entities.
// Missing required fields are informational: the caller can re-prompt
// the user or proceed with placeholder substitution.
func (s *DocumentService) Interpret(ctx context.Context, prompt string) (*domain.InterpretResult, error) {
	if prompt == "" {
		return nil, domain.ErrInvalidInput
	}
	logger.Section("Interpret")

	docType := s.classifier.Classify(prompt)

	bag, err := s.extractor.Extract(ctx, prompt, docType)
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}

	missing, err := s.resolver.Missing(docType, bag.Fields)
	if err != nil {
		return nil, err
	}

	status := domain.InterpretStatusOK
	if len(missing) > 0 {
		status = domain.InterpretStatusNeedsInput
	}

	return &domain.InterpretResult{
		DocumentType:  docType,
		Entities:      bag.Fields,
		MissingFields: missing,
		Status:        status,
	}, nil
}

// Generate assembles a document from explicit field values.
// An ad-hoc template in the request bypasses the template store.
func (s *DocumentService) Generate(ctx context.Context, req driving.GenerateRequest) (*driving.GenerateResult, error) {
	if !req.DocumentType.IsValid() {
		return nil, domain.ErrUnknownDocumentType
	}
	logger.Section("Generate")

	missing, err := s.resolver.Missing(req.DocumentType, req.Fields)
	if err != nil {
		return nil, err
	}

	fields, err := s.resolver.Resolve(req.DocumentType, req.Fields)
	if err != nil {
		return nil, err
	}

	source := req.Template
	if source == "" {
		source, err = s.templates.Resolve(ctx, req.DocumentType, req.Language)
		if err != nil {
			return nil, fmt.Errorf("resolve template for %s: %w", req.DocumentType, err)
		}
	}

	content, err := s.renderer.Render(source, fields)
	if err != nil {
		return nil, err
	}

	result := &driving.GenerateResult{
		DocumentType:  req.DocumentType,
		Content:       content,
		Fields:        fields,
		MissingFields: missing,
	}

	// Re-annotate the generated text for display. Best-effort: a
	// failing annotator never fails generation.
	if annotations, err := s.annotator.Annotate(ctx, content); err == nil {
		result.Annotations = annotations
	} else {
		logger.Warn("annotate generated document: %v", err)
	}

	return result, nil
}

// GenerateFromPrompt runs the full pipeline over a free-text prompt.
func (s *DocumentService) GenerateFromPrompt(ctx context.Context, prompt, lang string) (*driving.GenerateResult, error) {
	interp, err := s.Interpret(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := s.Generate(ctx, driving.GenerateRequest{
		DocumentType: interp.DocumentType,
		Language:     lang,
		Fields:       interp.Entities,
	})
	if err != nil {
		return nil, err
	}
	result.MissingFields = interp.MissingFields
	return result, nil
}

// Simplify rewrites archaic legalese in text into plain language.
func (s *DocumentService) Simplify(_ context.Context, text string) (string, error) {
	if text == "" {
		return "", domain.ErrInvalidInput
	}
	return SimplifyText(text), nil
}

// Validate runs per-type presence rules over a draft.
func (s *DocumentService) Validate(_ context.Context, docType domain.DocumentType, jurisdiction, text string) ([]domain.ValidationIssue, error) {
	if !docType.IsValid() {
		return nil, domain.ErrUnknownDocumentType
	}
	return ValidateDraft(docType, jurisdiction, text), nil
}

// SaveTemplate stores a template source and snapshots the body under
// "<doc_type>.<lang>". The source is parse-checked first so a broken
// template never reaches disk.
func (s *DocumentService) SaveTemplate(ctx context.Context, docType domain.DocumentType, lang, source string) error {
	if !docType.IsValid() {
		return domain.ErrUnknownDocumentType
	}
	if lang == "" {
		lang = "en"
	}

	if _, err := s.renderer.Render(source, domain.FieldSet{}); err != nil {
		return err
	}

	if err := s.templates.Save(ctx, docType, lang, source); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	if _, err := s.versions.Snapshot(ctx, docType.String()+"."+lang, source); err != nil {
		return fmt.Errorf("snapshot template: %w", err)
	}
	return nil
}
