// Package templates provides the file-based template store.
// Templates are user-editable files on disk with embedded fallback
// defaults for the built-in document types.
package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
	"github.com/lexdraft-labs/lexdraft-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.TemplateStore = (*Store)(nil)

// baseLanguage is the resolution fallback language.
const baseLanguage = "en"

// templateExt is the template file extension.
const templateExt = ".tmpl"

// Store resolves template sources from a directory tree of
// <doc_type>/<lang>.tmpl files with embedded fallbacks.
//
// Files are re-read on every Resolve so user edits take effect
// immediately; nothing is cached. The store uses lazy initialisation:
// default template files are only written when first accessed, not in
// the constructor.
type Store struct {
	mu          sync.RWMutex
	templateDir string
	initOnce    sync.Once
	initErr     error
}

// NewStore creates a template store.
// If templateDir is empty, defaults to ~/.lexdraft/templates/.
func NewStore(templateDir string) (*Store, error) {
	if templateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		templateDir = filepath.Join(home, ".lexdraft", "templates")
	}
	return &Store{templateDir: templateDir}, nil
}

// Resolve returns the best-matching template source for a document
// type and language. Resolution order: the language-specific file,
// the base-language file, then the embedded fallback for the type.
// Returns domain.ErrTemplateNotFound naming the path when all miss.
func (s *Store) Resolve(_ context.Context, docType domain.DocumentType, lang string) (string, error) {
	if !docType.IsValid() {
		return "", domain.ErrUnknownDocumentType
	}
	if lang == "" {
		lang = baseLanguage
	}

	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		logger.Warn("template dir init failed: %v, using embedded defaults", s.initErr)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	primary := s.path(docType, lang)
	if source, ok := readTemplate(primary); ok {
		return source, nil
	}
	if lang != baseLanguage {
		if source, ok := readTemplate(s.path(docType, baseLanguage)); ok {
			return source, nil
		}
	}
	if source, ok := defaultTemplates[docType]; ok {
		return source, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, primary)
}

// Save writes the template source for a document type and language.
func (s *Store) Save(_ context.Context, docType domain.DocumentType, lang, source string) error {
	if !docType.IsValid() {
		return domain.ErrUnknownDocumentType
	}
	if lang == "" {
		lang = baseLanguage
	}
	if source == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(docType, lang)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create template dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		return fmt.Errorf("write template %s: %w", path, err)
	}
	return nil
}

// Path returns the file path Resolve tries first.
func (s *Store) Path(docType domain.DocumentType, lang string) string {
	if lang == "" {
		lang = baseLanguage
	}
	return s.path(docType, lang)
}

func (s *Store) path(docType domain.DocumentType, lang string) string {
	return filepath.Join(s.templateDir, docType.String(), lang+templateExt)
}

// initialise creates the template directory and seeds base-language
// files from the embedded defaults. Existing files are never
// overwritten.
func (s *Store) initialise() {
	if err := os.MkdirAll(s.templateDir, 0o700); err != nil {
		s.initErr = fmt.Errorf("create template dir: %w", err)
		return
	}

	for docType, source := range defaultTemplates {
		path := s.path(docType, baseLanguage)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			s.initErr = fmt.Errorf("create dir for %s: %w", docType, err)
			return
		}
		if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
			s.initErr = fmt.Errorf("seed template for %s: %w", docType, err)
			return
		}
	}
}

// readTemplate reads a template file, reporting whether a non-empty
// source was found. Unreadable files are treated as absent: template
// resolution falls through rather than failing.
func readTemplate(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("read template %s: %v", path, err)
		}
		return "", false
	}
	if len(data) == 0 {
		// An empty template file is a defect; fall through to the
		// next resolution step rather than rendering nothing.
		logger.Warn("template %s is empty, falling back", path)
		return "", false
	}
	return string(data), true
}
