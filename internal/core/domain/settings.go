package domain

// AppSettings holds user-configurable application settings.
type AppSettings struct {
	// DefaultDocumentType is returned by the classifier when a prompt
	// matches no keywords at all.
	DefaultDocumentType DocumentType

	// Language is the default template language code (ISO-639-1-like).
	Language string

	// DataDir is the root directory for clause and version persistence.
	// Empty means the default under the user home directory.
	DataDir string

	// TemplateDir is the root directory for document templates.
	// Empty means the default under the user home directory.
	TemplateDir string

	// DuplicateThreshold overrides the similarity ratio at which a
	// clause is flagged as a likely duplicate.
	DuplicateThreshold float64
}

// DefaultAppSettings returns the built-in defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		DefaultDocumentType: DocTypeRentalAgreement,
		Language:            "en",
		DuplicateThreshold:  DuplicateThreshold,
	}
}

// Validate checks the settings for consistency.
func (s *AppSettings) Validate() error {
	if !s.DefaultDocumentType.IsValid() {
		return ErrUnknownDocumentType
	}
	if s.Language == "" {
		return ErrInvalidInput
	}
	if s.DuplicateThreshold < 0 || s.DuplicateThreshold > 1 {
		return ErrInvalidInput
	}
	return nil
}
