package services

import (
	"fmt"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultDocType = "documents.default_type"
	keyLanguage       = "documents.language"
	keyDataDir        = "storage.data_dir"
	keyTemplateDir    = "storage.template_dir"
	keyDupThreshold   = "clauses.duplicate_threshold"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, falling back to
// defaults for unset keys.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		DefaultDocumentType: defaults.DefaultDocumentType,
		Language:            defaults.Language,
		DataDir:             s.configStore.GetString(keyDataDir),
		TemplateDir:         s.configStore.GetString(keyTemplateDir),
		DuplicateThreshold:  defaults.DuplicateThreshold,
	}

	if v := s.configStore.GetString(keyDefaultDocType); v != "" {
		settings.DefaultDocumentType = domain.DocumentType(v)
	}
	if v := s.configStore.GetString(keyLanguage); v != "" {
		settings.Language = v
	}
	if v := s.configStore.GetFloat(keyDupThreshold); v > 0 {
		settings.DuplicateThreshold = v
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("stored settings invalid: %w", err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyDefaultDocType, settings.DefaultDocumentType.String()); err != nil {
		return fmt.Errorf("save default document type: %w", err)
	}
	if err := s.configStore.Set(keyLanguage, settings.Language); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	if err := s.configStore.Set(keyDataDir, settings.DataDir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}
	if err := s.configStore.Set(keyTemplateDir, settings.TemplateDir); err != nil {
		return fmt.Errorf("save template dir: %w", err)
	}
	if err := s.configStore.Set(keyDupThreshold, settings.DuplicateThreshold); err != nil {
		return fmt.Errorf("save duplicate threshold: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
