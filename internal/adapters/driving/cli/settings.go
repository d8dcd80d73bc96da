package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the default document type, template language,
storage locations and the duplicate detection threshold.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a settings value",
	Long: `Set a settings value by key.

Available keys:
  default_type        - document type used when a prompt matches nothing
  language            - default template language code
  data_dir            - directory for clauses, metadata and versions
  template_dir        - directory for template files
  duplicate_threshold - similarity ratio treated as a likely duplicate (0..1)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Documents]")
	cmd.Printf("  Default type: %s\n", settings.DefaultDocumentType)
	cmd.Printf("  Language: %s\n", settings.Language)
	cmd.Println()

	cmd.Println("[Storage]")
	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	templateDir := settings.TemplateDir
	if templateDir == "" {
		templateDir = "(default)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Printf("  Template dir: %s\n", templateDir)
	cmd.Println()

	cmd.Println("[Clauses]")
	cmd.Printf("  Duplicate threshold: %.2f\n", settings.DuplicateThreshold)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "default_type":
		docType, err := parseDocType(value)
		if err != nil {
			return err
		}
		settings.DefaultDocumentType = docType
	case "language":
		settings.Language = value
	case "data_dir":
		settings.DataDir = value
	case "template_dir":
		settings.TemplateDir = value
	case "duplicate_threshold":
		threshold, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: duplicate_threshold must be a number", domain.ErrInvalidInput)
		}
		settings.DuplicateThreshold = threshold
	default:
		return fmt.Errorf("%w: unknown settings key %q", domain.ErrInvalidInput, key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}
