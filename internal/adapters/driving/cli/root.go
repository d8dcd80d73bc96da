// Package cli implements the cobra command-line driving adapter.
package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexdraft-labs/lexdraft-cli/internal/adapters/driven/annotate/pattern"
	configfile "github.com/lexdraft-labs/lexdraft-cli/internal/adapters/driven/config/file"
	textexport "github.com/lexdraft-labs/lexdraft-cli/internal/adapters/driven/export/text"
	storagefile "github.com/lexdraft-labs/lexdraft-cli/internal/adapters/driven/storage/file"
	"github.com/lexdraft-labs/lexdraft-cli/internal/adapters/driven/templates"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/services"
	"github.com/lexdraft-labs/lexdraft-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by initServices and shared by all commands.
var (
	documentService driving.DocumentService
	clauseService   driving.ClauseService
	settingsService driving.SettingsService
	exporter        driven.Exporter
)

var (
	verboseFlag   bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "lexdraft",
	Short: "Assemble legal documents from prompts or form data",
	Long: `Lexdraft interprets free-text prompts into structured legal documents
(rental agreements, sale deeds, powers of attorney, house leases) and
manages a reusable clause library with search, duplicate detection and
versioning.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if cmd.Name() == "version" {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.lexdraft)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the engine: config, stores, annotator and the
// core services. Idempotent; the first command to run pays the cost.
func initServices() error {
	if documentService != nil {
		return nil
	}

	configStore, err := configfile.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(filepath.Dir(configStore.Path()), "data")
	}

	clauseStore, err := storagefile.NewClauseStore(dataDir)
	if err != nil {
		return fmt.Errorf("open clause store: %w", err)
	}
	metadataStore, err := storagefile.NewMetadataStore(dataDir)
	if err != nil {
		return fmt.Errorf("open metadata store: %w", err)
	}
	versionStore, err := storagefile.NewVersionStore(dataDir, nil)
	if err != nil {
		return fmt.Errorf("open version store: %w", err)
	}
	templateStore, err := templates.NewStore(settings.TemplateDir)
	if err != nil {
		return fmt.Errorf("open template store: %w", err)
	}

	registry := services.DefaultRegistry()
	classifier, err := services.NewClassifier(registry, settings.DefaultDocumentType)
	if err != nil {
		return fmt.Errorf("configure classifier: %w", err)
	}

	annotator := pattern.New()
	extractor := services.NewExtractor(registry, annotator)
	resolver := services.NewFieldResolver(registry, time.Now)
	renderer := services.NewRenderer()

	documentService = services.NewDocumentService(
		registry, classifier, extractor, resolver, renderer,
		templateStore, versionStore, annotator,
	)
	clauseService = services.NewClauseService(
		clauseStore, metadataStore, versionStore, renderer,
		settings.DuplicateThreshold,
	)
	exporter = textexport.New()

	logger.Debug("services initialised (data dir %s)", dataDir)
	return nil
}

// parseDocType validates a document type argument.
func parseDocType(arg string) (domain.DocumentType, error) {
	docType := domain.DocumentType(arg)
	if !docType.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownDocumentType, arg)
	}
	return docType, nil
}
