package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
)

var (
	generateType     string
	generateLang     string
	generatePrompt   string
	generateFields   []string
	generateTemplate string
	generateOut      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble a legal document",
	Long: `Generates a document either from a free-text prompt (--prompt) or
from an explicit document type (--type) with field values (--field).

Examples:
  lexdraft generate --prompt "Draft a rental agreement between John Smith and Jane Doe in Chennai for 15,000 rupees"
  lexdraft generate --type rental_agreement --field landlord="John Smith" --field tenant="Jane Doe"
  lexdraft generate --type house_lease --template my_lease.tmpl --out lease.txt`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateType, "type", "t", "", "document type (rental_agreement, land_sale_deed, power_of_attorney, house_lease)")
	generateCmd.Flags().StringVarP(&generateLang, "lang", "l", "", "template language code (default from settings)")
	generateCmd.Flags().StringVarP(&generatePrompt, "prompt", "p", "", "free-text prompt to interpret")
	generateCmd.Flags().StringArrayVarP(&generateFields, "field", "f", nil, "field value as name=value (repeatable)")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "path to an ad-hoc template file (bypasses stored templates)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "write the document to a file instead of stdout")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var result *driving.GenerateResult
	var err error

	switch {
	case generatePrompt != "":
		result, err = documentService.GenerateFromPrompt(ctx, generatePrompt, generateLang)
	case generateType != "":
		docType, typeErr := parseDocType(generateType)
		if typeErr != nil {
			return typeErr
		}
		fields, fieldErr := parseFieldFlags(generateFields)
		if fieldErr != nil {
			return fieldErr
		}
		req := driving.GenerateRequest{
			DocumentType: docType,
			Language:     generateLang,
			Fields:       fields,
		}
		if generateTemplate != "" {
			source, readErr := os.ReadFile(generateTemplate)
			if readErr != nil {
				return fmt.Errorf("read template %s: %w", generateTemplate, readErr)
			}
			req.Template = string(source)
		}
		result, err = documentService.Generate(ctx, req)
	default:
		return fmt.Errorf("either --prompt or --type is required")
	}
	if err != nil {
		return err
	}

	if len(result.MissingFields) > 0 {
		cmd.PrintErrf("missing fields (placeholders used): %s\n", strings.Join(result.MissingFields, ", "))
	}

	if generateOut != "" {
		path, err := exporter.Export(ctx, result.DocumentType, result.Content, generateOut)
		if err != nil {
			return err
		}
		cmd.Printf("document written to %s\n", path)
		return nil
	}

	cmd.Println(result.Content)
	return nil
}

// parseFieldFlags parses repeated name=value flags into a map.
func parseFieldFlags(flags []string) (map[string]string, error) {
	fields := make(map[string]string, len(flags))
	for _, flag := range flags {
		name, value, ok := strings.Cut(flag, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --field %q, expected name=value", flag)
		}
		fields[name] = value
	}
	return fields, nil
}
