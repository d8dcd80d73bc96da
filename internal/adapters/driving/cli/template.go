package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var templateLang string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage document templates and their versions",
}

var templateSaveCmd = &cobra.Command{
	Use:   "save [doc_type] [file]",
	Short: "Save a template source for a document type",
	Long: `Saves a template file for a document type and language. The source
is syntax-checked first and the previous body is preserved as a
timestamped snapshot.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		docType, err := parseDocType(args[0])
		if err != nil {
			return err
		}
		source, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read template %s: %w", args[1], err)
		}
		if err := documentService.SaveTemplate(cmd.Context(), docType, templateLang, string(source)); err != nil {
			return err
		}
		cmd.Printf("template saved for %s\n", docType)
		return nil
	},
}

var versionsCmd = &cobra.Command{
	Use:   "versions [name]",
	Short: "List snapshot timestamps for a clause or template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timestamps, err := clauseService.Versions(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, ts := range timestamps {
			cmd.Println(ts)
		}
		return nil
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff [name] [timestamp-a] [timestamp-b]",
	Short: "Show a unified diff between two snapshots",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		diff, err := clauseService.Diff(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		cmd.Print(diff)
		return nil
	},
}

func init() {
	templateSaveCmd.Flags().StringVarP(&templateLang, "lang", "l", "", "template language code (default en)")
	templateCmd.AddCommand(templateSaveCmd)
	rootCmd.AddCommand(templateCmd, versionsCmd, diffCmd)
}
