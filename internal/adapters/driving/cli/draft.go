package cli

import (
	"github.com/spf13/cobra"
)

var (
	validateType         string
	validateJurisdiction string
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [text]",
	Short: "Rewrite archaic legalese into plain language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := documentService.Simplify(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Println(text)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [text]",
	Short: "Run presence checks over a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docType, err := parseDocType(validateType)
		if err != nil {
			return err
		}
		issues, err := documentService.Validate(cmd.Context(), docType, validateJurisdiction, args[0])
		if err != nil {
			return err
		}
		if len(issues) == 0 {
			cmd.Println("no issues found")
			return nil
		}
		for _, issue := range issues {
			cmd.Printf("%-8s %s: %s\n", issue.Severity, issue.ID, issue.Message)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateType, "type", "t", "", "document type the draft was generated as")
	rootCmd.AddCommand(simplifyCmd, validateCmd)
	validateCmd.Flags().StringVar(&validateJurisdiction, "jurisdiction", "", "expected governing jurisdiction")
}
