package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret [prompt]",
	Short: "Classify a prompt and extract structured entities",
	Long: `Interprets a free-text prompt: classifies it into a document type,
extracts entities (names, amounts, dates, locations, durations) and
reports which required fields are still missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runInterpret,
}

func init() {
	rootCmd.AddCommand(interpretCmd)
}

func runInterpret(cmd *cobra.Command, args []string) error {
	result, err := documentService.Interpret(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
