package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
)

var (
	clauseTags         []string
	clauseDocType      string
	clauseJurisdiction string
	clauseJSON         bool
)

var clauseCmd = &cobra.Command{
	Use:   "clause",
	Short: "Manage the reusable clause library",
}

var clauseAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a clause",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clause, err := clauseService.Add(cmd.Context(), args[0], clauseTags, clauseDocType, clauseJurisdiction)
		if err != nil {
			return err
		}
		cmd.Printf("clause %s added\n", clause.ID)
		return nil
	},
}

var clauseUpdateCmd = &cobra.Command{
	Use:   "update [id] [text]",
	Short: "Overwrite a clause's text, tags and associations",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		clause, err := clauseService.Update(cmd.Context(), args[0], driving.ClauseUpdate{
			Text:         args[1],
			Tags:         clauseTags,
			DocType:      clauseDocType,
			Jurisdiction: clauseJurisdiction,
		})
		if err != nil {
			return err
		}
		cmd.Printf("clause %s updated\n", clause.ID)
		return nil
	},
}

var clauseDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a clause, its versions and its metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clauseService.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		cmd.Printf("clause %s deleted\n", args[0])
		return nil
	},
}

var clauseSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search clauses by text, tag, type or jurisdiction",
	Long:  `Case-insensitive substring search. An empty query lists every clause.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		clauses, err := clauseService.Search(cmd.Context(), query)
		if err != nil {
			return err
		}
		if clauseJSON {
			data, err := json.MarshalIndent(clauses, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		}
		for _, clause := range clauses {
			cmd.Printf("%s  [%s]  %s\n", clause.ID, clause.DocType, truncate(clause.Text, 72))
		}
		cmd.Printf("%d clause(s)\n", len(clauses))
		return nil
	},
}

var clauseDupCmd = &cobra.Command{
	Use:   "dup [text]",
	Short: "Check text against stored clauses for near-duplicates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := clauseService.CheckDuplicates(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, match := range matches {
			marker := " "
			if match.Likely {
				marker = "!"
			}
			cmd.Printf("%s %.3f  %s\n", marker, match.Similarity, match.Clause.ID)
		}
		return nil
	},
}

var clauseFavCmd = &cobra.Command{
	Use:   "fav [id]",
	Short: "Toggle a clause as favourite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return clauseService.Favorite(cmd.Context(), args[0])
	},
}

var clauseUnfavCmd = &cobra.Command{
	Use:   "unfav [id]",
	Short: "Remove a clause from favourites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return clauseService.Unfavorite(cmd.Context(), args[0])
	},
}

var clauseTagCmd = &cobra.Command{
	Use:   "tag [id]",
	Short: "Replace a clause's metadata tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return clauseService.Tag(cmd.Context(), args[0], clauseTags)
	},
}

var clauseRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently used clauses, most recent first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		recents, err := clauseService.Recents(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range recents {
			cmd.Println(id)
		}
		return nil
	},
}

var clauseRenderCmd = &cobra.Command{
	Use:   "render [id]",
	Short: "Expand a clause body against field values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := parseFieldFlags(clauseRenderFields)
		if err != nil {
			return err
		}
		text, err := clauseService.Render(cmd.Context(), args[0], fields)
		if err != nil {
			return err
		}
		cmd.Println(text)
		return nil
	},
}

var clauseRenderFields []string

func init() {
	for _, c := range []*cobra.Command{clauseAddCmd, clauseUpdateCmd, clauseTagCmd} {
		c.Flags().StringSliceVar(&clauseTags, "tags", nil, "comma-separated tags")
	}
	for _, c := range []*cobra.Command{clauseAddCmd, clauseUpdateCmd} {
		c.Flags().StringVar(&clauseDocType, "doc-type", "", "associated document type")
		c.Flags().StringVar(&clauseJurisdiction, "jurisdiction", "", "associated jurisdiction")
	}
	clauseSearchCmd.Flags().BoolVar(&clauseJSON, "json", false, "output results as JSON")
	clauseRenderCmd.Flags().StringArrayVarP(&clauseRenderFields, "field", "f", nil, "field value as name=value (repeatable)")

	clauseCmd.AddCommand(clauseAddCmd, clauseUpdateCmd, clauseDeleteCmd,
		clauseSearchCmd, clauseDupCmd, clauseFavCmd, clauseUnfavCmd, clauseTagCmd,
		clauseRecentCmd, clauseRenderCmd)
	rootCmd.AddCommand(clauseCmd)
}

// truncate shortens s for single-line display.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
