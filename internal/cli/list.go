// list.go implements the "patterns list" command.
//
// The list command prints every registered demonstration as a text table
// or JSON document, optionally filtered by Gang-of-Four category.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/gof-patterns/internal/catalog"
	"github.com/shinji-kodama/gof-patterns/internal/model"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// category filters demonstrations by family.
	// Valid values: "creational", "structural", "behavioral", "all" (default).
	category string
}

// NewListCommand creates the "list" cobra command backed by cat.
func NewListCommand(cat *catalog.Catalog) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available pattern demonstrations",
		Long: `List every pattern demonstration with its category and summary.

Examples:
  patterns list
  patterns list --category behavioral
  patterns list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), cat, flags)
		},
	}

	cmd.Flags().StringVar(&flags.category, "category", "all",
		"Filter by category: creational, structural, behavioral, all (default: all)")

	return cmd
}

// runList validates the --category flag and prints the matching entries.
func runList(w io.Writer, cat *catalog.Catalog, flags *listFlags) error {
	var category model.Category
	if flags.category != "all" {
		parsed, err := model.ParseCategory(flags.category)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid category filter %q: valid values are creational, structural, behavioral, all", flags.category), nil)
		}
		category = parsed
	}

	infos := cat.List(category)
	VerboseLog("Listing %d patterns (category: %s)", len(infos), flags.category)

	if IsJSONOutput() {
		return printListResultJSON(w, infos)
	}
	printListResultText(w, infos)
	return nil
}

// printListResultJSON writes the entries under a top-level "patterns" key.
func printListResultJSON(w io.Writer, infos []model.PatternInfo) error {
	type resultJSON struct {
		Patterns []model.PatternInfo `json:"patterns"`
	}

	// An empty slice keeps the output "[]" instead of null.
	result := resultJSON{Patterns: make([]model.PatternInfo, 0, len(infos))}
	result.Patterns = append(result.Patterns, infos...)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode pattern list", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printListResultText writes the entries as a table with aligned columns:
//
//	NAME                     CATEGORY     SUMMARY
//	abstract-factory         creational   Families of platform widgets ...
func printListResultText(w io.Writer, infos []model.PatternInfo) {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No patterns found.")
		return
	}

	fmt.Fprintf(w, "%-24s %-12s %s\n", "NAME", "CATEGORY", "SUMMARY")
	for _, info := range infos {
		fmt.Fprintf(w, "%-24s %-12s %s\n", info.Name, info.Category, info.Summary)
	}
}
