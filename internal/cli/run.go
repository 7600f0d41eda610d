// run.go implements the "patterns run" command.
//
// The run command executes one or more demonstrations with the loaded
// settings. All names are resolved before anything runs.

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/gof-patterns/internal/catalog"
	"github.com/shinji-kodama/gof-patterns/internal/model"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	// all runs every registered demonstration in catalog order.
	all bool
}

// NewRunCommand creates the "run" cobra command backed by cat.
func NewRunCommand(cat *catalog.Catalog) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run <name>... | --all",
		Short: "Run pattern demonstrations",
		Long: `Run one or more pattern demonstrations and print their output.

When several demonstrations run, each block is preceded by a
"== <Title> ==" header and blocks are separated by a blank line.

Examples:
  patterns run observer
  patterns run builder decorator
  patterns run --all --json`,

		Args: func(cmd *cobra.Command, args []string) error {
			if flags.all && len(args) > 0 {
				return model.NewCLIError(model.ExitGeneralError, "--all cannot be combined with pattern names")
			}
			if !flags.all && len(args) == 0 {
				return model.NewCLIError(model.ExitGeneralError, "requires at least one pattern name or --all")
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.OutOrStdout(), cat, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.all, "all", false, "Run every demonstration")

	return cmd
}

// runJSON is the JSON output structure for one executed demonstration.
type runJSON struct {
	Name   string   `json:"name"`
	Output []string `json:"output"`
}

// runRun resolves the requested entries and executes them in order.
func runRun(w io.Writer, cat *catalog.Catalog, flags *runFlags, names []string) error {
	entries, err := resolveEntries(cat, flags, names)
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return runEntriesJSON(w, cat, entries)
	}

	for i, e := range entries {
		if len(entries) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n", e.Title)
		}
		VerboseLog("Running %s", e.Name)
		if err := cat.Run(w, e.Name, settings); err != nil {
			return model.WrapCLIError(model.ExitDemoFailed,
				fmt.Sprintf("demonstration %q failed", e.Name), err)
		}
	}
	return nil
}

// resolveEntries maps the command arguments to catalog entries.
// Unknown names fail with ExitPatternNotFound.
func resolveEntries(cat *catalog.Catalog, flags *runFlags, names []string) ([]catalog.Entry, error) {
	if flags.all {
		return cat.Entries(), nil
	}

	entries := make([]catalog.Entry, 0, len(names))
	for _, name := range names {
		e, err := cat.Lookup(name)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitPatternNotFound,
				fmt.Sprintf("unknown pattern %q (see 'patterns list')", name), err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// runEntriesJSON captures each demonstration's output and prints it as a
// list of lines under a top-level "runs" key.
func runEntriesJSON(w io.Writer, cat *catalog.Catalog, entries []catalog.Entry) error {
	type resultJSON struct {
		Runs []runJSON `json:"runs"`
	}
	result := resultJSON{Runs: make([]runJSON, 0, len(entries))}

	for _, e := range entries {
		var buf bytes.Buffer
		VerboseLog("Running %s", e.Name)
		if err := cat.Run(&buf, e.Name, settings); err != nil {
			return model.WrapCLIError(model.ExitDemoFailed,
				fmt.Sprintf("demonstration %q failed", e.Name), err)
		}
		result.Runs = append(result.Runs, runJSON{Name: e.Name, Output: splitLines(buf.String())})
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode run output", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// splitLines splits output into lines without the trailing newline.
// Empty output yields an empty slice rather than a single empty line.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
