package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grubhold/repo-reports-mcp/internal/store"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one report in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the full report as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	r, err := reportStore.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("report %q not found", args[0])
		}
		return fmt.Errorf("get report: %w", err)
	}

	if showJSON {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", r.Title, r.ID)
	fmt.Fprintf(out, "status: %s  category: %s  updated: %s\n", r.Status, r.Category, r.UpdatedAt)
	if r.LifecycleStatus != "" {
		fmt.Fprintf(out, "lifecycle: %s\n", r.LifecycleStatus)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(out, "tags: %v\n", r.Tags)
	}
	if r.Summary.Summary != "" {
		fmt.Fprintf(out, "\n%s\n", r.Summary.Summary)
	}
	fmt.Fprintf(out, "\n%d section(s)\n", len(r.Sections))
	return nil
}
