package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grubhold/repo-reports-mcp/internal/report"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <unread|read|dismissed>",
	Short: "Set a report's lifecycle status",
	Long: `Set the read state of a report. Marking a report unread removes its
entry from the persisted status file.`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	id, status := args[0], report.LifecycleStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("unknown lifecycle status %q (use unread, read or dismissed)", args[1])
	}

	if err := reportStore.SetStatus(cmd.Context(), id, status); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", id, status)
	return nil
}
