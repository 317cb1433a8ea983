package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grubhold/repo-reports-mcp/internal/store"
)

var rmMessage string

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().StringVarP(&rmMessage, "message", "m", "", "commit message")
}

func runRm(cmd *cobra.Command, args []string) error {
	if err := reportStore.Delete(cmd.Context(), args[0], rmMessage); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("report %q not found", args[0])
		}
		return fmt.Errorf("delete report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
