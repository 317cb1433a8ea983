package cli

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grubhold/repo-reports-mcp/internal/report"
)

var (
	listCategory string
	listStatus   string
	listTag      string
	listUnread   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports",
	Long: `List all reports in the configured repository, newest first.

Examples:
  reportctl list
  reportctl list --status failing
  reportctl list --tag security --unread`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category")
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status (passing, warning, failing, info)")
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "filter by tag")
	listCmd.Flags().BoolVarP(&listUnread, "unread", "u", false, "only unread reports")
}

func runList(cmd *cobra.Command, args []string) error {
	if listStatus != "" && !report.Status(listStatus).Valid() {
		return fmt.Errorf("unknown status %q (use passing, warning, failing or info)", listStatus)
	}

	summaries, err := reportStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tCATEGORY\tUPDATED\tTAGS")

	shown := 0
	for _, s := range summaries {
		if listCategory != "" && s.Category != listCategory {
			continue
		}
		if listStatus != "" && s.Status != report.Status(listStatus) {
			continue
		}
		if listTag != "" && !slices.Contains(s.Tags, listTag) {
			continue
		}
		if listUnread && s.LifecycleStatus != "" {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Status, s.Category, s.UpdatedAt, strings.Join(s.Tags, ","))
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d reports\n", shown, len(summaries))
	return nil
}
