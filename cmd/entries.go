package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/minifluxer/miniflux"
)

var (
	entryStatus    string
	entryDirection string
	entryFeedID    int64
	entryCategory  int64
	entryLimit     int
	markRead       bool
)

// entriesCmd represents the entries command
var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List entries matching the filter criteria",
	Long: `List entries across all feeds, or from a single feed or category.
Matching entries can be marked as read with --mark-read.`,
	RunE: runEntries,
}

func init() {
	entriesCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	entriesCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	entriesCmd.Flags().StringVar(&entryStatus, "status", miniflux.EntryStatusUnread, "entry status (unread, read, removed), not supported with --feed or --category")
	entriesCmd.Flags().StringVar(&entryDirection, "direction", "", "sort direction (asc, desc)")
	entriesCmd.Flags().Int64Var(&entryFeedID, "feed", 0, "only list entries of this feed")
	entriesCmd.Flags().Int64Var(&entryCategory, "category", 0, "only list entries of this category")
	entriesCmd.Flags().IntVar(&entryLimit, "limit", 100, "maximum entries for --feed and --category")
	entriesCmd.Flags().BoolVar(&markRead, "mark-read", false, "mark matching entries as read")
}

func runEntries(cmd *cobra.Command, args []string) error {
	if err := checkEntryFlags(cmd.Flags().Changed("status")); err != nil {
		return err
	}

	f, err := getFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	result, err := fetchEntries(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	entries := result.Entries
	if f != nil {
		if entries, err = f.Entries(entries); err != nil {
			return err
		}
	}

	if len(entries) == 0 {
		fmt.Println("No entries found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d entries (%d total on server):\n", len(entries), result.Total)
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range entries {
		fmt.Printf("• [%d] %s", e.ID, e.Title)
		if e.Starred {
			fmt.Printf(" ★")
		}
		fmt.Println()
		fmt.Printf("  %s  %s  %d min\n", e.Date.Format("2006-01-02"), e.URL, e.ReadingTime)
	}

	if !markRead {
		return nil
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	if dryRun {
		fmt.Printf("\n[DRY RUN] Would mark %d entries as read\n", len(ids))
		return nil
	}

	ok, err := client.UpdateEntries(ctx, ids, miniflux.EntryStatusRead)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server rejected marking %d entries as read", len(ids))
	}

	logger.Info().Int("count", len(ids)).Msg("Marked entries as read")
	fmt.Printf("\n✓ Marked %d entries as read\n", len(ids))
	return nil
}

// checkEntryFlags rejects combinations the listing endpoints cannot honour.
// The feed and category endpoints take no status filter.
func checkEntryFlags(statusSet bool) error {
	if entryFeedID > 0 && entryCategory > 0 {
		return fmt.Errorf("--feed and --category are mutually exclusive")
	}
	if statusSet && (entryFeedID > 0 || entryCategory > 0) {
		return fmt.Errorf("--status only applies when listing entries of all feeds")
	}
	return nil
}

// fetchEntries picks the listing endpoint from the command flags
func fetchEntries(ctx context.Context, api miniflux.API) (*miniflux.EntryResultSet, error) {
	list := &miniflux.EntryListOptions{
		Limit:     entryLimit,
		Order:     miniflux.OrderPublishedAt,
		Direction: entryDirection,
	}

	switch {
	case entryFeedID > 0:
		return api.FeedEntries(ctx, entryFeedID, list)
	case entryCategory > 0:
		return api.CategoryEntries(ctx, entryCategory, list)
	default:
		return api.Entries(ctx, &miniflux.EntryFilter{
			Status:    entryStatus,
			Direction: entryDirection,
		})
	}
}
