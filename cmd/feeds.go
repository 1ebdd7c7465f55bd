package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/minifluxer/miniflux"
)

// refreshConcurrency bounds parallel refresh requests
const refreshConcurrency = 5

var (
	categoryID        int64
	subscribeCategory int64
	showDetails       bool
)

// feedsCmd represents the feeds command
var feedsCmd = &cobra.Command{
	Use:   "feeds",
	Short: "List feeds matching the filter criteria",
	Long: `List the feeds of the current user, optionally restricted to a category
and filtered with an expression such as 'ParsingErrorCount > 0'.`,
	RunE: runFeeds,
}

func init() {
	feedsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	feedsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	feedsCmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "only list feeds of this category")
	feedsCmd.Flags().BoolVar(&showDetails, "details", false, "show feed details")
}

func runFeeds(cmd *cobra.Command, args []string) error {
	f, err := getFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var feeds miniflux.Feeds
	if categoryID > 0 {
		feeds, err = client.CategoryFeeds(ctx, categoryID)
	} else {
		feeds, err = client.Feeds(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get feeds: %w", err)
	}

	if f != nil {
		if feeds, err = f.Feeds(feeds); err != nil {
			return err
		}
	}

	if len(feeds) == 0 {
		fmt.Println("No feeds found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d feeds:\n", len(feeds))
	fmt.Println(strings.Repeat("-", 80))

	for _, feed := range feeds {
		fmt.Printf("• [%d] %s", feed.ID, feed.Title)
		if category := feed.CategoryTitle(); category != "" {
			fmt.Printf(" (%s)", category)
		}
		if feed.HasParsingErrors() {
			fmt.Printf(" [%d ERRORS]", feed.ParsingErrorCount)
		}
		fmt.Println()
		if showDetails {
			fmt.Printf("  URL: %s\n", feed.FeedURL)
			fmt.Printf("  Refresh: %s\n", boolToStatus(!feed.Disabled))
			if !feed.CheckedAt.IsZero() {
				fmt.Printf("  Checked: %s\n", feed.CheckedAt.Format("2006-01-02 15:04"))
			}
			if feed.ParsingErrorMsg != "" {
				fmt.Printf("  Error: %s\n", feed.ParsingErrorMsg)
			}
		}
	}

	return nil
}

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh [feed-id...]",
	Short: "Refresh the given feeds, or all feeds",
	RunE:  runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	if dryRun {
		if len(ids) == 0 {
			fmt.Println("[DRY RUN] Would refresh all feeds")
		} else {
			fmt.Printf("[DRY RUN] Would refresh %d feeds\n", len(ids))
		}
		return nil
	}

	ctx := context.Background()
	if len(ids) == 0 {
		resp, err := client.RefreshAllFeeds(ctx)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusNoContent {
			return fmt.Errorf("refresh of all feeds failed with status %d", resp.StatusCode)
		}
		fmt.Println("✓ Refresh of all feeds scheduled")
		return nil
	}

	refreshed := refreshFeeds(ctx, client, ids)
	fmt.Printf("✓ Refreshed %d of %d feeds\n", refreshed, len(ids))
	if refreshed != len(ids) {
		return fmt.Errorf("%d feeds failed to refresh", len(ids)-refreshed)
	}
	return nil
}

// refreshFeeds refreshes feeds concurrently and returns how many succeeded.
// A failing feed is logged and does not stop the others.
func refreshFeeds(ctx context.Context, api miniflux.API, ids []int64) int {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)

	var refreshed atomic.Int64
	for _, id := range ids {
		g.Go(func() error {
			resp, err := api.RefreshFeed(ctx, id)
			if err != nil {
				logger.Warn().Err(err).Int64("feed_id", id).Msg("Failed to refresh feed")
				return nil
			}
			if resp.StatusCode != http.StatusNoContent {
				logger.Warn().Int("status", resp.StatusCode).Int64("feed_id", id).Msg("Feed refresh rejected")
				return nil
			}
			refreshed.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(refreshed.Load())
}

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover <url>",
	Short: "Find the feeds published by a website",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiscover,
}

func runDiscover(cmd *cobra.Command, args []string) error {
	subscriptions, err := client.Discover(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to discover feeds: %w", err)
	}

	if len(subscriptions) == 0 {
		fmt.Println("No feeds found.")
		return nil
	}

	for _, s := range subscriptions {
		fmt.Printf("• %s [%s]\n  %s\n", s.Title, s.Type, s.URL)
	}
	return nil
}

// subscribeCmd represents the subscribe command
var subscribeCmd = &cobra.Command{
	Use:   "subscribe <feed-url>",
	Short: "Subscribe to a feed",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubscribe,
}

func init() {
	subscribeCmd.Flags().Int64VarP(&subscribeCategory, "category", "c", 1, "category to file the feed under")
}

func runSubscribe(cmd *cobra.Command, args []string) error {
	if dryRun {
		fmt.Printf("[DRY RUN] Would subscribe to %s in category %d\n", args[0], subscribeCategory)
		return nil
	}

	feedID, err := client.CreateFeed(context.Background(), args[0], subscribeCategory)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	logger.Info().Int64("feed_id", feedID).Str("url", args[0]).Msg("Subscribed to feed")
	fmt.Printf("✓ Subscribed, feed ID %d\n", feedID)
	return nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid ID: %s", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
