package cmd

import (
	"context"
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// minServerVersion is the oldest Miniflux release whose API matches this client
var minServerVersion = semver.MustParse("2.0.0")

// SetVersion records build information injected by main
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print client and server versions",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("minifluxer %s (built %s)\n", version, buildTime)

	serverVersion, err := client.Version(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get server version: %w", err)
	}
	fmt.Printf("miniflux %s\n", serverVersion)
	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to Miniflux",
	Long:  `Test the connection to your Miniflux instance and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	fmt.Printf("Testing connection to Miniflux at %s...\n", cfg.Miniflux.URL)

	if err := client.TestConnection(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Connection successful!")

	me, err := client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	health, err := client.Healthcheck(ctx)
	if err != nil {
		return fmt.Errorf("failed to run healthcheck: %w", err)
	}

	serverVersion, versionErr := client.ServerVersion(ctx)
	if versionErr != nil {
		logger.Warn().Err(versionErr).Msg("Could not determine server version")
	} else if serverVersion.LT(minServerVersion) {
		logger.Warn().
			Str("server", serverVersion.String()).
			Str("minimum", minServerVersion.String()).
			Msg("Miniflux server is older than supported")
	}

	counters, err := client.FetchCounters(ctx)
	if err != nil {
		return fmt.Errorf("failed to get counters: %w", err)
	}

	fmt.Printf("\nMiniflux Statistics:\n")
	fmt.Printf("- User: %s (admin: %t)\n", me.Username, me.IsAdmin)
	if versionErr == nil {
		fmt.Printf("- Server version: %s\n", serverVersion)
	}
	fmt.Printf("- Healthcheck: HTTP %d %s\n", health.StatusCode, string(health.Body))
	fmt.Printf("- Feeds with unread entries: %d\n", len(counters.UnreadCounters))
	fmt.Printf("- Unread entries: %d\n", counters.TotalUnread())

	return nil
}
