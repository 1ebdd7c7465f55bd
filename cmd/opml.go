package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export subscriptions as OPML",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write OPML to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	opml, err := client.Export(context.Background())
	if err != nil {
		return fmt.Errorf("failed to export subscriptions: %w", err)
	}

	if exportOutput == "" {
		fmt.Print(opml)
		return nil
	}

	if err := os.WriteFile(exportOutput, []byte(opml), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	logger.Info().Str("file", exportOutput).Int("bytes", len(opml)).Msg("Exported subscriptions")
	return nil
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import subscriptions from an OPML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	if dryRun {
		fmt.Printf("[DRY RUN] Would import %s\n", args[0])
		return nil
	}

	ok, err := client.Import(context.Background(), file)
	if err != nil {
		return fmt.Errorf("failed to import subscriptions: %w", err)
	}
	if !ok {
		return fmt.Errorf("server rejected the OPML import")
	}

	fmt.Println("✓ Subscriptions imported")
	return nil
}
