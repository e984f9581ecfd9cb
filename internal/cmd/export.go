package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
	"github.com/marco-mi/MoonworksBrief/internal/export"
	"github.com/marco-mi/MoonworksBrief/internal/store"
	"github.com/marco-mi/MoonworksBrief/internal/tui/styles"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export an archived brief to markdown",
	Long:  `Write an archived brief as a markdown document, ready to share with the client.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid brief id %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir := cfg.ExportDir
		if exportOut != "" {
			dir = exportOut
		}

		archive, err := store.Open(cfg.ArchivePath)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer archive.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		b, err := archive.GetBrief(ctx, id)
		if err != nil {
			return fmt.Errorf("loading brief %d: %w", id, err)
		}

		entries := brief.Format(brief.DefaultCatalog(), b.Answers)
		path, err := export.Write(dir, cfg.Studio, b.Client, b.SubmittedAt, entries)
		if err != nil {
			return fmt.Errorf("exporting brief %d: %w", id, err)
		}

		fmt.Println(styles.Green("✓") + " Exported to " + styles.Value.Render(path))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (defaults to the configured export dir)")
	rootCmd.AddCommand(exportCmd)
}
