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
)

var showWidth int

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an archived brief",
	Long:  `Render an archived brief as a formatted document in the terminal.`,
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
		md := export.Document(cfg.Studio, b.Client, b.SubmittedAt, entries)
		fmt.Println(export.RenderTerminal(md, showWidth))
		return nil
	},
}

func init() {
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 100, "render width")
	rootCmd.AddCommand(showCmd)
}
