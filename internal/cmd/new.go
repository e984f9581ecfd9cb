package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marco-mi/MoonworksBrief/internal/store"
	"github.com/marco-mi/MoonworksBrief/internal/submit"
	"github.com/marco-mi/MoonworksBrief/internal/tui/views"
)

var newNoArchive bool

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new project brief",
	Long: `Launch the interactive brief builder.

Walks through every intake question one card at a time. Sending the
finished brief drops a JSON document in the outbox directory and files
a copy in the local archive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var archive *store.Store
		if !newNoArchive {
			archive, err = store.Open(cfg.ArchivePath)
			if err != nil {
				return fmt.Errorf("opening archive: %w", err)
			}
			defer archive.Close()
		}

		submitter := submit.New(cfg.OutboxDir, archive, nil)
		return views.RunBriefBuilder(submitter, cfg.Studio, cfg.ExportDir)
	},
}

func init() {
	newCmd.Flags().BoolVar(&newNoArchive, "no-archive", false, "skip the local archive, outbox only")
	rootCmd.AddCommand(newCmd)
}
