package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
	"github.com/marco-mi/MoonworksBrief/internal/store"
	"github.com/marco-mi/MoonworksBrief/internal/tui/styles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived briefs",
	Long:  `Show every brief filed in the local archive, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		briefs, err := archive.ListBriefs(ctx)
		if err != nil {
			return fmt.Errorf("listing briefs: %w", err)
		}

		if len(briefs) == 0 {
			fmt.Println(styles.Dim("No briefs in the archive yet. Run 'moonbrief new' to start one."))
			return nil
		}

		fmt.Println(styles.Title.Render("Archived Briefs"))
		fmt.Println()

		var table strings.Builder
		table.WriteString(styles.Label.Render(fmt.Sprintf("%-5s %-28s %-24s %-18s %s", "ID", "CLIENT", "CONTACT", "SUBMITTED", "ANSWERED")))
		table.WriteString("\n" + styles.Divider(88))

		for _, b := range briefs {
			answered := answeredOf(b.Answers)
			table.WriteString(fmt.Sprintf("\n%-5d %-28s %-24s %-18s %s",
				b.ID,
				styles.TruncateWithEllipsis(b.Client, 27),
				styles.TruncateWithEllipsis(b.Contact, 23),
				b.SubmittedAt.Local().Format("2006-01-02 15:04"),
				styles.Dim(fmt.Sprintf("%d questions", answered)),
			))
		}
		fmt.Println(styles.Card.Render(table.String()))
		return nil
	},
}

// answeredOf counts non-empty answers against the default catalog.
func answeredOf(answers brief.Answers) int {
	count := 0
	for _, q := range brief.DefaultCatalog() {
		if q.Kind == brief.KindIntro {
			continue
		}
		if answers.Answered(q.ID) {
			count++
		}
	}
	return count
}

func init() {
	rootCmd.AddCommand(listCmd)
}
