package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marco-mi/MoonworksBrief/internal/outbox"
	"github.com/marco-mi/MoonworksBrief/internal/tui/styles"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the outbox for delivered briefs",
	Long: `Tail the outbox directory and report brief documents as they land
or are picked up. Useful while a sync agent drains the outbox.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		watcher, err := outbox.NewWatcher(cfg.OutboxDir)
		if err != nil {
			return fmt.Errorf("watching outbox: %w", err)
		}
		defer watcher.Close()

		pending, err := watcher.Pending()
		if err != nil {
			return fmt.Errorf("reading outbox: %w", err)
		}

		fmt.Println(styles.Title.Render("Outbox") + "  " + styles.Dim(cfg.OutboxDir))
		if len(pending) == 0 {
			fmt.Println(styles.Dim("No briefs waiting."))
		} else {
			for _, p := range pending {
				fmt.Println(styles.Gold("●") + " " + styles.Bold(filepath.Base(p)))
			}
		}
		fmt.Println(styles.Dim("Watching for changes, ctrl+c to stop..."))
		fmt.Println()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		for ev := range watcher.Watch(ctx) {
			stamp := styles.Dim(ev.Time.Format("15:04:05"))
			name := filepath.Base(ev.Path)
			switch ev.Type {
			case outbox.EventDelivered:
				line := stamp + " " + styles.Green("→") + " " + styles.Value.Render(name)
				if ev.Header != nil && ev.Header.Client != "" {
					line += " " + styles.Dim("("+ev.Header.Client+")")
				}
				fmt.Println(line)
			case outbox.EventRemoved:
				fmt.Println(stamp + " " + styles.Purple("←") + " " + styles.Dim(name+" picked up"))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
