package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marco-mi/MoonworksBrief/internal/config"
	"github.com/marco-mi/MoonworksBrief/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `View the active moonbrief configuration.

Subcommands:
  init   Write a default config.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		status := styles.StatusBadge("warn") + " " + styles.Dim("no config.json, using defaults (run 'moonbrief config init')")
		if _, err := os.Stat(filepath.Join(configDir(), "config.json")); err == nil {
			status = styles.StatusBadge("ok") + " " + styles.Dim(filepath.Join(configDir(), "config.json"))
		}

		fmt.Println(styles.Title.Render("Configuration"))
		fmt.Println(status)
		fmt.Println()
		fmt.Println(styles.Label.Render("STUDIO") + "    " + styles.Value.Render(cfg.Studio))
		fmt.Println(styles.Label.Render("OUTBOX") + "    " + styles.Value.Render(cfg.OutboxDir))
		fmt.Println(styles.Label.Render("ARCHIVE") + "   " + styles.Value.Render(cfg.ArchivePath))
		fmt.Println(styles.Label.Render("EXPORTS") + "   " + styles.Value.Render(cfg.ExportDir))
		fmt.Println(styles.Label.Render("ROOT") + "      " + styles.Value.Render(configDir()))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		root := configDir()
		if err := config.Save(root, config.Default()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Println(styles.Green("✓") + " Wrote " + styles.Value.Render(root+"/config.json"))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
