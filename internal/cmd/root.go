package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marco-mi/MoonworksBrief/internal/config"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "moonbrief",
	Short: "Moonworks project brief builder",
	Long: `Moonworks Brief — the studio intake terminal

Collects everything a fabrication project needs before kickoff:
concept, references, specs, and logistics, one question at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Moonworks Brief v" + Version)
		fmt.Println("Run 'moonbrief --help' for available commands")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.moonbrief/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		viper.AddConfigPath(configDir())
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("MOONBRIEF")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// configDir returns the directory config.json lives in.
func configDir() string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".moonbrief")
	}
	return "."
}

// loadConfig reads config.json (or defaults when it is missing), then lets
// viper-bound env vars override individual fields.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configDir())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("applying config overrides: %w", err)
	}
	return cfg, nil
}
