package cli

import (
	"github.com/spf13/cobra"

	"github.com/lazypower/lovewhisper/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lovewhisper",
	Short: "Small daily romantic messages, ready to send",
	Long: "LoveWhisper serves a fresh set of short love notes, poems and images each day.\n" +
		"Run 'lovewhisper serve' for the web page, or use the commands below from a terminal.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.lovewhisper/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(favCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(subscribeCmd)
	rootCmd.AddCommand(statusCmd)
}

// loadConfig reads the config file named by --config, LOVEWHISPER_CONFIG or
// the default location.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}
