package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/trendview/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "trendview",
	Short: "Browse a daily tech trends snapshot",
	Long: `trendview loads one aggregated snapshot of GitHub trending repositories,
Hacker News stories and tech blog articles, and lets you browse it by
section, language and source: live in the browser, as a static site,
on the command line or through MCP tools.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
