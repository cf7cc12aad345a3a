package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/trendview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize trendview configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the snapshot location, port and language tabs, and writes a .trendview.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
