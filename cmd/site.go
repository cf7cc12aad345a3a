package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/trendview/internal/progress"
	"github.com/ziadkadry99/trendview/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Export the snapshot as a static website",
	Long: `Generates a self-contained static site from the snapshot: the viewer
page, a copy of the snapshot and one pre-rendered fragment per language
tab, story list and source filter.`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 0, "port for the local server (defaults to the config port)")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	siteCmd.Flags().StringSlice("views", nil, "only export views matching these patterns (e.g. github/*)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	views, _ := cmd.Flags().GetStringSlice("views")

	store, err := loadStore(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	opts := controllerOptions(cfg)
	generator := &site.Generator{
		OutputDir: outputDir,
		Notice:    cfg.Notice,
		Labels:    opts.Labels,
		Languages: opts.Languages,
		Initial:   opts.Initial,
		Views:     views,
		Reporter:  progress.NewReporter(os.Stderr),
	}
	count, err := generator.Generate(store.Snapshot())
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d views)\n", outputDir, count)

	// Optionally serve the site.
	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Port
		}
		openBrowser, _ := cmd.Flags().GetBool("open")
		return site.Serve(outputDir, port, openBrowser)
	}

	return nil
}
