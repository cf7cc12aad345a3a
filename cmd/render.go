package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/trendview/internal/render"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one section of the snapshot as an HTML fragment",
	Long: `Loads the snapshot once and prints the fragment for the given section,
language and source. If the load fails, the failure fragment is printed
and the command exits with status 1.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("section", string(viewstate.SectionGitHub), "section to render (github, hackernews, rss)")
	renderCmd.Flags().String("lang", "", "language for the github section (defaults to default_language)")
	renderCmd.Flags().String("source", viewstate.DefaultSource, "source filter for the rss section")
	renderCmd.Flags().String("out", "", "write the fragment to this file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	section, _ := cmd.Flags().GetString("section")
	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = cfg.DefaultLanguage
	}
	source, _ := cmd.Flags().GetString("source")

	var out io.Writer = os.Stdout
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	store, err := loadStore(context.Background(), cfg)
	if err != nil {
		fmt.Fprintln(out, render.Placeholder(cfg.Labels.LoadFailed))
		return fmt.Errorf("loading snapshot: %w", err)
	}

	st := viewstate.Default().
		WithSection(viewstate.Section(section)).
		WithLanguage(lang).
		WithSource(source)
	if verbose {
		fmt.Fprintf(os.Stderr, "rendering %+v\n", st)
	}

	fmt.Fprintln(out, render.Section(store.Snapshot(), st, cfg.Labels))
	return nil
}
