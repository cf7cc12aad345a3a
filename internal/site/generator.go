package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/trendview/internal/controller"
	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/progress"
	"github.com/ziadkadry99/trendview/internal/render"
	"github.com/ziadkadry99/trendview/internal/snapshot"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

// Generator exports a snapshot as a static site: the shell page, its
// assets, a copy of the snapshot and one pre-rendered fragment per
// reachable selector value.
type Generator struct {
	OutputDir string
	Title     string
	// Notice is markdown shown in the page header.
	Notice    string
	Labels    render.Labels
	Languages []string
	Initial   viewstate.State
	// Views restricts exported fragments to paths matching any of these
	// doublestar patterns, relative to views/ (e.g. "github/*"). Empty
	// exports every view.
	Views    []string
	Reporter progress.Reporter
}

// Manifest maps each section's selector keys to fragment paths. The static
// script falls back to Empty for keys it has no view for.
type Manifest struct {
	Views map[string]map[string]string `json:"views"`
	Empty string                       `json:"empty"`
}

// view is one fragment to export.
type view struct {
	state viewstate.State
	key   string
	rel   string // relative to views/
}

// Generate writes the export to OutputDir and returns the number of
// fragments written.
func (g *Generator) Generate(snap *snapshot.Snapshot) (int, error) {
	for _, pattern := range g.Views {
		if !doublestar.ValidatePattern(pattern) {
			return 0, fmt.Errorf("invalid view pattern %q", pattern)
		}
	}

	labels := g.Labels.WithDefaults()
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	store := loader.NewStore()
	store.Set(snap)

	for _, dir := range []string{"data", "views/github", "views/hackernews", "views/rss"} {
		if err := os.MkdirAll(filepath.Join(g.OutputDir, filepath.FromSlash(dir)), 0o755); err != nil {
			return 0, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	// Write static assets.
	if err := g.writeFile(StyleAsset, []byte(Style())); err != nil {
		return 0, err
	}
	if err := g.writeFile(StaticAsset, []byte(StaticJS())); err != nil {
		return 0, err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := g.writeFile(filepath.ToSlash(loader.DefaultLocation), data); err != nil {
		return 0, err
	}

	if err := g.writeShell(store, labels); err != nil {
		return 0, err
	}

	views := g.views(store)
	manifest := Manifest{
		Views: map[string]map[string]string{},
		Empty: "views/empty.html",
	}
	if err := g.writeFile(manifest.Empty, []byte(render.Placeholder(labels.NoData))); err != nil {
		return 0, err
	}

	reporter.Start(len(views))
	for i, v := range views {
		rel := "views/" + v.rel
		if err := g.writeFile(rel, []byte(render.Section(snap, v.state, labels))); err != nil {
			return i, err
		}
		section := string(v.state.Section)
		if manifest.Views[section] == nil {
			manifest.Views[section] = map[string]string{}
		}
		manifest.Views[section][v.key] = rel
		reporter.Wrote(rel)
	}
	reporter.Finish()

	index, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding views manifest: %w", err)
	}
	if err := g.writeFile("views/index.json", index); err != nil {
		return 0, err
	}

	return len(views), nil
}

// writeShell renders index.html from a session initialized on the snapshot.
func (g *Generator) writeShell(store *loader.Store, labels render.Labels) error {
	ctrl := controller.New(store, controller.Options{
		Labels:    labels,
		Languages: g.Languages,
		Initial:   g.Initial,
	})
	ctrl.Init()

	notice, err := RenderNotice(g.Notice)
	if err != nil {
		return err
	}

	shell := NewShell(ctrl.Document(), ShellOptions{
		Title:  g.Title,
		Notice: notice,
		Script: StaticAsset,
		Labels: labels,
	})

	f, err := os.Create(filepath.Join(g.OutputDir, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index.html: %w", err)
	}
	defer f.Close()
	return shell.Render(f)
}

// views lists every reachable fragment that passes the Views filter: one per
// language tab, the story list, and one per derived source.
func (g *Generator) views(store *loader.Store) []view {
	base := viewstate.Default()
	var out []view
	used := map[string]bool{}

	add := func(st viewstate.State, key string) {
		rel := uniquePath(used, string(st.Section), slug(key))
		if !g.included(rel) {
			return
		}
		out = append(out, view{state: st, key: key, rel: rel})
	}

	seen := map[string]bool{}
	for _, lang := range g.Languages {
		if seen[lang] {
			continue
		}
		seen[lang] = true
		add(base.WithSection(viewstate.SectionGitHub).WithLanguage(lang), lang)
	}
	add(base.WithSection(viewstate.SectionHackerNews), snapshot.AllSources)
	for _, source := range store.Sources() {
		add(base.WithSection(viewstate.SectionRSS).WithSource(source), source)
	}
	return out
}

func (g *Generator) included(rel string) bool {
	if len(g.Views) == 0 {
		return true
	}
	for _, pattern := range g.Views {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (g *Generator) writeFile(rel string, data []byte) error {
	if err := os.WriteFile(filepath.Join(g.OutputDir, filepath.FromSlash(rel)), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// uniquePath returns section/name.html, suffixing name when two keys share
// a slug.
func uniquePath(used map[string]bool, section, name string) string {
	rel := path.Join(section, name+".html")
	for i := 2; used[rel]; i++ {
		rel = path.Join(section, name+"-"+strconv.Itoa(i)+".html")
	}
	used[rel] = true
	return rel
}

// slug turns a selector key into a file name: lower-case letters and digits
// separated by single dashes.
func slug(key string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(key) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "view"
	}
	return s
}
