// Package site renders the viewer shell page and exports a snapshot as a
// static site.
package site

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/trendview/internal/render"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

// Asset names served next to the shell page.
const (
	StyleAsset  = "style.css"
	LiveScript  = "app.js"
	StaticAsset = "static.js"
)

// DefaultTitle is the page title when none is configured.
const DefaultTitle = "Tech Trends"

var shellTmpl = template.Must(template.New("shell").Parse(shellTemplate))

// Style returns the stylesheet shared by the live and exported shells.
func Style() string { return cssContent }

// LiveJS returns the browser script for a live session shell.
func LiveJS() string { return liveJS }

// StaticJS returns the browser script for an exported shell.
func StaticJS() string { return staticJS }

// ShellOptions configure the shell page around a Document.
type ShellOptions struct {
	Title  string
	Notice template.HTML
	// Script is the asset the page loads; LiveScript or StaticAsset.
	Script string
	Labels render.Labels
}

// Shell is the data behind one rendered shell page.
type Shell struct {
	Title     string
	Notice    template.HTML
	Script    string
	Nav       []viewstate.Control
	Languages []viewstate.Control

	regions map[string]string
	active  map[string]string
}

// NewShell captures doc's current regions and active keys. Empty list
// regions show the loading placeholder until a session fills them.
func NewShell(doc *viewstate.Document, opts ShellOptions) *Shell {
	labels := opts.Labels.WithDefaults()
	s := &Shell{
		Title:     opts.Title,
		Notice:    opts.Notice,
		Script:    opts.Script,
		Nav:       doc.Nav.Controls,
		Languages: doc.LanguageTabs.Controls,
		regions:   make(map[string]string),
		active:    make(map[string]string),
	}
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.Script == "" {
		s.Script = LiveScript
	}

	for _, r := range []*viewstate.Region{
		doc.UpdateTime, doc.StatGitHub, doc.StatHackerNews, doc.StatRSS, doc.SourceButtons,
	} {
		s.regions[r.ID] = r.HTML
	}
	for _, r := range doc.ListRegions() {
		html := r.HTML
		if html == "" {
			html = render.Placeholder(labels.Loading)
		}
		s.regions[r.ID] = html
	}
	for _, g := range []*viewstate.ControlGroup{doc.Nav, doc.Sections, doc.LanguageTabs, doc.SourceFilters} {
		s.active[g.ID] = g.Active
	}
	return s
}

// Region returns the markup of the region with the given ID. Region markup
// is produced by the renderers, which escape all snapshot text.
func (s *Shell) Region(id string) template.HTML {
	return template.HTML(s.regions[id])
}

// Active reports whether key is the active member of group.
func (s *Shell) Active(group, key string) bool {
	return s.active[group] == key
}

// Render writes the shell page to w.
func (s *Shell) Render(w io.Writer) error {
	if err := shellTmpl.Execute(w, s); err != nil {
		return fmt.Errorf("rendering shell: %w", err)
	}
	return nil
}
