// Package progress reports how far a static export has got.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one call per written view, between Start and Finish.
type Reporter interface {
	Start(views int)
	Wrote(path string)
	Finish()
}

// NewReporter picks a Reporter for w: plain lines under CI, a bar
// otherwise.
func NewReporter(w io.Writer) Reporter {
	if inCI() {
		return &Lines{Out: w}
	}
	return &Bar{Out: w}
}

func inCI() bool {
	return os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != ""
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)    {}
func (Nop) Wrote(string) {}
func (Nop) Finish()      {}

// Bar draws a progress bar with the last written path as its description.
type Bar struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (b *Bar) Start(views int) {
	out := b.Out
	if out == nil {
		out = os.Stderr
	}
	b.bar = progressbar.NewOptions(views,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Rendering views"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *Bar) Wrote(path string) {
	if b.bar == nil {
		return
	}
	b.bar.Describe(path)
	_ = b.bar.Add(1)
}

func (b *Bar) Finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}

// Lines prints one line per view, for logs that cannot redraw.
type Lines struct {
	Out io.Writer

	total, done int
}

func (l *Lines) Start(views int) {
	l.total, l.done = views, 0
	fmt.Fprintf(l.Out, "Rendering %d views\n", views)
}

func (l *Lines) Wrote(path string) {
	l.done++
	fmt.Fprintf(l.Out, "[%d/%d] %s\n", l.done, l.total, path)
}

func (l *Lines) Finish() {
	fmt.Fprintf(l.Out, "Export complete: %d of %d views\n", l.done, l.total)
}
