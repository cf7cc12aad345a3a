package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// notice converts header notices. Raw HTML in the source is dropped.
var notice = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

// noticePolicy is applied to the converted notice. Highlighted code keeps
// its inline colours.
var noticePolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowStyles("color", "background-color", "font-weight", "font-style", "text-decoration").
		OnElements("span", "pre")
	return p
}()

// RenderNotice converts a markdown notice into HTML for the page header.
// An empty notice renders as "".
func RenderNotice(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := notice.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting notice: %w", err)
	}
	return template.HTML(noticePolicy.SanitizeBytes(buf.Bytes())), nil
}
