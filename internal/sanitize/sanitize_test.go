package sanitize

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a & b", "a &amp; b"},
		{"<script>", "&lt;script&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&#039;s"},
		{"&amp;", "&amp;amp;"},
		{`<a href="x">'&'</a>`, "&lt;a href=&quot;x&quot;&gt;&#039;&amp;&#039;&lt;/a&gt;"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeStableForSafeText(t *testing.T) {
	inputs := []string{"hello world", "Go 1.24 released", "日本語のテキスト", "a-b_c.d/e"}
	for _, in := range inputs {
		once := Escape(in)
		if once != in {
			t.Errorf("Escape(%q) changed safe text to %q", in, once)
		}
		if twice := Escape(once); twice != once {
			t.Errorf("Escape not stable on %q: %q", in, twice)
		}
	}
}

func TestEscapeLeavesNoRawSpecials(t *testing.T) {
	inputs := []string{
		"<>&\"'",
		"Tom & Jerry's <show>",
		`"quoted" & 'single'`,
		"&&&<<<>>>",
	}
	for _, in := range inputs {
		out := Escape(in)
		// Every '&' in the output must start an entity we produced.
		stripped := out
		for _, ent := range []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#039;"} {
			stripped = strings.ReplaceAll(stripped, ent, "")
		}
		if strings.ContainsAny(stripped, "<>&\"'") {
			t.Errorf("Escape(%q) = %q leaves raw special characters", in, out)
		}
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://github.com/golang/go", "https://github.com/golang/go"},
		{"http://example.com/?a=1&b=2", "http://example.com/?a=1&amp;b=2"},
		{"/relative/path", "/relative/path"},
		{"mailto:dev@example.com", "mailto:dev@example.com"},
		{"javascript:alert(1)", "#"},
		{"JavaScript:alert(1)", "#"},
		{"data:text/html;base64,PHNjcmlwdD4=", "#"},
		{"", "#"},
		{"   ", "#"},
		{`https://x.com/"onmouseover="`, "https://x.com/&quot;onmouseover=&quot;"},
	}
	for _, tt := range tests {
		if got := URL(tt.in); got != tt.want {
			t.Errorf("URL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
