package live

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/trendview/internal/controller"
	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/snapshot"
)

const sampleJSON = `{
  "updated_at": "2025-01-15T08:30:00",
  "github_trending": {
    "python": [{"name":"x","url":"https://github.com/x","stars":"5","stars_today":"1","forks":"0","language":"Python"}],
    "go": [{"name":"g1","url":"https://github.com/g1","stars":"7","stars_today":"2","forks":"1","language":"Go"}]
  },
  "hackernews": [{"title":"HN one","url":"https://a.com","score":10,"hn_url":"https://news.ycombinator.com/item?id=1","comments":3,"author":"pg","time":"1h"}],
  "rss_feeds": [
    {"source":"Go Blog","title":"A","url":"https://go.dev/a","author":"Rob","published":"p1"},
    {"source":"InfoQ","title":"B","url":"https://infoq.com/b","author":"Unknown","published":"p2"}
  ],
  "statistics": {"github_repos": 2, "hackernews_stories": 1, "rss_articles": 2}
}`

type message struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Regions   []struct {
		ID   string `json:"id"`
		HTML string `json:"html"`
	} `json:"regions"`
	Groups []struct {
		ID     string `json:"id"`
		Active string `json:"active"`
	} `json:"groups"`
	Message string `json:"message"`
}

func (m message) region(id string) (string, bool) {
	for _, r := range m.Regions {
		if r.ID == id {
			return r.HTML, true
		}
	}
	return "", false
}

func (m message) group(id string) (string, bool) {
	for _, g := range m.Groups {
		if g.ID == id {
			return g.Active, true
		}
	}
	return "", false
}

func decodeSample(t *testing.T) *snapshot.Snapshot {
	t.Helper()
	snap, err := snapshot.Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	return snap
}

func dial(t *testing.T, store *loader.Store) *websocket.Conn {
	t.Helper()
	return dialHandler(t, NewHandler(store, controller.Options{Languages: []string{"python", "go"}}, false))
}

func dialHandler(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var m message
	if err := conn.ReadJSON(&m); err != nil {
		t.Fatalf("read: %v", err)
	}
	return m
}

func send(t *testing.T, conn *websocket.Conn, typ, value string) {
	t.Helper()
	if err := conn.WriteJSON(clientMessage{Type: typ, Value: value}); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestInitLoaded(t *testing.T) {
	store := loader.NewStore()
	store.Set(decodeSample(t))
	conn := dial(t, store)

	init := read(t, conn)
	if init.Type != TypeInit {
		t.Fatalf("first message type = %q, want init", init.Type)
	}
	if init.SessionID == "" {
		t.Error("init should carry a session id")
	}
	if len(init.Regions) != 8 || len(init.Groups) != 4 {
		t.Errorf("init has %d regions and %d groups", len(init.Regions), len(init.Groups))
	}
	if html, _ := init.region("github-list"); !strings.Contains(html, "https://github.com/x") {
		t.Errorf("github-list = %q", html)
	}
	if active, _ := init.group("nav"); active != "github" {
		t.Errorf("nav active = %q", active)
	}
}

func TestLanguagePatch(t *testing.T) {
	store := loader.NewStore()
	store.Set(decodeSample(t))
	conn := dial(t, store)
	init := read(t, conn)

	send(t, conn, TypeLanguage, "go")
	patch := read(t, conn)
	if patch.Type != TypePatch || patch.SessionID != init.SessionID {
		t.Fatalf("patch = %+v", patch)
	}
	if len(patch.Regions) != 1 {
		t.Errorf("only the github list should change, got %d regions", len(patch.Regions))
	}
	if html, ok := patch.region("github-list"); !ok || !strings.Contains(html, "https://github.com/g1") {
		t.Errorf("github-list = %q", html)
	}
	if active, ok := patch.group("language-tabs"); !ok || active != "go" {
		t.Errorf("language-tabs active = %q", active)
	}
	if _, ok := patch.group("nav"); ok {
		t.Error("nav should not change on a language switch")
	}
}

func TestSectionAndSourcePatch(t *testing.T) {
	store := loader.NewStore()
	store.Set(decodeSample(t))
	conn := dial(t, store)
	read(t, conn)

	send(t, conn, TypeSection, "rss")
	patch := read(t, conn)
	if html, ok := patch.region("rss-list"); !ok || strings.Count(html, `<div class="card">`) != 2 {
		t.Errorf("rss-list = %q", html)
	}
	if active, _ := patch.group("content"); active != "rss" {
		t.Errorf("content active = %q", active)
	}

	send(t, conn, TypeSource, "InfoQ")
	patch = read(t, conn)
	html, ok := patch.region("rss-list")
	if !ok || strings.Count(html, `<div class="card">`) != 1 || !strings.Contains(html, "https://infoq.com/b") {
		t.Errorf("filtered rss-list = %q", html)
	}
	if active, _ := patch.group("rss-sources"); active != "InfoQ" {
		t.Errorf("rss-sources active = %q", active)
	}
}

func TestUnknownAndInvalidMessages(t *testing.T) {
	store := loader.NewStore()
	store.Set(decodeSample(t))
	conn := dial(t, store)
	read(t, conn)

	send(t, conn, "reload", "")
	if m := read(t, conn); m.Type != TypeError || !strings.Contains(m.Message, "reload") {
		t.Errorf("unknown type reply = %+v", m)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if m := read(t, conn); m.Type != TypeError {
		t.Errorf("invalid message reply = %+v", m)
	}

	// The session keeps working after errors.
	send(t, conn, TypeLanguage, "go")
	if m := read(t, conn); m.Type != TypePatch {
		t.Errorf("expected a patch after errors, got %+v", m)
	}
}

func TestSessionReceivesLateLoad(t *testing.T) {
	store := loader.NewStore()
	conn := dial(t, store)

	init := read(t, conn)
	if html, _ := init.region("github-list"); html != `<div class="loading">Loading data</div>` {
		t.Fatalf("github-list while loading = %q", html)
	}

	store.Set(decodeSample(t))
	patch := read(t, conn)
	if patch.Type != TypePatch {
		t.Fatalf("expected a patch once loaded, got %+v", patch)
	}
	if html, _ := patch.region("github-list"); !strings.Contains(html, "https://github.com/x") {
		t.Errorf("github-list after load = %q", html)
	}
	if stat, _ := patch.region("stat-github"); stat != "2" {
		t.Errorf("stat-github = %q", stat)
	}
}

func TestSessionReceivesLateFailure(t *testing.T) {
	store := loader.NewStore()
	conn := dial(t, store)
	read(t, conn)

	store.Fail(&loader.LoadFailure{Location: "x", Status: 500})
	patch := read(t, conn)
	if len(patch.Regions) != 3 {
		t.Errorf("failure should update the three lists, got %d regions", len(patch.Regions))
	}
	for _, r := range patch.Regions {
		if !strings.Contains(r.HTML, "Failed to load data") {
			t.Errorf("%s = %q", r.ID, r.HTML)
		}
	}
}

func TestSessionLoadBetweenInitAndLoop(t *testing.T) {
	store := loader.NewStore()
	snap := decodeSample(t)
	h := NewHandler(store, controller.Options{Languages: []string{"python", "go"}}, false)
	h.afterInit = func() { store.Set(snap) }
	conn := dialHandler(t, h)

	init := read(t, conn)
	if html, _ := init.region("github-list"); html != `<div class="loading">Loading data</div>` {
		t.Fatalf("github-list at init = %q", html)
	}

	patch := read(t, conn)
	if patch.Type != TypePatch {
		t.Fatalf("expected a patch for the load that landed during init, got %+v", patch)
	}
	if html, _ := patch.region("github-list"); !strings.Contains(html, "https://github.com/x") {
		t.Errorf("github-list after load = %q", html)
	}
}

func TestNoPatchWhenLoadedBeforeInit(t *testing.T) {
	store := loader.NewStore()
	store.Set(decodeSample(t))
	conn := dial(t, store)
	read(t, conn)

	// The closed Ready channel must not produce a spurious patch; the next
	// message is the reply to our own request.
	send(t, conn, TypeLanguage, "go")
	patch := read(t, conn)
	if _, ok := patch.region("github-list"); !ok || len(patch.Regions) != 1 {
		t.Errorf("expected only the language patch, got %+v", patch)
	}
}
