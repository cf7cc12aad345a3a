package site

const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <header class="header">
    <div class="header-inner">
      <h1 class="title">{{.Title}}</h1>
      <p class="update-time" id="update-time">{{.Region "update-time"}}</p>
    </div>
    {{- with .Notice}}
    <div class="notice">{{.}}</div>
    {{- end}}
    <div class="stats">
      <div class="stat"><span class="stat-value" id="stat-github">{{.Region "stat-github"}}</span><span class="stat-label">Repositories</span></div>
      <div class="stat"><span class="stat-value" id="stat-hn">{{.Region "stat-hn"}}</span><span class="stat-label">Stories</span></div>
      <div class="stat"><span class="stat-value" id="stat-rss">{{.Region "stat-rss"}}</span><span class="stat-label">Articles</span></div>
    </div>
  </header>

  <nav class="nav" data-group="nav" data-event="section">
    {{- range .Nav}}
    <button class="nav-btn{{if $.Active "nav" .Key}} active{{end}}" data-key="{{.Key}}">{{.Label}}</button>
    {{- end}}
  </nav>

  <main class="content" data-group="content">
    <section id="github-section" class="content-section{{if .Active "content" "github"}} active{{end}}" data-key="github">
      <div class="tabs" data-group="language-tabs" data-event="language">
        {{- range .Languages}}
        <button class="tab-btn{{if $.Active "language-tabs" .Key}} active{{end}}" data-key="{{.Key}}">{{.Label}}</button>
        {{- end}}
      </div>
      <div class="list" id="github-list">{{.Region "github-list"}}</div>
    </section>

    <section id="hackernews-section" class="content-section{{if .Active "content" "hackernews"}} active{{end}}" data-key="hackernews">
      <div class="list" id="hackernews-list">{{.Region "hackernews-list"}}</div>
    </section>

    <section id="rss-section" class="content-section{{if .Active "content" "rss"}} active{{end}}" data-key="rss">
      <div class="sources" id="rss-sources" data-group="rss-sources" data-event="source">{{.Region "rss-sources"}}</div>
      <div class="list" id="rss-list">{{.Region "rss-list"}}</div>
    </section>
  </main>

  <script src="{{.Script}}"></script>
</body>
</html>
`

const cssContent = `:root {
  --bg: #f6f8fa;
  --card-bg: #ffffff;
  --text: #24292f;
  --text-muted: #57606a;
  --border: #d0d7de;
  --accent: #0969da;
  --accent-light: #ddf4ff;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

@media (prefers-color-scheme: dark) {
  :root {
    --bg: #0d1117;
    --card-bg: #161b22;
    --text: #c9d1d9;
    --text-muted: #8b949e;
    --border: #30363d;
    --accent: #58a6ff;
    --accent-light: #1f2a37;
    --shadow: 0 1px 3px rgba(0,0,0,0.4);
  }
}

*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.5;
}

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

.header { max-width: 960px; margin: 0 auto; padding: 2rem 1rem 1rem; }
.header-inner { display: flex; align-items: baseline; justify-content: space-between; flex-wrap: wrap; gap: 0.5rem; }
.title { font-size: 1.75rem; }
.update-time { color: var(--text-muted); font-size: 0.875rem; }
.notice { margin-top: 1rem; padding: 0.75rem 1rem; border-left: 3px solid var(--accent); background: var(--accent-light); }
.notice pre { overflow-x: auto; padding: 0.5rem; }

.stats { display: flex; gap: 1rem; margin-top: 1rem; }
.stat { flex: 1; background: var(--card-bg); border: 1px solid var(--border); border-radius: 6px; padding: 0.75rem; text-align: center; }
.stat-value { display: block; font-size: 1.5rem; font-weight: 600; }
.stat-label { color: var(--text-muted); font-size: 0.8rem; }

.nav, .tabs, .sources { display: flex; flex-wrap: wrap; gap: 0.5rem; }
.nav { max-width: 960px; margin: 0 auto; padding: 0 1rem 1rem; border-bottom: 1px solid var(--border); }
.tabs, .sources { margin-bottom: 1rem; }

.nav-btn, .tab-btn, .source-btn {
  border: 1px solid var(--border);
  background: var(--card-bg);
  color: var(--text);
  border-radius: 999px;
  padding: 0.35rem 0.9rem;
  cursor: pointer;
  font-size: 0.875rem;
}
.nav-btn.active, .tab-btn.active, .source-btn.active { background: var(--accent); border-color: var(--accent); color: #ffffff; }

.content { max-width: 960px; margin: 0 auto; padding: 1rem; }
.content-section { display: none; }
.content-section.active { display: block; }

.list { display: grid; gap: 0.75rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 6px; padding: 1rem; box-shadow: var(--shadow); }
.card-title { font-size: 1rem; margin-bottom: 0.25rem; }
.card-description { color: var(--text-muted); margin-bottom: 0.5rem; }
.card-meta { display: flex; flex-wrap: wrap; gap: 0.75rem; color: var(--text-muted); font-size: 0.8rem; }
.card-source { display: inline-block; font-size: 0.75rem; color: var(--accent); margin-bottom: 0.25rem; }
.language { border: 1px solid var(--border); border-radius: 999px; padding: 0 0.5rem; }

.loading { color: var(--text-muted); text-align: center; padding: 2rem; }

@media (max-width: 600px) {
  .stats { flex-direction: column; }
}
`

// liveJS drives the shell from a live session: every control sends its own
// key, and the server answers with region and group patches.
const liveJS = `(function() {
  "use strict";

  var socket = null;

  function applyRegions(regions) {
    (regions || []).forEach(function(r) {
      var el = document.getElementById(r.id);
      if (el) {
        el.innerHTML = r.html;
      }
    });
  }

  function applyGroups(groups) {
    (groups || []).forEach(function(g) {
      var container = document.querySelector('[data-group="' + g.id + '"]');
      if (!container) {
        return;
      }
      container.querySelectorAll(":scope > [data-key]").forEach(function(el) {
        el.classList.toggle("active", el.getAttribute("data-key") === g.active);
      });
    });
  }

  function connect() {
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    socket = new WebSocket(scheme + location.host + "/ws");
    socket.onmessage = function(ev) {
      var msg = JSON.parse(ev.data);
      switch (msg.type) {
        case "init":
        case "patch":
          applyRegions(msg.regions);
          applyGroups(msg.groups);
          break;
        case "error":
          console.warn("trendview: " + msg.message);
          break;
      }
    };
    socket.onclose = function() {
      socket = null;
    };
  }

  document.querySelectorAll("[data-event]").forEach(function(container) {
    container.addEventListener("click", function(ev) {
      var control = ev.target.closest("[data-key]");
      if (!control || control.parentElement !== container || !socket) {
        return;
      }
      socket.send(JSON.stringify({
        type: container.getAttribute("data-event"),
        value: control.getAttribute("data-key")
      }));
    });
  });

  connect();
})();
`

// staticJS drives an exported site: selector state lives in the page and
// fragments are fetched from the views manifest.
const staticJS = `(function() {
  "use strict";

  var manifest = null;

  function activeKey(group) {
    var el = document.querySelector('[data-group="' + group + '"] > .active');
    return el ? el.getAttribute("data-key") : "";
  }

  var state = {
    section: activeKey("content") || "github",
    language: activeKey("language-tabs") || "python",
    source: activeKey("rss-sources") || "all"
  };

  function activate(group, key) {
    var container = document.querySelector('[data-group="' + group + '"]');
    if (!container) {
      return;
    }
    container.querySelectorAll(":scope > [data-key]").forEach(function(el) {
      el.classList.toggle("active", el.getAttribute("data-key") === key);
    });
  }

  function viewKey(section) {
    if (section === "github") {
      return state.language;
    }
    if (section === "rss") {
      return state.source;
    }
    return "all";
  }

  // pending counts requests per region; only the latest response lands.
  var pending = {};

  function fetchView(path) {
    return fetch(path).then(function(resp) {
      if (resp.ok) {
        return resp.text();
      }
      if (path === manifest.empty) {
        throw new Error("empty view missing");
      }
      return fetchView(manifest.empty);
    });
  }

  function show(section) {
    var region = document.getElementById(section + "-list");
    if (!region || !manifest) {
      return;
    }
    var views = manifest.views[section] || {};
    var path = views[viewKey(section)] || manifest.empty;
    var seq = (pending[section] || 0) + 1;
    pending[section] = seq;
    fetchView(path)
      .then(function(html) {
        if (pending[section] === seq) {
          region.innerHTML = html;
        }
      })
      .catch(function(err) { console.error("trendview:", err); });
  }

  document.querySelectorAll("[data-event]").forEach(function(container) {
    container.addEventListener("click", function(ev) {
      var control = ev.target.closest("[data-key]");
      if (!control || control.parentElement !== container) {
        return;
      }
      var key = control.getAttribute("data-key");
      switch (container.getAttribute("data-event")) {
        case "section":
          state.section = key;
          activate("nav", key);
          activate("content", key);
          show(key);
          break;
        case "language":
          state.language = key;
          activate("language-tabs", key);
          show("github");
          break;
        case "source":
          state.source = key;
          activate("rss-sources", key);
          show("rss");
          break;
      }
    });
  });

  fetch("views/index.json")
    .then(function(resp) { return resp.json(); })
    .then(function(m) {
      manifest = m;
      show(state.section);
    })
    .catch(function(err) { console.error("trendview: manifest:", err); });
})();
`
