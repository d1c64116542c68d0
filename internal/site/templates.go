package site

// pageTemplate is the Go html/template for every generated page. File pages
// carry both views pre-rendered; the index page carries the idle placeholder.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.ThemeID}}" data-accent="{{.AccentID}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .HasFile}}{{.Title}} &mdash; {{end}}{{.ProjectName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
  <link rel="stylesheet" href="{{.BasePath}}{{.HighlightSheet}}" id="highlight-css">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title"><a href="{{.BasePath}}index.html">{{.ProjectName}}</a></h2>
      <input type="text" id="search-input" placeholder="Filter files..." autocomplete="off">
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.TreeHTML}}
    </div>
    <div class="sidebar-resizer" id="sidebar-resizer"></div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      {{if .HasFile}}
      <div class="view-tabs" id="view-tabs">
        <button type="button" class="view-tab active" data-view="explanation">Explanation</button>
        <button type="button" class="view-tab" data-view="code">Code</button>
      </div>
      {{end}}
      <div class="top-bar-spacer"></div>
      <div class="picker" id="accent-picker">
        <button type="button" class="picker-button"><span class="accent-dot"></span>Accent</button>
        <div class="picker-menu" id="accent-menu"></div>
      </div>
      <div class="picker" id="theme-picker">
        <button type="button" class="picker-button">Theme</button>
        <div class="picker-menu" id="theme-menu"></div>
      </div>
    </div>
    <article class="page-content">
      {{if .HasFile}}
      <header class="file-header">
        <h1 class="file-path">{{.FilePath}}</h1>
        <span class="lang-badge">{{.Language}}</span>
      </header>
      <section class="view markdown-body active" id="view-explanation">
        {{.ExplanationHTML}}
      </section>
      <section class="view code-view" id="view-code">
        {{.CodeHTML}}
      </section>
      {{else}}
      <div class="empty-state">
        <svg width="48" height="48" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5">
          <path d="M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z"/><polyline points="14 2 14 8 20 8"/>
        </svg>
        <p>Select a file from the sidebar to view its documentation.</p>
      </div>
      {{end}}
    </article>
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the base stylesheet. The per-theme and per-accent variable
// blocks from the theme package are appended after it at generation time,
// and the :root block below doubles as the github/emerald fallback.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --bg-alt: #f6f8fa;
  --fg: #1f2328;
  --muted: #656d76;
  --border: #d1d9e0;
  --accent: #10b981;
  --accent-dim: #34d399;
  --sidebar-width: 280px;
}

* { box-sizing: border-box; }

html, body {
  margin: 0;
  padding: 0;
  height: 100%;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  font-size: 15px;
  background: var(--bg);
  color: var(--fg);
}

body { display: flex; }

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

/* ============ Sidebar ============ */
.sidebar {
  position: relative;
  width: var(--sidebar-width);
  min-width: var(--sidebar-width);
  height: 100vh;
  display: flex;
  flex-direction: column;
  background: var(--bg-alt);
  border-right: 1px solid var(--border);
}

.sidebar-header {
  padding: 16px;
  border-bottom: 1px solid var(--border);
}

.project-title {
  margin: 0 0 12px 0;
  font-size: 16px;
}
.project-title a { color: var(--fg); }
.project-title a:hover { color: var(--accent); text-decoration: none; }

#search-input {
  width: 100%;
  padding: 7px 10px;
  font-size: 13px;
  color: var(--fg);
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  outline: none;
}
#search-input:focus { border-color: var(--accent); }

.sidebar-tree {
  flex: 1;
  overflow-y: auto;
  padding: 8px 0;
}

.tree, .group-files {
  list-style: none;
  margin: 0;
  padding: 0;
}

.group { margin-bottom: 2px; }

.group-toggle {
  display: flex;
  align-items: center;
  gap: 6px;
  width: 100%;
  padding: 5px 12px;
  font-size: 12px;
  font-weight: 600;
  text-align: left;
  color: var(--muted);
  background: none;
  border: none;
  cursor: pointer;
}
.group-toggle:hover { color: var(--fg); }

.group-arrow {
  display: inline-block;
  width: 0;
  height: 0;
  border-left: 5px solid currentColor;
  border-top: 4px solid transparent;
  border-bottom: 4px solid transparent;
  transition: transform 0.12s ease;
}
.group.expanded > .group-toggle .group-arrow { transform: rotate(90deg); }

.group > .group-files { display: none; }
.group.expanded > .group-files { display: block; }

.file a {
  display: block;
  padding: 4px 12px 4px 28px;
  font-size: 13px;
  color: var(--fg);
  white-space: nowrap;
  overflow: hidden;
  text-overflow: ellipsis;
}
.file a:hover {
  background: var(--bg);
  color: var(--accent);
  text-decoration: none;
}
.file.active a {
  background: var(--bg);
  color: var(--accent);
  border-left: 3px solid var(--accent);
  padding-left: 25px;
  font-weight: 600;
}

.sidebar-resizer {
  position: absolute;
  top: 0;
  right: -3px;
  width: 6px;
  height: 100%;
  cursor: col-resize;
  z-index: 10;
}
.sidebar-resizer:hover, .resizing .sidebar-resizer { background: var(--accent-dim); }
body.resizing { user-select: none; cursor: col-resize; }

/* ============ Content ============ */
.content {
  flex: 1;
  height: 100vh;
  overflow-y: auto;
  display: flex;
  flex-direction: column;
}

.top-bar {
  position: sticky;
  top: 0;
  z-index: 20;
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 10px 20px;
  background: var(--bg);
  border-bottom: 1px solid var(--border);
}

.top-bar-spacer { flex: 1; }

.menu-toggle {
  display: none;
  padding: 4px;
  color: var(--fg);
  background: none;
  border: none;
  cursor: pointer;
}

.view-tabs {
  display: flex;
  gap: 2px;
  padding: 3px;
  background: var(--bg-alt);
  border-radius: 8px;
}

.view-tab {
  padding: 5px 14px;
  font-size: 13px;
  color: var(--muted);
  background: none;
  border: none;
  border-radius: 6px;
  cursor: pointer;
}
.view-tab:hover { color: var(--fg); }
.view-tab.active {
  color: var(--accent);
  background: var(--bg);
  font-weight: 600;
}

/* Hover-revealed pickers */
.picker { position: relative; }

.picker-button {
  display: flex;
  align-items: center;
  gap: 6px;
  padding: 5px 12px;
  font-size: 13px;
  color: var(--fg);
  background: var(--bg-alt);
  border: 1px solid var(--border);
  border-radius: 6px;
  cursor: pointer;
}
.picker-button:hover { border-color: var(--accent); }

.accent-dot {
  width: 10px;
  height: 10px;
  border-radius: 50%;
  background: var(--accent);
}

.picker-menu {
  display: none;
  position: absolute;
  right: 0;
  top: 100%;
  min-width: 170px;
  padding: 4px;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  box-shadow: 0 6px 18px rgba(0, 0, 0, 0.12);
}
.picker:hover .picker-menu { display: block; }

.picker-item {
  display: flex;
  align-items: center;
  gap: 8px;
  width: 100%;
  padding: 6px 10px;
  font-size: 13px;
  text-align: left;
  color: var(--fg);
  background: none;
  border: none;
  border-radius: 6px;
  cursor: pointer;
}
.picker-item:hover { background: var(--bg-alt); }
.picker-item.selected { color: var(--accent); font-weight: 600; }

.picker-swatch {
  width: 12px;
  height: 12px;
  border-radius: 50%;
}

/* ============ Page content ============ */
.page-content {
  flex: 1;
  padding: 24px 32px 64px;
  max-width: 1100px;
}

.file-header {
  display: flex;
  align-items: center;
  gap: 12px;
  margin-bottom: 20px;
  padding-bottom: 14px;
  border-bottom: 1px solid var(--border);
}

.file-path {
  margin: 0;
  font-size: 18px;
  font-family: "SF Mono", SFMono-Regular, Consolas, "Liberation Mono", Menlo, monospace;
}

.lang-badge {
  padding: 2px 10px;
  font-size: 12px;
  color: var(--accent);
  background: var(--bg-alt);
  border: 1px solid var(--border);
  border-radius: 10px;
}

.view { display: none; }
.view.active { display: block; }

/* ============ Markdown ============ */
.markdown-body { line-height: 1.65; }

.markdown-body h1, .markdown-body h2 {
  padding-bottom: 6px;
  border-bottom: 1px solid var(--border);
}

.markdown-body code {
  padding: 2px 6px;
  font-size: 0.9em;
  font-family: "SF Mono", SFMono-Regular, Consolas, "Liberation Mono", Menlo, monospace;
  background: var(--bg-alt);
  border-radius: 4px;
}

.markdown-body pre {
  padding: 14px;
  overflow-x: auto;
  background: var(--bg-alt);
  border: 1px solid var(--border);
  border-radius: 8px;
}
.markdown-body pre code {
  padding: 0;
  background: none;
  border-radius: 0;
}

.markdown-body blockquote {
  margin: 0;
  padding: 0 16px;
  color: var(--muted);
  border-left: 4px solid var(--accent);
}

.markdown-body table {
  width: 100%;
  margin: 16px 0;
  border-collapse: collapse;
  border: 1px solid var(--border);
}
.markdown-body th {
  padding: 8px 12px;
  text-align: left;
  background: var(--bg-alt);
  border-bottom: 2px solid var(--border);
}
.markdown-body td {
  padding: 8px 12px;
  border-top: 1px solid var(--border);
}
.markdown-body tbody tr:hover { background: var(--bg-alt); }

.markdown-body img { max-width: 100%; }

/* ============ Code view ============ */
.code-view pre {
  margin: 0;
  padding: 14px;
  overflow-x: auto;
  background: var(--bg-alt);
  border: 1px solid var(--border);
  border-radius: 8px;
  font-size: 13px;
  line-height: 1.5;
}
.code-view .ln, .code-view .lnt {
  margin-right: 12px;
  color: var(--muted);
  user-select: none;
}

/* ============ Empty state ============ */
.empty-state {
  display: flex;
  flex-direction: column;
  align-items: center;
  gap: 16px;
  margin-top: 18vh;
  color: var(--muted);
}

/* ============ Sidebar overlay (mobile) ============ */
.sidebar-overlay {
  display: none;
  position: fixed;
  inset: 0;
  z-index: 30;
  background: rgba(0, 0, 0, 0.45);
}

@media (max-width: 768px) {
  .menu-toggle { display: block; }
  .sidebar-resizer { display: none; }

  .sidebar {
    position: fixed;
    left: 0;
    top: 0;
    z-index: 40;
    width: 280px;
    min-width: 280px;
    transform: translateX(-100%);
    transition: transform 0.18s ease;
  }
  .sidebar.open { transform: translateX(0); }
  .sidebar-overlay.visible { display: block; }

  .page-content { padding: 16px; }
}`

// jsContent is the behavior script template. Delimiters are /*{ and }*/ so
// the placeholders read as comments to editors; the generator fills in the
// theme tables and layout bounds.
const jsContent = `(function() {
  'use strict';

  var HIGHLIGHT_STYLES = /*{.StyleMap}*/;
  var SIDEBAR_MIN = /*{.MinWidth}*/;
  var SIDEBAR_MAX = /*{.MaxWidth}*/;

  var root = document.documentElement;
  var sidebar = document.getElementById('sidebar');
  var overlay = document.getElementById('sidebar-overlay');

  /* ---------- Theme & accent ---------- */

  function applyTheme(id) {
    if (!(id in HIGHLIGHT_STYLES)) return;
    root.setAttribute('data-theme', id);
    var link = document.getElementById('highlight-css');
    if (link) {
      var href = link.getAttribute('href');
      link.setAttribute('href', href.replace(/highlight-[^\/]*\.css$/, 'highlight-' + HIGHLIGHT_STYLES[id] + '.css'));
    }
    markSelected('theme-menu', id);
  }

  function applyAccent(id) {
    root.setAttribute('data-accent', id);
    markSelected('accent-menu', id);
  }

  function markSelected(menuId, id) {
    var menu = document.getElementById(menuId);
    if (!menu) return;
    var items = menu.querySelectorAll('.picker-item');
    for (var i = 0; i < items.length; i++) {
      items[i].classList.toggle('selected', items[i].getAttribute('data-id') === id);
    }
  }

  function buildMenu(menuId, ids, labels, swatches, onPick) {
    var menu = document.getElementById(menuId);
    if (!menu) return;
    ids.forEach(function(id, i) {
      var btn = document.createElement('button');
      btn.type = 'button';
      btn.className = 'picker-item';
      btn.setAttribute('data-id', id);
      if (swatches && swatches[i]) {
        var dot = document.createElement('span');
        dot.className = 'picker-swatch';
        dot.style.background = swatches[i];
        btn.appendChild(dot);
      }
      btn.appendChild(document.createTextNode(labels[i]));
      btn.addEventListener('click', function() { onPick(id); });
      menu.appendChild(btn);
    });
  }

  var THEME_IDS = /*{.ThemeIDs}*/;
  var THEME_NAMES = /*{.ThemeNames}*/;
  var ACCENT_IDS = /*{.AccentIDs}*/;
  var ACCENT_NAMES = /*{.AccentNames}*/;
  var ACCENT_COLORS = /*{.AccentColors}*/;

  buildMenu('theme-menu', THEME_IDS, THEME_NAMES, null, applyTheme);
  buildMenu('accent-menu', ACCENT_IDS, ACCENT_NAMES, ACCENT_COLORS, applyAccent);
  markSelected('theme-menu', root.getAttribute('data-theme'));
  markSelected('accent-menu', root.getAttribute('data-accent'));

  /* ---------- View tabs ---------- */

  var tabs = document.querySelectorAll('.view-tab');
  for (var t = 0; t < tabs.length; t++) {
    tabs[t].addEventListener('click', function() {
      var view = this.getAttribute('data-view');
      for (var i = 0; i < tabs.length; i++) {
        tabs[i].classList.toggle('active', tabs[i] === this);
      }
      var sections = document.querySelectorAll('.view');
      for (var j = 0; j < sections.length; j++) {
        sections[j].classList.toggle('active', sections[j].id === 'view-' + view);
      }
    });
  }

  /* ---------- Folder collapse ---------- */

  var toggles = document.querySelectorAll('.group-toggle');
  for (var g = 0; g < toggles.length; g++) {
    toggles[g].addEventListener('click', function() {
      this.parentElement.classList.toggle('expanded');
    });
  }

  /* ---------- Sidebar search ---------- */

  var searchInput = document.getElementById('search-input');
  if (searchInput) {
    searchInput.addEventListener('input', function() {
      var term = this.value.toLowerCase();
      var groups = document.querySelectorAll('#sidebar-tree .group');
      for (var i = 0; i < groups.length; i++) {
        var files = groups[i].querySelectorAll('.file');
        var visible = 0;
        for (var j = 0; j < files.length; j++) {
          var name = files[j].querySelector('a').getAttribute('data-name') || '';
          var match = term === '' || name.indexOf(term) !== -1;
          files[j].style.display = match ? '' : 'none';
          if (match) visible++;
        }
        groups[i].style.display = visible > 0 ? '' : 'none';
      }
    });
  }

  /* ---------- Sidebar resize ---------- */

  var resizer = document.getElementById('sidebar-resizer');

  function onDragMove(e) {
    var w = Math.min(SIDEBAR_MAX, Math.max(SIDEBAR_MIN, e.clientX));
    root.style.setProperty('--sidebar-width', w + 'px');
  }

  function onDragEnd() {
    document.body.classList.remove('resizing');
    document.removeEventListener('mousemove', onDragMove);
    document.removeEventListener('mouseup', onDragEnd);
  }

  if (resizer) {
    resizer.addEventListener('mousedown', function(e) {
      e.preventDefault();
      document.body.classList.add('resizing');
      document.addEventListener('mousemove', onDragMove);
      document.addEventListener('mouseup', onDragEnd);
    });
  }

  /* ---------- Mobile sidebar ---------- */

  function closeSidebar() {
    sidebar.classList.remove('open');
    overlay.classList.remove('visible');
  }

  var menuToggle = document.getElementById('menu-toggle');
  if (menuToggle) {
    menuToggle.addEventListener('click', function() {
      sidebar.classList.toggle('open');
      overlay.classList.toggle('visible', sidebar.classList.contains('open'));
    });
  }
  if (overlay) {
    overlay.addEventListener('click', closeSidebar);
  }

  // Selecting a file dismisses the mobile sidebar.
  var tree = document.getElementById('sidebar-tree');
  if (tree) {
    tree.addEventListener('click', function(e) {
      if (e.target.closest('.file')) closeSidebar();
    });
  }
})();`
