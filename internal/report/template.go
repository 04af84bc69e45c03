package report

// SnapshotTemplate is the HTML page for a sentiment snapshot. It is
// embedded as a constant so rendering needs no files on disk.
const SnapshotTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  :root {
    --bg: #ffffff;
    --text: #1a1a2e;
    --muted: #6b7280;
    --border: #e5e7eb;
    --accent: #2563eb;
    --green: #16a34a;
    --red: #dc2626;
    --section-bg: #f8fafc;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.6;
    max-width: 900px;
    margin: 0 auto;
    padding: 20px;
  }
  h1 { font-size: 1.5rem; color: var(--accent); }
  h2 { font-size: 1.2rem; margin: 24px 0 12px; padding-bottom: 6px; border-bottom: 2px solid var(--accent); }
  .muted { color: var(--muted); font-size: 0.85rem; }
  .header { border-bottom: 3px solid var(--accent); padding-bottom: 12px; margin-bottom: 16px; }
  .ticker-badge {
    display: inline-block;
    background: var(--accent);
    color: white;
    padding: 2px 12px;
    border-radius: 4px;
    font-weight: 700;
    margin-right: 8px;
  }
  .stats { display: grid; grid-template-columns: repeat(4, 1fr); gap: 8px; background: var(--section-bg); padding: 12px; border-radius: 6px; }
  .stat .label { color: var(--muted); font-size: 0.8rem; }
  .stat .value { font-weight: 600; font-size: 1.1rem; }
  table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
  td { padding: 6px 8px; border-bottom: 1px solid var(--border); vertical-align: top; }
  .pos { color: var(--green); }
  .neg { color: var(--red); }
  .neu { color: var(--muted); }
  .score { font-family: monospace; white-space: nowrap; }
</style>
</head>
<body>
<div class="header">
  <h1><span class="ticker-badge">{{.Symbol}}</span>{{.Name}}</h1>
  <p class="muted">Source: {{.SourceMode}}{{if .Source}} via {{.Source}}{{end}}{{if .GeneratedAt}} | Generated {{.GeneratedAt}}{{end}}</p>
</div>

{{if eq .Count 0}}
<p>No news found.</p>
{{else}}
<div class="stats">
  <div class="stat"><div class="label">Items</div><div class="value">{{.Count}}</div></div>
  <div class="stat"><div class="label">Avg</div><div class="value">{{.Avg}}</div></div>
  <div class="stat"><div class="label">Median</div><div class="value">{{.Median}}</div></div>
  <div class="stat"><div class="label">Breakdown</div><div class="value"><span class="pos">+{{.Pos}}</span> / {{.Neu}} / <span class="neg">-{{.Neg}}</span></div></div>
</div>

<h2>Top {{.TopN}} recent items</h2>
<table>
{{range .Rows}}
  <tr>
    <td class="score {{.Class}}">[{{.Tag}} {{.Compound}}]</td>
    <td><a href="{{.Link}}">{{.Title}}</a><br><span class="muted">{{.Published}}{{if .Publisher}} | {{.Publisher}}{{end}}</span></td>
  </tr>
{{end}}
</table>
{{end}}
</body>
</html>
`
