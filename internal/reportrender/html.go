package reportrender

import (
	"html/template"
	"io"

	"github.com/wharflab/dsf-lint/internal/findings"
	"github.com/wharflab/dsf-lint/internal/report"
)

// RenderIndexHTML writes the aggregate index.html: one summary row per
// plugin linking to its own <plugin-name>.html detail page, matching the
// report directory layout (index.html + one file per plugin).
func RenderIndexHTML(w io.Writer, agg *report.Aggregate) error {
	data := indexData{GeneratedBy: agg.GeneratedBy}
	for _, p := range agg.Plugins {
		data.Plugins = append(data.Plugins, htmlPlugin{PluginReport: p, Counts: p.Counts()})
	}
	return indexTemplate.Execute(w, data)
}

// RenderPluginHTML writes one plugin's full finding detail as a standalone
// HTML page (<plugin-name>.html).
func RenderPluginHTML(w io.Writer, p report.PluginReport) error {
	return pluginTemplate.Execute(w, htmlPlugin{PluginReport: p, Counts: p.Counts()})
}

type indexData struct {
	GeneratedBy string
	Plugins     []htmlPlugin
}

type htmlPlugin struct {
	report.PluginReport
	Counts report.SeverityCounts
}

var htmlFuncs = template.FuncMap{
	"severityClass": func(s findings.Severity) string {
		switch s {
		case findings.SeverityError:
			return "sev-error"
		case findings.SeverityWarn:
			return "sev-warn"
		case findings.SeverityInfo:
			return "sev-info"
		case findings.SeveritySuccess:
			return "sev-success"
		default:
			return "sev-unknown"
		}
	},
	"htmlName": func(name string) string { return name + ".html" },
}

const htmlStyle = `
body { font-family: sans-serif; margin: 2rem; color: #1b1f23; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; margin-top: 0.5rem; }
th, td { border: 1px solid #d0d7de; padding: 0.4rem 0.6rem; text-align: left; font-size: 0.9rem; }
th { background: #f6f8fa; }
.counts span { margin-right: 1rem; font-weight: bold; }
.sev-error { color: #cf222e; }
.sev-warn { color: #9a6700; }
.sev-info { color: #0969da; }
.sev-success { color: #1a7f37; }
.leftovers { font-family: monospace; font-size: 0.85rem; }
`

var indexTemplate = template.Must(template.New("index").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>dsf-lint report</title><style>` + htmlStyle + `</style></head>
<body>
<h1>dsf-lint report{{if .GeneratedBy}} &mdash; {{.GeneratedBy}}{{end}}</h1>
<table>
<thead><tr><th>Plugin</th><th>API</th><th>Error</th><th>Warn</th><th>Info</th><th>Success</th></tr></thead>
<tbody>
{{range .Plugins}}
<tr>
<td><a href="{{htmlName .Name}}">{{.Name}}</a></td>
<td>{{.APIVersion}}</td>
<td class="sev-error">{{.Counts.Error}}</td>
<td class="sev-warn">{{.Counts.Warn}}</td>
<td class="sev-info">{{.Counts.Info}}</td>
<td class="sev-success">{{.Counts.Success}}</td>
</tr>
{{end}}
</tbody>
</table>
</body>
</html>
`))

var pluginTemplate = template.Must(template.New("plugin").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>dsf-lint report: {{.Name}}</title><style>` + htmlStyle + `</style></head>
<body>
<h1>{{.Name}} <small>({{.APIVersion}}, {{.SourceClassName}})</small></h1>
<p class="counts">
<span class="sev-error">{{.Counts.Error}} error</span>
<span class="sev-warn">{{.Counts.Warn}} warn</span>
<span class="sev-info">{{.Counts.Info}} info</span>
<span class="sev-success">{{.Counts.Success}} success</span>
</p>
{{if .Findings}}
<table>
<thead><tr><th>Severity</th><th>Kind</th><th>File</th><th>Anchor</th><th>Description</th></tr></thead>
<tbody>
{{range .Findings}}
<tr class="{{severityClass .Severity}}">
<td>{{.Severity}}</td>
<td>{{.Kind}}{{if .SubType}} / {{.SubType}}{{end}}</td>
<td>{{.File}}</td>
<td>{{.Anchor}}</td>
<td>{{.Description}}</td>
</tr>
{{end}}
</tbody>
</table>
{{else}}
<p>No findings.</p>
{{end}}
{{if .Leftovers}}
<p>Unreferenced resource-root files attributed to this plugin:</p>
<ul class="leftovers">
{{range .Leftovers}}<li>{{.}}</li>{{end}}
</ul>
{{end}}
</body>
</html>
`))
