package reportrender

import (
	"encoding/json"
	"io"

	"github.com/wharflab/dsf-lint/internal/report"
)

// JSONOutput is the top-level structure for --json report output.
type JSONOutput struct {
	Plugins     []PluginJSON `json:"plugins"`
	Summary     Summary      `json:"summary"`
	GeneratedBy string       `json:"generatedBy"`
}

// PluginJSON is one plugin's JSON-rendered result.
type PluginJSON struct {
	report.PluginReport
	Summary report.SeverityCounts `json:"summary"`
}

// Summary is the run-wide aggregate tally across every plugin.
type Summary struct {
	Total   int `json:"total"`
	Error   int `json:"error"`
	Warn    int `json:"warn"`
	Info    int `json:"info"`
	Success int `json:"success"`
	Plugins int `json:"plugins"`
}

// RenderJSON writes agg as indented JSON, mirroring the stable finding keys
// (kind, subType, severity, description, file, anchor, processId,
// resourceId, extra) agg.Plugins[*].Findings already carries.
func RenderJSON(w io.Writer, agg *report.Aggregate) error {
	out := JSONOutput{
		Plugins:     make([]PluginJSON, 0, len(agg.Plugins)),
		GeneratedBy: agg.GeneratedBy,
	}
	for _, p := range agg.Plugins {
		counts := p.Counts()
		out.Plugins = append(out.Plugins, PluginJSON{PluginReport: p, Summary: counts})
		out.Summary.Error += counts.Error
		out.Summary.Warn += counts.Warn
		out.Summary.Info += counts.Info
		out.Summary.Success += counts.Success
	}
	out.Summary.Total = out.Summary.Error + out.Summary.Warn + out.Summary.Info + out.Summary.Success
	out.Summary.Plugins = len(agg.Plugins)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// RenderPluginJSON writes one plugin's findings/leftovers/summary as a
// standalone JSON document (<plugin-name>.json per the report directory
// layout's per-plugin --json output).
func RenderPluginJSON(w io.Writer, p report.PluginReport) error {
	out := PluginJSON{PluginReport: p, Summary: p.Counts()}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
