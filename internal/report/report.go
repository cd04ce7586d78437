// Package report holds the plain, serialization-only data model the
// Orchestrator produces and internal/reportrender turns into HTML/JSON/SARIF
// output. It carries no rendering or aggregation logic of its own.
package report

import "github.com/wharflab/dsf-lint/internal/findings"

// PluginReport is one discovered plugin's complete lint result.
type PluginReport struct {
	// Name is the plugin's unique, sanitized report name (see
	// internal/orchestrator/naming.go), not necessarily its descriptor's raw
	// getName() value.
	Name string `json:"name"`

	// APIVersion is the descriptor generation this plugin was discovered
	// under ("v1" or "v2").
	APIVersion string `json:"apiVersion"`

	// SourceClassName is the descriptor's fully-qualified class name.
	SourceClassName string `json:"sourceClassName"`

	// Findings is every finding produced while dispatching rules over this
	// plugin's BPMN and FHIR files plus its plugin-definition checks, in
	// dispatch order.
	Findings []findings.Finding `json:"findings"`

	// Leftovers lists resource-root files attributed to this plugin that no
	// descriptor reference resolved to (§4.10 step 6).
	Leftovers []string `json:"leftovers"`
}

// Counts tallies Findings by severity.
func (p PluginReport) Counts() SeverityCounts {
	var c SeverityCounts
	for _, f := range p.Findings {
		switch f.Severity {
		case findings.SeverityError:
			c.Error++
		case findings.SeverityWarn:
			c.Warn++
		case findings.SeverityInfo:
			c.Info++
		case findings.SeveritySuccess:
			c.Success++
		}
	}
	return c
}

// SeverityCounts is a per-severity tally used by report rendering summaries.
type SeverityCounts struct {
	Error   int `json:"error"`
	Warn    int `json:"warn"`
	Info    int `json:"info"`
	Success int `json:"success"`
}

// HasErrors reports whether any plugin in the aggregate carries an ERROR
// finding — the exit-code-1 condition absent --no-fail (§6).
func (a Aggregate) HasErrors() bool {
	for _, p := range a.Plugins {
		for _, f := range p.Findings {
			if f.Severity == findings.SeverityError {
				return true
			}
		}
	}
	return false
}

// Aggregate is the whole-run result: every discovered plugin's report, plus
// the metadata report rendering needs.
type Aggregate struct {
	Plugins     []PluginReport `json:"plugins"`
	GeneratedBy string         `json:"generatedBy"`
}
