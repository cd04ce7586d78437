package reportrender

import (
	"io"
	"path/filepath"
	"sort"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/wharflab/dsf-lint/internal/findings"
	"github.com/wharflab/dsf-lint/internal/report"
)

const (
	sarifToolName = "dsflint"
	sarifToolURI  = "https://github.com/wharflab/dsf-lint"
)

// RenderSARIF formats every plugin's findings as a single SARIF run, giving
// CI systems (GitHub code scanning) a second structured-ingestion path
// alongside RenderJSON. Not one of the spec-mandated formats; a supplemental
// mode no Non-goal excludes.
func RenderSARIF(w io.Writer, agg *report.Aggregate, toolVersion string) error {
	doc := sarif.NewReport()
	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	if toolVersion != "" {
		run.Tool.Driver.WithVersion(toolVersion)
	}

	ruleSet := make(map[string]findings.Finding)
	fileSet := make(map[string]struct{})

	for _, p := range agg.Plugins {
		for _, f := range p.Findings {
			ruleID := string(f.Kind)
			if _, exists := ruleSet[ruleID]; !exists {
				ruleSet[ruleID] = f
			}
			fileSet[filepath.ToSlash(f.File)] = struct{}{}
		}
	}

	ruleIDs := make([]string, 0, len(ruleSet))
	for id := range ruleSet {
		ruleIDs = append(ruleIDs, id)
	}
	sort.Strings(ruleIDs)
	for _, id := range ruleIDs {
		f := ruleSet[id]
		rule := run.AddRule(id)
		if f.Description != "" {
			rule.WithShortDescription(sarif.NewMultiformatMessageString().WithText(f.Description))
		}
	}

	files := make([]string, 0, len(fileSet))
	for file := range fileSet {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		if file != "" {
			run.AddDistinctArtifact(file)
		}
	}

	for _, p := range agg.Plugins {
		for _, f := range p.Findings {
			addSARIFResult(run, p, f)
		}
	}

	doc.AddRun(run)
	return doc.PrettyWrite(w)
}

func addSARIFResult(run *sarif.Run, p report.PluginReport, f findings.Finding) {
	message := f.Description
	if message == "" {
		message = string(f.Kind)
	}

	result := sarif.NewRuleResult(string(f.Kind)).
		WithMessage(sarif.NewTextMessage(message)).
		WithLevel(severityToSARIFLevel(f.Severity))

	if f.File == "" {
		return
	}
	physicalLocation := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewSimpleArtifactLocation(filepath.ToSlash(f.File)))
	result.WithLocations([]*sarif.Location{
		sarif.NewLocationWithPhysicalLocation(physicalLocation),
	})
	run.AddResult(result)
}

const (
	sarifLevelError   = "error"
	sarifLevelWarning = "warning"
	sarifLevelNote    = "note"
	sarifLevelNone    = "none"
)

// severityToSARIFLevel maps findings.Severity onto SARIF's four levels.
func severityToSARIFLevel(s findings.Severity) string {
	switch s {
	case findings.SeverityError:
		return sarifLevelError
	case findings.SeverityWarn:
		return sarifLevelWarning
	case findings.SeverityInfo:
		return sarifLevelNote
	case findings.SeveritySuccess:
		return sarifLevelNone
	default:
		return sarifLevelWarning
	}
}
