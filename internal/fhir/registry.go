package fhir

import (
	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

// LintContext carries everything a resource-type rule set needs beyond the
// resource itself. One is constructed per plugin by the Orchestrator and
// passed explicitly through every call, mirroring bpmn.DispatchContext.
type LintContext struct {
	// Codes resolves system/code pairs against the bootstrap vocabularies
	// plus whatever CodeSystem resources the plugin itself declares.
	Codes *codesystem.Cache

	// KnownActivityDefinitions, when non-nil, is the set of canonical
	// ActivityDefinition urls discovered elsewhere in the plugin. A nil map
	// means that cross-component knowledge was not wired for this run, and
	// instantiatesCanonical resolution checks are skipped rather than
	// reported as failures.
	KnownActivityDefinitions map[string]bool

	// Emit receives every finding produced during dispatch.
	Emit func(findings.Finding)
}

func (ctx *LintContext) emit(f findings.Finding) {
	if ctx.Emit != nil {
		ctx.Emit(f)
	}
}

// ResourceLinter traverses a single resource and reports findings against
// it. Registered per FHIR resource type in rules_<resource>.go via init().
type ResourceLinter func(ctx *LintContext, r *Resource, file string)

var linters = make(map[string]ResourceLinter)

// register adds a ResourceLinter for resourceType, called from each
// rules_<resource>.go file's init(). Panics on a duplicate registration,
// since that can only be a programming mistake, never plugin input.
func register(resourceType string, linter ResourceLinter) {
	if _, exists := linters[resourceType]; exists {
		panic("fhir: duplicate linter registration for " + resourceType)
	}
	linters[resourceType] = linter
}

// Dispatch looks up the registered linter for r's resource type and invokes
// it, or emits a single FHIRResourceTypeUnsupported finding if no rule set
// is registered for that type.
func Dispatch(ctx *LintContext, r *Resource, file string) {
	linter, ok := linters[r.Type()]
	if !ok {
		ctx.emit(findings.FHIRResourceTypeUnsupported(file, r.id(), r.Type()))
		return
	}
	linter(ctx, r, file)
}
