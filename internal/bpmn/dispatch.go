package bpmn

import (
	"github.com/wharflab/dsf-lint/internal/classlookup"
	"github.com/wharflab/dsf-lint/internal/findings"
	"github.com/wharflab/dsf-lint/internal/plugindiscovery"
)

// DispatchContext carries everything a rule family needs beyond the model
// itself. One is constructed per plugin by the Orchestrator and passed
// explicitly through every call — never held in a package-level variable —
// per the "active API version is not global state" refactor directive.
type DispatchContext struct {
	// ActiveAPIVersion is the descriptor's API generation, fixed for the
	// whole plugin dispatch.
	ActiveAPIVersion plugindiscovery.APIVersion

	// Catalog resolves implementation-class references against the
	// project's compiled output and dependency archives.
	Catalog *classlookup.Catalog

	// KnownMessageNames, when non-nil, is the set of message names the
	// Orchestrator has already confirmed correspond to a known
	// ActivityDefinition/StructureDefinition. A nil map means that
	// cross-component knowledge was not wired for this run, and message
	// reference checks are skipped rather than reported as failures.
	KnownMessageNames map[string]bool

	// KnownQuestionnaires, when non-nil, is the set of Questionnaire
	// canonical references the Orchestrator has discovered. Same nil
	// convention as KnownMessageNames.
	KnownQuestionnaires map[string]bool

	// Emit receives every finding produced during dispatch.
	Emit func(findings.Finding)
}

func (ctx *DispatchContext) emit(f findings.Finding) {
	if ctx.Emit != nil {
		ctx.Emit(f)
	}
}

// Dispatch walks m in the fixed family order the rule dispatch contract
// requires, then runs floating-element analysis over the whole document.
func Dispatch(ctx *DispatchContext, m *Model, file string) {
	dispatchServiceTasks(ctx, m, file)
	dispatchSendTasks(ctx, m, file)
	dispatchEventFamily(ctx, m, file)
	dispatchGatewaysAndFlows(ctx, m, file)
	dispatchUserTasks(ctx, m, file)
	dispatchSubprocesses(ctx, m, file)
	dispatchProcesses(ctx, m, file)
	analyzeFloating(m, ctx.emit, file)
}
