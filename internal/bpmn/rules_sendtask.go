package bpmn

import (
	"strings"

	"github.com/wharflab/dsf-lint/internal/findings"
)

const versionPlaceholder = "#{version}"

// dispatchSendTasks runs the send-task family (§4.8.1): implementation
// class conformance plus the three required field injections.
func dispatchSendTasks(ctx *DispatchContext, m *Model, file string) {
	contract, haveContract := contractFor(ctx.ActiveAPIVersion)

	for _, e := range m.SendTasks() {
		anchor := elemID(e)
		processID := enclosingProcessID(e)
		ok := true

		class := attr(e, "class")
		switch {
		case class == "":
			ctx.emit(findings.SendTaskClassMissing(file, anchor, processID))
			ok = false
		case haveContract && ctx.Catalog != nil && !ctx.Catalog.Implements(class, contract.SendTaskInterface):
			ctx.emit(findings.SendTaskClassWrongInterface(file, anchor, processID, class, contract.SendTaskInterface))
			ok = false
		case haveContract && ctx.Catalog != nil && contract.SendTaskBaseClass != "" && !ctx.Catalog.IsSubclassOf(class, contract.SendTaskBaseClass):
			ctx.emit(findings.SendTaskClassWrongBaseClass(file, anchor, processID, class, contract.SendTaskBaseClass))
			ok = false
		}

		f := fields(e)

		if !checkSendTaskField(ctx, f, "profile", file, anchor, processID,
			findings.SendTaskFieldProfileMissing,
			findings.SendTaskFieldProfileMissingVersionPlaceholder, true) {
			ok = false
		}
		if !checkSendTaskField(ctx, f, "messageName", file, anchor, processID,
			findings.SendTaskFieldMessageNameMissing, nil, false) {
			ok = false
		}
		if !checkSendTaskField(ctx, f, "instantiatesCanonical", file, anchor, processID,
			findings.SendTaskFieldInstantiatesCanonicalMissing,
			findings.SendTaskFieldInstantiatesCanonicalMissingVersionPlaceholder, true) {
			ok = false
		}

		if ok {
			ctx.emit(findings.SendTaskOK(file, anchor, processID))
		}

		dispatchExecutionListeners(ctx, e, file, processID)
	}
}

// checkSendTaskField validates one required field injection: present,
// non-expression, and (if requiresPlaceholder) carrying the version
// placeholder. Returns false if it emitted any finding.
func checkSendTaskField(
	ctx *DispatchContext, f map[string]string, name, file, anchor, processID string,
	missing func(file, anchor, processID string) findings.Finding,
	missingPlaceholder func(file, anchor, processID string) findings.Finding,
	requiresPlaceholder bool,
) bool {
	value, present := f[name]
	if !present || value == "" {
		ctx.emit(missing(file, anchor, processID))
		return false
	}
	if fieldIsExpression(value) {
		ctx.emit(findings.SendTaskFieldValueIsExpression(file, anchor, processID, name))
		return false
	}
	if requiresPlaceholder && missingPlaceholder != nil && !strings.Contains(value, versionPlaceholder) {
		ctx.emit(missingPlaceholder(file, anchor, processID))
		return false
	}
	return true
}
