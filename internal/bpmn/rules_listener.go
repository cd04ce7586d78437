package bpmn

import (
	"github.com/beevik/etree"

	"github.com/wharflab/dsf-lint/internal/findings"
)

// dispatchExecutionListeners runs the execution-listener family (§4.8.1,
// "attachable to any element") over e's camunda:executionListener
// extensions.
func dispatchExecutionListeners(ctx *DispatchContext, e *etree.Element, file, processID string) {
	ext := extensionElementsOf(e)
	if ext == nil {
		return
	}
	anchor := elemID(e)
	contract, haveContract := contractFor(ctx.ActiveAPIVersion)

	for _, l := range directChildren(ext, "executionListener") {
		class := attr(l, "class")
		switch {
		case class == "":
			ctx.emit(findings.ExecutionListenerClassMissing(file, anchor, processID))
		case ctx.Catalog == nil || !ctx.Catalog.Exists(class):
			ctx.emit(findings.ExecutionListenerClassNotFound(file, anchor, processID, class))
		case haveContract && !ctx.Catalog.Implements(class, contract.ExecutionListenerInterface):
			ctx.emit(findings.ExecutionListenerWrongInterface(file, anchor, processID, class, contract.ExecutionListenerInterface))
		default:
			ctx.emit(findings.ExecutionListenerOK(file, anchor, processID))
		}
	}
}

// dispatchTaskListeners runs the user-task-listener family (§4.8.1's "Task
// listeners must have a class attribute; the class must exist and either
// extend the default listener base or implement the listener interface").
// There is no dedicated TaskListener finding family in the catalog — task
// listeners share the execution-listener Kind/SubType set, since the
// contract they're checked against (class presence, resolvability, base
// class or interface conformance) is structurally identical.
func dispatchTaskListeners(ctx *DispatchContext, e *etree.Element, file, processID string) {
	ext := extensionElementsOf(e)
	if ext == nil {
		return
	}
	anchor := elemID(e)
	contract, haveContract := contractFor(ctx.ActiveAPIVersion)

	for _, l := range directChildren(ext, "taskListener") {
		class := attr(l, "class")
		switch {
		case class == "":
			ctx.emit(findings.ExecutionListenerClassMissing(file, anchor, processID))
		case ctx.Catalog == nil || !ctx.Catalog.Exists(class):
			ctx.emit(findings.ExecutionListenerClassNotFound(file, anchor, processID, class))
		case haveContract && !taskListenerSatisfiesContract(ctx, class, contract):
			ctx.emit(findings.ExecutionListenerWrongInterface(file, anchor, processID, class, contract.TaskListenerInterface))
		default:
			ctx.emit(findings.ExecutionListenerOK(file, anchor, processID))
		}
	}
}

func taskListenerSatisfiesContract(ctx *DispatchContext, class string, contract versionContract) bool {
	if contract.TaskListenerBaseClass != "" && ctx.Catalog.IsSubclassOf(class, contract.TaskListenerBaseClass) {
		return true
	}
	return contract.TaskListenerInterface != "" && ctx.Catalog.Implements(class, contract.TaskListenerInterface)
}
