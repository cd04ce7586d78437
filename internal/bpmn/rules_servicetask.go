package bpmn

import "github.com/wharflab/dsf-lint/internal/findings"

// dispatchServiceTasks runs the service-task family (§4.8.1).
func dispatchServiceTasks(ctx *DispatchContext, m *Model, file string) {
	contract, haveContract := contractFor(ctx.ActiveAPIVersion)

	for _, e := range m.ServiceTasks() {
		anchor := elemID(e)
		processID := enclosingProcessID(e)
		ok := true

		class := attr(e, "class")
		switch {
		case class == "":
			ctx.emit(findings.ServiceTaskClassMissing(file, anchor, processID))
			ok = false
		case ctx.Catalog == nil || !ctx.Catalog.Exists(class):
			ctx.emit(findings.ServiceTaskClassNotFound(file, anchor, processID, class))
			ok = false
		case haveContract && !ctx.Catalog.Implements(class, contract.ServiceTaskInterface):
			ctx.emit(findings.ServiceTaskClassWrongInterface(file, anchor, processID, class, contract.ServiceTaskInterface))
			ok = false
		case haveContract && contract.ServiceTaskBaseClass != "" && !ctx.Catalog.IsSubclassOf(class, contract.ServiceTaskBaseClass):
			ctx.emit(findings.ServiceTaskClassWrongBaseClass(file, anchor, processID, class, contract.ServiceTaskBaseClass))
			ok = false
		}

		if attr(e, "name") == "" {
			ctx.emit(findings.ServiceTaskNameEmpty(file, anchor, processID))
			ok = false
		}

		if ok {
			ctx.emit(findings.ServiceTaskOK(file, anchor, processID))
		}

		dispatchExecutionListeners(ctx, e, file, processID)
	}
}
