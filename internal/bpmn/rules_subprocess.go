package bpmn

import (
	"github.com/beevik/etree"

	"github.com/wharflab/dsf-lint/internal/findings"
)

// dispatchSubprocesses runs the subprocess family (§4.8.1): multi-instance
// asyncBefore, and asyncAfter on every end event nested directly inside it.
func dispatchSubprocesses(ctx *DispatchContext, m *Model, file string) {
	for _, sp := range m.SubProcesses() {
		anchor := elemID(sp)
		processID := enclosingProcessID(sp)
		ok := true

		if isMultiInstance(sp) && attr(sp, "asyncBefore") != "true" {
			ctx.emit(findings.SubprocessMultiInstanceAsyncBeforeMissing(file, anchor, processID))
			ok = false
		}

		for _, end := range directChildren(sp, "endEvent") {
			if attr(end, "asyncAfter") != "true" {
				ctx.emit(findings.SubprocessEndEventAsyncAfterMissing(file, elemID(end), processID))
				ok = false
			}
		}

		if ok {
			ctx.emit(findings.SubprocessOK(file, anchor, processID))
		}

		dispatchExecutionListeners(ctx, sp, file, processID)
	}
}

func isMultiInstance(e *etree.Element) bool {
	return firstChild(e, "multiInstanceLoopCharacteristics") != nil
}
