package bpmn

import (
	"regexp"

	"github.com/wharflab/dsf-lint/internal/findings"
)

// processIDPattern is the "domain_processname" naming convention (§4.8.1).
var processIDPattern = regexp.MustCompile(`^[a-z0-9]+_[A-Za-z0-9]+$`)

// dispatchProcesses runs the process-level family (§4.8.1): process id
// presence and naming convention.
func dispatchProcesses(ctx *DispatchContext, m *Model, file string) {
	for _, p := range m.Processes() {
		anchor := elemID(p)
		id := attr(p, "id")

		switch {
		case id == "":
			ctx.emit(findings.ProcessIDEmpty(file, anchor))
		case !processIDPattern.MatchString(id):
			ctx.emit(findings.ProcessIDInvalid(file, anchor, id))
		default:
			ctx.emit(findings.ProcessOK(file, anchor, id))
		}
	}
}
