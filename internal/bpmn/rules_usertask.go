package bpmn

import (
	"strings"

	"github.com/wharflab/dsf-lint/internal/findings"
)

// dispatchUserTasks runs the user-task family (§4.8.1): name, formKey
// scheme, Questionnaire reference, and task listeners.
func dispatchUserTasks(ctx *DispatchContext, m *Model, file string) {
	for _, e := range m.UserTasks() {
		anchor := elemID(e)
		processID := enclosingProcessID(e)
		ok := true

		if attr(e, "name") == "" {
			ctx.emit(findings.UserTaskNameEmpty(file, anchor, processID))
			ok = false
		}

		formKey := attr(e, "formKey")
		switch {
		case formKey == "":
			ctx.emit(findings.UserTaskFormKeyEmpty(file, anchor, processID))
			ok = false
		case !isExternalFormKey(formKey):
			ctx.emit(findings.UserTaskFormKeyNotExternal(file, anchor, processID, formKey))
			ok = false
		default:
			if ref := questionnaireRefFromFormKey(formKey); ref != "" &&
				ctx.KnownQuestionnaires != nil && !ctx.KnownQuestionnaires[ref] {
				ctx.emit(findings.UserTaskQuestionnaireNotFound(file, anchor, processID, ref))
				ok = false
			}
		}

		if ok {
			ctx.emit(findings.UserTaskOK(file, anchor, processID))
		}

		dispatchTaskListeners(ctx, e, file, processID)
		dispatchExecutionListeners(ctx, e, file, processID)
	}
}

// isExternalFormKey reports whether formKey uses one of the three accepted
// rendering schemes (§4.8.1).
func isExternalFormKey(formKey string) bool {
	return strings.HasPrefix(formKey, "external:") ||
		strings.HasPrefix(formKey, "http://") ||
		strings.HasPrefix(formKey, "https://")
}

func questionnaireRefFromFormKey(formKey string) string {
	return strings.TrimPrefix(formKey, "external:")
}
