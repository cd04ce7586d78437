package fhir

// KnownReference summarizes the identifying facts the Orchestrator needs
// from one already-loaded FHIR resource to build the cross-component
// knowledge sets BPMN dispatch checks against (bpmn.DispatchContext's
// KnownMessageNames/KnownQuestionnaires) and FHIR Task dispatch checks
// against (LintContext.KnownActivityDefinitions) — gathered once per
// resource up front, independently of running that resource's own rule set.
type KnownReference struct {
	Type        string
	ID          string
	MessageName string // set only for a Task carrying a message-name input value
}

// Identify extracts a KnownReference from r without dispatching any rules.
func Identify(r *Resource) KnownReference {
	kr := KnownReference{Type: r.Type(), ID: r.id()}
	if kr.Type == "Task" {
		kr.MessageName = taskMessageNameValue(r.root)
	}
	return kr
}

// taskMessageNameValue returns the value carried by the Task input whose
// type.coding has code "message-name" — the literal BPMN message name a
// receive task or message event correlates against, distinct from the
// "message-name" code itself which only marks which input holds it.
func taskMessageNameValue(root *elem) string {
	for _, input := range directChildren(root, "input") {
		typ := firstChild(input, "type")
		isMessageName := false
		for _, coding := range directChildren(typ, "coding") {
			if val(coding, "code") == "message-name" {
				isMessageName = true
			}
		}
		if !isMessageName {
			continue
		}
		for _, tag := range []string{"valueString", "valueCode", "valueId"} {
			if v := val(input, tag); v != "" {
				return v
			}
		}
	}
	return ""
}
