package findings

// FlowElement builds a KindBPMNFlowElement finding for an element that is
// reachable from a process start event. sev is chosen by the calling rule:
// BPMN checks do not have a fixed per-SubType severity.
func FlowElement(sub SubType, sev Severity, file, anchor, processID, description string) Finding {
	return newFlowElement(KindBPMNFlowElement, sub, sev, file, description,
		WithAnchor(anchor), WithProcessID(processID))
}

// FloatingElement builds a KindBPMNFloatingElement finding for an element
// with no path from any process start event. Always WARN per §4.8: floating
// elements are suspicious but not fatal on their own.
func FloatingElement(file, anchor, processID string) Finding {
	return newFlowElement(KindBPMNFloatingElement, SubTypeFloatingElement, SeverityWarn, file,
		"element is not reachable from any process start event",
		WithAnchor(anchor), WithProcessID(processID))
}

// Success builds a KindBPMNSuccess finding: a rule examined the element and
// found nothing to report. Only emitted where the rule has positive-case text.
func Success(sub SubType, file, anchor, processID, description string) Finding {
	f := newFixed(KindBPMNSuccess, file, WithAnchor(anchor), WithProcessID(processID))
	f.SubType = sub
	f.Description = description
	return f
}

// BPMNUnparsable builds a KindBPMNUnparsable finding for a process model file
// that failed to parse.
func BPMNUnparsable(file, reason string) Finding {
	return newFixed(KindBPMNUnparsable, file, WithExtra("reason", reason))
}

// Service task family (§4.8.1).

func ServiceTaskClassMissing(file, anchor, processID string) Finding {
	return FlowElement(SubTypeServiceTaskClassMissing, SeverityError, file, anchor, processID,
		"service task has no implementation class configured")
}

func ServiceTaskClassNotFound(file, anchor, processID, class string) Finding {
	return addExtra(FlowElement(SubTypeServiceTaskClassNotFound, SeverityError, file, anchor, processID,
		"configured implementation class was not found on the resolved classpath"), "class", class)
}

func ServiceTaskClassWrongInterface(file, anchor, processID, class, expected string) Finding {
	f := FlowElement(SubTypeServiceTaskClassWrongInterface, SeverityError, file, anchor, processID,
		"implementation class does not implement the required interface")
	return addExtra(addExtra(f, "class", class), "expected", expected)
}

func ServiceTaskClassWrongBaseClass(file, anchor, processID, class, expected string) Finding {
	f := FlowElement(SubTypeServiceTaskClassWrongBaseClass, SeverityError, file, anchor, processID,
		"implementation class does not extend the required base class")
	return addExtra(addExtra(f, "class", class), "expected", expected)
}

func ServiceTaskNameEmpty(file, anchor, processID string) Finding {
	return FlowElement(SubTypeServiceTaskNameEmpty, SeverityWarn, file, anchor, processID,
		"service task has no name")
}

func ServiceTaskOK(file, anchor, processID string) Finding {
	return Success(SubTypeServiceTaskOK, file, anchor, processID,
		"service task implementation class resolved and satisfies the required contract")
}

// Send task family (§4.8.1).

func SendTaskClassMissing(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSendTaskClassMissing, SeverityError, file, anchor, processID,
		"send task has no implementation class configured")
}

func SendTaskClassWrongInterface(file, anchor, processID, class, expected string) Finding {
	f := FlowElement(SubTypeSendTaskClassWrongInterface, SeverityError, file, anchor, processID,
		"send task implementation class does not implement the required interface")
	return addExtra(addExtra(f, "class", class), "expected", expected)
}

func SendTaskClassWrongBaseClass(file, anchor, processID, class, expected string) Finding {
	f := FlowElement(SubTypeSendTaskClassWrongBaseClass, SeverityError, file, anchor, processID,
		"send task implementation class does not extend the required base class")
	return addExtra(addExtra(f, "class", class), "expected", expected)
}

func SendTaskFieldProfileMissing(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSendTaskFieldProfileMissing, SeverityError, file, anchor, processID,
		"send task is missing the profile field injection")
}

func SendTaskFieldProfileMissingVersionPlaceholder(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSendTaskFieldProfileMissingVersionPlaceholder, SeverityError, file, anchor, processID,
		"send task profile field does not reference the version placeholder")
}

func SendTaskFieldMessageNameMissing(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSendTaskFieldMessageNameMissing, SeverityError, file, anchor, processID,
		"send task is missing the message name field injection")
}

func SendTaskFieldInstantiatesCanonicalMissing(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSendTaskFieldInstantiatesCanonicalMissing, SeverityError, file, anchor, processID,
		"send task is missing the instantiatesCanonical field injection")
}

func SendTaskFieldInstantiatesCanonicalMissingVersionPlaceholder(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSendTaskFieldInstantiatesCanonicalMissingVersionPlaceholder, SeverityError, file, anchor, processID,
		"send task instantiatesCanonical field does not reference the version placeholder")
}

func SendTaskFieldValueIsExpression(file, anchor, processID, field string) Finding {
	return addExtra(FlowElement(SubTypeSendTaskFieldValueIsExpression, SeverityWarn, file, anchor, processID,
		"send task field injection value looks like an unresolved expression"), "field", field)
}

func SendTaskOK(file, anchor, processID string) Finding {
	return Success(SubTypeSendTaskOK, file, anchor, processID,
		"send task implementation and field injections are well formed")
}

// Message/receive event family (§4.8.1).

func MessageNameEmpty(file, anchor, processID string) Finding {
	return FlowElement(SubTypeMessageNameEmpty, SeverityError, file, anchor, processID,
		"message reference has no name")
}

func MessageUnknownReference(file, anchor, processID, messageRef string) Finding {
	return addExtra(FlowElement(SubTypeMessageUnknownReference, SeverityError, file, anchor, processID,
		"message reference does not resolve to a declared message"), "messageRef", messageRef)
}

func EventNameEmpty(file, anchor, processID string) Finding {
	return FlowElement(SubTypeEventNameEmpty, SeverityWarn, file, anchor, processID,
		"event has no name")
}

func MessageIntermediateThrowHasMessage(file, anchor, processID string) Finding {
	return FlowElement(SubTypeMessageIntermediateThrowHasMessage, SeverityInfo, file, anchor, processID,
		"intermediate throw event declares a message payload")
}

func MessageEventOK(file, anchor, processID string) Finding {
	return Success(SubTypeMessageEventOK, file, anchor, processID,
		"message event reference resolves and is well formed")
}

// Gateway and sequence flow family (§4.8.1).

func GatewayMultipleOutgoingNameEmpty(file, anchor, processID string) Finding {
	return FlowElement(SubTypeGatewayMultipleOutgoingNameEmpty, SeverityWarn, file, anchor, processID,
		"gateway has multiple outgoing flows but no name to disambiguate it in a diagram")
}

func GatewayOK(file, anchor, processID string) Finding {
	return Success(SubTypeGatewayOK, file, anchor, processID, "gateway is well formed")
}

func SequenceFlowNonDefaultMissingCondition(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSequenceFlowNonDefaultMissingCondition, SeverityError, file, anchor, processID,
		"non-default outgoing sequence flow from a gateway has no condition expression")
}

func SequenceFlowNonDefaultNameEmpty(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSequenceFlowNonDefaultNameEmpty, SeverityWarn, file, anchor, processID,
		"non-default sequence flow has no name")
}

func SequenceFlowDefaultHasCondition(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSequenceFlowDefaultHasCondition, SeverityWarn, file, anchor, processID,
		"default sequence flow declares a condition expression that will never be evaluated")
}

func SequenceFlowNoSourceNode(file, anchor, processID, sourceRef string) Finding {
	return addExtra(FlowElement(SubTypeSequenceFlowNoSourceNode, SeverityError, file, anchor, processID,
		"sequence flow's source reference does not resolve to any element in the process"), "sourceRef", sourceRef)
}

func SequenceFlowNoTargetNode(file, anchor, processID, targetRef string) Finding {
	return addExtra(FlowElement(SubTypeSequenceFlowNoTargetNode, SeverityError, file, anchor, processID,
		"sequence flow's target reference does not resolve to any element in the process"), "targetRef", targetRef)
}

func SequenceFlowOK(file, anchor, processID string) Finding {
	return Success(SubTypeSequenceFlowOK, file, anchor, processID, "sequence flow endpoints resolve")
}

// User task family (§4.8.1).

func UserTaskNameEmpty(file, anchor, processID string) Finding {
	return FlowElement(SubTypeUserTaskNameEmpty, SeverityWarn, file, anchor, processID, "user task has no name")
}

func UserTaskFormKeyEmpty(file, anchor, processID string) Finding {
	return FlowElement(SubTypeUserTaskFormKeyEmpty, SeverityError, file, anchor, processID,
		"user task has no form key configured")
}

func UserTaskFormKeyNotExternal(file, anchor, processID, formKey string) Finding {
	return addExtra(FlowElement(SubTypeUserTaskFormKeyNotExternal, SeverityWarn, file, anchor, processID,
		"user task form key does not use the external rendering scheme"), "formKey", formKey)
}

func UserTaskQuestionnaireNotFound(file, anchor, processID, questionnaireRef string) Finding {
	return addExtra(FlowElement(SubTypeUserTaskQuestionnaireNotFound, SeverityError, file, anchor, processID,
		"user task references a Questionnaire that was not found in the resolved resource root"), "questionnaireRef", questionnaireRef)
}

func UserTaskOK(file, anchor, processID string) Finding {
	return Success(SubTypeUserTaskOK, file, anchor, processID,
		"user task form key and referenced Questionnaire resolve")
}

// Subprocess family (§4.8.1).

func SubprocessMultiInstanceAsyncBeforeMissing(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSubprocessMultiInstanceAsyncBeforeMissing, SeverityWarn, file, anchor, processID,
		"multi-instance subprocess does not set asyncBefore, risking lost instances on a crash between iterations")
}

func SubprocessEndEventAsyncAfterMissing(file, anchor, processID string) Finding {
	return FlowElement(SubTypeSubprocessEndEventAsyncAfterMissing, SeverityInfo, file, anchor, processID,
		"subprocess end event does not set asyncAfter")
}

func SubprocessOK(file, anchor, processID string) Finding {
	return Success(SubTypeSubprocessOK, file, anchor, processID, "subprocess async markers are well formed")
}

// Process family (§4.8.1).

func ProcessIDEmpty(file, anchor string) Finding {
	return FlowElement(SubTypeProcessIDEmpty, SeverityError, file, anchor, "",
		"process element has no id")
}

func ProcessIDInvalid(file, anchor, processID string) Finding {
	return FlowElement(SubTypeProcessIDInvalid, SeverityError, file, anchor, processID,
		"process id does not match the required naming convention")
}

func ProcessOK(file, anchor, processID string) Finding {
	return Success(SubTypeProcessOK, file, anchor, processID, "process id is well formed")
}

// Execution listener family (§4.8.1), attachable to any element.

func ExecutionListenerClassMissing(file, anchor, processID string) Finding {
	return FlowElement(SubTypeExecutionListenerClassMissing, SeverityError, file, anchor, processID,
		"execution listener has no implementation class configured")
}

func ExecutionListenerClassNotFound(file, anchor, processID, class string) Finding {
	return addExtra(FlowElement(SubTypeExecutionListenerClassNotFound, SeverityError, file, anchor, processID,
		"execution listener implementation class was not found on the resolved classpath"), "class", class)
}

func ExecutionListenerWrongInterface(file, anchor, processID, class, expected string) Finding {
	f := FlowElement(SubTypeExecutionListenerWrongInterface, SeverityError, file, anchor, processID,
		"execution listener implementation class does not implement the required interface")
	return addExtra(addExtra(f, "class", class), "expected", expected)
}

func ExecutionListenerOK(file, anchor, processID string) Finding {
	return Success(SubTypeExecutionListenerOK, file, anchor, processID,
		"execution listener implementation class resolved and satisfies the required interface")
}

func addExtra(f Finding, key, value string) Finding {
	WithExtra(key, value)(&f)
	return f
}
