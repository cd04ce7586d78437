package findings

// Kind is the stable identifier of a finding, serialized verbatim in report
// JSON. The catalog is closed: every value a dispatcher can produce is listed
// here, grouped by the component that emits it.
type Kind string

const (
	// KindUnknown is the catch-all for a rule that failed internally (a panic
	// recovered by the dispatcher, or a malformed element the rule did not
	// anticipate). Never returned by a well-behaved rule.
	KindUnknown Kind = "UNKNOWN"

	// KindBPMNUnparsable is emitted when a process model's XML cannot be
	// parsed at all; no further BPMN rules run for that file.
	KindBPMNUnparsable Kind = "BPMN_UNPARSABLE"

	// KindBPMNFlowElement carries any BPMN flow-element rule outcome.
	// Severity and SubType are supplied by the caller; see bpmn_kinds.go.
	KindBPMNFlowElement Kind = "BPMN_FLOW_ELEMENT"

	// KindBPMNFloatingElement carries flow elements unreachable from any
	// process start event. Severity and SubType are supplied by the caller.
	KindBPMNFloatingElement Kind = "BPMN_FLOATING_ELEMENT"

	// KindBPMNSuccess records a BPMN rule that examined an element and found
	// nothing to report.
	KindBPMNSuccess Kind = "BPMN_SUCCESS"

	// KindFHIRUnparsable is emitted when a FHIR resource (XML or JSON) cannot
	// be parsed or translated into the tree form the rules consume.
	KindFHIRUnparsable Kind = "FHIR_UNPARSABLE"

	// KindFHIRResourceTypeUnsupported is emitted (INFO) for resource types the
	// catalog has no rule set for; the resource is otherwise ignored.
	KindFHIRResourceTypeUnsupported Kind = "FHIR_RESOURCE_TYPE_UNSUPPORTED"

	// ActivityDefinition (§4.9).
	KindFHIRADURLPrefixInvalid              Kind = "FHIR_AD_URL_PREFIX_INVALID"
	KindFHIRADStatusNotUnknown               Kind = "FHIR_AD_STATUS_NOT_UNKNOWN"
	KindFHIRADKindNotTask                    Kind = "FHIR_AD_KIND_NOT_TASK"
	KindFHIRADReadAccessTagMissing            Kind = "FHIR_AD_READ_ACCESS_TAG_MISSING"
	KindFHIRADReadAccessTagInvalidCode        Kind = "FHIR_AD_READ_ACCESS_TAG_INVALID_CODE"
	KindFHIRADProcessAuthorizationMissing     Kind = "FHIR_AD_PROCESS_AUTHORIZATION_MISSING"
	KindFHIRADProcessAuthorizationRequesterCount Kind = "FHIR_AD_PROCESS_AUTHORIZATION_REQUESTER_COUNT"
	KindFHIRADProcessAuthorizationRecipientCount Kind = "FHIR_AD_PROCESS_AUTHORIZATION_RECIPIENT_COUNT"
	KindFHIRADProcessAuthorizationCodeInvalid Kind = "FHIR_AD_PROCESS_AUTHORIZATION_CODE_INVALID"
	KindFHIRADProfileVersionSuffixPresent     Kind = "FHIR_AD_PROFILE_VERSION_SUFFIX_PRESENT"

	// StructureDefinition (§4.9).
	KindFHIRSDVersionPlaceholderMissing Kind = "FHIR_SD_VERSION_PLACEHOLDER_MISSING"
	KindFHIRSDDatePlaceholderMissing    Kind = "FHIR_SD_DATE_PLACEHOLDER_MISSING"
	KindFHIRSDSnapshotPresent           Kind = "FHIR_SD_SNAPSHOT_PRESENT"
	KindFHIRSDDifferentialMissing       Kind = "FHIR_SD_DIFFERENTIAL_MISSING"
	KindFHIRSDElementIDDuplicate        Kind = "FHIR_SD_ELEMENT_ID_DUPLICATE"
	KindFHIRSDSliceMaxExceedsBase       Kind = "FHIR_SD_SLICE_MAX_EXCEEDS_BASE"
	KindFHIRSDSliceMinSumBelowBase      Kind = "FHIR_SD_SLICE_MIN_SUM_BELOW_BASE"
	KindFHIRSDSliceMinSumAboveBase      Kind = "FHIR_SD_SLICE_MIN_SUM_ABOVE_BASE"
	KindFHIRSDSliceMinBelowBasePerSlice Kind = "FHIR_SD_SLICE_MIN_BELOW_BASE_PER_SLICE"

	// Task (§4.9).
	KindFHIRTaskStatusInvalid                          Kind = "FHIR_TASK_STATUS_INVALID"
	KindFHIRTaskIntentInvalid                           Kind = "FHIR_TASK_INTENT_INVALID"
	KindFHIRTaskRequesterSystemInvalid                  Kind = "FHIR_TASK_REQUESTER_SYSTEM_INVALID"
	KindFHIRTaskRecipientSystemInvalid                  Kind = "FHIR_TASK_RECIPIENT_SYSTEM_INVALID"
	KindFHIRTaskAuthoredOnPlaceholderMissing            Kind = "FHIR_TASK_AUTHOREDON_PLACEHOLDER_MISSING"
	KindFHIRTaskRequesterValuePlaceholderMissing        Kind = "FHIR_TASK_REQUESTER_VALUE_PLACEHOLDER_MISSING"
	KindFHIRTaskRecipientValuePlaceholderMissing        Kind = "FHIR_TASK_RECIPIENT_VALUE_PLACEHOLDER_MISSING"
	KindFHIRTaskInstantiatesCanonicalUnknown            Kind = "FHIR_TASK_INSTANTIATES_CANONICAL_UNKNOWN"
	KindFHIRTaskInstantiatesCanonicalVersionPlaceholderMissing Kind = "FHIR_TASK_INSTANTIATES_CANONICAL_VERSION_PLACEHOLDER_MISSING"
	KindFHIRTaskInputMessageNameCountInvalid            Kind = "FHIR_TASK_INPUT_MESSAGE_NAME_COUNT_INVALID"
	KindFHIRTaskBusinessKeyMissing                      Kind = "FHIR_TASK_BUSINESS_KEY_MISSING"
	KindFHIRTaskBusinessKeyPresentInDraft                Kind = "FHIR_TASK_BUSINESS_KEY_PRESENT_IN_DRAFT"
	KindFHIRTaskBusinessKeyCheckSkipped                  Kind = "FHIR_TASK_BUSINESS_KEY_CHECK_SKIPPED"
	KindFHIRTaskCorrelationKeyPresentInDraft              Kind = "FHIR_TASK_CORRELATION_KEY_PRESENT_IN_DRAFT"
	KindFHIRTaskInputCardinalityInvalid                  Kind = "FHIR_TASK_INPUT_CARDINALITY_INVALID"
	KindFHIRTaskTypeCodingUnknown                        Kind = "FHIR_TASK_TYPE_CODING_UNKNOWN"

	// ValueSet (§4.9).
	KindFHIRVSFieldMissing                    Kind = "FHIR_VS_FIELD_MISSING"
	KindFHIRVSVersionPlaceholderMissing       Kind = "FHIR_VS_VERSION_PLACEHOLDER_MISSING"
	KindFHIRVSDatePlaceholderMissing          Kind = "FHIR_VS_DATE_PLACEHOLDER_MISSING"
	KindFHIRVSComposeIncludeMissing           Kind = "FHIR_VS_COMPOSE_INCLUDE_MISSING"
	KindFHIRVSIncludeSystemMissing            Kind = "FHIR_VS_INCLUDE_SYSTEM_MISSING"
	KindFHIRVSIncludeVersionPlaceholderMissing Kind = "FHIR_VS_INCLUDE_VERSION_PLACEHOLDER_MISSING"
	KindFHIRVSConceptCodeMissing              Kind = "FHIR_VS_CONCEPT_CODE_MISSING"
	KindFHIRVSConceptCodeDuplicate            Kind = "FHIR_VS_CONCEPT_CODE_DUPLICATE"
	KindFHIRVSFalseURLReferenced              Kind = "FHIR_VS_FALSE_URL_REFERENCED"
	KindFHIRVSUnknownCode                     Kind = "FHIR_VS_UNKNOWN_CODE"
	KindFHIRVSReadAccessTagMissing            Kind = "FHIR_VS_READ_ACCESS_TAG_MISSING"

	// CodeSystem (§4.9).
	KindFHIRCSFieldMissing              Kind = "FHIR_CS_FIELD_MISSING"
	KindFHIRCSStatusNotUnknown          Kind = "FHIR_CS_STATUS_NOT_UNKNOWN"
	KindFHIRCSConceptMissing            Kind = "FHIR_CS_CONCEPT_MISSING"
	KindFHIRCSConceptDisplayMissing      Kind = "FHIR_CS_CONCEPT_DISPLAY_MISSING"
	KindFHIRCSConceptCodeDuplicate       Kind = "FHIR_CS_CONCEPT_CODE_DUPLICATE"
	KindFHIRCSVersionPlaceholderMissing  Kind = "FHIR_CS_VERSION_PLACEHOLDER_MISSING"
	KindFHIRCSDatePlaceholderMissing     Kind = "FHIR_CS_DATE_PLACEHOLDER_MISSING"

	// Questionnaire (§4.9).
	KindFHIRQProfileMissing            Kind = "FHIR_Q_PROFILE_MISSING"
	KindFHIRQReadAccessTagMissing       Kind = "FHIR_Q_READ_ACCESS_TAG_MISSING"
	KindFHIRQStatusInvalid              Kind = "FHIR_Q_STATUS_INVALID"
	KindFHIRQVersionPlaceholderMissing  Kind = "FHIR_Q_VERSION_PLACEHOLDER_MISSING"
	KindFHIRQDatePlaceholderMissing     Kind = "FHIR_Q_DATE_PLACEHOLDER_MISSING"
	KindFHIRQItemMissing                Kind = "FHIR_Q_ITEM_MISSING"
	KindFHIRQItemLinkIDMissing          Kind = "FHIR_Q_ITEM_LINKID_MISSING"
	KindFHIRQItemLinkIDDuplicate        Kind = "FHIR_Q_ITEM_LINKID_DUPLICATE"
	KindFHIRQItemLinkIDNotKebabCase     Kind = "FHIR_Q_ITEM_LINKID_NOT_KEBAB_CASE"
	KindFHIRQItemTypeMissing            Kind = "FHIR_Q_ITEM_TYPE_MISSING"
	KindFHIRQItemTextMissing            Kind = "FHIR_Q_ITEM_TEXT_MISSING"
	KindFHIRQMandatoryItemMissing       Kind = "FHIR_Q_MANDATORY_ITEM_MISSING"
)

// Plugin definition (§4.1, §7).
const (
	KindPluginReferenceMissing           Kind = "PLUGIN_REFERENCE_MISSING"
	KindPluginReferenceOutsideRoot       Kind = "PLUGIN_REFERENCE_OUTSIDE_ROOT"
	KindPluginReferenceFromDependency    Kind = "PLUGIN_REFERENCE_FROM_DEPENDENCY"
	KindPluginNoProcessModels            Kind = "PLUGIN_NO_PROCESS_MODELS"
	KindPluginNoFHIRResources             Kind = "PLUGIN_NO_FHIR_RESOURCES"
	KindPluginServiceRegistrationMissing Kind = "PLUGIN_SERVICE_REGISTRATION_MISSING"
	KindPluginServiceRegistrationOK      Kind = "PLUGIN_SERVICE_REGISTRATION_OK"
	KindPluginDuplicateDescriptor        Kind = "PLUGIN_DUPLICATE_DESCRIPTOR"
)

// Group names a cluster of related findings, used only for report
// organization (section headers, counts); it never appears in the Finding
// itself.
type Group string

const (
	GroupPluginDefinition   Group = "plugin-definition"
	GroupBPMNServiceTask    Group = "bpmn-service-task"
	GroupBPMNSendTask       Group = "bpmn-send-task"
	GroupBPMNMessageEvent   Group = "bpmn-message-event"
	GroupBPMNGateway        Group = "bpmn-gateway"
	GroupBPMNSequenceFlow   Group = "bpmn-sequence-flow"
	GroupBPMNUserTask       Group = "bpmn-user-task"
	GroupBPMNSubprocess     Group = "bpmn-subprocess"
	GroupBPMNProcess        Group = "bpmn-process"
	GroupBPMNListener       Group = "bpmn-execution-listener"
	GroupBPMNFloating       Group = "bpmn-floating-element"
	GroupFHIRActivityDef    Group = "fhir-activity-definition"
	GroupFHIRStructureDef   Group = "fhir-structure-definition"
	GroupFHIRTask           Group = "fhir-task"
	GroupFHIRValueSet       Group = "fhir-value-set"
	GroupFHIRCodeSystem     Group = "fhir-code-system"
	GroupFHIRQuestionnaire  Group = "fhir-questionnaire"
	GroupFHIRGeneral        Group = "fhir-general"
	GroupInternal           Group = "internal"
)

// KindGroup classifies a Kind/SubType pair into a report Group.
func KindGroup(kind Kind, sub SubType) Group {
	switch kind {
	case KindBPMNUnparsable, KindUnknown:
		return GroupInternal
	case KindFHIRUnparsable, KindFHIRResourceTypeUnsupported:
		return GroupFHIRGeneral
	case KindBPMNFlowElement, KindBPMNFloatingElement, KindBPMNSuccess:
		if g, ok := subTypeGroup[sub]; ok {
			return g
		}
		return GroupInternal
	}
	if g, ok := fhirKindGroup[kind]; ok {
		return g
	}
	if g, ok := pluginKindGroup[kind]; ok {
		return g
	}
	return GroupInternal
}

// fhirKindGroup maps each FHIR Kind to its report Group.
var fhirKindGroup = map[Kind]Group{
	KindFHIRADURLPrefixInvalid:                   GroupFHIRActivityDef,
	KindFHIRADStatusNotUnknown:                    GroupFHIRActivityDef,
	KindFHIRADKindNotTask:                         GroupFHIRActivityDef,
	KindFHIRADReadAccessTagMissing:                 GroupFHIRActivityDef,
	KindFHIRADReadAccessTagInvalidCode:             GroupFHIRActivityDef,
	KindFHIRADProcessAuthorizationMissing:          GroupFHIRActivityDef,
	KindFHIRADProcessAuthorizationRequesterCount:   GroupFHIRActivityDef,
	KindFHIRADProcessAuthorizationRecipientCount:   GroupFHIRActivityDef,
	KindFHIRADProcessAuthorizationCodeInvalid:      GroupFHIRActivityDef,
	KindFHIRADProfileVersionSuffixPresent:          GroupFHIRActivityDef,

	KindFHIRSDVersionPlaceholderMissing: GroupFHIRStructureDef,
	KindFHIRSDDatePlaceholderMissing:    GroupFHIRStructureDef,
	KindFHIRSDSnapshotPresent:           GroupFHIRStructureDef,
	KindFHIRSDDifferentialMissing:       GroupFHIRStructureDef,
	KindFHIRSDElementIDDuplicate:        GroupFHIRStructureDef,
	KindFHIRSDSliceMaxExceedsBase:       GroupFHIRStructureDef,
	KindFHIRSDSliceMinSumBelowBase:      GroupFHIRStructureDef,
	KindFHIRSDSliceMinSumAboveBase:      GroupFHIRStructureDef,
	KindFHIRSDSliceMinBelowBasePerSlice: GroupFHIRStructureDef,

	KindFHIRTaskStatusInvalid:                   GroupFHIRTask,
	KindFHIRTaskIntentInvalid:                    GroupFHIRTask,
	KindFHIRTaskRequesterSystemInvalid:           GroupFHIRTask,
	KindFHIRTaskRecipientSystemInvalid:           GroupFHIRTask,
	KindFHIRTaskAuthoredOnPlaceholderMissing:     GroupFHIRTask,
	KindFHIRTaskRequesterValuePlaceholderMissing: GroupFHIRTask,
	KindFHIRTaskRecipientValuePlaceholderMissing: GroupFHIRTask,
	KindFHIRTaskInstantiatesCanonicalUnknown:     GroupFHIRTask,
	KindFHIRTaskInstantiatesCanonicalVersionPlaceholderMissing: GroupFHIRTask,
	KindFHIRTaskInputMessageNameCountInvalid:                   GroupFHIRTask,
	KindFHIRTaskBusinessKeyMissing:                             GroupFHIRTask,
	KindFHIRTaskBusinessKeyPresentInDraft:                      GroupFHIRTask,
	KindFHIRTaskBusinessKeyCheckSkipped:                        GroupFHIRTask,
	KindFHIRTaskCorrelationKeyPresentInDraft:                   GroupFHIRTask,
	KindFHIRTaskInputCardinalityInvalid:                        GroupFHIRTask,
	KindFHIRTaskTypeCodingUnknown:                              GroupFHIRTask,

	KindFHIRVSFieldMissing:                     GroupFHIRValueSet,
	KindFHIRVSVersionPlaceholderMissing:        GroupFHIRValueSet,
	KindFHIRVSDatePlaceholderMissing:           GroupFHIRValueSet,
	KindFHIRVSComposeIncludeMissing:            GroupFHIRValueSet,
	KindFHIRVSIncludeSystemMissing:             GroupFHIRValueSet,
	KindFHIRVSIncludeVersionPlaceholderMissing: GroupFHIRValueSet,
	KindFHIRVSConceptCodeMissing:               GroupFHIRValueSet,
	KindFHIRVSConceptCodeDuplicate:             GroupFHIRValueSet,
	KindFHIRVSFalseURLReferenced:               GroupFHIRValueSet,
	KindFHIRVSUnknownCode:                      GroupFHIRValueSet,
	KindFHIRVSReadAccessTagMissing:             GroupFHIRValueSet,

	KindFHIRCSFieldMissing:             GroupFHIRCodeSystem,
	KindFHIRCSStatusNotUnknown:         GroupFHIRCodeSystem,
	KindFHIRCSConceptMissing:           GroupFHIRCodeSystem,
	KindFHIRCSConceptDisplayMissing:    GroupFHIRCodeSystem,
	KindFHIRCSConceptCodeDuplicate:     GroupFHIRCodeSystem,
	KindFHIRCSVersionPlaceholderMissing: GroupFHIRCodeSystem,
	KindFHIRCSDatePlaceholderMissing:    GroupFHIRCodeSystem,

	KindFHIRQProfileMissing:           GroupFHIRQuestionnaire,
	KindFHIRQReadAccessTagMissing:     GroupFHIRQuestionnaire,
	KindFHIRQStatusInvalid:            GroupFHIRQuestionnaire,
	KindFHIRQVersionPlaceholderMissing: GroupFHIRQuestionnaire,
	KindFHIRQDatePlaceholderMissing:    GroupFHIRQuestionnaire,
	KindFHIRQItemMissing:              GroupFHIRQuestionnaire,
	KindFHIRQItemLinkIDMissing:        GroupFHIRQuestionnaire,
	KindFHIRQItemLinkIDDuplicate:      GroupFHIRQuestionnaire,
	KindFHIRQItemLinkIDNotKebabCase:   GroupFHIRQuestionnaire,
	KindFHIRQItemTypeMissing:          GroupFHIRQuestionnaire,
	KindFHIRQItemTextMissing:          GroupFHIRQuestionnaire,
	KindFHIRQMandatoryItemMissing:     GroupFHIRQuestionnaire,
}

// pluginKindGroup maps each plugin-definition Kind to its report Group.
var pluginKindGroup = map[Kind]Group{
	KindPluginReferenceMissing:           GroupPluginDefinition,
	KindPluginReferenceOutsideRoot:       GroupPluginDefinition,
	KindPluginReferenceFromDependency:    GroupPluginDefinition,
	KindPluginNoProcessModels:            GroupPluginDefinition,
	KindPluginNoFHIRResources:            GroupPluginDefinition,
	KindPluginServiceRegistrationMissing: GroupPluginDefinition,
	KindPluginServiceRegistrationOK:      GroupPluginDefinition,
	KindPluginDuplicateDescriptor:        GroupPluginDefinition,
}

// SubType tags the specific BPMN check that produced a KindBPMNFlowElement or
// KindBPMNFloatingElement finding. Unlike Kind, SubType has no fixed
// severity: the rule that detects it chooses the severity (see bpmn_kinds.go).
type SubType string

const (
	SubTypeServiceTaskClassMissing             SubType = "SERVICE_TASK_CLASS_MISSING"
	SubTypeServiceTaskClassNotFound             SubType = "SERVICE_TASK_CLASS_NOT_FOUND"
	SubTypeServiceTaskClassWrongInterface       SubType = "SERVICE_TASK_CLASS_WRONG_INTERFACE"
	SubTypeServiceTaskClassWrongBaseClass       SubType = "SERVICE_TASK_CLASS_WRONG_BASE_CLASS"
	SubTypeServiceTaskNameEmpty                 SubType = "SERVICE_TASK_NAME_EMPTY"
	SubTypeServiceTaskOK                        SubType = "SERVICE_TASK_OK"

	SubTypeSendTaskClassMissing                    SubType = "SEND_TASK_CLASS_MISSING"
	SubTypeSendTaskClassWrongInterface              SubType = "SEND_TASK_CLASS_WRONG_INTERFACE"
	SubTypeSendTaskClassWrongBaseClass               SubType = "SEND_TASK_CLASS_WRONG_BASE_CLASS"
	SubTypeSendTaskFieldProfileMissing               SubType = "SEND_TASK_FIELD_PROFILE_MISSING"
	SubTypeSendTaskFieldProfileMissingVersionPlaceholder SubType = "SEND_TASK_FIELD_PROFILE_MISSING_VERSION_PLACEHOLDER"
	SubTypeSendTaskFieldMessageNameMissing           SubType = "SEND_TASK_FIELD_MESSAGE_NAME_MISSING"
	SubTypeSendTaskFieldInstantiatesCanonicalMissing SubType = "SEND_TASK_FIELD_INSTANTIATES_CANONICAL_MISSING"
	SubTypeSendTaskFieldInstantiatesCanonicalMissingVersionPlaceholder SubType = "SEND_TASK_FIELD_INSTANTIATES_CANONICAL_MISSING_VERSION_PLACEHOLDER"
	SubTypeSendTaskFieldValueIsExpression             SubType = "SEND_TASK_FIELD_VALUE_IS_EXPRESSION"
	SubTypeSendTaskOK                                 SubType = "SEND_TASK_OK"

	SubTypeMessageNameEmpty            SubType = "MESSAGE_NAME_EMPTY"
	SubTypeMessageUnknownReference      SubType = "MESSAGE_UNKNOWN_REFERENCE"
	SubTypeEventNameEmpty               SubType = "EVENT_NAME_EMPTY"
	SubTypeMessageIntermediateThrowHasMessage SubType = "MESSAGE_INTERMEDIATE_THROW_HAS_MESSAGE"
	SubTypeMessageEventOK                SubType = "MESSAGE_EVENT_OK"

	SubTypeGatewayMultipleOutgoingNameEmpty SubType = "GATEWAY_MULTIPLE_OUTGOING_NAME_EMPTY"
	SubTypeGatewayOK                        SubType = "GATEWAY_OK"

	SubTypeSequenceFlowNonDefaultMissingCondition SubType = "SEQUENCE_FLOW_NON_DEFAULT_MISSING_CONDITION"
	SubTypeSequenceFlowNonDefaultNameEmpty        SubType = "SEQUENCE_FLOW_NON_DEFAULT_NAME_EMPTY"
	SubTypeSequenceFlowDefaultHasCondition        SubType = "SEQUENCE_FLOW_DEFAULT_HAS_CONDITION"
	SubTypeSequenceFlowNoSourceNode                SubType = "SEQUENCE_FLOW_HAS_NO_SOURCE_NODE"
	SubTypeSequenceFlowNoTargetNode                SubType = "SEQUENCE_FLOW_HAS_NO_TARGET_NODE"
	SubTypeSequenceFlowOK                          SubType = "SEQUENCE_FLOW_OK"

	SubTypeUserTaskNameEmpty                SubType = "USER_TASK_NAME_EMPTY"
	SubTypeUserTaskFormKeyEmpty              SubType = "USER_TASK_FORM_KEY_IS_EMPTY"
	SubTypeUserTaskFormKeyNotExternal        SubType = "USER_TASK_FORM_KEY_NOT_EXTERNAL"
	SubTypeUserTaskQuestionnaireNotFound     SubType = "USER_TASK_QUESTIONNAIRE_NOT_FOUND"
	SubTypeUserTaskOK                        SubType = "USER_TASK_OK"

	SubTypeSubprocessMultiInstanceAsyncBeforeMissing SubType = "SUBPROCESS_MULTI_INSTANCE_ASYNC_BEFORE_MISSING"
	SubTypeSubprocessEndEventAsyncAfterMissing       SubType = "SUBPROCESS_END_EVENT_ASYNC_AFTER_MISSING"
	SubTypeSubprocessOK                               SubType = "SUBPROCESS_OK"

	SubTypeProcessIDEmpty   SubType = "PROCESS_ID_EMPTY"
	SubTypeProcessIDInvalid SubType = "PROCESS_ID_INVALID"
	SubTypeProcessOK        SubType = "PROCESS_OK"

	SubTypeExecutionListenerClassMissing       SubType = "EXECUTION_LISTENER_CLASS_MISSING"
	SubTypeExecutionListenerClassNotFound       SubType = "EXECUTION_LISTENER_CLASS_NOT_FOUND"
	SubTypeExecutionListenerWrongInterface      SubType = "EXECUTION_LISTENER_WRONG_INTERFACE"
	SubTypeExecutionListenerOK                  SubType = "EXECUTION_LISTENER_OK"

	SubTypeFloatingElement SubType = "FLOATING_ELEMENT"
)

// subTypeGroup maps each BPMN SubType to its report Group.
var subTypeGroup = map[SubType]Group{
	SubTypeServiceTaskClassMissing:       GroupBPMNServiceTask,
	SubTypeServiceTaskClassNotFound:      GroupBPMNServiceTask,
	SubTypeServiceTaskClassWrongInterface: GroupBPMNServiceTask,
	SubTypeServiceTaskClassWrongBaseClass: GroupBPMNServiceTask,
	SubTypeServiceTaskNameEmpty:          GroupBPMNServiceTask,
	SubTypeServiceTaskOK:                 GroupBPMNServiceTask,

	SubTypeSendTaskClassMissing:                    GroupBPMNSendTask,
	SubTypeSendTaskClassWrongInterface:              GroupBPMNSendTask,
	SubTypeSendTaskClassWrongBaseClass:               GroupBPMNSendTask,
	SubTypeSendTaskFieldProfileMissing:               GroupBPMNSendTask,
	SubTypeSendTaskFieldProfileMissingVersionPlaceholder: GroupBPMNSendTask,
	SubTypeSendTaskFieldMessageNameMissing:           GroupBPMNSendTask,
	SubTypeSendTaskFieldInstantiatesCanonicalMissing: GroupBPMNSendTask,
	SubTypeSendTaskFieldInstantiatesCanonicalMissingVersionPlaceholder: GroupBPMNSendTask,
	SubTypeSendTaskFieldValueIsExpression:             GroupBPMNSendTask,
	SubTypeSendTaskOK:                                 GroupBPMNSendTask,

	SubTypeMessageNameEmpty:              GroupBPMNMessageEvent,
	SubTypeMessageUnknownReference:       GroupBPMNMessageEvent,
	SubTypeEventNameEmpty:                GroupBPMNMessageEvent,
	SubTypeMessageIntermediateThrowHasMessage: GroupBPMNMessageEvent,
	SubTypeMessageEventOK:                GroupBPMNMessageEvent,

	SubTypeGatewayMultipleOutgoingNameEmpty: GroupBPMNGateway,
	SubTypeGatewayOK:                        GroupBPMNGateway,

	SubTypeSequenceFlowNonDefaultMissingCondition: GroupBPMNSequenceFlow,
	SubTypeSequenceFlowNonDefaultNameEmpty:        GroupBPMNSequenceFlow,
	SubTypeSequenceFlowDefaultHasCondition:        GroupBPMNSequenceFlow,
	SubTypeSequenceFlowNoSourceNode:               GroupBPMNSequenceFlow,
	SubTypeSequenceFlowNoTargetNode:               GroupBPMNSequenceFlow,
	SubTypeSequenceFlowOK:                         GroupBPMNSequenceFlow,

	SubTypeUserTaskNameEmpty:            GroupBPMNUserTask,
	SubTypeUserTaskFormKeyEmpty:          GroupBPMNUserTask,
	SubTypeUserTaskFormKeyNotExternal:    GroupBPMNUserTask,
	SubTypeUserTaskQuestionnaireNotFound: GroupBPMNUserTask,
	SubTypeUserTaskOK:                    GroupBPMNUserTask,

	SubTypeSubprocessMultiInstanceAsyncBeforeMissing: GroupBPMNSubprocess,
	SubTypeSubprocessEndEventAsyncAfterMissing:       GroupBPMNSubprocess,
	SubTypeSubprocessOK:                              GroupBPMNSubprocess,

	SubTypeProcessIDEmpty:   GroupBPMNProcess,
	SubTypeProcessIDInvalid: GroupBPMNProcess,
	SubTypeProcessOK:        GroupBPMNProcess,

	SubTypeExecutionListenerClassMissing:  GroupBPMNListener,
	SubTypeExecutionListenerClassNotFound: GroupBPMNListener,
	SubTypeExecutionListenerWrongInterface: GroupBPMNListener,
	SubTypeExecutionListenerOK:            GroupBPMNListener,

	SubTypeFloatingElement: GroupBPMNFloating,
}
