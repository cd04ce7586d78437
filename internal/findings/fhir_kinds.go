package findings

import "strconv"

// FHIRUnparsable builds a KindFHIRUnparsable finding for a resource file that
// failed to parse or translate into the tree form rules consume.
func FHIRUnparsable(file, reason string) Finding {
	return newFixed(KindFHIRUnparsable, file, WithExtra("reason", reason))
}

// FHIRResourceTypeUnsupported builds a KindFHIRResourceTypeUnsupported
// finding for a resource type with no registered rule set.
func FHIRResourceTypeUnsupported(file, resourceID, resourceType string) Finding {
	return newFixed(KindFHIRResourceTypeUnsupported, file,
		WithResourceID(resourceID), WithExtra("resourceType", resourceType))
}

// fhir builds a fixed-catalog FHIR finding for a resource-level check.
func fhir(kind Kind, file, resourceID string, opts ...Option) Finding {
	return newFixed(kind, file, append([]Option{WithResourceID(resourceID)}, opts...)...)
}

// ActivityDefinition (§4.9).

func ADURLPrefixInvalid(file, resourceID, url string) Finding {
	return fhir(KindFHIRADURLPrefixInvalid, file, resourceID, WithExtra("url", url))
}

func ADStatusNotUnknown(file, resourceID, status string) Finding {
	return fhir(KindFHIRADStatusNotUnknown, file, resourceID, WithExtra("status", status))
}

func ADKindNotTask(file, resourceID, kind string) Finding {
	return fhir(KindFHIRADKindNotTask, file, resourceID, WithExtra("kind", kind))
}

func ADReadAccessTagMissing(file, resourceID string) Finding {
	return fhir(KindFHIRADReadAccessTagMissing, file, resourceID)
}

func ADReadAccessTagInvalidCode(file, resourceID, code string) Finding {
	return fhir(KindFHIRADReadAccessTagInvalidCode, file, resourceID, WithExtra("code", code))
}

func ADProcessAuthorizationMissing(file, resourceID string) Finding {
	return fhir(KindFHIRADProcessAuthorizationMissing, file, resourceID)
}

func ADProcessAuthorizationRequesterCount(file, resourceID string, count int) Finding {
	return fhir(KindFHIRADProcessAuthorizationRequesterCount, file, resourceID, WithExtra("count", itoa(count)))
}

func ADProcessAuthorizationRecipientCount(file, resourceID string, count int) Finding {
	return fhir(KindFHIRADProcessAuthorizationRecipientCount, file, resourceID, WithExtra("count", itoa(count)))
}

func ADProcessAuthorizationCodeInvalid(file, resourceID, code string) Finding {
	return fhir(KindFHIRADProcessAuthorizationCodeInvalid, file, resourceID, WithExtra("code", code))
}

func ADProfileVersionSuffixPresent(file, resourceID, profile string) Finding {
	return fhir(KindFHIRADProfileVersionSuffixPresent, file, resourceID, WithExtra("profile", profile))
}

// StructureDefinition (§4.9).

func SDVersionPlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRSDVersionPlaceholderMissing, file, resourceID)
}

func SDDatePlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRSDDatePlaceholderMissing, file, resourceID)
}

func SDSnapshotPresent(file, resourceID string) Finding {
	return fhir(KindFHIRSDSnapshotPresent, file, resourceID)
}

func SDDifferentialMissing(file, resourceID string) Finding {
	return fhir(KindFHIRSDDifferentialMissing, file, resourceID)
}

func SDElementIDDuplicate(file, resourceID, elementID string) Finding {
	return fhir(KindFHIRSDElementIDDuplicate, file, resourceID, WithExtra("elementId", elementID))
}

func SDSliceMaxExceedsBase(file, resourceID, sliceName string) Finding {
	return fhir(KindFHIRSDSliceMaxExceedsBase, file, resourceID, WithExtra("slice", sliceName))
}

func SDSliceMinSumBelowBase(file, resourceID, elementID string) Finding {
	return fhir(KindFHIRSDSliceMinSumBelowBase, file, resourceID, WithExtra("elementId", elementID))
}

func SDSliceMinSumAboveBase(file, resourceID, elementID string) Finding {
	return fhir(KindFHIRSDSliceMinSumAboveBase, file, resourceID, WithExtra("elementId", elementID))
}

func SDSliceMinBelowBasePerSlice(file, resourceID, sliceName string) Finding {
	return fhir(KindFHIRSDSliceMinBelowBasePerSlice, file, resourceID, WithExtra("slice", sliceName))
}

// Task (§4.9).

func TaskStatusInvalid(file, resourceID, status string) Finding {
	return fhir(KindFHIRTaskStatusInvalid, file, resourceID, WithExtra("status", status))
}

func TaskIntentInvalid(file, resourceID, intent string) Finding {
	return fhir(KindFHIRTaskIntentInvalid, file, resourceID, WithExtra("intent", intent))
}

func TaskRequesterSystemInvalid(file, resourceID, system string) Finding {
	return fhir(KindFHIRTaskRequesterSystemInvalid, file, resourceID, WithExtra("system", system))
}

func TaskRecipientSystemInvalid(file, resourceID, system string) Finding {
	return fhir(KindFHIRTaskRecipientSystemInvalid, file, resourceID, WithExtra("system", system))
}

func TaskAuthoredOnPlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRTaskAuthoredOnPlaceholderMissing, file, resourceID)
}

func TaskRequesterValuePlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRTaskRequesterValuePlaceholderMissing, file, resourceID)
}

func TaskRecipientValuePlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRTaskRecipientValuePlaceholderMissing, file, resourceID)
}

func TaskInstantiatesCanonicalUnknown(file, resourceID, canonical string) Finding {
	return fhir(KindFHIRTaskInstantiatesCanonicalUnknown, file, resourceID, WithExtra("instantiatesCanonical", canonical))
}

func TaskInstantiatesCanonicalVersionPlaceholderMissing(file, resourceID, canonical string) Finding {
	return fhir(KindFHIRTaskInstantiatesCanonicalVersionPlaceholderMissing, file, resourceID, WithExtra("instantiatesCanonical", canonical))
}

func TaskInputMessageNameCountInvalid(file, resourceID string, count int) Finding {
	return fhir(KindFHIRTaskInputMessageNameCountInvalid, file, resourceID, WithExtra("count", itoa(count)))
}

func TaskBusinessKeyMissing(file, resourceID string) Finding {
	return fhir(KindFHIRTaskBusinessKeyMissing, file, resourceID)
}

func TaskBusinessKeyPresentInDraft(file, resourceID string) Finding {
	return fhir(KindFHIRTaskBusinessKeyPresentInDraft, file, resourceID)
}

func TaskBusinessKeyCheckSkipped(file, resourceID, status string) Finding {
	return fhir(KindFHIRTaskBusinessKeyCheckSkipped, file, resourceID, WithExtra("status", status))
}

func TaskCorrelationKeyPresentInDraft(file, resourceID string) Finding {
	return fhir(KindFHIRTaskCorrelationKeyPresentInDraft, file, resourceID)
}

func TaskInputCardinalityInvalid(file, resourceID, input string) Finding {
	return fhir(KindFHIRTaskInputCardinalityInvalid, file, resourceID, WithExtra("input", input))
}

func TaskTypeCodingUnknown(file, resourceID, code string) Finding {
	return fhir(KindFHIRTaskTypeCodingUnknown, file, resourceID, WithExtra("code", code))
}

// ValueSet (§4.9).

func VSFieldMissing(file, resourceID, field string) Finding {
	return fhir(KindFHIRVSFieldMissing, file, resourceID, WithExtra("field", field))
}

func VSVersionPlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRVSVersionPlaceholderMissing, file, resourceID)
}

func VSDatePlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRVSDatePlaceholderMissing, file, resourceID)
}

func VSComposeIncludeMissing(file, resourceID string) Finding {
	return fhir(KindFHIRVSComposeIncludeMissing, file, resourceID)
}

func VSIncludeSystemMissing(file, resourceID string) Finding {
	return fhir(KindFHIRVSIncludeSystemMissing, file, resourceID)
}

func VSIncludeVersionPlaceholderMissing(file, resourceID, system string) Finding {
	return fhir(KindFHIRVSIncludeVersionPlaceholderMissing, file, resourceID, WithExtra("system", system))
}

func VSConceptCodeMissing(file, resourceID string) Finding {
	return fhir(KindFHIRVSConceptCodeMissing, file, resourceID)
}

func VSConceptCodeDuplicate(file, resourceID, code string) Finding {
	return fhir(KindFHIRVSConceptCodeDuplicate, file, resourceID, WithExtra("code", code))
}

func VSFalseURLReferenced(file, resourceID, system string) Finding {
	return fhir(KindFHIRVSFalseURLReferenced, file, resourceID, WithExtra("system", system))
}

func VSUnknownCode(file, resourceID, system, code string) Finding {
	return fhir(KindFHIRVSUnknownCode, file, resourceID, WithExtra("system", system), WithExtra("code", code))
}

func VSReadAccessTagMissing(file, resourceID string) Finding {
	return fhir(KindFHIRVSReadAccessTagMissing, file, resourceID)
}

// CodeSystem (§4.9).

func CSFieldMissing(file, resourceID, field string) Finding {
	return fhir(KindFHIRCSFieldMissing, file, resourceID, WithExtra("field", field))
}

func CSStatusNotUnknown(file, resourceID, status string) Finding {
	return fhir(KindFHIRCSStatusNotUnknown, file, resourceID, WithExtra("status", status))
}

func CSConceptMissing(file, resourceID string) Finding {
	return fhir(KindFHIRCSConceptMissing, file, resourceID)
}

func CSConceptDisplayMissing(file, resourceID, code string) Finding {
	return fhir(KindFHIRCSConceptDisplayMissing, file, resourceID, WithExtra("code", code))
}

func CSConceptCodeDuplicate(file, resourceID, code string) Finding {
	return fhir(KindFHIRCSConceptCodeDuplicate, file, resourceID, WithExtra("code", code))
}

func CSVersionPlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRCSVersionPlaceholderMissing, file, resourceID)
}

func CSDatePlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRCSDatePlaceholderMissing, file, resourceID)
}

// Questionnaire (§4.9).

func QProfileMissing(file, resourceID string) Finding {
	return fhir(KindFHIRQProfileMissing, file, resourceID)
}

func QReadAccessTagMissing(file, resourceID string) Finding {
	return fhir(KindFHIRQReadAccessTagMissing, file, resourceID)
}

func QStatusInvalid(file, resourceID, status string) Finding {
	return fhir(KindFHIRQStatusInvalid, file, resourceID, WithExtra("status", status))
}

func QVersionPlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRQVersionPlaceholderMissing, file, resourceID)
}

func QDatePlaceholderMissing(file, resourceID string) Finding {
	return fhir(KindFHIRQDatePlaceholderMissing, file, resourceID)
}

func QItemMissing(file, resourceID string) Finding {
	return fhir(KindFHIRQItemMissing, file, resourceID)
}

func QItemLinkIDMissing(file, resourceID string) Finding {
	return fhir(KindFHIRQItemLinkIDMissing, file, resourceID)
}

func QItemLinkIDDuplicate(file, resourceID, linkID string) Finding {
	return fhir(KindFHIRQItemLinkIDDuplicate, file, resourceID, WithExtra("linkId", linkID))
}

func QItemLinkIDNotKebabCase(file, resourceID, linkID string) Finding {
	return fhir(KindFHIRQItemLinkIDNotKebabCase, file, resourceID, WithExtra("linkId", linkID))
}

func QItemTypeMissing(file, resourceID, linkID string) Finding {
	return fhir(KindFHIRQItemTypeMissing, file, resourceID, WithExtra("linkId", linkID))
}

func QItemTextMissing(file, resourceID, linkID string) Finding {
	return fhir(KindFHIRQItemTextMissing, file, resourceID, WithExtra("linkId", linkID))
}

func QMandatoryItemMissing(file, resourceID, linkID string) Finding {
	return fhir(KindFHIRQMandatoryItemMissing, file, resourceID, WithExtra("linkId", linkID))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
