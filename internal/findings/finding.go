package findings

// Finding is the single result shape produced by every rule in the
// dispatcher: BPMN, FHIR, and plugin-definition checks alike return
// Finding values, never a family-specific type.
type Finding struct {
	// Kind identifies the check that produced the finding. Stable across
	// releases; used as the JSON identifier in reports.
	Kind Kind `json:"kind"`

	// SubType further qualifies a KindBPMNFlowElement, KindBPMNFloatingElement
	// or KindBPMNSuccess finding. Empty for every other Kind.
	SubType SubType `json:"subType,omitempty"`

	// Severity is fixed per Kind except for the BPMN flow-element carriers,
	// where the rule that detects the condition chooses it.
	Severity Severity `json:"severity"`

	// Description is a human-readable message. Never invented for a
	// positive-case (SUCCESS) finding that has no source description.
	Description string `json:"description"`

	// File is the archive-relative or filesystem-relative leaf path of the
	// file the finding applies to (a .bpmn file, a FHIR resource file).
	File string `json:"file"`

	// Anchor identifies the specific element within File: a BPMN element id,
	// or a FHIR resource's logical id/url.
	Anchor string `json:"anchor,omitempty"`

	// ProcessID is set for BPMN findings to the enclosing process id.
	ProcessID string `json:"processId,omitempty"`

	// ResourceID is set for FHIR findings to the resource's own id.
	ResourceID string `json:"resourceId,omitempty"`

	// Extra carries rule-specific key/value context (e.g. the offending class
	// name, the expected interface) surfaced verbatim in reports.
	Extra map[string]string `json:"extra,omitempty"`
}

// Option mutates a Finding under construction. Used by the catalog
// constructors in bpmn_kinds.go, fhir_kinds.go and plugin_kinds.go.
type Option func(*Finding)

// WithAnchor sets the element/resource anchor.
func WithAnchor(anchor string) Option {
	return func(f *Finding) { f.Anchor = anchor }
}

// WithProcessID sets the enclosing BPMN process id.
func WithProcessID(processID string) Option {
	return func(f *Finding) { f.ProcessID = processID }
}

// WithResourceID sets the FHIR resource's own id.
func WithResourceID(resourceID string) Option {
	return func(f *Finding) { f.ResourceID = resourceID }
}

// WithDescription overrides the catalog's default description.
func WithDescription(description string) Option {
	return func(f *Finding) { f.Description = description }
}

// WithExtra attaches a rule-specific key/value pair.
func WithExtra(key, value string) Option {
	return func(f *Finding) {
		if f.Extra == nil {
			f.Extra = make(map[string]string, 1)
		}
		f.Extra[key] = value
	}
}

// newFixed builds a Finding for a Kind with a fixed catalog severity and
// description, applying opts on top.
func newFixed(kind Kind, file string, opts ...Option) Finding {
	entry := catalog[kind]
	f := Finding{
		Kind:        kind,
		Severity:    entry.severity,
		Description: entry.description,
		File:        file,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// newFlowElement builds a KindBPMNFlowElement or KindBPMNFloatingElement
// finding, whose severity is supplied explicitly by the calling rule rather
// than looked up in the catalog.
func newFlowElement(kind Kind, sub SubType, severity Severity, file, description string, opts ...Option) Finding {
	f := Finding{
		Kind:        kind,
		SubType:     sub,
		Severity:    severity,
		Description: description,
		File:        file,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

type catalogEntry struct {
	severity    Severity
	description string
}

// catalog holds the fixed severity/description for every Kind other than the
// BPMN flow-element carriers, whose severity is rule-supplied.
var catalog = map[Kind]catalogEntry{
	KindUnknown:                     {SeverityError, "the rule that produced this finding failed unexpectedly"},
	KindBPMNUnparsable:              {SeverityError, "process model could not be parsed as BPMN XML"},
	KindBPMNSuccess:                 {SeveritySuccess, ""},
	KindFHIRUnparsable:              {SeverityError, "FHIR resource could not be parsed"},
	KindFHIRResourceTypeUnsupported: {SeverityInfo, "resource type has no registered rule set and was not linted"},

	KindFHIRADURLPrefixInvalid:       {SeverityError, "ActivityDefinition url does not start with the expected canonical prefix"},
	KindFHIRADStatusNotUnknown:       {SeverityError, "ActivityDefinition status is not \"unknown\""},
	KindFHIRADKindNotTask:            {SeverityError, "ActivityDefinition kind is not \"Task\""},
	KindFHIRADReadAccessTagMissing:    {SeverityError, "ActivityDefinition is missing the read-access security tag"},
	KindFHIRADReadAccessTagInvalidCode: {SeverityError, "ActivityDefinition read-access security tag has an unexpected code"},
	KindFHIRADProcessAuthorizationMissing: {SeverityError, "ActivityDefinition is missing a processAuthorization extension"},
	KindFHIRADProcessAuthorizationRequesterCount: {SeverityError, "ActivityDefinition processAuthorization has an unexpected number of requester entries"},
	KindFHIRADProcessAuthorizationRecipientCount: {SeverityError, "ActivityDefinition processAuthorization has an unexpected number of recipient entries"},
	KindFHIRADProcessAuthorizationCodeInvalid:    {SeverityError, "ActivityDefinition processAuthorization code is not a recognized value"},
	KindFHIRADProfileVersionSuffixPresent:        {SeverityError, "ActivityDefinition profile url carries a version suffix where the placeholder form is required"},

	KindFHIRSDVersionPlaceholderMissing: {SeverityError, "StructureDefinition does not reference the version placeholder"},
	KindFHIRSDDatePlaceholderMissing:    {SeverityError, "StructureDefinition does not reference the date placeholder"},
	KindFHIRSDSnapshotPresent:           {SeverityWarn, "StructureDefinition ships a precomputed snapshot that will go stale as the differential evolves"},
	KindFHIRSDDifferentialMissing:       {SeverityError, "StructureDefinition has no differential element"},
	KindFHIRSDElementIDDuplicate:        {SeverityError, "StructureDefinition differential has two elements sharing the same id"},
	KindFHIRSDSliceMaxExceedsBase:       {SeverityError, "slice max cardinality exceeds the base element's max cardinality"},
	KindFHIRSDSliceMinSumBelowBase:      {SeverityInfo, "sum of slice min cardinalities is below the base element's min cardinality"},
	KindFHIRSDSliceMinSumAboveBase:      {SeverityWarn, "sum of slice min cardinalities exceeds the base element's min cardinality"},
	KindFHIRSDSliceMinBelowBasePerSlice: {SeverityInfo, "slice min cardinality is below the base element's min cardinality"},

	KindFHIRTaskStatusInvalid:                   {SeverityError, "Task status is not one of the permitted values"},
	KindFHIRTaskIntentInvalid:                   {SeverityError, "Task intent is not one of the permitted values"},
	KindFHIRTaskRequesterSystemInvalid:          {SeverityError, "Task requester identifier system is not recognized"},
	KindFHIRTaskRecipientSystemInvalid:          {SeverityError, "Task recipient identifier system is not recognized"},
	KindFHIRTaskAuthoredOnPlaceholderMissing:    {SeverityInfo, "Task authoredOn does not reference the timestamp placeholder"},
	KindFHIRTaskRequesterValuePlaceholderMissing: {SeverityInfo, "Task requester identifier value does not reference a placeholder"},
	KindFHIRTaskRecipientValuePlaceholderMissing: {SeverityInfo, "Task recipient identifier value does not reference a placeholder"},
	KindFHIRTaskInstantiatesCanonicalUnknown:     {SeverityError, "Task instantiatesCanonical does not resolve to a known ActivityDefinition"},
	KindFHIRTaskInstantiatesCanonicalVersionPlaceholderMissing: {SeverityError, "Task instantiatesCanonical does not reference the version placeholder"},
	KindFHIRTaskInputMessageNameCountInvalid:                   {SeverityError, "Task has an unexpected number of messageName inputs"},
	KindFHIRTaskBusinessKeyMissing:                             {SeverityError, "Task is missing the businessKey input"},
	KindFHIRTaskBusinessKeyPresentInDraft:                      {SeverityError, "Task carries a businessKey while still in draft status"},
	KindFHIRTaskBusinessKeyCheckSkipped:                        {SeverityInfo, "businessKey presence was not checked because the task status does not require it"},
	KindFHIRTaskCorrelationKeyPresentInDraft:                   {SeverityError, "Task carries a correlationKey while still in draft status"},
	KindFHIRTaskInputCardinalityInvalid:                        {SeverityError, "Task input parameter has an unexpected cardinality"},
	KindFHIRTaskTypeCodingUnknown:                              {SeverityError, "Task type coding is not a recognized code"},

	KindFHIRVSFieldMissing:                     {SeverityError, "ValueSet is missing a required field"},
	KindFHIRVSVersionPlaceholderMissing:        {SeverityError, "ValueSet does not reference the version placeholder"},
	KindFHIRVSDatePlaceholderMissing:           {SeverityError, "ValueSet does not reference the date placeholder"},
	KindFHIRVSComposeIncludeMissing:            {SeverityError, "ValueSet compose has no include entries"},
	KindFHIRVSIncludeSystemMissing:             {SeverityError, "ValueSet compose include is missing a system"},
	KindFHIRVSIncludeVersionPlaceholderMissing: {SeverityWarn, "ValueSet compose include does not reference the version placeholder"},
	KindFHIRVSConceptCodeMissing:               {SeverityError, "ValueSet concept is missing a code"},
	KindFHIRVSConceptCodeDuplicate:             {SeverityError, "ValueSet declares the same concept code more than once"},
	KindFHIRVSFalseURLReferenced:               {SeverityError, "ValueSet references a CodeSystem url that does not match any seeded CodeSystem"},
	KindFHIRVSUnknownCode:                      {SeverityError, "ValueSet concept code is unknown in the referenced CodeSystem"},
	KindFHIRVSReadAccessTagMissing:             {SeverityError, "ValueSet is missing the read-access security tag"},

	KindFHIRCSFieldMissing:              {SeverityError, "CodeSystem is missing a required field"},
	KindFHIRCSStatusNotUnknown:          {SeverityError, "CodeSystem status is not \"unknown\""},
	KindFHIRCSConceptMissing:            {SeverityError, "CodeSystem has no concept entries"},
	KindFHIRCSConceptDisplayMissing:     {SeverityWarn, "CodeSystem concept is missing a display value"},
	KindFHIRCSConceptCodeDuplicate:      {SeverityError, "CodeSystem declares the same concept code more than once"},
	KindFHIRCSVersionPlaceholderMissing: {SeverityError, "CodeSystem does not reference the version placeholder"},
	KindFHIRCSDatePlaceholderMissing:    {SeverityError, "CodeSystem does not reference the date placeholder"},

	KindFHIRQProfileMissing:            {SeverityError, "Questionnaire is missing the required profile"},
	KindFHIRQReadAccessTagMissing:      {SeverityError, "Questionnaire is missing the read-access security tag"},
	KindFHIRQStatusInvalid:             {SeverityError, "Questionnaire status is not one of the permitted values"},
	KindFHIRQVersionPlaceholderMissing: {SeverityError, "Questionnaire does not reference the version placeholder"},
	KindFHIRQDatePlaceholderMissing:    {SeverityError, "Questionnaire does not reference the date placeholder"},
	KindFHIRQItemMissing:               {SeverityError, "Questionnaire has no item entries"},
	KindFHIRQItemLinkIDMissing:         {SeverityError, "Questionnaire item is missing a linkId"},
	KindFHIRQItemLinkIDDuplicate:       {SeverityError, "Questionnaire declares the same item linkId more than once"},
	KindFHIRQItemLinkIDNotKebabCase:    {SeverityInfo, "Questionnaire item linkId does not follow kebab-case convention"},
	KindFHIRQItemTypeMissing:           {SeverityError, "Questionnaire item is missing a type"},
	KindFHIRQItemTextMissing:           {SeverityInfo, "Questionnaire item is missing display text"},
	KindFHIRQMandatoryItemMissing:      {SeverityError, "Questionnaire is missing an item required by its profile"},

	KindPluginReferenceMissing:           {SeverityError, "descriptor references a resource that does not exist anywhere in the resolved resource root"},
	KindPluginReferenceOutsideRoot:       {SeverityError, "descriptor references a resource path that escapes the plugin's resource root"},
	KindPluginReferenceFromDependency:    {SeverityInfo, "descriptor reference resolved to a dependency archive rather than the plugin itself"},
	KindPluginNoProcessModels:            {SeverityWarn, "plugin declares no BPMN process models"},
	KindPluginNoFHIRResources:            {SeverityWarn, "plugin declares no FHIR resources"},
	KindPluginServiceRegistrationMissing: {SeverityError, "descriptor class is not registered via the service provider convention"},
	KindPluginServiceRegistrationOK:      {SeveritySuccess, "descriptor class is registered via the service provider convention"},
	KindPluginDuplicateDescriptor:        {SeverityWarn, "the same descriptor class was discovered more than once"},
}
