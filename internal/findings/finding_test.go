package findings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCoversEveryFixedKind(t *testing.T) {
	// Every Kind other than the BPMN flow-element carriers must have a
	// catalog entry, or newFixed silently returns a zero-value severity.
	fixedKinds := []Kind{
		KindUnknown, KindBPMNUnparsable, KindBPMNSuccess,
		KindFHIRUnparsable, KindFHIRResourceTypeUnsupported,
		KindFHIRADURLPrefixInvalid, KindFHIRSDDifferentialMissing,
		KindFHIRTaskBusinessKeyMissing, KindFHIRVSFalseURLReferenced,
		KindFHIRCSConceptMissing, KindFHIRQMandatoryItemMissing,
		KindPluginReferenceMissing, KindPluginServiceRegistrationOK,
	}
	for _, kind := range fixedKinds {
		_, ok := catalog[kind]
		assert.Truef(t, ok, "kind %s has no catalog entry", kind)
	}
}

func TestFlowElementCarriesRuleSuppliedSeverity(t *testing.T) {
	f := ServiceTaskClassMissing("process.bpmn", "ServiceTask_1", "order-process")
	assert.Equal(t, KindBPMNFlowElement, f.Kind)
	assert.Equal(t, SubTypeServiceTaskClassMissing, f.SubType)
	assert.Equal(t, SeverityError, f.Severity)
	assert.Equal(t, "ServiceTask_1", f.Anchor)
	assert.Equal(t, "order-process", f.ProcessID)
	assert.NotEmpty(t, f.Description)
}

func TestFloatingElementIsAlwaysWarn(t *testing.T) {
	f := FloatingElement("process.bpmn", "Task_orphan", "order-process")
	assert.Equal(t, KindBPMNFloatingElement, f.Kind)
	assert.Equal(t, SeverityWarn, f.Severity)
	assert.Equal(t, GroupBPMNFloating, KindGroup(f.Kind, f.SubType))
}

func TestSuccessDoesNotInventDescription(t *testing.T) {
	f := Success(SubTypeServiceTaskOK, "process.bpmn", "ServiceTask_1", "order-process", "implementation class resolved")
	assert.Equal(t, SeveritySuccess, f.Severity)
	assert.Equal(t, "implementation class resolved", f.Description)
}

func TestFHIRConstructorSetsResourceID(t *testing.T) {
	f := TaskBusinessKeyMissing("task-1.xml", "task-1")
	assert.Equal(t, KindFHIRTaskBusinessKeyMissing, f.Kind)
	assert.Equal(t, SeverityError, f.Severity)
	assert.Equal(t, "task-1", f.ResourceID)
	assert.Equal(t, GroupFHIRTask, KindGroup(f.Kind, ""))
}

func TestPluginReferenceFromDependencyCarriesArchiveID(t *testing.T) {
	f := PluginReferenceFromDependency("plugin.xml", "DescriptorClass", "resources/foo.xml", "sha256:abc")
	require.Equal(t, SeverityInfo, f.Severity)
	assert.Equal(t, "resources/foo.xml", f.Extra["reference"])
	assert.Equal(t, "sha256:abc", f.Extra["archiveId"])
}

func TestWithExtraAccumulates(t *testing.T) {
	f := newFixed(KindUnknown, "x")
	WithExtra("a", "1")(&f)
	WithExtra("b", "2")(&f)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, f.Extra)
}
