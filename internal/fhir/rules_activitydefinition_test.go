package fhir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

const goodActivityDefinitionXML = `<?xml version="1.0" encoding="UTF-8"?>
<ActivityDefinition xmlns="http://hl7.org/fhir">
  <url value="http://dsf.dev/fhir/ActivityDefinition/example"/>
  <status value="unknown"/>
  <kind value="Task"/>
  <meta>
    <tag>
      <system value="http://dsf.dev/fhir/CodeSystem/read-access-tag"/>
      <code value="ALL"/>
    </tag>
    <profile value="http://dsf.dev/fhir/StructureDefinition/example-activity-definition"/>
  </meta>
  <extension url="http://dsf.dev/fhir/StructureDefinition/extension-process-authorization">
    <extension url="requester">
      <valueCoding>
        <system value="http://dsf.dev/fhir/CodeSystem/process-authorization"/>
        <code value="LOCAL_ALL"/>
      </valueCoding>
    </extension>
    <extension url="recipient">
      <valueCoding>
        <system value="http://dsf.dev/fhir/CodeSystem/process-authorization"/>
        <code value="LOCAL_ALL"/>
      </valueCoding>
    </extension>
  </extension>
</ActivityDefinition>`

func lintADFixture(t *testing.T, xml string) []findings.Finding {
	t.Helper()
	path := writeFHIR(t, "ad.xml", xml)
	r, err := Load(path)
	require.NoError(t, err)

	var out []findings.Finding
	ctx := &LintContext{
		Codes: codesystem.New(),
		Emit:  func(f findings.Finding) { out = append(out, f) },
	}
	lintActivityDefinition(ctx, r, "ad.xml")
	return out
}

func kindsOf(fs []findings.Finding) []findings.Kind {
	var out []findings.Kind
	for _, f := range fs {
		out = append(out, f.Kind)
	}
	return out
}

func TestLintActivityDefinitionGood(t *testing.T) {
	out := lintADFixture(t, goodActivityDefinitionXML)
	assert.Empty(t, out)
}

func TestLintActivityDefinitionURLPrefixInvalid(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<ActivityDefinition xmlns="http://hl7.org/fhir">
  <url value="http://example.org/ActivityDefinition/example"/>
  <status value="unknown"/>
  <kind value="Task"/>
</ActivityDefinition>`
	out := lintADFixture(t, xml)
	assert.Contains(t, kindsOf(out), findings.KindFHIRADURLPrefixInvalid)
}

func TestLintActivityDefinitionStatusAndKind(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<ActivityDefinition xmlns="http://hl7.org/fhir">
  <url value="http://dsf.dev/fhir/ActivityDefinition/example"/>
  <status value="active"/>
  <kind value="Procedure"/>
</ActivityDefinition>`
	out := lintADFixture(t, xml)
	assert.Contains(t, kindsOf(out), findings.KindFHIRADStatusNotUnknown)
	assert.Contains(t, kindsOf(out), findings.KindFHIRADKindNotTask)
}

func TestLintActivityDefinitionProcessAuthorizationCounts(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<ActivityDefinition xmlns="http://hl7.org/fhir">
  <url value="http://dsf.dev/fhir/ActivityDefinition/example"/>
  <status value="unknown"/>
  <kind value="Task"/>
  <extension url="http://dsf.dev/fhir/StructureDefinition/extension-process-authorization">
    <extension url="requester">
      <valueCoding><system value="s"/><code value="BOGUS"/></valueCoding>
    </extension>
    <extension url="requester">
      <valueCoding><system value="s"/><code value="LOCAL_ALL"/></valueCoding>
    </extension>
  </extension>
</ActivityDefinition>`
	out := lintADFixture(t, xml)
	kinds := kindsOf(out)
	assert.Contains(t, kinds, findings.KindFHIRADProcessAuthorizationRequesterCount)
	assert.Contains(t, kinds, findings.KindFHIRADProcessAuthorizationRecipientCount)
	assert.Contains(t, kinds, findings.KindFHIRADProcessAuthorizationCodeInvalid)
}

func TestLintActivityDefinitionProfileVersionSuffix(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<ActivityDefinition xmlns="http://hl7.org/fhir">
  <url value="http://dsf.dev/fhir/ActivityDefinition/example"/>
  <status value="unknown"/>
  <kind value="Task"/>
  <meta>
    <profile value="http://dsf.dev/fhir/StructureDefinition/example-activity-definition|1.0.0"/>
  </meta>
</ActivityDefinition>`
	out := lintADFixture(t, xml)
	assert.Contains(t, kindsOf(out), findings.KindFHIRADProfileVersionSuffixPresent)
}
