package fhir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

func lintTaskFixture(t *testing.T, xml string, known map[string]bool) []findings.Finding {
	t.Helper()
	path := writeFHIR(t, "task.xml", xml)
	r, err := Load(path)
	require.NoError(t, err)

	// A real project seeds the bpmn-message CodeSystem from its own resources;
	// the fixture registers it directly.
	codes := codesystem.New()
	codes.Register("http://dsf.dev/fhir/CodeSystem/bpmn-message", []string{"message-name", "business-key", "correlation-key"})

	var out []findings.Finding
	ctx := &LintContext{
		Codes:                    codes,
		KnownActivityDefinitions: known,
		Emit:                     func(f findings.Finding) { out = append(out, f) },
	}
	lintTask(ctx, r, "task.xml")
	return out
}

func taskXML(status, businessKeyInput string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<Task xmlns="http://hl7.org/fhir">
  <status value="` + status + `"/>
  <intent value="order"/>
  <authoredOn value="#{date}"/>
  <instantiatesCanonical value="http://dsf.dev/fhir/ActivityDefinition/example|#{version}"/>
  <requester>
    <identifier>
      <system value="http://dsf.dev/sid/organization-identifier"/>
      <value value="#{organization}"/>
    </identifier>
  </requester>
  <restriction>
    <recipient>
      <identifier>
        <system value="http://dsf.dev/sid/organization-identifier"/>
        <value value="#{organization}"/>
      </identifier>
    </recipient>
  </restriction>
  <input>
    <type><coding><system value="http://dsf.dev/fhir/CodeSystem/bpmn-message"/><code value="message-name"/></coding></type>
    <valueString value="example"/>
  </input>
  ` + businessKeyInput + `
</Task>`
}

func businessKeyInput() string {
	return `<input>
    <type><coding><system value="http://dsf.dev/fhir/CodeSystem/bpmn-message"/><code value="business-key"/></coding></type>
    <valueString value="#{business-key}"/>
  </input>`
}

func TestLintTaskGoodInProgress(t *testing.T) {
	known := map[string]bool{"http://dsf.dev/fhir/ActivityDefinition/example": true}
	out := lintTaskFixture(t, taskXML("in-progress", businessKeyInput()), known)
	assert.Empty(t, out)
}

func TestLintTaskGoodDraft(t *testing.T) {
	known := map[string]bool{"http://dsf.dev/fhir/ActivityDefinition/example": true}
	out := lintTaskFixture(t, taskXML("draft", ""), known)
	assert.Empty(t, out)
}

func TestLintTaskBusinessKeyMissingWhenRequired(t *testing.T) {
	known := map[string]bool{"http://dsf.dev/fhir/ActivityDefinition/example": true}
	out := lintTaskFixture(t, taskXML("in-progress", ""), known)
	assert.Contains(t, kindsOf(out), findings.KindFHIRTaskBusinessKeyMissing)
}

func TestLintTaskBusinessKeyPresentInDraftIsInvalid(t *testing.T) {
	known := map[string]bool{"http://dsf.dev/fhir/ActivityDefinition/example": true}
	out := lintTaskFixture(t, taskXML("draft", businessKeyInput()), known)
	assert.Contains(t, kindsOf(out), findings.KindFHIRTaskBusinessKeyPresentInDraft)
}

func TestLintTaskUnknownInstantiatesCanonical(t *testing.T) {
	known := map[string]bool{"http://dsf.dev/fhir/ActivityDefinition/other": true}
	out := lintTaskFixture(t, taskXML("draft", ""), known)
	assert.Contains(t, kindsOf(out), findings.KindFHIRTaskInstantiatesCanonicalUnknown)
}

func TestLintTaskSkipsInstantiatesCanonicalCheckWithoutKnownSet(t *testing.T) {
	out := lintTaskFixture(t, taskXML("draft", ""), nil)
	assert.NotContains(t, kindsOf(out), findings.KindFHIRTaskInstantiatesCanonicalUnknown)
}

func TestLintTaskStatusSkippedForNonEnumeratedValue(t *testing.T) {
	known := map[string]bool{"http://dsf.dev/fhir/ActivityDefinition/example": true}
	out := lintTaskFixture(t, taskXML("requested", ""), known)
	kinds := kindsOf(out)
	assert.NotContains(t, kinds, findings.KindFHIRTaskStatusInvalid)
	assert.Contains(t, kinds, findings.KindFHIRTaskBusinessKeyCheckSkipped)
}

func TestLintTaskWrongIntentAndSystems(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<Task xmlns="http://hl7.org/fhir">
  <status value="draft"/>
  <intent value="plan"/>
  <authoredOn value="2024-01-01"/>
  <requester><identifier><system value="http://example.org/other"/><value value="org-1"/></identifier></requester>
  <restriction><recipient><identifier><system value="http://example.org/other"/><value value="org-2"/></identifier></recipient></restriction>
  <instantiatesCanonical value="http://dsf.dev/fhir/ActivityDefinition/example"/>
</Task>`
	out := lintTaskFixture(t, xml, nil)
	kinds := kindsOf(out)
	assert.Contains(t, kinds, findings.KindFHIRTaskIntentInvalid)
	assert.Contains(t, kinds, findings.KindFHIRTaskRequesterSystemInvalid)
	assert.Contains(t, kinds, findings.KindFHIRTaskRecipientSystemInvalid)
	assert.Contains(t, kinds, findings.KindFHIRTaskAuthoredOnPlaceholderMissing)
	assert.Contains(t, kinds, findings.KindFHIRTaskRequesterValuePlaceholderMissing)
	assert.Contains(t, kinds, findings.KindFHIRTaskRecipientValuePlaceholderMissing)
	assert.Contains(t, kinds, findings.KindFHIRTaskInstantiatesCanonicalVersionPlaceholderMissing)
	assert.Contains(t, kinds, findings.KindFHIRTaskInputMessageNameCountInvalid)
}
