package fhir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

func lintQFixture(t *testing.T, xml string) []findings.Finding {
	t.Helper()
	path := writeFHIR(t, "q.xml", xml)
	r, err := Load(path)
	require.NoError(t, err)

	var out []findings.Finding
	ctx := &LintContext{Codes: codesystem.New(), Emit: func(f findings.Finding) { out = append(out, f) }}
	lintQuestionnaire(ctx, r, "q.xml")
	return out
}

const goodQuestionnaireXML = `<?xml version="1.0" encoding="UTF-8"?>
<Questionnaire xmlns="http://hl7.org/fhir">
  <meta>
    <profile value="http://dsf.dev/fhir/StructureDefinition/example-questionnaire"/>
    <tag><system value="http://dsf.dev/fhir/CodeSystem/read-access-tag"/><code value="ALL"/></tag>
  </meta>
  <status value="active"/>
  <version value="#{version}"/>
  <date value="#{date}"/>
  <item>
    <linkId value="business-key"/>
    <type value="string"/>
    <required value="true"/>
    <text value="Business key"/>
  </item>
  <item>
    <linkId value="user-task-id"/>
    <type value="string"/>
    <required value="true"/>
    <text value="User task id"/>
  </item>
  <item>
    <linkId value="extra-field"/>
    <type value="string"/>
    <text value="Extra"/>
  </item>
</Questionnaire>`

func TestLintQuestionnaireGood(t *testing.T) {
	out := lintQFixture(t, goodQuestionnaireXML)
	assert.Empty(t, out)
}

func TestLintQuestionnaireMissingBasics(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<Questionnaire xmlns="http://hl7.org/fhir">
  <status value="bogus"/>
</Questionnaire>`
	out := lintQFixture(t, xml)
	kinds := kindsOf(out)
	assert.Contains(t, kinds, findings.KindFHIRQProfileMissing)
	assert.Contains(t, kinds, findings.KindFHIRQReadAccessTagMissing)
	assert.Contains(t, kinds, findings.KindFHIRQStatusInvalid)
	assert.Contains(t, kinds, findings.KindFHIRQVersionPlaceholderMissing)
	assert.Contains(t, kinds, findings.KindFHIRQDatePlaceholderMissing)
	assert.Contains(t, kinds, findings.KindFHIRQItemMissing)
	assert.Contains(t, kinds, findings.KindFHIRQMandatoryItemMissing)
}

func TestLintQuestionnaireItemProblems(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<Questionnaire xmlns="http://hl7.org/fhir">
  <meta><profile value="p"/></meta>
  <status value="draft"/>
  <version value="#{version}"/>
  <date value="#{date}"/>
  <item><linkId value="Not_Kebab"/></item>
  <item><linkId value="Not_Kebab"/><type value="string"/></item>
</Questionnaire>`
	out := lintQFixture(t, xml)
	kinds := kindsOf(out)
	assert.Contains(t, kinds, findings.KindFHIRQItemLinkIDNotKebabCase)
	assert.Contains(t, kinds, findings.KindFHIRQItemLinkIDDuplicate)
	assert.Contains(t, kinds, findings.KindFHIRQItemTypeMissing)
	assert.Contains(t, kinds, findings.KindFHIRQItemTextMissing)
}
