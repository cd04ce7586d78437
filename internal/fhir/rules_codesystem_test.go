package fhir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

func lintCSFixture(t *testing.T, xml string) []findings.Finding {
	t.Helper()
	path := writeFHIR(t, "cs.xml", xml)
	r, err := Load(path)
	require.NoError(t, err)

	var out []findings.Finding
	ctx := &LintContext{Codes: codesystem.New(), Emit: func(f findings.Finding) { out = append(out, f) }}
	lintCodeSystem(ctx, r, "cs.xml")
	return out
}

const goodCodeSystemXML = `<?xml version="1.0" encoding="UTF-8"?>
<CodeSystem xmlns="http://hl7.org/fhir">
  <url value="http://dsf.dev/fhir/CodeSystem/example"/>
  <name value="example"/>
  <title value="Example"/>
  <publisher value="DSF"/>
  <content value="complete"/>
  <caseSensitive value="true"/>
  <status value="unknown"/>
  <version value="#{version}"/>
  <date value="#{date}"/>
  <concept><code value="A"/><display value="Alpha"/></concept>
  <concept><code value="B"/><display value="Beta"/></concept>
</CodeSystem>`

func TestLintCodeSystemGood(t *testing.T) {
	out := lintCSFixture(t, goodCodeSystemXML)
	assert.Empty(t, out)
}

func TestLintCodeSystemProblems(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<CodeSystem xmlns="http://hl7.org/fhir">
  <status value="active"/>
  <concept><code value="A"/></concept>
  <concept><code value="A"/><display value="dup"/></concept>
</CodeSystem>`
	out := lintCSFixture(t, xml)
	kinds := kindsOf(out)
	assert.Contains(t, kinds, findings.KindFHIRCSFieldMissing)
	assert.Contains(t, kinds, findings.KindFHIRCSStatusNotUnknown)
	assert.Contains(t, kinds, findings.KindFHIRCSConceptDisplayMissing)
	assert.Contains(t, kinds, findings.KindFHIRCSConceptCodeDuplicate)
	assert.Contains(t, kinds, findings.KindFHIRCSVersionPlaceholderMissing)
	assert.Contains(t, kinds, findings.KindFHIRCSDatePlaceholderMissing)
}

func TestLintCodeSystemNoConcepts(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<CodeSystem xmlns="http://hl7.org/fhir">
  <url value="u"/><name value="n"/><title value="t"/><publisher value="p"/>
  <content value="complete"/><caseSensitive value="true"/>
  <status value="unknown"/><version value="#{version}"/><date value="#{date}"/>
</CodeSystem>`
	out := lintCSFixture(t, xml)
	assert.Contains(t, kindsOf(out), findings.KindFHIRCSConceptMissing)
}
