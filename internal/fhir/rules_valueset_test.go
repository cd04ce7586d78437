package fhir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

func lintVSFixture(t *testing.T, xml string, codes *codesystem.Cache) []findings.Finding {
	t.Helper()
	path := writeFHIR(t, "vs.xml", xml)
	r, err := Load(path)
	require.NoError(t, err)
	if codes == nil {
		codes = codesystem.New()
	}

	var out []findings.Finding
	ctx := &LintContext{Codes: codes, Emit: func(f findings.Finding) { out = append(out, f) }}
	lintValueSet(ctx, r, "vs.xml")
	return out
}

const goodValueSetXML = `<?xml version="1.0" encoding="UTF-8"?>
<ValueSet xmlns="http://hl7.org/fhir">
  <url value="http://dsf.dev/fhir/ValueSet/example"/>
  <name value="example"/>
  <title value="Example"/>
  <publisher value="DSF"/>
  <description value="An example value set"/>
  <version value="#{version}"/>
  <date value="#{date}"/>
  <meta>
    <tag><system value="http://dsf.dev/fhir/CodeSystem/read-access-tag"/><code value="ALL"/></tag>
  </meta>
  <compose>
    <include>
      <system value="http://dsf.dev/fhir/CodeSystem/read-access-tag"/>
      <version value="#{version}"/>
      <concept><code value="ALL"/></concept>
      <concept><code value="LOCAL"/></concept>
    </include>
  </compose>
</ValueSet>`

func TestLintValueSetGood(t *testing.T) {
	out := lintVSFixture(t, goodValueSetXML, nil)
	assert.Empty(t, out)
}

func TestLintValueSetMissingFields(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<ValueSet xmlns="http://hl7.org/fhir"></ValueSet>`
	out := lintVSFixture(t, xml, nil)
	kinds := kindsOf(out)
	assert.Contains(t, kinds, findings.KindFHIRVSFieldMissing)
	assert.Contains(t, kinds, findings.KindFHIRVSComposeIncludeMissing)
	assert.Contains(t, kinds, findings.KindFHIRVSReadAccessTagMissing)
}

func TestLintValueSetFalseURLReferencedVsUnknownCode(t *testing.T) {
	codes := codesystem.New()
	codes.Register("http://example.org/other-system", []string{"KNOWN_ELSEWHERE"})

	xml := `<?xml version="1.0" encoding="UTF-8"?>
<ValueSet xmlns="http://hl7.org/fhir">
  <url value="http://dsf.dev/fhir/ValueSet/example"/>
  <name value="example"/>
  <title value="Example"/>
  <publisher value="DSF"/>
  <description value="d"/>
  <version value="#{version}"/>
  <date value="#{date}"/>
  <meta><tag><system value="http://dsf.dev/fhir/CodeSystem/read-access-tag"/><code value="LOCAL"/></tag></meta>
  <compose>
    <include>
      <system value="http://dsf.dev/fhir/CodeSystem/read-access-tag"/>
      <version value="#{version}"/>
      <concept><code value="KNOWN_ELSEWHERE"/></concept>
      <concept><code value="NOWHERE"/></concept>
      <concept><code value="NOWHERE"/></concept>
    </include>
  </compose>
</ValueSet>`
	out := lintVSFixture(t, xml, codes)
	kinds := kindsOf(out)
	assert.Contains(t, kinds, findings.KindFHIRVSFalseURLReferenced)
	assert.Contains(t, kinds, findings.KindFHIRVSUnknownCode)
	assert.Contains(t, kinds, findings.KindFHIRVSConceptCodeDuplicate)
}
