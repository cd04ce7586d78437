package fhir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

func TestDispatchUnsupportedResourceType(t *testing.T) {
	path := writeFHIR(t, "patient.xml", `<?xml version="1.0" encoding="UTF-8"?>
<Patient xmlns="http://hl7.org/fhir">
  <id value="example"/>
</Patient>`)
	r, err := Load(path)
	require.NoError(t, err)

	var out []findings.Finding
	ctx := &LintContext{
		Codes: codesystem.New(),
		Emit:  func(f findings.Finding) { out = append(out, f) },
	}
	Dispatch(ctx, r, "patient.xml")

	require.Len(t, out, 1)
	assert.Equal(t, findings.KindFHIRResourceTypeUnsupported, out[0].Kind)
	assert.Equal(t, "example", out[0].ResourceID)
}

func TestDispatchRoutesToRegisteredLinter(t *testing.T) {
	path := writeFHIR(t, "ad.xml", minimalActivityDefinitionXML)
	r, err := Load(path)
	require.NoError(t, err)

	var out []findings.Finding
	ctx := &LintContext{
		Codes: codesystem.New(),
		Emit:  func(f findings.Finding) { out = append(out, f) },
	}
	Dispatch(ctx, r, "ad.xml")

	// The minimal fixture is missing its read-access tag and
	// process-authorization extension, so the ActivityDefinition linter
	// must have run rather than falling through to the unsupported path.
	var kinds []findings.Kind
	for _, f := range out {
		kinds = append(kinds, f.Kind)
	}
	assert.Contains(t, kinds, findings.KindFHIRADReadAccessTagMissing)
	assert.Contains(t, kinds, findings.KindFHIRADProcessAuthorizationMissing)
	assert.NotContains(t, kinds, findings.KindFHIRResourceTypeUnsupported)
}
