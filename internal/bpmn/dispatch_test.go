package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/findings"
	"github.com/wharflab/dsf-lint/internal/plugindiscovery"
)

func TestDispatchRunsEveryFamily(t *testing.T) {
	path := writeBPMN(t, minimalProcess)
	m, err := Load(path)
	require.NoError(t, err)

	catalog := newTestCatalog(t, map[string]struct {
		super      string
		interfaces []string
	}{
		"dev.dsf.process.ExampleTask": {
			super:      "dev.dsf.bpe.v1.activity.AbstractServiceTask",
			interfaces: []string{"dev.dsf.bpe.v1.activity.ServiceTask"},
		},
	})

	var out []findings.Finding
	ctx := &DispatchContext{
		ActiveAPIVersion: plugindiscovery.APIV1,
		Catalog:          catalog,
		Emit:             func(f findings.Finding) { out = append(out, f) },
	}

	Dispatch(ctx, m, "process.bpmn")

	byAnchor := findingsByAnchor(out)
	assert.Contains(t, subTypesOf(byAnchor["task1"]), findings.SubTypeServiceTaskOK)
	assert.Contains(t, subTypesOf(byAnchor["dsf_example"]), findings.SubTypeProcessOK)
	assert.Contains(t, subTypesOf(byAnchor["start"]), findings.SubTypeMessageEventOK)
	assert.NotContains(t, subTypesOf(byAnchor["task1"]), findings.SubTypeFloatingElement)
}
