package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/findings"
	"github.com/wharflab/dsf-lint/internal/plugindiscovery"
)

const serviceTaskProcess = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                   xmlns:camunda="http://camunda.org/schema/1.0/bpmn">
  <bpmn:process id="dsf_example">
    <bpmn:serviceTask id="missingClass" name="Missing class" />
    <bpmn:serviceTask id="notFound" name="Not found" camunda:class="com.example.Nope" />
    <bpmn:serviceTask id="wrongIface" name="Wrong iface" camunda:class="com.example.WrongInterface" />
    <bpmn:serviceTask id="wrongBase" name="Wrong base" camunda:class="com.example.WrongBase" />
    <bpmn:serviceTask id="emptyName" camunda:class="com.example.GoodTask" />
    <bpmn:serviceTask id="good" name="Good" camunda:class="com.example.GoodTask" />
  </bpmn:process>
</bpmn:definitions>`

func findingsByAnchor(fs []findings.Finding) map[string][]findings.Finding {
	out := make(map[string][]findings.Finding)
	for _, f := range fs {
		out[f.Anchor] = append(out[f.Anchor], f)
	}
	return out
}

func subTypesOf(fs []findings.Finding) []findings.SubType {
	var out []findings.SubType
	for _, f := range fs {
		out = append(out, f.SubType)
	}
	return out
}

func TestDispatchServiceTasks(t *testing.T) {
	path := writeBPMN(t, serviceTaskProcess)
	m, err := Load(path)
	require.NoError(t, err)

	catalog := newTestCatalog(t, map[string]struct {
		super      string
		interfaces []string
	}{
		"com.example.GoodTask": {
			super:      "dev.dsf.bpe.v1.activity.AbstractServiceTask",
			interfaces: []string{"dev.dsf.bpe.v1.activity.ServiceTask"},
		},
		"com.example.WrongInterface": {
			super:      "java.lang.Object",
			interfaces: nil,
		},
		"com.example.WrongBase": {
			super:      "java.lang.Object",
			interfaces: []string{"dev.dsf.bpe.v1.activity.ServiceTask"},
		},
	})

	var out []findings.Finding
	ctx := &DispatchContext{
		ActiveAPIVersion: plugindiscovery.APIV1,
		Catalog:          catalog,
		Emit:             func(f findings.Finding) { out = append(out, f) },
	}

	dispatchServiceTasks(ctx, m, "process.bpmn")
	byAnchor := findingsByAnchor(out)

	assert.Contains(t, subTypesOf(byAnchor["missingClass"]), findings.SubTypeServiceTaskClassMissing)
	assert.Contains(t, subTypesOf(byAnchor["notFound"]), findings.SubTypeServiceTaskClassNotFound)
	assert.Contains(t, subTypesOf(byAnchor["wrongIface"]), findings.SubTypeServiceTaskClassWrongInterface)
	assert.Contains(t, subTypesOf(byAnchor["wrongBase"]), findings.SubTypeServiceTaskClassWrongBaseClass)
	assert.Contains(t, subTypesOf(byAnchor["emptyName"]), findings.SubTypeServiceTaskNameEmpty)

	assert.Equal(t, []findings.SubType{findings.SubTypeServiceTaskOK}, subTypesOf(byAnchor["good"]))
}

func TestDispatchServiceTasksSkipsInterfaceChecksWithoutCatalog(t *testing.T) {
	path := writeBPMN(t, serviceTaskProcess)
	m, err := Load(path)
	require.NoError(t, err)

	var out []findings.Finding
	ctx := &DispatchContext{
		ActiveAPIVersion: plugindiscovery.APIV1,
		Catalog:          nil,
		Emit:             func(f findings.Finding) { out = append(out, f) },
	}

	dispatchServiceTasks(ctx, m, "process.bpmn")
	byAnchor := findingsByAnchor(out)

	// A nil catalog still reports the class as not found (there is nothing
	// to resolve it against), but must never panic on Implements/IsSubclassOf.
	assert.Contains(t, subTypesOf(byAnchor["good"]), findings.SubTypeServiceTaskClassNotFound)
}
