package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/findings"
	"github.com/wharflab/dsf-lint/internal/plugindiscovery"
)

func sendTaskXML(id, class, fields string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                   xmlns:camunda="http://camunda.org/schema/1.0/bpmn">
  <bpmn:process id="dsf_example">
    <bpmn:sendTask id="` + id + `" name="Send" camunda:class="` + class + `">
      <bpmn:extensionElements>
        ` + fields + `
      </bpmn:extensionElements>
    </bpmn:sendTask>
  </bpmn:process>
</bpmn:definitions>`
}

func camundaField(name, value string) string {
	return `<camunda:field name="` + name + `" stringValue="` + value + `" />`
}

func allGoodFields() string {
	return camundaField("profile", "http://example.com/fhir/StructureDefinition/task|#{version}") +
		camundaField("messageName", "example-message") +
		camundaField("instantiatesCanonical", "http://example.com/fhir/ActivityDefinition/example|#{version}")
}

func goodSendTaskCatalog(t *testing.T) map[string]struct {
	super      string
	interfaces []string
} {
	return map[string]struct {
		super      string
		interfaces []string
	}{
		"com.example.GoodSend": {
			super:      "dev.dsf.bpe.v1.activity.AbstractTaskMessageSend",
			interfaces: []string{"dev.dsf.bpe.v1.activity.MessageSendTask"},
		},
	}
}

func TestDispatchSendTasksClassChecks(t *testing.T) {
	path := writeBPMN(t, sendTaskXML("send1", "", allGoodFields()))
	m, err := Load(path)
	require.NoError(t, err)

	var out []findings.Finding
	ctx := &DispatchContext{
		ActiveAPIVersion: plugindiscovery.APIV1,
		Catalog:          nil,
		Emit:             func(f findings.Finding) { out = append(out, f) },
	}
	dispatchSendTasks(ctx, m, "process.bpmn")
	assert.Contains(t, subTypesOf(out), findings.SubTypeSendTaskClassMissing)
}

func TestDispatchSendTasksWrongInterfaceAndBaseClass(t *testing.T) {
	catalog := newTestCatalog(t, map[string]struct {
		super      string
		interfaces []string
	}{
		"com.example.WrongIface": {super: "java.lang.Object"},
		"com.example.WrongBase":  {super: "java.lang.Object", interfaces: []string{"dev.dsf.bpe.v1.activity.MessageSendTask"}},
	})

	for _, tc := range []struct {
		class string
		sub   findings.SubType
	}{
		{"com.example.WrongIface", findings.SubTypeSendTaskClassWrongInterface},
		{"com.example.WrongBase", findings.SubTypeSendTaskClassWrongBaseClass},
	} {
		path := writeBPMN(t, sendTaskXML("send1", tc.class, allGoodFields()))
		m, err := Load(path)
		require.NoError(t, err)

		var out []findings.Finding
		ctx := &DispatchContext{
			ActiveAPIVersion: plugindiscovery.APIV1,
			Catalog:          catalog,
			Emit:             func(f findings.Finding) { out = append(out, f) },
		}
		dispatchSendTasks(ctx, m, "process.bpmn")
		assert.Contains(t, subTypesOf(out), tc.sub, "class %s", tc.class)
	}
}

func TestDispatchSendTasksFieldChecks(t *testing.T) {
	catalog := newTestCatalog(t, goodSendTaskCatalog(t))

	t.Run("missing fields", func(t *testing.T) {
		path := writeBPMN(t, sendTaskXML("send1", "com.example.GoodSend", ""))
		m, err := Load(path)
		require.NoError(t, err)

		var out []findings.Finding
		ctx := &DispatchContext{
			ActiveAPIVersion: plugindiscovery.APIV1,
			Catalog:          catalog,
			Emit:             func(f findings.Finding) { out = append(out, f) },
		}
		dispatchSendTasks(ctx, m, "process.bpmn")
		subs := subTypesOf(out)
		assert.Contains(t, subs, findings.SubTypeSendTaskFieldProfileMissing)
		assert.Contains(t, subs, findings.SubTypeSendTaskFieldMessageNameMissing)
		assert.Contains(t, subs, findings.SubTypeSendTaskFieldInstantiatesCanonicalMissing)
	})

	t.Run("missing version placeholder", func(t *testing.T) {
		fields := camundaField("profile", "http://example.com/fhir/StructureDefinition/task|1.0.0") +
			camundaField("messageName", "example-message") +
			camundaField("instantiatesCanonical", "http://example.com/fhir/ActivityDefinition/example|1.0.0")
		path := writeBPMN(t, sendTaskXML("send1", "com.example.GoodSend", fields))
		m, err := Load(path)
		require.NoError(t, err)

		var out []findings.Finding
		ctx := &DispatchContext{
			ActiveAPIVersion: plugindiscovery.APIV1,
			Catalog:          catalog,
			Emit:             func(f findings.Finding) { out = append(out, f) },
		}
		dispatchSendTasks(ctx, m, "process.bpmn")
		subs := subTypesOf(out)
		assert.Contains(t, subs, findings.SubTypeSendTaskFieldProfileMissingVersionPlaceholder)
		assert.Contains(t, subs, findings.SubTypeSendTaskFieldInstantiatesCanonicalMissingVersionPlaceholder)
	})

	t.Run("expression valued field", func(t *testing.T) {
		fields := camundaField("profile", "${profileExpression}") +
			camundaField("messageName", "example-message") +
			camundaField("instantiatesCanonical", "http://example.com/fhir/ActivityDefinition/example|#{version}")
		path := writeBPMN(t, sendTaskXML("send1", "com.example.GoodSend", fields))
		m, err := Load(path)
		require.NoError(t, err)

		var out []findings.Finding
		ctx := &DispatchContext{
			ActiveAPIVersion: plugindiscovery.APIV1,
			Catalog:          catalog,
			Emit:             func(f findings.Finding) { out = append(out, f) },
		}
		dispatchSendTasks(ctx, m, "process.bpmn")
		assert.Contains(t, subTypesOf(out), findings.SubTypeSendTaskFieldValueIsExpression)
	})

	t.Run("all good", func(t *testing.T) {
		path := writeBPMN(t, sendTaskXML("send1", "com.example.GoodSend", allGoodFields()))
		m, err := Load(path)
		require.NoError(t, err)

		var out []findings.Finding
		ctx := &DispatchContext{
			ActiveAPIVersion: plugindiscovery.APIV1,
			Catalog:          catalog,
			Emit:             func(f findings.Finding) { out = append(out, f) },
		}
		dispatchSendTasks(ctx, m, "process.bpmn")
		assert.Contains(t, subTypesOf(out), findings.SubTypeSendTaskOK)
	})
}
