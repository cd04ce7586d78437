package orchestrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownTestActivityDefinitionXML = `<?xml version="1.0" encoding="UTF-8"?>
<ActivityDefinition xmlns="http://hl7.org/fhir">
  <url value="http://dsf.dev/fhir/ActivityDefinition/example"/>
</ActivityDefinition>`

const knownTestQuestionnaireXML = `<?xml version="1.0" encoding="UTF-8"?>
<Questionnaire xmlns="http://hl7.org/fhir">
  <url value="http://dsf.dev/fhir/Questionnaire/example"/>
</Questionnaire>`

const knownTestTaskXML = `<?xml version="1.0" encoding="UTF-8"?>
<Task xmlns="http://hl7.org/fhir">
  <input>
    <type><coding><code value="message-name"/></coding></type>
    <valueString value="acme_example"/>
  </input>
</Task>`

func writeResourceFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestScanKnownReferences(t *testing.T) {
	dir := t.TempDir()
	writeResourceFile(t, dir, "ad.xml", knownTestActivityDefinitionXML)
	writeResourceFile(t, dir, "q.xml", knownTestQuestionnaireXML)
	writeResourceFile(t, dir, "task.xml", knownTestTaskXML)

	known := scanKnownReferences(dir)

	assert.True(t, known.activityDefinitions["http://dsf.dev/fhir/ActivityDefinition/example"])
	assert.True(t, known.questionnaires["http://dsf.dev/fhir/Questionnaire/example"])
	assert.True(t, known.messageNames["acme_example"])
}

func TestWalkResourceTreeClassifiesByExtension(t *testing.T) {
	dir := t.TempDir()
	writeResourceFile(t, dir, "process.bpmn", "<x/>")
	writeResourceFile(t, dir, "resource.xml", "<x/>")
	writeResourceFile(t, dir, "resource.json", "{}")
	writeResourceFile(t, dir, "ignored.txt", "nope")

	bpmnFiles, fhirFiles := walkResourceTree(dir)
	assert.Len(t, bpmnFiles, 1)
	assert.Len(t, fhirFiles, 2)
}
