package refresolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFindsFileInExpectedRoot(t *testing.T) {
	project := t.TempDir()
	pluginRoot := filepath.Join(project, "src", "main", "resources")
	require.NoError(t, os.MkdirAll(filepath.Join(pluginRoot, "fhir", "Task"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(pluginRoot, "fhir", "Task", "example.xml"), []byte("<Task/>"), 0o600))

	result, cleanup, err := Resolve([]string{"classpath:fhir/Task/example.xml"}, pluginRoot, project, nil)
	require.NoError(t, err)
	defer cleanup()

	require.Len(t, result.ValidFiles, 1)
	assert.Empty(t, result.MissingRefs)
}

func TestResolveFindsFileOutsideRoot(t *testing.T) {
	project := t.TempDir()
	pluginRoot := filepath.Join(project, "pluginA")
	require.NoError(t, os.MkdirAll(pluginRoot, 0o750))

	otherResources := filepath.Join(project, "src", "main", "resources")
	require.NoError(t, os.MkdirAll(filepath.Join(otherResources, "fhir"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(otherResources, "fhir", "shared.xml"), []byte("<Task/>"), 0o600))

	result, cleanup, err := Resolve([]string{"fhir/shared.xml"}, pluginRoot, project, nil)
	require.NoError(t, err)
	defer cleanup()

	assert.Empty(t, result.ValidFiles)
	assert.Equal(t, 1, len(result.OutsideRootFiles))
}

func TestResolveReportsMissingReference(t *testing.T) {
	project := t.TempDir()
	pluginRoot := filepath.Join(project, "fhir")
	require.NoError(t, os.MkdirAll(pluginRoot, 0o750))

	result, cleanup, err := Resolve([]string{"fhir/Task/nonexistent.xml"}, pluginRoot, project, nil)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, []string{"fhir/Task/nonexistent.xml"}, result.MissingRefs)
}

func TestResolveAcceptsXMLJSONExtensionEquivalence(t *testing.T) {
	project := t.TempDir()
	pluginRoot := filepath.Join(project, "fhir")
	require.NoError(t, os.MkdirAll(pluginRoot, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(pluginRoot, "example.json"), []byte("{}"), 0o600))

	result, cleanup, err := Resolve([]string{"example.xml"}, pluginRoot, project, nil)
	require.NoError(t, err)
	defer cleanup()

	assert.Len(t, result.ValidFiles, 1)
}

func TestResolveAcceptsLeafFileForm(t *testing.T) {
	project := t.TempDir()
	pluginRoot := filepath.Join(project, "fhir")
	require.NoError(t, os.MkdirAll(filepath.Join(pluginRoot, "nested", "dir"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(pluginRoot, "nested", "dir", "leaf.xml"), []byte("<Task/>"), 0o600))

	result, cleanup, err := Resolve([]string{"leaf.xml"}, pluginRoot, project, nil)
	require.NoError(t, err)
	defer cleanup()

	assert.Len(t, result.ValidFiles, 1)
}

func TestExtensionEquivalentsOnlyAppliesToXMLJSON(t *testing.T) {
	assert.Equal(t, []string{"a.bpmn"}, extensionEquivalents("a.bpmn"))
	assert.Equal(t, []string{"a.xml", "a.json"}, extensionEquivalents("a.xml"))
	assert.Equal(t, []string{"a.json", "a.xml"}, extensionEquivalents("a.json"))
}
