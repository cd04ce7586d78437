package fhir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateJSONExtensionURLBecomesAttribute(t *testing.T) {
	data := []byte(`{
		"resourceType": "ActivityDefinition",
		"status": "unknown",
		"extension": [
			{
				"url": "http://dsf.dev/fhir/StructureDefinition/extension-process-authorization",
				"extension": [
					{"url": "requester", "valueCoding": {"system": "sysA", "code": "LOCAL_ALL"}}
				]
			}
		],
		"meta": {"tag": [{"system": "rat", "code": "ALL"}]}
	}`)

	root, err := translateJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "ActivityDefinition", root.Tag)
	assert.Equal(t, "unknown", val(root, "status"))

	exts := directChildren(root, "extension")
	require.Len(t, exts, 1)
	assert.Equal(t, "http://dsf.dev/fhir/StructureDefinition/extension-process-authorization", attr(exts[0], "url"))
	assert.Empty(t, directChildren(exts[0], "url"), "extension url must not also appear as a child element")

	nested := directChildren(exts[0], "extension")
	require.Len(t, nested, 1)
	assert.Equal(t, "requester", attr(nested[0], "url"))

	coding := firstChild(nested[0], "valueCoding")
	require.NotNil(t, coding)
	assert.Equal(t, "sysA", val(coding, "system"))
	assert.Equal(t, "LOCAL_ALL", val(coding, "code"))

	tags := metaTagCodes(root, "rat")
	assert.Equal(t, []string{"ALL"}, tags)
}

func TestTranslateJSONArrayExpandsToRepeatedElements(t *testing.T) {
	data := []byte(`{
		"resourceType": "ValueSet",
		"compose": {
			"include": [
				{"system": "sysA", "concept": [{"code": "a"}, {"code": "b"}]},
				{"system": "sysB"}
			]
		}
	}`)

	root, err := translateJSON(data)
	require.NoError(t, err)

	compose := firstChild(root, "compose")
	includes := directChildren(compose, "include")
	require.Len(t, includes, 2)
	assert.Equal(t, "sysA", val(includes[0], "system"))
	assert.Equal(t, "sysB", val(includes[1], "system"))

	concepts := directChildren(includes[0], "concept")
	require.Len(t, concepts, 2)
	assert.Equal(t, "a", val(concepts[0], "code"))
	assert.Equal(t, "b", val(concepts[1], "code"))
}

func TestTranslateJSONMissingResourceTypeErrors(t *testing.T) {
	_, err := translateJSON([]byte(`{"status": "unknown"}`))
	assert.Error(t, err)
}
