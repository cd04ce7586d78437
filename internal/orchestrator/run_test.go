package orchestrator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wharflab/dsf-lint/internal/plugindiscovery"
)

func TestFatalErrorWrapsStageAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := &FatalError{Stage: "plugin discovery", Err: cause}

	assert.Contains(t, err.Error(), "plugin discovery")
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err, cause)
}

func TestAllReferencesFlattensProcessModelsAndFHIRSortedByProcessID(t *testing.T) {
	h := plugindiscovery.Handle{
		ProcessModels: []string{"bpmn/example.bpmn"},
		FHIRResourcesByProcessID: map[string][]string{
			"acme_second": {"fhir/Task/b.xml"},
			"acme_first":  {"fhir/Task/a.xml"},
		},
	}
	refs := allReferences(h)
	assert.Equal(t, []string{
		"bpmn/example.bpmn",
		"fhir/Task/a.xml",
		"fhir/Task/b.xml",
	}, refs)
}
