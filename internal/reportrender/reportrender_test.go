package reportrender

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/findings"
	"github.com/wharflab/dsf-lint/internal/report"
)

func sampleAggregate() *report.Aggregate {
	return &report.Aggregate{
		GeneratedBy: "dsf-lint",
		Plugins: []report.PluginReport{
			{
				Name:            "acme_example",
				APIVersion:      "v2",
				SourceClassName: "org.example.ExampleProcessPluginDefinition",
				Findings: []findings.Finding{
					findings.BPMNUnparsable("process.bpmn", "boom"),
				},
				Leftovers: []string{"fhir/Task/orphan.xml"},
			},
		},
	}
}

func TestWriteReportProducesExpectedLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "report")
	opts := WriteOptions{HTML: true, JSON: true, SARIF: true, ToolVersion: "dev"}
	require.NoError(t, WriteReport(dir, sampleAggregate(), opts))

	for _, name := range []string{"index.html", "acme_example.html", "acme_example.json", "dsflint.sarif"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}

func TestWriteReportNoopWhenNothingRequested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "report")
	require.NoError(t, WriteReport(dir, sampleAggregate(), WriteOptions{}))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestRenderJSONIncludesSummaryAndFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, sampleAggregate()))

	out := buf.String()
	assert.Contains(t, out, "\"plugins\"")
	assert.Contains(t, out, "acme_example")
	assert.Contains(t, out, "\"error\": 1")
	assert.Contains(t, out, "process.bpmn")
}

func TestRenderIndexHTMLLinksToPluginPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderIndexHTML(&buf, sampleAggregate()))

	out := buf.String()
	assert.Contains(t, out, "acme_example")
	assert.Contains(t, out, `href="acme_example.html"`)
}

func TestRenderPluginHTMLIncludesFinding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPluginHTML(&buf, sampleAggregate().Plugins[0]))

	out := buf.String()
	assert.Contains(t, out, "acme_example")
	assert.Contains(t, out, "process.bpmn")
	assert.Contains(t, out, "sev-error")
}

func TestRenderPluginJSONIncludesSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPluginJSON(&buf, sampleAggregate().Plugins[0]))

	out := buf.String()
	assert.Contains(t, out, "acme_example")
	assert.Contains(t, out, "\"error\": 1")
}

func TestRenderSARIFIncludesRuleAndArtifact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSARIF(&buf, sampleAggregate(), "dev"))

	out := buf.String()
	assert.Contains(t, out, "process.bpmn")
	assert.Contains(t, out, string(findings.KindBPMNUnparsable))
}
