package fhir

import "strings"

// Placeholder tokens that are substituted when a plugin is packaged and
// deployed, outside this linter. Their presence in version/date/identifier
// fields is what the rule sets below check for, mirroring internal/bpmn's
// versionPlaceholder.
const (
	versionPlaceholder      = "#{version}"
	datePlaceholder         = "#{date}"
	organizationPlaceholder = "#{organization}"
)

func hasPlaceholder(value, placeholder string) bool {
	return strings.Contains(value, placeholder)
}
