package orchestrator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wharflab/dsf-lint/internal/plugindiscovery"
)

var (
	nonFilenameChar = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	underscoreRun   = regexp.MustCompile(`_+`)
)

// sanitizeReportName makes name safe for use as a filesystem entry: any
// character outside [a-zA-Z0-9._-] becomes '_', runs of '_' collapse to one,
// and the result is lowercased.
func sanitizeReportName(name string) string {
	s := nonFilenameChar.ReplaceAllString(name, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// uniqueReportNames assigns each handle a unique, sanitized report name, in
// discovery order (§4.10's unique-naming discipline): a base-name collision
// is first broken by appending the descriptor's own API version (_vN), then
// by an ordinal suffix (_2, _3, ...) in discovery order if the
// version-qualified name still collides.
func uniqueReportNames(handles []plugindiscovery.Handle) []string {
	baseCounts := make(map[string]int, len(handles))
	for _, h := range handles {
		baseCounts[h.Name]++
	}

	names := make([]string, len(handles))
	used := make(map[string]bool, len(handles))

	for i, h := range handles {
		candidate := h.Name
		if baseCounts[h.Name] > 1 {
			candidate = h.Name + "_" + h.APIVersion.String()
		}
		candidate = sanitizeReportName(candidate)

		final := candidate
		for n := 2; used[final]; n++ {
			final = fmt.Sprintf("%s_%d", candidate, n)
		}
		used[final] = true
		names[i] = final
	}

	return names
}
