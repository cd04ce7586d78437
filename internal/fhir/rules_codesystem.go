package fhir

import "github.com/wharflab/dsf-lint/internal/findings"

var csRequiredFields = []string{"url", "name", "title", "publisher", "content", "caseSensitive"}

func init() {
	register("CodeSystem", lintCodeSystem)
}

func lintCodeSystem(ctx *LintContext, r *Resource, file string) {
	root := r.Root()
	resourceID := r.id()

	for _, field := range csRequiredFields {
		if val(root, field) == "" {
			ctx.emit(findings.CSFieldMissing(file, resourceID, field))
		}
	}

	if status := val(root, "status"); status != "unknown" {
		ctx.emit(findings.CSStatusNotUnknown(file, resourceID, status))
	}

	if !hasPlaceholder(val(root, "version"), versionPlaceholder) {
		ctx.emit(findings.CSVersionPlaceholderMissing(file, resourceID))
	}
	if !hasPlaceholder(val(root, "date"), datePlaceholder) {
		ctx.emit(findings.CSDatePlaceholderMissing(file, resourceID))
	}

	concepts := directChildren(root, "concept")
	if len(concepts) == 0 {
		ctx.emit(findings.CSConceptMissing(file, resourceID))
		return
	}

	seen := make(map[string]bool)
	for _, concept := range concepts {
		code := val(concept, "code")
		if code == "" {
			continue
		}
		if val(concept, "display") == "" {
			ctx.emit(findings.CSConceptDisplayMissing(file, resourceID, code))
		}
		if seen[code] {
			ctx.emit(findings.CSConceptCodeDuplicate(file, resourceID, code))
		}
		seen[code] = true
	}
}
