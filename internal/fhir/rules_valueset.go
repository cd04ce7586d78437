package fhir

import (
	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

var vsRequiredFields = []string{"url", "name", "title", "publisher", "description"}

func init() {
	register("ValueSet", lintValueSet)
}

func lintValueSet(ctx *LintContext, r *Resource, file string) {
	root := r.Root()
	resourceID := r.id()

	for _, field := range vsRequiredFields {
		if val(root, field) == "" {
			ctx.emit(findings.VSFieldMissing(file, resourceID, field))
		}
	}

	if !hasPlaceholder(val(root, "version"), versionPlaceholder) {
		ctx.emit(findings.VSVersionPlaceholderMissing(file, resourceID))
	}
	if !hasPlaceholder(val(root, "date"), datePlaceholder) {
		ctx.emit(findings.VSDatePlaceholderMissing(file, resourceID))
	}

	lintVSCompose(ctx, root, file, resourceID)

	codes := metaTagCodes(root, codesystem.ReadAccessTagURL)
	if !containsAny(codes, "ALL", "LOCAL") {
		ctx.emit(findings.VSReadAccessTagMissing(file, resourceID))
	}
}

func lintVSCompose(ctx *LintContext, root *elem, file, resourceID string) {
	compose := firstChild(root, "compose")
	includes := directChildren(compose, "include")
	if len(includes) == 0 {
		ctx.emit(findings.VSComposeIncludeMissing(file, resourceID))
		return
	}

	for _, include := range includes {
		system := val(include, "system")
		if system == "" {
			ctx.emit(findings.VSIncludeSystemMissing(file, resourceID))
		}
		if !hasPlaceholder(val(include, "version"), versionPlaceholder) {
			ctx.emit(findings.VSIncludeVersionPlaceholderMissing(file, resourceID, system))
		}

		seen := make(map[string]bool)
		for _, concept := range directChildren(include, "concept") {
			code := val(concept, "code")
			if code == "" {
				ctx.emit(findings.VSConceptCodeMissing(file, resourceID))
				continue
			}
			if seen[code] {
				ctx.emit(findings.VSConceptCodeDuplicate(file, resourceID, code))
			}
			seen[code] = true

			if system == "" || !ctx.Codes.IsUnknown(system, code) {
				continue
			}
			if other, ok := ctx.Codes.FindSystemForCode(system, code); ok {
				ctx.emit(findings.VSFalseURLReferenced(file, resourceID, other))
			} else {
				ctx.emit(findings.VSUnknownCode(file, resourceID, system, code))
			}
		}
	}
}

func containsAny(values []string, wanted ...string) bool {
	for _, v := range values {
		for _, w := range wanted {
			if v == w {
				return true
			}
		}
	}
	return false
}
