package fhir

import (
	"regexp"

	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

var kebabCase = regexp.MustCompile(`^[a-z0-9\-]+$`)

var validQuestionnaireStatuses = map[string]bool{
	"draft":   true,
	"active":  true,
	"retired": true,
}

// mandatoryQuestionnaireItems are the two items every DSF user-task
// questionnaire must carry, each as a required string field.
var mandatoryQuestionnaireItems = []string{"business-key", "user-task-id"}

func init() {
	register("Questionnaire", lintQuestionnaire)
}

func lintQuestionnaire(ctx *LintContext, r *Resource, file string) {
	root := r.Root()
	resourceID := r.id()

	if len(metaProfiles(root)) == 0 {
		ctx.emit(findings.QProfileMissing(file, resourceID))
	}

	codes := metaTagCodes(root, codesystem.ReadAccessTagURL)
	if len(codes) == 0 {
		ctx.emit(findings.QReadAccessTagMissing(file, resourceID))
	}

	if status := val(root, "status"); !validQuestionnaireStatuses[status] {
		ctx.emit(findings.QStatusInvalid(file, resourceID, status))
	}

	if !hasPlaceholder(val(root, "version"), versionPlaceholder) {
		ctx.emit(findings.QVersionPlaceholderMissing(file, resourceID))
	}
	if !hasPlaceholder(val(root, "date"), datePlaceholder) {
		ctx.emit(findings.QDatePlaceholderMissing(file, resourceID))
	}

	items := directChildren(root, "item")
	if len(items) == 0 {
		ctx.emit(findings.QItemMissing(file, resourceID))
	}

	seenLinkIDs := make(map[string]bool)
	present := make(map[string]*elem)

	for _, item := range items {
		linkID := val(item, "linkId")
		if linkID == "" {
			ctx.emit(findings.QItemLinkIDMissing(file, resourceID))
		} else {
			if seenLinkIDs[linkID] {
				ctx.emit(findings.QItemLinkIDDuplicate(file, resourceID, linkID))
			}
			seenLinkIDs[linkID] = true
			if !kebabCase.MatchString(linkID) {
				ctx.emit(findings.QItemLinkIDNotKebabCase(file, resourceID, linkID))
			}
			present[linkID] = item
		}

		if val(item, "type") == "" {
			ctx.emit(findings.QItemTypeMissing(file, resourceID, linkID))
		}
		if val(item, "text") == "" {
			ctx.emit(findings.QItemTextMissing(file, resourceID, linkID))
		}
	}

	for _, linkID := range mandatoryQuestionnaireItems {
		item, ok := present[linkID]
		if !ok || val(item, "type") != "string" || val(item, "required") != "true" {
			ctx.emit(findings.QMandatoryItemMissing(file, resourceID, linkID))
		}
	}
}
