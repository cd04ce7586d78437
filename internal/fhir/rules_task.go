package fhir

import (
	"github.com/wharflab/dsf-lint/internal/findings"
)

// organizationIdentifierSystem is the fixed identifier system DSF process
// plugins use to address organizations by their canonical identifier,
// invented consistently with the dsf.dev/sid/ and dsf.dev/fhir/ URL
// conventions the rest of this catalog already follows (no reference value
// exists anywhere in the retrieved pack to read it from).
const organizationIdentifierSystem = "http://dsf.dev/sid/organization-identifier"

var validTaskStatuses = map[string]bool{
	"draft":       true,
	"requested":   true,
	"in-progress": true,
	"completed":   true,
	"failed":      true,
}

var businessKeyRequiredStatuses = map[string]bool{
	"in-progress": true,
	"completed":   true,
	"failed":      true,
}

func init() {
	register("Task", lintTask)
}

func lintTask(ctx *LintContext, r *Resource, file string) {
	root := r.Root()
	resourceID := r.id()

	// Task's own instance-profile presence/correctness has no distinct
	// finding in the catalog this linter reports against; not checked here.

	status := val(root, "status")
	if !validTaskStatuses[status] && status != "" {
		ctx.emit(findings.TaskStatusInvalid(file, resourceID, status))
	}

	if intent := val(root, "intent"); intent != "order" {
		ctx.emit(findings.TaskIntentInvalid(file, resourceID, intent))
	}

	requester := firstChild(root, "requester")
	requesterIdentifier := firstChild(requester, "identifier")
	if system := val(requesterIdentifier, "system"); system != organizationIdentifierSystem {
		ctx.emit(findings.TaskRequesterSystemInvalid(file, resourceID, system))
	}
	if !hasPlaceholder(val(requesterIdentifier, "value"), organizationPlaceholder) {
		ctx.emit(findings.TaskRequesterValuePlaceholderMissing(file, resourceID))
	}

	restriction := firstChild(root, "restriction")
	recipient := firstChild(restriction, "recipient")
	recipientIdentifier := firstChild(recipient, "identifier")
	if system := val(recipientIdentifier, "system"); system != organizationIdentifierSystem {
		ctx.emit(findings.TaskRecipientSystemInvalid(file, resourceID, system))
	}
	if !hasPlaceholder(val(recipientIdentifier, "value"), organizationPlaceholder) {
		ctx.emit(findings.TaskRecipientValuePlaceholderMissing(file, resourceID))
	}

	if !hasPlaceholder(val(root, "authoredOn"), datePlaceholder) {
		ctx.emit(findings.TaskAuthoredOnPlaceholderMissing(file, resourceID))
	}

	lintTaskInstantiatesCanonical(ctx, root, file, resourceID)
	lintTaskInputs(ctx, root, file, resourceID)

	switch {
	case businessKeyRequiredStatuses[status]:
		if !taskHasInputCode(root, "business-key") {
			ctx.emit(findings.TaskBusinessKeyMissing(file, resourceID))
		}
	case status == "draft":
		if taskHasInputCode(root, "business-key") {
			ctx.emit(findings.TaskBusinessKeyPresentInDraft(file, resourceID))
		}
		if taskHasInputCode(root, "correlation-key") {
			ctx.emit(findings.TaskCorrelationKeyPresentInDraft(file, resourceID))
		}
	default:
		ctx.emit(findings.TaskBusinessKeyCheckSkipped(file, resourceID, status))
	}
}

func lintTaskInstantiatesCanonical(ctx *LintContext, root *elem, file, resourceID string) {
	canonical := val(root, "instantiatesCanonical")
	if ctx.KnownActivityDefinitions != nil && !ctx.KnownActivityDefinitions[stripCanonicalVersion(canonical)] {
		ctx.emit(findings.TaskInstantiatesCanonicalUnknown(file, resourceID, canonical))
	}
	if !hasPlaceholder(canonical, versionPlaceholder) {
		ctx.emit(findings.TaskInstantiatesCanonicalVersionPlaceholderMissing(file, resourceID, canonical))
	}
}

func stripCanonicalVersion(canonical string) string {
	for i := 0; i < len(canonical); i++ {
		if canonical[i] == '|' {
			return canonical[:i]
		}
	}
	return canonical
}

func lintTaskInputs(ctx *LintContext, root *elem, file, resourceID string) {
	messageNameCount := 0
	codeCounts := make(map[string]int)

	for _, input := range directChildren(root, "input") {
		typ := firstChild(input, "type")
		for _, coding := range directChildren(typ, "coding") {
			code := val(coding, "code")
			if code == "" {
				continue
			}
			codeCounts[code]++
			if code == "message-name" {
				messageNameCount++
			}
			system := val(coding, "system")
			if system != "" && ctx.Codes.IsUnknown(system, code) {
				ctx.emit(findings.TaskTypeCodingUnknown(file, resourceID, code))
			}
		}
	}

	if messageNameCount != 1 {
		ctx.emit(findings.TaskInputMessageNameCountInvalid(file, resourceID, messageNameCount))
	}

	for _, code := range []string{"business-key", "correlation-key", "message-name"} {
		if codeCounts[code] > 1 {
			ctx.emit(findings.TaskInputCardinalityInvalid(file, resourceID, code))
		}
	}
}

func taskHasInputCode(root *elem, code string) bool {
	for _, input := range directChildren(root, "input") {
		typ := firstChild(input, "type")
		for _, coding := range directChildren(typ, "coding") {
			if val(coding, "code") == code {
				return true
			}
		}
	}
	return false
}
