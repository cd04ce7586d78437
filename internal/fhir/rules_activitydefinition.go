package fhir

import (
	"strings"

	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/findings"
)

const (
	adURLPrefix            = "http://dsf.dev/fhir/ActivityDefinition/"
	processAuthorizationURL = "http://dsf.dev/fhir/StructureDefinition/extension-process-authorization"
)

func init() {
	register("ActivityDefinition", lintActivityDefinition)
}

func lintActivityDefinition(ctx *LintContext, r *Resource, file string) {
	root := r.Root()
	resourceID := r.id()

	if url := val(root, "url"); !strings.HasPrefix(url, adURLPrefix) {
		ctx.emit(findings.ADURLPrefixInvalid(file, resourceID, url))
	}

	if status := val(root, "status"); status != "unknown" {
		ctx.emit(findings.ADStatusNotUnknown(file, resourceID, status))
	}

	if kind := val(root, "kind"); kind != "Task" {
		ctx.emit(findings.ADKindNotTask(file, resourceID, kind))
	}

	lintADReadAccessTag(ctx, root, file, resourceID)
	lintADProcessAuthorization(ctx, root, file, resourceID)

	for _, profile := range metaProfiles(root) {
		if strings.Contains(profile, "|") {
			ctx.emit(findings.ADProfileVersionSuffixPresent(file, resourceID, profile))
		}
	}
}

func lintADReadAccessTag(ctx *LintContext, root *elem, file, resourceID string) {
	codes := metaTagCodes(root, codesystem.ReadAccessTagURL)
	if len(codes) == 0 {
		ctx.emit(findings.ADReadAccessTagMissing(file, resourceID))
		return
	}
	for _, code := range codes {
		if ctx.Codes.IsUnknown(codesystem.ReadAccessTagURL, code) {
			ctx.emit(findings.ADReadAccessTagInvalidCode(file, resourceID, code))
		}
	}
}

func lintADProcessAuthorization(ctx *LintContext, root *elem, file, resourceID string) {
	exts := extensionsByURL(root, processAuthorizationURL)
	if len(exts) == 0 {
		ctx.emit(findings.ADProcessAuthorizationMissing(file, resourceID))
		return
	}

	for _, ext := range exts {
		requesters := extensionsByURL(ext, "requester")
		recipients := extensionsByURL(ext, "recipient")

		if len(requesters) != 1 {
			ctx.emit(findings.ADProcessAuthorizationRequesterCount(file, resourceID, len(requesters)))
		}
		if len(recipients) != 1 {
			ctx.emit(findings.ADProcessAuthorizationRecipientCount(file, resourceID, len(recipients)))
		}

		for _, sub := range append(append([]*elem{}, requesters...), recipients...) {
			code := val(firstChild(sub, "valueCoding"), "code")
			if code != "" && ctx.Codes.IsUnknown(codesystem.ProcessAuthorizationURL, code) {
				ctx.emit(findings.ADProcessAuthorizationCodeInvalid(file, resourceID, code))
			}
		}
	}
}
