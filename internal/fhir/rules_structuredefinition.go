package fhir

import (
	"strconv"
	"strings"

	"github.com/wharflab/dsf-lint/internal/findings"
)

const unboundedCardinality = 1 << 30

func init() {
	register("StructureDefinition", lintStructureDefinition)
}

func lintStructureDefinition(ctx *LintContext, r *Resource, file string) {
	root := r.Root()
	resourceID := r.id()

	if !hasPlaceholder(val(root, "version"), versionPlaceholder) {
		ctx.emit(findings.SDVersionPlaceholderMissing(file, resourceID))
	}
	if !hasPlaceholder(val(root, "date"), datePlaceholder) {
		ctx.emit(findings.SDDatePlaceholderMissing(file, resourceID))
	}
	if hasChild(root, "snapshot") {
		ctx.emit(findings.SDSnapshotPresent(file, resourceID))
	}

	differential := firstChild(root, "differential")
	if differential == nil {
		ctx.emit(findings.SDDifferentialMissing(file, resourceID))
		return
	}

	lintSDElements(ctx, differential, file, resourceID)
}

type sdElement struct {
	id   string
	max  int
	min  int
}

func lintSDElements(ctx *LintContext, differential *elem, file, resourceID string) {
	seenIDs := make(map[string]bool)
	bases := make(map[string]sdElement)
	slices := make(map[string][]sdElement)

	for _, e := range directChildren(differential, "element") {
		id := val(e, "id")
		if id == "" {
			continue
		}
		if seenIDs[id] {
			ctx.emit(findings.SDElementIDDuplicate(file, resourceID, id))
		}
		seenIDs[id] = true

		se := sdElement{
			id:  id,
			max: parseCardinality(val(e, "max"), unboundedCardinality),
			min: parseCardinality(val(e, "min"), 0),
		}

		if basePath, _, isSlice := splitSliceID(id); isSlice {
			slices[basePath] = append(slices[basePath], se)
		} else {
			bases[id] = se
		}
	}

	for basePath, base := range bases {
		group, ok := slices[basePath]
		if !ok {
			continue
		}

		minSum := 0
		for _, slice := range group {
			if slice.max > base.max {
				_, name, _ := splitSliceID(slice.id)
				ctx.emit(findings.SDSliceMaxExceedsBase(file, resourceID, name))
			}
			if slice.min < base.min {
				_, name, _ := splitSliceID(slice.id)
				ctx.emit(findings.SDSliceMinBelowBasePerSlice(file, resourceID, name))
			}
			minSum += slice.min
		}

		switch {
		case minSum < base.min:
			ctx.emit(findings.SDSliceMinSumBelowBase(file, resourceID, base.id))
		case minSum > base.min:
			ctx.emit(findings.SDSliceMinSumAboveBase(file, resourceID, base.id))
		}
	}
}

// splitSliceID splits an ElementDefinition id like "Task.input:businessKey"
// into its base path ("Task.input") and slice name ("businessKey").
func splitSliceID(id string) (basePath, sliceName string, isSlice bool) {
	idx := strings.Index(id, ":")
	if idx < 0 {
		return id, "", false
	}
	return id[:idx], id[idx+1:], true
}

func parseCardinality(value string, fallback int) int {
	if value == "*" {
		return unboundedCardinality
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
