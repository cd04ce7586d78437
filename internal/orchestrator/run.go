// Package orchestrator drives the full per-plugin pipeline: resolve the
// user-supplied input, prepare the project (optional build), discover
// plugin descriptors, resolve each one's declared references, dispatch BPMN
// and FHIR rules over its resource files, emit plugin-definition findings,
// and compute the project's leftover-file attribution.
package orchestrator

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wharflab/dsf-lint/internal/bpmn"
	"github.com/wharflab/dsf-lint/internal/codesystem"
	"github.com/wharflab/dsf-lint/internal/fhir"
	"github.com/wharflab/dsf-lint/internal/findings"
	"github.com/wharflab/dsf-lint/internal/plugindiscovery"
	"github.com/wharflab/dsf-lint/internal/projectsetup"
	"github.com/wharflab/dsf-lint/internal/refresolve"
	"github.com/wharflab/dsf-lint/internal/report"
	"github.com/wharflab/dsf-lint/internal/resolveinput"
)

// Options carries the user-configurable parts of a Run, sourced from CLI
// flags / config (internal/config) by the caller.
type Options struct {
	// BuildExtraGoals/BuildSkipGoals adjust the Maven build vector Project
	// Setup drives for a source project (--mvn/--skip).
	BuildExtraGoals []string
	BuildSkipGoals  []string

	// Channel receives progress and diagnostic output. Nil means silent.
	Channel Channel
}

// FatalError wraps an error from one of the pipeline stages that must
// terminate the whole run rather than degrade to a finding: input
// resolution, project setup/build, plugin discovery, or reference
// resolution (§7).
type FatalError struct {
	Stage string
	Err   error
}

func (e *FatalError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }
func (e *FatalError) Unwrap() error { return e.Err }

// Run executes the whole lint pipeline over path (a directory, a packaged
// archive, or a remote/git URL) and returns the aggregate report.
func Run(ctx context.Context, path string, opts Options) (*report.Aggregate, error) {
	ch := opts.Channel
	if ch == nil {
		ch = NoopChannel{}
	}

	ch.EnteringStage(StageResolveInput)
	resolved, err := resolveinput.New().Resolve(ctx, path)
	if err != nil {
		return nil, &FatalError{Stage: "resolve input", Err: err}
	}
	defer func() {
		if resolved.RequiresCleanup {
			if cerr := resolved.Cleanup(); cerr != nil {
				ch.Warn(fmt.Sprintf("cleanup of %s failed: %v", resolved.WorkingPath, cerr))
			}
		}
	}()

	ch.EnteringStage(StageProjectSetup)
	setup, err := projectsetup.New().Prepare(ctx, resolved.WorkingPath, projectsetup.Options{
		ExtraGoals: opts.BuildExtraGoals,
		SkipGoals:  opts.BuildSkipGoals,
	})
	if err != nil {
		return nil, &FatalError{Stage: "project setup", Err: err}
	}

	codes := codesystem.New()
	if err := codes.SeedFromProject(setup.ProjectRoot); err != nil {
		ch.Warn(fmt.Sprintf("code system seed: %v", err))
	}

	ch.EnteringStage(StagePluginDiscovery)
	handles, err := plugindiscovery.Discover(setup.ProjectRoot, setup.Catalog)
	if err != nil {
		return nil, &FatalError{Stage: "plugin discovery", Err: err}
	}

	names := uniqueReportNames(handles)
	known := scanKnownReferences(setup.ResourceRoot)
	allBPMNFiles, allFHIRFiles := walkResourceTree(setup.ResourceRoot)

	dispatched := make(map[string]bool, len(allBPMNFiles)+len(allFHIRFiles))
	plugins := make([]report.PluginReport, len(handles))
	pluginRoots := make([]string, len(handles))

	for i, h := range handles {
		ch.LintingPlugin(names[i], i, len(handles))

		var findingsOut []findings.Finding
		emit := func(f findings.Finding) { findingsOut = append(findingsOut, f) }

		result, cleanupRefs, err := refresolve.Resolve(allReferences(h), setup.ResourceRoot, setup.ProjectRoot, setup.Catalog)
		if err != nil {
			return nil, &FatalError{Stage: "reference resolution", Err: err}
		}

		for _, p := range result.ValidFiles {
			dispatched[p] = true
		}
		pluginRoots[i] = commonDirPrefix(result.ValidFiles)

		emitPluginDefinitionFindings(emit, h, result)

		dispatchBPMN(emit, h, result.ValidFiles, setup, known)
		dispatchFHIR(emit, result.ValidFiles, setup, codes, known)

		if cerr := cleanupRefs(); cerr != nil {
			ch.Warn(fmt.Sprintf("cleaning up resolved dependency archive temp files: %v", cerr))
		}

		plugins[i] = report.PluginReport{
			Name:            names[i],
			APIVersion:      h.APIVersion.String(),
			SourceClassName: h.SourceClassName,
			Findings:        findingsOut,
		}
	}

	leftovers := computeLeftovers(allBPMNFiles, allFHIRFiles, dispatched)
	attributeLeftovers(plugins, pluginRoots, leftovers, setup.ResourceRoot)

	return &report.Aggregate{Plugins: plugins, GeneratedBy: "dsf-lint"}, nil
}

// emitPluginDefinitionFindings emits the §4.10 step-5 plugin-definition
// findings: reference resolution outcomes, declared-but-empty process
// model/FHIR resource sets, and service-registration status. Map-keyed
// results are walked in sorted key order so finding emission stays
// deterministic run to run.
func emitPluginDefinitionFindings(emit func(findings.Finding), h plugindiscovery.Handle, result refresolve.Result) {
	for _, ref := range result.MissingRefs {
		emit(findings.PluginReferenceMissing(h.SourceClassName, h.Name, ref))
	}

	for _, ref := range sortedKeys(result.OutsideRootFiles) {
		emit(findings.PluginReferenceOutsideRoot(h.SourceClassName, h.Name, ref))
	}

	for _, ref := range sortedDependencyKeys(result.DependencyFiles) {
		emit(findings.PluginReferenceFromDependency(h.SourceClassName, h.Name, ref, result.DependencyFiles[ref].ArchiveID))
	}

	if len(h.ProcessModels) == 0 {
		emit(findings.PluginNoProcessModels(h.SourceClassName, h.Name))
	}

	totalFHIR := 0
	for _, refs := range h.FHIRResourcesByProcessID {
		totalFHIR += len(refs)
	}
	if totalFHIR == 0 {
		emit(findings.PluginNoFHIRResources(h.SourceClassName, h.Name))
	}

	if h.ViaServiceRegistration {
		emit(findings.PluginServiceRegistrationOK(h.SourceClassName, h.Name))
	} else {
		emit(findings.PluginServiceRegistrationMissing(h.SourceClassName, h.Name))
	}

	if h.Duplicate {
		emit(findings.PluginDuplicateDescriptor(h.SourceClassName, h.Name))
	}
}

func dispatchBPMN(emit func(findings.Finding), h plugindiscovery.Handle, validFiles []string, setup projectsetup.Result, known knownSets) {
	dctx := &bpmn.DispatchContext{
		ActiveAPIVersion:    h.APIVersion,
		Catalog:             setup.Catalog,
		KnownMessageNames:   known.messageNames,
		KnownQuestionnaires: known.questionnaires,
		Emit:                emit,
	}
	for _, p := range validFiles {
		if !strings.HasSuffix(p, ".bpmn") {
			continue
		}
		file := relOrAbs(setup.ResourceRoot, p)
		m, err := bpmn.Load(p)
		if err != nil {
			emit(findings.BPMNUnparsable(file, err.Error()))
			continue
		}
		bpmn.Dispatch(dctx, m, file)
	}
}

func dispatchFHIR(emit func(findings.Finding), validFiles []string, setup projectsetup.Result, codes *codesystem.Cache, known knownSets) {
	lctx := &fhir.LintContext{
		Codes:                    codes,
		KnownActivityDefinitions: known.activityDefinitions,
		Emit:                     emit,
	}
	for _, p := range validFiles {
		if strings.HasSuffix(p, ".bpmn") {
			continue
		}
		if !strings.HasSuffix(p, ".xml") && !strings.HasSuffix(p, ".json") {
			continue
		}
		file := relOrAbs(setup.ResourceRoot, p)
		r, err := fhir.Load(p)
		if err != nil {
			emit(findings.FHIRUnparsable(file, err.Error()))
			continue
		}
		fhir.Dispatch(lctx, r, file)
	}
}

// allReferences flattens one descriptor's declared process models and FHIR
// resources (grouped by process id, sorted for determinism) into a single
// reference list in the order Reference Resolution consumes them.
func allReferences(h plugindiscovery.Handle) []string {
	refs := append([]string{}, h.ProcessModels...)
	processIDs := make([]string, 0, len(h.FHIRResourcesByProcessID))
	for id := range h.FHIRResourcesByProcessID {
		processIDs = append(processIDs, id)
	}
	sort.Strings(processIDs)
	for _, id := range processIDs {
		refs = append(refs, h.FHIRResourcesByProcessID[id]...)
	}
	return refs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedDependencyKeys(m map[string]refresolve.DependencyHit) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// knownSets is the cross-component knowledge the Orchestrator gathers from
// every FHIR resource in the resolved resource root before dispatching any
// rules, so BPMN dispatch (message/Questionnaire references) and FHIR Task
// dispatch (instantiatesCanonical) can check against it regardless of
// dispatch order.
type knownSets struct {
	activityDefinitions map[string]bool
	questionnaires      map[string]bool
	messageNames        map[string]bool
}

// scanKnownReferences is a best-effort pre-scan: a resource that fails to
// parse here simply contributes nothing to the known sets, the same as an
// unreferenced resource would. The real parse error is reported once, by
// the per-plugin BPMN/FHIR dispatch pass that actually lints the file.
func scanKnownReferences(resourceRoot string) knownSets {
	ks := knownSets{
		activityDefinitions: make(map[string]bool),
		questionnaires:      make(map[string]bool),
		messageNames:        make(map[string]bool),
	}

	_ = filepath.WalkDir(resourceRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".xml" && ext != ".json" {
			return nil
		}
		r, loadErr := fhir.Load(path)
		if loadErr != nil {
			return nil
		}
		kr := fhir.Identify(r)
		switch kr.Type {
		case "ActivityDefinition":
			if kr.ID != "" {
				ks.activityDefinitions[kr.ID] = true
			}
		case "Questionnaire":
			if kr.ID != "" {
				ks.questionnaires[kr.ID] = true
			}
		case "Task":
			if kr.MessageName != "" {
				ks.messageNames[kr.MessageName] = true
			}
		}
		return nil
	})

	return ks
}

// walkResourceTree enumerates every .bpmn file and every FHIR XML/JSON file
// under resourceRoot, the project-wide candidate set the leftover
// computation subtracts dispatched files from.
func walkResourceTree(resourceRoot string) (bpmnFiles, fhirFiles []string) {
	_ = filepath.WalkDir(resourceRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch {
		case strings.HasSuffix(path, ".bpmn"):
			bpmnFiles = append(bpmnFiles, path)
		case strings.HasSuffix(path, ".xml"), strings.HasSuffix(path, ".json"):
			fhirFiles = append(fhirFiles, path)
		}
		return nil
	})
	return bpmnFiles, fhirFiles
}

// computeLeftovers returns every project file never resolved DiskInRoot by
// any plugin, sorted for deterministic report output.
func computeLeftovers(bpmnFiles, fhirFiles []string, dispatched map[string]bool) []string {
	var leftovers []string
	for _, f := range bpmnFiles {
		if !dispatched[f] {
			leftovers = append(leftovers, f)
		}
	}
	for _, f := range fhirFiles {
		if !dispatched[f] {
			leftovers = append(leftovers, f)
		}
	}
	sort.Strings(leftovers)
	return leftovers
}

// attributeLeftovers implements §4.10 step 6: in a single-plugin project
// every leftover belongs to that plugin; in a multi-plugin project a
// leftover belongs to the plugin whose own resolved-files root is the
// deepest prefix of the leftover's directory, falling back to the last
// plugin by discovery order when no root matches.
func attributeLeftovers(plugins []report.PluginReport, pluginRoots []string, leftovers []string, resourceRoot string) {
	if len(plugins) == 0 {
		return
	}
	if len(plugins) == 1 {
		for _, f := range leftovers {
			plugins[0].Leftovers = append(plugins[0].Leftovers, relOrAbs(resourceRoot, f))
		}
		return
	}

	lastIdx := len(plugins) - 1
	for _, leftover := range leftovers {
		dir := filepath.ToSlash(filepath.Dir(leftover))
		bestIdx, bestLen := -1, -1
		for i, root := range pluginRoots {
			if root == "" {
				continue
			}
			rootSlash := filepath.ToSlash(root)
			if dir == rootSlash || strings.HasPrefix(dir, rootSlash+"/") {
				if len(rootSlash) > bestLen {
					bestLen = len(rootSlash)
					bestIdx = i
				}
			}
		}
		if bestIdx == -1 {
			bestIdx = lastIdx
		}
		plugins[bestIdx].Leftovers = append(plugins[bestIdx].Leftovers, relOrAbs(resourceRoot, leftover))
	}
}

// commonDirPrefix returns the deepest directory common to every path's
// parent directory, used as a plugin's own resource root for leftover
// attribution when a project shares one physical root across plugins.
func commonDirPrefix(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	prefix := filepath.ToSlash(filepath.Dir(paths[0]))
	for _, p := range paths[1:] {
		prefix = commonPathPrefix(prefix, filepath.ToSlash(filepath.Dir(p)))
	}
	return prefix
}

func commonPathPrefix(a, b string) string {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	var out []string
	for i := 0; i < n; i++ {
		if as[i] != bs[i] {
			break
		}
		out = append(out, as[i])
	}
	return strings.Join(out, "/")
}

func relOrAbs(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
