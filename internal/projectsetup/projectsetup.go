// Package projectsetup detects whether a working tree is a Maven source
// project or an already-unpacked artifact, optionally drives a build, and
// constructs the class lookup and initial resource root the rest of the
// linter's pipeline depends on.
package projectsetup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wharflab/dsf-lint/internal/classlookup"
)

// conventionalResourceRoot is the Maven-standard location of packaged
// resources; when present it is the shared resource root, otherwise the
// project root itself serves as the root (the common shape for an
// already-unpacked artifact).
const conventionalResourceRoot = "src/main/resources"

// Options carries the user-configurable parts of project setup: build
// goals to add or remove, sourced from the --mvn/--skip flags.
type Options struct {
	ExtraGoals []string
	SkipGoals  []string
}

// Result is everything downstream components need from project setup.
type Result struct {
	ProjectRoot  string
	ResourceRoot string
	Catalog      *classlookup.Catalog
	BuiltProject bool
}

// Setup performs project detection, the optional build, and class lookup
// construction.
type Setup struct {
	Runner BuildRunner
}

// New returns a Setup wired with the default production BuildRunner.
func New() *Setup {
	return &Setup{Runner: NewDefaultBuildRunner()}
}

// IsSourceProject reports whether root contains a project descriptor
// (pom.xml) at its top level.
func IsSourceProject(root string) bool {
	info, err := os.Stat(filepath.Join(root, "pom.xml"))
	return err == nil && !info.IsDir()
}

// Prepare drives the decision tree in SPEC_FULL.md §4.5: build a source
// project, skip the build for an already-unpacked artifact, then
// construct the Class Lookup and resolve the initial resource root.
func (s *Setup) Prepare(ctx context.Context, projectRoot string, opts Options) (Result, error) {
	built := false

	if IsSourceProject(projectRoot) {
		argv := buildArgv(opts.SkipGoals, opts.ExtraGoals)
		if err := s.Runner.Run(ctx, projectRoot, argv); err != nil {
			return Result{}, fmt.Errorf("project setup: build failed: %w", err)
		}
		built = true
	}

	catalog, err := classlookup.ForRoot(projectRoot)
	if err != nil {
		return Result{}, fmt.Errorf("project setup: constructing class lookup: %w", err)
	}

	return Result{
		ProjectRoot:  projectRoot,
		ResourceRoot: resolveInitialResourceRoot(projectRoot),
		Catalog:      catalog,
		BuiltProject: built,
	}, nil
}

// resolveInitialResourceRoot returns src/main/resources under root when it
// exists, otherwise root itself — the "unpacked artifact" shape, where
// resources sit directly at the working tree's top level.
func resolveInitialResourceRoot(root string) string {
	candidate := filepath.Join(root, filepath.FromSlash(conventionalResourceRoot))
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return root
}
