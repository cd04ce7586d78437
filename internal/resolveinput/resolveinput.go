// Package resolveinput classifies a user-supplied input string — a local
// path, a local archive, a git URL, or a remote archive URL — and
// materializes it into a working directory on disk.
package resolveinput

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Kind classifies the user-supplied input.
type Kind int

const (
	KindUnpackedDirectory Kind = iota
	KindLocalArchive
	KindGitURL
	KindRemoteArchive
)

// Result is the outcome of resolving an input: a materialized working path,
// and whether the Orchestrator must clean it up on shutdown.
type Result struct {
	WorkingPath     string
	RequiresCleanup bool
	Cleanup         func() error
}

// ArchiveExtractor extracts an archive file at src into destDir.
type ArchiveExtractor interface {
	Extract(ctx context.Context, src, destDir string) error
}

// GitCloner clones a git repository URL into destDir.
type GitCloner interface {
	Clone(ctx context.Context, repoURL, destDir string) error
}

// HTTPFetcher downloads a remote URL to a local file path.
type HTTPFetcher interface {
	Fetch(ctx context.Context, url, destPath string) error
}

// Resolver classifies and materializes an input using the three
// collaborators above. Production code wires the default implementations in
// archiveextractor.go, gitcloner.go, and httpfetcher.go; tests substitute
// fakes.
type Resolver struct {
	Extractor ArchiveExtractor
	Cloner    GitCloner
	Fetcher   HTTPFetcher
}

// New returns a Resolver wired with the default production collaborators.
func New() *Resolver {
	return &Resolver{
		Extractor: NewDefaultExtractor(),
		Cloner:    NewDefaultCloner(),
		Fetcher:   NewDefaultFetcher(),
	}
}

// Classify determines the Kind of input without touching the network or
// filesystem beyond a single os.Stat.
func Classify(input string) Kind {
	if info, err := os.Stat(input); err == nil {
		if info.IsDir() {
			return KindUnpackedDirectory
		}
		return KindLocalArchive
	}

	if isGitURL(input) {
		return KindGitURL
	}

	return KindRemoteArchive
}

func isGitURL(input string) bool {
	if strings.HasPrefix(input, "git@") || strings.HasPrefix(input, "git+") {
		return true
	}
	if strings.HasSuffix(input, ".git") {
		return true
	}
	return false
}

// Resolve classifies input and materializes it into a working directory,
// returning the ResolutionResult the Orchestrator uses for the rest of the
// run. Cleanup is always non-nil; for KindUnpackedDirectory it is a no-op.
func (r *Resolver) Resolve(ctx context.Context, input string) (Result, error) {
	switch Classify(input) {
	case KindUnpackedDirectory:
		return Result{WorkingPath: input, RequiresCleanup: false, Cleanup: func() error { return nil }}, nil

	case KindLocalArchive:
		dir, err := os.MkdirTemp("", "dsflint-archive-*")
		if err != nil {
			return Result{}, fmt.Errorf("resolveinput: creating temp dir: %w", err)
		}
		cleanup := func() error { return os.RemoveAll(dir) }
		if err := r.Extractor.Extract(ctx, input, dir); err != nil {
			_ = cleanup()
			return Result{}, fmt.Errorf("resolveinput: extracting %s: %w", input, err)
		}
		return Result{WorkingPath: dir, RequiresCleanup: true, Cleanup: cleanup}, nil

	case KindGitURL:
		dir, err := os.MkdirTemp("", "dsflint-git-*")
		if err != nil {
			return Result{}, fmt.Errorf("resolveinput: creating temp dir: %w", err)
		}
		cleanup := func() error { return os.RemoveAll(dir) }
		if err := r.Cloner.Clone(ctx, input, dir); err != nil {
			_ = cleanup()
			return Result{}, fmt.Errorf("resolveinput: cloning %s: %w", input, err)
		}
		return Result{WorkingPath: dir, RequiresCleanup: true, Cleanup: cleanup}, nil

	case KindRemoteArchive:
		if _, err := url.ParseRequestURI(input); err != nil {
			return Result{}, fmt.Errorf("resolveinput: %q is not a valid URL: %w", input, err)
		}
		dir, err := os.MkdirTemp("", "dsflint-download-*")
		if err != nil {
			return Result{}, fmt.Errorf("resolveinput: creating temp dir: %w", err)
		}
		cleanup := func() error { return os.RemoveAll(dir) }

		archivePath := dir + "/download.archive"
		if err := r.Fetcher.Fetch(ctx, input, archivePath); err != nil {
			_ = cleanup()
			return Result{}, fmt.Errorf("resolveinput: downloading %s: %w", input, err)
		}
		if err := r.Extractor.Extract(ctx, archivePath, dir); err != nil {
			_ = cleanup()
			return Result{}, fmt.Errorf("resolveinput: extracting downloaded archive: %w", err)
		}
		return Result{WorkingPath: dir, RequiresCleanup: true, Cleanup: cleanup}, nil
	}

	return Result{}, fmt.Errorf("resolveinput: unreachable classification for %q", input)
}
