package refresolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	digest "github.com/opencontainers/go-digest"

	"github.com/wharflab/dsf-lint/internal/classlookup"
)

// Resolve runs resolveStrict over every reference in order, probing the
// expected plugin root, then every other legal resource root, then the
// dependency-archive class lookup, and finally giving up. The probe order
// is fixed and namespaced, so no reference can match two outcomes.
//
// The returned cleanup function removes every temp file materialized for a
// FromDependencyArchive outcome; the caller (the Orchestrator) is
// responsible for invoking it alongside its own input-resolution cleanup.
func Resolve(references []string, expectedPluginRoot, projectDir string, catalog *classlookup.Catalog) (Result, func() error, error) {
	result := Result{
		OutsideRootFiles: make(map[string]string),
		DependencyFiles:  make(map[string]DependencyHit),
	}

	var tempFiles []string
	cleanup := func() error {
		var firstErr error
		for _, f := range tempFiles {
			if err := os.Remove(f); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	otherRoots := legalResourceRoots(projectDir, expectedPluginRoot)
	digestCache := make(map[string]string)

	for _, ref := range references {
		normalized := Normalize(ref)

		if path, ok := probeRoot(expectedPluginRoot, normalized); ok {
			result.ValidFiles = append(result.ValidFiles, path)
			continue
		}

		outsideHit := false
		for _, root := range otherRoots {
			if path, ok := probeRoot(root, normalized); ok {
				result.OutsideRootFiles[ref] = path
				outsideHit = true
				break
			}
		}
		if outsideHit {
			continue
		}

		if hit, tempPath, ok, err := probeDependencyArchives(catalog, normalized, digestCache); ok {
			if err != nil {
				return Result{}, cleanup, err
			}
			result.DependencyFiles[ref] = hit
			tempFiles = append(tempFiles, tempPath)
			continue
		}

		result.MissingRefs = append(result.MissingRefs, ref)
	}

	return result, cleanup, nil
}

// legalResourceRoots enumerates the conventional resource locations under a
// project besides the plugin's own root.
func legalResourceRoots(projectDir, exclude string) []string {
	candidates := []string{
		projectDir,
		filepath.Join(projectDir, "src", "main", "resources"),
		filepath.Join(projectDir, "target", "classes"),
	}

	var roots []string
	for _, c := range candidates {
		if c != exclude {
			roots = append(roots, c)
		}
	}
	return roots
}

// probeRoot checks root for a file matching ref, accepting both the
// path-form (ref is a full relative path) and the leaf-file form (ref is a
// bare filename found anywhere under root), with .xml/.json extension
// equivalence.
func probeRoot(root, ref string) (string, bool) {
	if root == "" {
		return "", false
	}

	for _, candidate := range extensionEquivalents(ref) {
		path := filepath.Join(root, filepath.FromSlash(candidate))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}

	if strings.Contains(ref, "/") {
		return "", false
	}

	for _, candidate := range extensionEquivalents(ref) {
		if found, ok := findByBaseName(root, candidate); ok {
			return found, true
		}
	}
	return "", false
}

// findByBaseName walks root looking for the first regular file whose base
// name equals name — the leaf-file form of a reference.
func findByBaseName(root, name string) (string, bool) {
	var found string
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || found != "" {
			return nil
		}
		if !d.IsDir() && d.Name() == name {
			found = path
		}
		return nil
	})
	return found, found != ""
}

// extensionEquivalents returns ref followed by its .xml/.json sibling when
// ref carries one of those extensions, per the FHIR extension-equivalence
// rule; references with any other extension (or none) return just
// themselves.
func extensionEquivalents(ref string) []string {
	switch {
	case strings.HasSuffix(ref, ".xml"):
		return []string{ref, strings.TrimSuffix(ref, ".xml") + ".json"}
	case strings.HasSuffix(ref, ".json"):
		return []string{ref, strings.TrimSuffix(ref, ".json") + ".xml"}
	default:
		return []string{ref}
	}
}

func probeDependencyArchives(catalog *classlookup.Catalog, ref string, digestCache map[string]string) (DependencyHit, string, bool, error) {
	if catalog == nil {
		return DependencyHit{}, "", false, nil
	}

	for _, archive := range catalog.DependencyArchives() {
		for _, candidate := range extensionEquivalents(ref) {
			data, ok, err := classlookup.ReadArchiveEntry(archive, candidate)
			if err != nil || !ok {
				continue
			}

			id, err := archiveDigest(archive, digestCache)
			if err != nil {
				return DependencyHit{}, "", true, fmt.Errorf("refresolve: digesting %s: %w", archive, err)
			}

			tempFile, err := materialize(data, filepath.Base(candidate))
			if err != nil {
				return DependencyHit{}, "", true, fmt.Errorf("refresolve: materializing %s: %w", candidate, err)
			}

			return DependencyHit{Path: tempFile, ArchiveID: id}, tempFile, true, nil
		}
	}
	return DependencyHit{}, "", false, nil
}

func archiveDigest(path string, cache map[string]string) (string, error) {
	if id, ok := cache[path]; ok {
		return id, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	id := digest.FromBytes(data).String()
	cache[path] = id
	return id, nil
}

func materialize(data []byte, baseName string) (string, error) {
	f, err := os.CreateTemp("", "dsflint-dep-*-"+baseName)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return "", err
	}
	return f.Name(), nil
}
