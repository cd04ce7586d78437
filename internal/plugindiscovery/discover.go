// Package plugindiscovery finds plugin descriptor instances — first via
// java.util.ServiceLoader-style service-provider registration, falling
// back to a class-file naming-convention scan — and builds an immutable
// Handle for each one found.
package plugindiscovery

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/wharflab/dsf-lint/internal/classlookup"
)

// DiscoveryError is the fatal error raised when no descriptor instance can
// be found anywhere in the project.
type DiscoveryError struct{}

func (e *DiscoveryError) Error() string {
	return "no plugin descriptor found: check the project layout (a multi-module " +
		"project must be built from its aggregator, not a submodule), confirm the " +
		"build actually produced compiled classes, and confirm a descriptor type is " +
		"present on the classpath (service registration under META-INF/services or " +
		"a class named *ProcessPluginDefinition)"
}

// Discover runs service-provider discovery, falling back to a class-file
// scan when nothing is registered, against the given project root and its
// already-built Class Lookup catalog.
func Discover(root string, catalog *classlookup.Catalog) ([]Handle, error) {
	handles := serviceProviderDiscovery(root, catalog)
	if len(handles) == 0 {
		handles = classFileScan(catalog)
	}
	if len(handles) == 0 {
		return nil, &DiscoveryError{}
	}

	tagDuplicates(handles)
	return handles, nil
}

func tagDuplicates(handles []Handle) {
	seen := make(map[string]bool, len(handles))
	for i := range handles {
		key := handles[i].SourceClassName
		if seen[key] {
			handles[i].Duplicate = true
		}
		seen[key] = true
	}
}

// serviceProviderDiscovery enumerates META-INF/services/<interface> entries,
// V2 before V1, both on disk under root and inside every dependency
// archive the catalog indexed.
func serviceProviderDiscovery(root string, catalog *classlookup.Catalog) []Handle {
	var handles []Handle

	for _, iface := range descriptorInterfaces {
		for _, className := range findServiceRegistrations(root, catalog, iface.fqn) {
			cf, ok := catalog.ClassFile(className)
			if !ok {
				continue // class not in the catalog; candidate skipped
			}
			handles = append(handles, buildHandleVia(cf, className, iface.version, true))
		}
	}

	return handles
}

func findServiceRegistrations(root string, catalog *classlookup.Catalog, ifaceFQN string) []string {
	var names []string

	relPath := filepath.Join("META-INF", "services", ifaceFQN)
	for _, dir := range serviceFileSearchDirs(root) {
		data, err := os.ReadFile(filepath.Join(dir, relPath))
		if err == nil {
			names = append(names, parseServiceFile(data)...)
		}
	}

	archiveEntry := "META-INF/services/" + ifaceFQN
	for _, archive := range catalog.DependencyArchives() {
		data, ok, err := classlookup.ReadArchiveEntry(archive, archiveEntry)
		if err == nil && ok {
			names = append(names, parseServiceFile(data)...)
		}
	}

	return names
}

func serviceFileSearchDirs(root string) []string {
	return []string{
		root,
		filepath.Join(root, "target", "classes"),
		filepath.Join(root, "build", "classes", "java", "main"),
		filepath.Join(root, "src", "main", "resources"),
	}
}

// parseServiceFile implements the real java.util.ServiceLoader text
// format: one fully-qualified class name per line, '#'-prefixed comments
// and blank lines ignored.
func parseServiceFile(data []byte) []string {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names
}

// classFileScan is the fallback when service-provider discovery finds
// nothing: scan every indexed class for the *ProcessPluginDefinition
// naming convention, with no nested-class separator in the binary name,
// confirm structural conformance to one of the descriptor interfaces, and
// confirm the required getter set is present.
func classFileScan(catalog *classlookup.Catalog) []Handle {
	var handles []Handle

	for _, fqn := range catalog.FQNs() {
		if !isCandidateDescriptorName(fqn) {
			continue
		}
		cf, ok := catalog.ClassFile(fqn)
		if !ok {
			continue
		}

		version := matchedVersion(catalog, fqn)
		if version == APIUnknown {
			continue
		}
		if !hasRequiredGetters(cf) {
			continue
		}

		handles = append(handles, buildHandleVia(cf, fqn, version, false))
	}

	return handles
}

func isCandidateDescriptorName(fqn string) bool {
	if strings.Contains(fqn, "$") {
		return false
	}
	simpleName := fqn
	if idx := strings.LastIndexByte(fqn, '.'); idx >= 0 {
		simpleName = fqn[idx+1:]
	}
	return strings.HasSuffix(simpleName, descriptorSimpleNameSuffix)
}

func matchedVersion(catalog *classlookup.Catalog, fqn string) APIVersion {
	for _, iface := range descriptorInterfaces {
		if catalog.Implements(fqn, iface.fqn) {
			return iface.version
		}
	}
	return APIUnknown
}

func hasRequiredGetters(cf *classlookup.ClassFile) bool {
	have := make(map[string]bool, len(cf.Methods))
	for _, m := range cf.Methods {
		have[m.Name] = true
	}
	for _, g := range requiredGetters {
		if !have[g] {
			return false
		}
	}
	return true
}
