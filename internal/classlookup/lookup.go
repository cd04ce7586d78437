package classlookup

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// buildOutputDirs are the conventional compiled-output directories probed
// under a project root, in the order common Java build tools produce them.
var buildOutputDirs = []string{
	"target/classes",
	"build/classes/java/main",
	"out/production/classes",
}

// dependencyDir is where a Maven build's copy-dependencies goal places
// resolved dependency jars (see internal/projectsetup).
const dependencyDir = "target/dependency"

// entry pairs a parsed class with the archive it came from, if any. An empty
// Archive means the class was compiled output, not a dependency.
type entry struct {
	class   *ClassFile
	archive string
}

// Catalog answers structural questions about classes discovered under one
// project root: exists, implements, isSubclassOf, findImplementedInterface.
// It never invokes user code.
type Catalog struct {
	root    string
	classes map[string]entry
}

var (
	catalogMu    sync.Mutex
	catalogCache = make(map[string]*Catalog)
)

// ForRoot returns the Catalog for root, building and caching it on first
// request. Subsequent requests for the same absolute root return the cached
// catalog; the cache is scoped to a single invocation of the linter.
func ForRoot(root string) (*Catalog, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	catalogMu.Lock()
	defer catalogMu.Unlock()

	if c, ok := catalogCache[abs]; ok {
		return c, nil
	}

	c, err := build(abs)
	if err != nil {
		return nil, err
	}
	catalogCache[abs] = c
	return c, nil
}

func build(root string) (*Catalog, error) {
	c := &Catalog{root: root, classes: make(map[string]entry)}

	for _, dir := range buildOutputDirs {
		c.indexOutputDir(filepath.Join(root, filepath.FromSlash(dir)))
	}

	depRoot := filepath.Join(root, filepath.FromSlash(dependencyDir))
	_ = filepath.WalkDir(depRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(path), ".jar") {
			return nil
		}
		classes, err := readJarClasses(path)
		if err != nil {
			return nil
		}
		for fqn, cf := range classes {
			c.classes[fqn] = entry{class: cf, archive: path}
		}
		return nil
	})

	return c, nil
}

func (c *Catalog) indexOutputDir(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".class") {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return nil
		}
		cf, err := ParseClassFile(f)
		f.Close()
		if err != nil || cf.ThisClass == "" {
			return nil
		}
		c.classes[cf.ThisClass] = entry{class: cf}
		return nil
	})
}

// Exists reports whether fqn was found among the indexed classes.
func (c *Catalog) Exists(fqn string) bool {
	_, ok := c.classes[fqn]
	return ok
}

// ClassFile returns the parsed classfile for fqn, if indexed.
func (c *Catalog) ClassFile(fqn string) (*ClassFile, bool) {
	e, ok := c.classes[fqn]
	if !ok {
		return nil, false
	}
	return e.class, true
}

// ArchiveOf returns the originating jar path for fqn, or "" if it came from
// a compiled-output directory rather than a dependency archive.
func (c *Catalog) ArchiveOf(fqn string) string {
	return c.classes[fqn].archive
}

// DependencyArchives returns every distinct dependency jar path indexed
// into this catalog, in no particular order.
func (c *Catalog) DependencyArchives() []string {
	seen := make(map[string]bool)
	var archives []string
	for _, e := range c.classes {
		if e.archive == "" || seen[e.archive] {
			continue
		}
		seen[e.archive] = true
		archives = append(archives, e.archive)
	}
	return archives
}

// Root returns the project root this catalog was built over.
func (c *Catalog) Root() string {
	return c.root
}

// FQNs returns every fully-qualified class name indexed in this catalog.
func (c *Catalog) FQNs() []string {
	fqns := make([]string, 0, len(c.classes))
	for fqn := range c.classes {
		fqns = append(fqns, fqn)
	}
	return fqns
}

// Implements reports whether fqn directly or transitively implements iface,
// by walking the declared interfaces and superclass chain.
func (c *Catalog) Implements(fqn, iface string) bool {
	seen := make(map[string]bool)
	return c.implements(fqn, iface, seen)
}

func (c *Catalog) implements(fqn, iface string, seen map[string]bool) bool {
	if fqn == "" || seen[fqn] {
		return false
	}
	seen[fqn] = true

	cf, ok := c.classes[fqn]
	if !ok {
		return false
	}
	for _, direct := range cf.class.Interfaces {
		if direct == iface {
			return true
		}
		if c.implements(direct, iface, seen) {
			return true
		}
	}
	return c.implements(cf.class.SuperClass, iface, seen)
}

// IsSubclassOf reports whether fqn's superclass chain includes super.
func (c *Catalog) IsSubclassOf(fqn, super string) bool {
	seen := make(map[string]bool)
	current := fqn
	for current != "" && !seen[current] {
		seen[current] = true
		cf, ok := c.classes[current]
		if !ok {
			return false
		}
		if cf.class.SuperClass == super {
			return true
		}
		current = cf.class.SuperClass
	}
	return false
}

// FindImplementedInterface returns the first interface from candidates that
// fqn implements (directly or transitively), if any.
func (c *Catalog) FindImplementedInterface(fqn string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if c.Implements(fqn, candidate) {
			return candidate, true
		}
	}
	return "", false
}
