// Package codesystem provides the thread-safe code-system cache FHIR rules
// consult to decide whether a system/code pair is known.
package codesystem

import (
	"sync"
)

// Well-known code-system URIs bootstrapped into every Cache. These are the
// fixed vocabularies the DSF process-plugin profiles are built against.
const (
	BaseURL               = "http://dsf.dev/fhir/CodeSystem/"
	ResourceTypeURL        = BaseURL + "resource-type"
	ProcessAuthorizationURL = BaseURL + "process-authorization"
	ReadAccessTagURL       = BaseURL + "read-access-tag"
	PractitionerRoleURL    = BaseURL + "practitioner-role"
	OrganizationRoleURL    = BaseURL + "organization-role"
)

// bootstrap holds the fixed codes for each well-known system. ResourceTypeURL
// is deliberately absent: its codes are never enumerated, isUnknown answers
// it with the uppercase-first-letter heuristic instead (§4.2).
var bootstrap = map[string][]string{
	ReadAccessTagURL: {"ALL", "LOCAL", "ORGANIZATION", "ROLE"},
	ProcessAuthorizationURL: {
		"LOCAL_ALL", "REMOTE_ALL",
		"LOCAL_ORGANIZATION", "REMOTE_ORGANIZATION",
		"LOCAL_ROLE", "REMOTE_ROLE",
	},
	PractitionerRoleURL: {"DSF_ADMIN", "DSF_USER"},
	OrganizationRoleURL: {"COORDINATOR", "PARTICIPANT"},
}

// Cache is a thread-safe registry of code-system URI to its known code set.
// Queried by FHIR rules via IsUnknown; extended at startup from the bootstrap
// table and from any CodeSystem resources found under the project tree.
type Cache struct {
	mu       sync.RWMutex
	systems  map[string]map[string]struct{}
}

// New returns a Cache seeded with the fixed bootstrap table.
func New() *Cache {
	c := &Cache{systems: make(map[string]map[string]struct{})}
	for system, codes := range bootstrap {
		c.Register(system, codes)
	}
	return c
}

// Register idempotently merges codes into system's code set. Registering the
// same system twice unions the code sets rather than replacing them.
func (c *Cache) Register(system string, codes []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, ok := c.systems[system]
	if !ok {
		set = make(map[string]struct{}, len(codes))
		c.systems[system] = set
	}
	for _, code := range codes {
		set[code] = struct{}{}
	}
}

// IsUnknown reports whether code is not a known member of system.
//
// A system that was never registered is always unknown (true). The
// ResourceTypeURL system is special-cased: it answers the uppercase-first-
// letter heuristic instead of consulting a code set, since FHIR resource type
// names are an open-ended, conventionally-capitalized vocabulary.
func (c *Cache) IsUnknown(system, code string) bool {
	if system == ResourceTypeURL {
		return !isCapitalized(code)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	set, ok := c.systems[system]
	if !ok {
		return true
	}
	_, known := set[code]
	return !known
}

// Systems returns the URIs of every registered system (bootstrapped or
// seeded), regardless of which codes each carries, in no particular order.
func (c *Cache) Systems() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	systems := make([]string, 0, len(c.systems))
	for system := range c.systems {
		systems = append(systems, system)
	}
	return systems
}

// FindSystemForCode returns a system other than excludeSystem whose code set
// contains code, and whether one was found. Used to resolve the
// false-url-referenced vs. unknown-code distinction for ValueSet concept
// validation (§4.9).
func (c *Cache) FindSystemForCode(excludeSystem, code string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for system, set := range c.systems {
		if system == excludeSystem {
			continue
		}
		if _, ok := set[code]; ok {
			return system, true
		}
	}
	return "", false
}

func isCapitalized(s string) bool {
	if s == "" {
		return false
	}
	return s[0] >= 'A' && s[0] <= 'Z'
}
