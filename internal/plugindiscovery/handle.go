package plugindiscovery

import "regexp"

// processIDPattern matches the "domain_processname" shape a BPMN process id
// must follow (SPEC_FULL.md §4.8.1's process-id rule); reused here as the
// key/value discriminator when flattening getFhirResourcesByProcessId's
// bytecode string constants back into a map (see buildFHIRResourcesMap).
var processIDPattern = regexp.MustCompile(`^[a-z0-9]+_[A-Za-z0-9]+$`)

// Handle is an opaque, immutable view over one discovered descriptor
// instance: a display name, its API generation, the originating type, its
// declared BPMN process-model references, and its FHIR resources grouped
// by the process id that owns them.
type Handle struct {
	Name                 string
	APIVersion           APIVersion
	SourceClassName      string
	ProcessModels        []string
	FHIRResourcesByProcessID map[string][]string
	Duplicate            bool

	// ViaServiceRegistration reports whether this descriptor was found
	// through java.util.ServiceLoader-style registration rather than the
	// class-file naming-convention fallback scan — the service-registration
	// status a plugin-definition finding reports on (§4.10 step 5).
	ViaServiceRegistration bool
}

// stringConstantSource is the minimal surface Handle construction needs
// from a classlookup.ClassFile, kept narrow so tests can fake it without
// hand-assembling classfile bytes.
type stringConstantSource interface {
	StringConstants(method string) []string
}

// buildHandle statically approximates no-arg getter instantiation by
// reading each required getter's string-constant pool, exactly the
// "descriptor instantiation" approach classlookup.ClassFile.StringConstants
// exists for.
func buildHandle(cf stringConstantSource, sourceClassName string, version APIVersion) Handle {
	names := cf.StringConstants("getName")
	name := sourceClassName
	if len(names) > 0 {
		name = names[0]
	}

	return Handle{
		Name:                     name,
		APIVersion:               version,
		SourceClassName:          sourceClassName,
		ProcessModels:            cf.StringConstants("getProcessModels"),
		FHIRResourcesByProcessID: buildFHIRResourcesMap(cf.StringConstants("getFhirResourcesByProcessId")),
	}
}

// buildHandleVia calls buildHandle and tags the result with how the
// descriptor was found.
func buildHandleVia(cf stringConstantSource, sourceClassName string, version APIVersion, viaServiceRegistration bool) Handle {
	h := buildHandle(cf, sourceClassName, version)
	h.ViaServiceRegistration = viaServiceRegistration
	return h
}

// buildFHIRResourcesMap flattens the bytecode-order string constants of
// getFhirResourcesByProcessId back into a process-id -> [references] map.
// A static bytecode scan sees a flat ordered list of literals, not the
// Map<String, List<String>> structure the method builds them into at
// runtime; this reconstructs it by treating every constant that matches
// the process-id pattern as starting a new key, and every other constant
// as a reference belonging to the most recently seen key. Constants
// encountered before any key is seen are dropped — they cannot belong to
// any process id.
func buildFHIRResourcesMap(constants []string) map[string][]string {
	result := make(map[string][]string)
	var currentKey string
	haveKey := false

	for _, c := range constants {
		if processIDPattern.MatchString(c) {
			currentKey = c
			haveKey = true
			if _, exists := result[currentKey]; !exists {
				result[currentKey] = nil
			}
			continue
		}
		if haveKey {
			result[currentKey] = append(result[currentKey], c)
		}
	}

	return result
}
