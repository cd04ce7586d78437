package plugindiscovery

// APIVersion identifies which generation of the descriptor contract a
// discovered type conforms to.
type APIVersion int

const (
	APIUnknown APIVersion = iota
	APIV1
	APIV2
)

func (v APIVersion) String() string {
	switch v {
	case APIV1:
		return "v1"
	case APIV2:
		return "v2"
	default:
		return "unknown"
	}
}

// descriptorInterface is the fully-qualified interface name the
// service-provider file is registered under, and the class-file-scan
// fallback checks conformance against — one per API generation, newest
// first so service-provider discovery prefers V2 registrations.
var descriptorInterfaces = []struct {
	version APIVersion
	fqn     string
}{
	{APIV2, "dev.dsf.bpe.v2.ProcessPluginDefinition"},
	{APIV1, "dev.dsf.bpe.v1.ProcessPluginDefinition"},
}

// requiredGetters is the closed method-name set the descriptor contract
// requires; present on both API generations.
var requiredGetters = []string{
	"getName",
	"getProcessModels",
	"getFhirResourcesByProcessId",
}

// descriptorSimpleNameSuffix is the class-file-scan fallback's naming
// convention filter.
const descriptorSimpleNameSuffix = "ProcessPluginDefinition"
