package findings

// PluginReferenceMissing builds a finding for a descriptor reference that
// does not resolve anywhere in the resolved resource root.
func PluginReferenceMissing(file, anchor, reference string) Finding {
	return newFixed(KindPluginReferenceMissing, file, WithAnchor(anchor), WithExtra("reference", reference))
}

// PluginReferenceOutsideRoot builds a finding for a reference that resolves
// to a path escaping the plugin's own resource root.
func PluginReferenceOutsideRoot(file, anchor, reference string) Finding {
	return newFixed(KindPluginReferenceOutsideRoot, file, WithAnchor(anchor), WithExtra("reference", reference))
}

// PluginReferenceFromDependency builds an informational finding for a
// reference resolved against a dependency archive rather than the plugin.
func PluginReferenceFromDependency(file, anchor, reference, archiveID string) Finding {
	f := newFixed(KindPluginReferenceFromDependency, file, WithAnchor(anchor), WithExtra("reference", reference))
	return addExtra(f, "archiveId", archiveID)
}

// PluginNoProcessModels builds a finding for a plugin descriptor that
// declares no BPMN process models.
func PluginNoProcessModels(file, anchor string) Finding {
	return newFixed(KindPluginNoProcessModels, file, WithAnchor(anchor))
}

// PluginNoFHIRResources builds a finding for a plugin descriptor that
// declares no FHIR resources.
func PluginNoFHIRResources(file, anchor string) Finding {
	return newFixed(KindPluginNoFHIRResources, file, WithAnchor(anchor))
}

// PluginServiceRegistrationMissing builds a finding for a descriptor class
// that is not registered via the service provider convention.
func PluginServiceRegistrationMissing(file, class string) Finding {
	return newFixed(KindPluginServiceRegistrationMissing, file, WithAnchor(class))
}

// PluginServiceRegistrationOK builds a SUCCESS finding for a correctly
// registered descriptor class.
func PluginServiceRegistrationOK(file, class string) Finding {
	return newFixed(KindPluginServiceRegistrationOK, file, WithAnchor(class))
}

// PluginDuplicateDescriptor builds a finding for a descriptor class
// discovered more than once (two service-provider registrations name it).
func PluginDuplicateDescriptor(file, class string) Finding {
	return newFixed(KindPluginDuplicateDescriptor, file, WithAnchor(class))
}
