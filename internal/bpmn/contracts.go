package bpmn

import "github.com/wharflab/dsf-lint/internal/plugindiscovery"

// versionContract is the closed, API-version-keyed table of interface and
// base-class names a service task, send task, task listener, or execution
// listener implementation class is checked against (spec's "API-version-
// sensitive dispatch"). Like plugindiscovery's descriptorInterfaces table,
// these fully-qualified names are not recoverable from anywhere in the
// retrieved pack (there is no reference Java source to read them from) and
// are invented consistently with the dev.dsf.bpe.v{1,2} package convention
// plugindiscovery already established.
type versionContract struct {
	ServiceTaskInterface string
	ServiceTaskBaseClass string

	SendTaskInterface string
	SendTaskBaseClass string

	ExecutionListenerInterface string

	TaskListenerInterface string
	TaskListenerBaseClass string
}

var contracts = map[plugindiscovery.APIVersion]versionContract{
	plugindiscovery.APIV1: {
		ServiceTaskInterface:       "dev.dsf.bpe.v1.activity.ServiceTask",
		ServiceTaskBaseClass:       "dev.dsf.bpe.v1.activity.AbstractServiceTask",
		SendTaskInterface:          "dev.dsf.bpe.v1.activity.MessageSendTask",
		SendTaskBaseClass:          "dev.dsf.bpe.v1.activity.AbstractTaskMessageSend",
		ExecutionListenerInterface: "dev.dsf.bpe.v1.listener.ExecutionListener",
		TaskListenerInterface:      "dev.dsf.bpe.v1.listener.TaskListener",
		TaskListenerBaseClass:      "dev.dsf.bpe.v1.listener.DefaultUserTaskListener",
	},
	plugindiscovery.APIV2: {
		ServiceTaskInterface:       "dev.dsf.bpe.v2.activity.ServiceTask",
		ServiceTaskBaseClass:       "dev.dsf.bpe.v2.activity.AbstractServiceTask",
		SendTaskInterface:          "dev.dsf.bpe.v2.activity.MessageSendTask",
		SendTaskBaseClass:          "dev.dsf.bpe.v2.activity.AbstractTaskMessageSend",
		ExecutionListenerInterface: "dev.dsf.bpe.v2.listener.ExecutionListener",
		TaskListenerInterface:      "dev.dsf.bpe.v2.listener.TaskListener",
		TaskListenerBaseClass:      "dev.dsf.bpe.v2.listener.DefaultUserTaskListener",
	},
}

// contractFor returns the version contract for v, and false if v carries no
// contract (APIUnknown, or a future version the table has not been extended
// for) — callers skip interface/base-class checks in that case rather than
// reporting every class as wrong, since there is nothing to check against.
func contractFor(v plugindiscovery.APIVersion) (versionContract, bool) {
	c, ok := contracts[v]
	return c, ok
}
