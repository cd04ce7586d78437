package bpmn

import (
	"github.com/beevik/etree"

	"github.com/wharflab/dsf-lint/internal/findings"
)

// dispatchGatewaysAndFlows runs the gateway and sequence-flow family
// (§4.8.1): exclusive/inclusive/event-based gateways, and every sequence
// flow in the document.
func dispatchGatewaysAndFlows(ctx *DispatchContext, m *Model, file string) {
	var gateways []*etree.Element
	gateways = append(gateways, m.ExclusiveGateways()...)
	gateways = append(gateways, m.InclusiveGateways()...)
	gateways = append(gateways, m.EventBasedGateways()...)

	outgoing := countOutgoingFlows(m)
	defaultFlowOf := make(map[string]string, len(gateways))
	gatewayByID := make(map[string]bool, len(gateways))

	for _, g := range gateways {
		id := elemID(g)
		gatewayByID[id] = true
		if d := attr(g, "default"); d != "" {
			defaultFlowOf[id] = d
		}

		anchor := id
		processID := enclosingProcessID(g)
		if outgoing[id] > 1 && attr(g, "name") == "" {
			ctx.emit(findings.GatewayMultipleOutgoingNameEmpty(file, anchor, processID))
		} else {
			ctx.emit(findings.GatewayOK(file, anchor, processID))
		}
	}

	for _, flow := range m.SequenceFlows() {
		dispatchSequenceFlow(ctx, m, flow, gatewayByID, defaultFlowOf, file)
	}
}

func countOutgoingFlows(m *Model) map[string]int {
	counts := make(map[string]int)
	for _, flow := range m.SequenceFlows() {
		if src := attr(flow, "sourceRef"); src != "" {
			counts[src]++
		}
	}
	return counts
}

func dispatchSequenceFlow(
	ctx *DispatchContext, m *Model, flow *etree.Element,
	gatewayByID map[string]bool, defaultFlowOf map[string]string, file string,
) {
	anchor := elemID(flow)
	processID := enclosingProcessID(flow)
	src := attr(flow, "sourceRef")
	tgt := attr(flow, "targetRef")
	ok := true

	if src == "" || !m.HasElementID(src) {
		ctx.emit(findings.SequenceFlowNoSourceNode(file, anchor, processID, src))
		ok = false
	}
	if tgt == "" || !m.HasElementID(tgt) {
		ctx.emit(findings.SequenceFlowNoTargetNode(file, anchor, processID, tgt))
		ok = false
	}

	if gatewayByID[src] {
		isDefault := defaultFlowOf[src] == anchor
		hasCondition := firstChild(flow, "conditionExpression") != nil

		if isDefault && hasCondition {
			ctx.emit(findings.SequenceFlowDefaultHasCondition(file, anchor, processID))
			ok = false
		}
		if !isDefault && !hasCondition {
			ctx.emit(findings.SequenceFlowNonDefaultMissingCondition(file, anchor, processID))
			ok = false
		}
		if !isDefault && attr(flow, "name") == "" {
			ctx.emit(findings.SequenceFlowNonDefaultNameEmpty(file, anchor, processID))
			ok = false
		}
	}

	if ok {
		ctx.emit(findings.SequenceFlowOK(file, anchor, processID))
	}
}
