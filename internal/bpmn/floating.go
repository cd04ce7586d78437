package bpmn

import (
	"github.com/beevik/etree"

	"github.com/wharflab/dsf-lint/internal/findings"
)

// flowNodeTags are the element kinds counted as flow nodes for reachability
// purposes — everything a sequence flow can point at.
var flowNodeTags = []string{
	"task", "serviceTask", "sendTask", "receiveTask", "userTask", "manualTask",
	"scriptTask", "businessRuleTask", "callActivity", "subProcess",
	"startEvent", "endEvent", "intermediateThrowEvent", "intermediateCatchEvent",
	"boundaryEvent", "exclusiveGateway", "inclusiveGateway", "eventBasedGateway",
	"parallelGateway", "complexGateway",
}

// flowGraph is a directed adjacency list over sequence-flow edges within one
// scope (a process or a subprocess), grounded directly on the teacher's
// StageGraph shape: a bare map[string][]string plus a FIFO-slice BFS queue,
// generalized from Dockerfile stage indices to BPMN flow-node ids.
type flowGraph struct {
	edges map[string][]string
}

func buildFlowGraph(scope *etree.Element) *flowGraph {
	g := &flowGraph{edges: make(map[string][]string)}
	for _, sf := range directChildren(scope, "sequenceFlow") {
		src := attr(sf, "sourceRef")
		tgt := attr(sf, "targetRef")
		if src == "" || tgt == "" {
			continue
		}
		g.edges[src] = append(g.edges[src], tgt)
	}
	return g
}

// reachable runs a BFS from every id in starts and returns the set of ids it
// visited, mirroring StageGraph.IsReachable's visited-map/FIFO-queue BFS.
func (g *flowGraph) reachable(starts []string) map[string]bool {
	visited := make(map[string]bool, len(starts))
	queue := append([]string{}, starts...)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, next := range g.edges[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// directFlowNodes returns scope's direct-child flow nodes (not recursing
// into nested subprocesses, which are analyzed as their own scope).
func directFlowNodes(scope *etree.Element) []*etree.Element {
	var nodes []*etree.Element
	for _, tag := range flowNodeTags {
		nodes = append(nodes, directChildren(scope, tag)...)
	}
	return nodes
}

// analyzeFloating runs the floating-element pass (§4.8 "after walking...")
// once per scope (the top-level process, and independently each nested
// subprocess, since a subprocess's internal flow is its own graph). Boundary
// events are seeded as reachable alongside start events: they have no
// incoming sequence flow by BPMN construction (they fire from the
// attachedToRef activity, not from a flow predecessor), so treating them as
// ordinary unreached nodes would flag every boundary event as floating.
func analyzeFloating(m *Model, emit func(findings.Finding), file string) {
	var scopes []*etree.Element
	scopes = append(scopes, m.Processes()...)
	scopes = append(scopes, m.SubProcesses()...)

	for _, scope := range scopes {
		processID := enclosingProcessID(scope)
		if scope.Tag == "process" {
			processID = attr(scope, "id")
		}

		nodes := directFlowNodes(scope)
		if len(nodes) == 0 {
			continue
		}

		var seeds []string
		for _, s := range directChildren(scope, "startEvent") {
			seeds = append(seeds, elemID(s))
		}
		for _, b := range directChildren(scope, "boundaryEvent") {
			seeds = append(seeds, elemID(b))
		}

		reached := buildFlowGraph(scope).reachable(seeds)

		for _, node := range nodes {
			id := elemID(node)
			if id == "" || reached[id] {
				continue
			}
			emit(findings.FloatingElement(file, id, processID))
		}
	}
}
