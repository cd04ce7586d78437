// Package bpmn traverses a parsed BPMN 2.0 process model and dispatches the
// per-family rules in internal/findings. The tree itself is read with
// beevik/etree; Model is the typed layer above it, in the same spirit as
// internal/codesystem's FHIR-tree accessors.
package bpmn

import (
	"github.com/beevik/etree"
)

// Model wraps one parsed .bpmn file. Element lookups match by local tag name
// only, ignoring whatever namespace prefix (bpmn:, camunda:, or none) the
// authoring tool emitted — real-world process models are inconsistent about
// prefixes, and the element's local name is the only thing the spec actually
// cares about.
type Model struct {
	doc  *etree.Document
	file string

	idIndex map[string]*etree.Element
}

// Load parses path as BPMN XML.
func Load(path string) (*Model, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	return &Model{doc: doc, file: path}, nil
}

// File returns the path Model was loaded from.
func (m *Model) File() string { return m.file }

// Root returns the document's root element (normally bpmn:definitions).
func (m *Model) Root() *etree.Element { return m.doc.Root() }

func attr(e *etree.Element, key string) string {
	return e.SelectAttrValue(key, "")
}

func elemID(e *etree.Element) string { return attr(e, "id") }

// firstChild returns the first direct child of e whose local tag is tag.
func firstChild(e *etree.Element, tag string) *etree.Element {
	if e == nil {
		return nil
	}
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// directChildren returns every direct child of e whose local tag is tag.
func directChildren(e *etree.Element, tag string) []*etree.Element {
	if e == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

func descendantsByTag(e *etree.Element, tag string, out *[]*etree.Element) {
	if e == nil {
		return
	}
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			*out = append(*out, c)
		}
		descendantsByTag(c, tag, out)
	}
}

// FindAll returns every descendant element (at any depth) whose local tag is
// tag, in document order.
func (m *Model) FindAll(tag string) []*etree.Element {
	var out []*etree.Element
	descendantsByTag(m.Root(), tag, &out)
	return out
}

func (m *Model) Processes() []*etree.Element               { return m.FindAll("process") }
func (m *Model) ServiceTasks() []*etree.Element             { return m.FindAll("serviceTask") }
func (m *Model) SendTasks() []*etree.Element                { return m.FindAll("sendTask") }
func (m *Model) ReceiveTasks() []*etree.Element             { return m.FindAll("receiveTask") }
func (m *Model) UserTasks() []*etree.Element                { return m.FindAll("userTask") }
func (m *Model) SubProcesses() []*etree.Element             { return m.FindAll("subProcess") }
func (m *Model) StartEvents() []*etree.Element              { return m.FindAll("startEvent") }
func (m *Model) EndEvents() []*etree.Element                { return m.FindAll("endEvent") }
func (m *Model) IntermediateThrowEvents() []*etree.Element  { return m.FindAll("intermediateThrowEvent") }
func (m *Model) IntermediateCatchEvents() []*etree.Element  { return m.FindAll("intermediateCatchEvent") }
func (m *Model) BoundaryEvents() []*etree.Element           { return m.FindAll("boundaryEvent") }
func (m *Model) ExclusiveGateways() []*etree.Element        { return m.FindAll("exclusiveGateway") }
func (m *Model) InclusiveGateways() []*etree.Element        { return m.FindAll("inclusiveGateway") }
func (m *Model) EventBasedGateways() []*etree.Element       { return m.FindAll("eventBasedGateway") }
func (m *Model) SequenceFlows() []*etree.Element            { return m.FindAll("sequenceFlow") }
func (m *Model) Messages() []*etree.Element                 { return m.FindAll("message") }

// MessageName returns the name of the message declared with the given id,
// if any (messages are declared once under bpmn:definitions and referenced
// elsewhere by messageRef).
func (m *Model) MessageName(messageRef string) (string, bool) {
	for _, msg := range m.Messages() {
		if elemID(msg) == messageRef {
			return attr(msg, "name"), true
		}
	}
	return "", false
}

// ElementByID returns the element anywhere in the document with the given
// id attribute, building and caching an index on first use.
func (m *Model) ElementByID(id string) (*etree.Element, bool) {
	if m.idIndex == nil {
		m.idIndex = make(map[string]*etree.Element)
		var walk func(e *etree.Element)
		walk = func(e *etree.Element) {
			for _, c := range e.ChildElements() {
				if cid := elemID(c); cid != "" {
					m.idIndex[cid] = c
				}
				walk(c)
			}
		}
		walk(m.Root())
	}
	e, ok := m.idIndex[id]
	return e, ok
}

// HasElementID reports whether some element in the document carries id.
func (m *Model) HasElementID(id string) bool {
	_, ok := m.ElementByID(id)
	return ok
}

// enclosingProcessID walks up from e to the nearest ancestor bpmn:process
// element and returns its id, or "" if e is not inside a process (malformed
// document).
func enclosingProcessID(e *etree.Element) string {
	for cur := e; cur != nil; cur = cur.Parent() {
		if cur.Tag == "process" {
			return attr(cur, "id")
		}
	}
	return ""
}

// extensionElementsOf returns e's extensionElements child, if any.
func extensionElementsOf(e *etree.Element) *etree.Element {
	return firstChild(e, "extensionElements")
}
