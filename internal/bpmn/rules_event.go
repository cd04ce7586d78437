package bpmn

import (
	"github.com/beevik/etree"

	"github.com/wharflab/dsf-lint/internal/findings"
)

// messageRefOf returns the message reference id carried by e, and whether e
// carries any message reference at all. Receive tasks carry messageRef as a
// direct attribute; throw/catch/boundary events carry it on a nested
// messageEventDefinition child.
func messageRefOf(e *etree.Element) (ref string, has bool) {
	if ref := attr(e, "messageRef"); ref != "" {
		return ref, true
	}
	med := firstChild(e, "messageEventDefinition")
	if med == nil {
		return "", false
	}
	return attr(med, "messageRef"), true
}

// dispatchEventFamily runs the combined send/receive/message/signal/
// start/end event family (§4.8.1): receive tasks, intermediate throw/catch
// events, boundary events, start events, and end events all share the same
// name/message checks; send tasks are dispatched separately (they carry an
// implementation class and field injections beyond plain event shape).
func dispatchEventFamily(ctx *DispatchContext, m *Model, file string) {
	var elements []*etree.Element
	elements = append(elements, m.ReceiveTasks()...)
	elements = append(elements, m.IntermediateThrowEvents()...)
	elements = append(elements, m.IntermediateCatchEvents()...)
	elements = append(elements, m.BoundaryEvents()...)
	elements = append(elements, m.StartEvents()...)
	elements = append(elements, m.EndEvents()...)

	for _, e := range elements {
		anchor := elemID(e)
		processID := enclosingProcessID(e)
		ok := true

		if attr(e, "name") == "" {
			ctx.emit(findings.EventNameEmpty(file, anchor, processID))
			ok = false
		}

		ref, hasMessage := messageRefOf(e)

		if e.Tag == "intermediateThrowEvent" {
			if hasMessage {
				ctx.emit(findings.MessageIntermediateThrowHasMessage(file, anchor, processID))
			}
		} else if hasMessage {
			msgName, found := m.MessageName(ref)
			switch {
			case !found || msgName == "":
				ctx.emit(findings.MessageNameEmpty(file, anchor, processID))
				ok = false
			case ctx.KnownMessageNames != nil && !ctx.KnownMessageNames[msgName]:
				ctx.emit(findings.MessageUnknownReference(file, anchor, processID, ref))
				ok = false
			}
		}

		if ok {
			ctx.emit(findings.MessageEventOK(file, anchor, processID))
		}

		dispatchExecutionListeners(ctx, e, file, processID)
	}
}
