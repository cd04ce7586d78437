// Package fhir traverses a parsed FHIR resource (XML or JSON) and dispatches
// the per-resource-type rules in internal/findings. JSON documents are first
// translated into the same etree tree shape the XML parser produces, so
// every rule function only ever walks one tree representation, in the same
// spirit as internal/bpmn's Model over beevik/etree.
package fhir

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// Resource wraps one parsed FHIR resource file. FHIR XML serializes scalar
// values as a "value" attribute on a child element (<status value="draft"/>)
// rather than as an attribute of the resource element itself, the convention
// internal/codesystem's seed data already relies on; Resource's accessors
// replicate that read side uniformly for documents that started life as XML
// or as JSON.
type Resource struct {
	root *etree.Element
	file string
}

// elem aliases etree.Element so the rules_<resource>.go files don't each
// need their own import of beevik/etree just to spell out helper signatures.
type elem = etree.Element

// Type returns the resource's FHIR type, the root element's local tag.
func (r *Resource) Type() string { return r.root.Tag }

// Root returns the resource's root element.
func (r *Resource) Root() *etree.Element { return r.root }

// File returns the path Resource was loaded from.
func (r *Resource) File() string { return r.file }

// Load parses path as either FHIR XML or FHIR JSON, chosen by extension.
func Load(path string) (*Resource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	default:
		return loadXML(path)
	}
}

func loadXML(path string) (*Resource, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("fhir: %s: no root element", path)
	}
	return &Resource{root: root, file: path}, nil
}

// val returns the "value" attribute of e's first direct child named tag,
// the FHIR primitive-value convention (<tag value="..."/>).
func val(e *etree.Element, tag string) string {
	c := firstChild(e, tag)
	if c == nil {
		return ""
	}
	return c.SelectAttrValue("value", "")
}

// hasChild reports whether e has at least one direct child named tag.
func hasChild(e *etree.Element, tag string) bool {
	return firstChild(e, tag) != nil
}

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

// attr reads a plain XML attribute directly on e (used only for the
// extension "url" attribute, the one FHIR value that lives as a real
// attribute rather than a nested value-element).
func attr(e *etree.Element, key string) string {
	if e == nil {
		return ""
	}
	return e.SelectAttrValue(key, "")
}

// id returns the resource's own logical id, falling back to its canonical
// url when no id element is present (common for resources authored for
// distribution rather than a live server, which carry only a url).
func (r *Resource) id() string {
	if id := val(r.root, "id"); id != "" {
		return id
	}
	return val(r.root, "url")
}

// ID exposes the same logical-id-or-url resolution to callers outside this
// package (the Orchestrator, building the known-reference sets BPMN
// dispatch checks against).
func (r *Resource) ID() string { return r.id() }

// metaTagCodes returns the codes declared under meta.tag for the given
// system, across every meta.tag entry that references it.
func metaTagCodes(root *etree.Element, system string) []string {
	meta := firstChild(root, "meta")
	var codes []string
	for _, tag := range directChildren(meta, "tag") {
		if val(tag, "system") == system {
			codes = append(codes, val(tag, "code"))
		}
	}
	return codes
}

// metaProfiles returns every meta.profile canonical reference.
func metaProfiles(root *etree.Element) []string {
	meta := firstChild(root, "meta")
	var out []string
	for _, p := range directChildren(meta, "profile") {
		out = append(out, p.SelectAttrValue("value", ""))
	}
	return out
}

// extensionsByURL returns every direct-child extension element whose url
// attribute equals url.
func extensionsByURL(e *etree.Element, url string) []*etree.Element {
	var out []*etree.Element
	for _, ext := range directChildren(e, "extension") {
		if attr(ext, "url") == url {
			out = append(out, ext)
		}
	}
	return out
}
