package fhir

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/tidwall/gjson"
)

// loadJSON parses path as FHIR JSON and translates it into the same element
// tree shape FHIR XML produces, so every rule only ever walks one shape.
func loadJSON(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("fhir: %s: invalid JSON", path)
	}
	root, err := translateJSON(data)
	if err != nil {
		return nil, err
	}
	return &Resource{root: root, file: path}, nil
}

// translateJSON builds the XML-tree equivalent of a FHIR JSON document:
//
//  1. the resourceType property names the root element, and is not itself
//     carried over as a child;
//  2. an "extension" item's own "url" property becomes an XML attribute of
//     the surrounding <extension> element rather than a child;
//  3. every other object property becomes a child element, and a primitive
//     value is serialized as that child's "value" attribute;
//  4. array properties expand to one repeated child element per item.
func translateJSON(data []byte) (*etree.Element, error) {
	doc := gjson.ParseBytes(data)
	resourceType := doc.Get("resourceType").String()
	if resourceType == "" {
		return nil, fmt.Errorf("fhir: JSON document has no resourceType")
	}

	root := etree.NewElement(resourceType)
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if name == "resourceType" {
			return true
		}
		addJSONField(root, name, value)
		return true
	})
	return root, nil
}

// addJSONField attaches the tree representation of a JSON property named
// name to parent.
func addJSONField(parent *etree.Element, name string, value gjson.Result) {
	if value.IsArray() {
		value.ForEach(func(_, item gjson.Result) bool {
			addJSONChild(parent, name, item)
			return true
		})
		return
	}
	addJSONChild(parent, name, value)
}

// addJSONChild creates one child element named name under parent for a
// single (non-array) JSON value, recursing into object properties.
func addJSONChild(parent *etree.Element, name string, value gjson.Result) {
	child := parent.CreateElement(name)
	if !value.IsObject() {
		child.CreateAttr("value", value.String())
		return
	}

	isExtension := name == "extension"
	value.ForEach(func(key, v gjson.Result) bool {
		propName := key.String()
		if isExtension && propName == "url" {
			child.CreateAttr("url", v.String())
			return true
		}
		addJSONField(child, propName, v)
		return true
	})
}
