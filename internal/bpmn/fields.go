package bpmn

import (
	"strings"

	"github.com/beevik/etree"
)

// fields reads every camunda:field injection under e's extensionElements,
// keyed by its name attribute. A field's value is read from (in order of
// preference) its stringValue attribute, a nested camunda:string child's
// text, or a nested camunda:expression child's text.
func fields(e *etree.Element) map[string]string {
	result := make(map[string]string)
	ext := extensionElementsOf(e)
	if ext == nil {
		return result
	}
	for _, f := range directChildren(ext, "field") {
		name := attr(f, "name")
		if name == "" {
			continue
		}
		result[name] = fieldValue(f)
	}
	return result
}

func fieldValue(f *etree.Element) string {
	if v := attr(f, "stringValue"); v != "" {
		return v
	}
	if child := firstChild(f, "string"); child != nil {
		return strings.TrimSpace(child.Text())
	}
	if child := firstChild(f, "expression"); child != nil {
		return strings.TrimSpace(child.Text())
	}
	return ""
}

// fieldIsExpression reports whether value looks like an unresolved Camunda
// expression rather than a literal string.
func fieldIsExpression(value string) bool {
	return strings.Contains(value, "${")
}
