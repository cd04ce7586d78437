package codesystem

import (
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/bmatcuk/doublestar/v4"
)

// codeSystemGlob matches every candidate CodeSystem resource file under a
// project tree, case-insensitively on extension (§4.2).
const codeSystemGlob = "**/src/main/resources/fhir/CodeSystem/*.[xX][mM][lL]"

// SeedFromProject walks root looking for CodeSystem resources and registers
// each one found. Files that do not parse, or whose document root is not a
// CodeSystem element, are silently ignored — this is a best-effort seed, not
// a validation pass.
func (c *Cache) SeedFromProject(root string) error {
	pattern := filepath.Join(filepath.ToSlash(root), codeSystemGlob)

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly(), doublestar.WithNoFollow())
	if err != nil {
		return err
	}

	for _, path := range matches {
		c.seedFile(path)
	}
	return nil
}

func (c *Cache) seedFile(path string) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return
	}

	root := doc.Root()
	if root == nil || root.Tag != "CodeSystem" {
		return
	}

	urlElem := root.SelectElement("url")
	if urlElem == nil {
		return
	}
	url := urlElem.SelectAttrValue("value", "")
	if url == "" {
		return
	}

	var codes []string
	for _, concept := range root.SelectElements("concept") {
		codeElem := concept.SelectElement("code")
		if codeElem == nil {
			continue
		}
		if code := codeElem.SelectAttrValue("value", ""); code != "" {
			codes = append(codes, code)
		}
	}

	c.Register(url, codes)
}
