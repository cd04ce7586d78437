// Package reportrender turns an internal/report.Aggregate into the report
// directory layout: an aggregate index.html, one <plugin-name>.html per
// plugin, one <plugin-name>.json per plugin when requested, and a
// supplemental dsflint.sarif for CI code-scanning ingestion. The report
// model carries no rendering logic of its own; every renderer here is a
// leaf over the same plain Aggregate/PluginReport structs.
package reportrender

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wharflab/dsf-lint/internal/report"
)

// WriteOptions controls which report files WriteReport produces.
type WriteOptions struct {
	// HTML requests index.html + one <plugin-name>.html per plugin.
	HTML bool

	// JSON requests one <plugin-name>.json per plugin.
	JSON bool

	// SARIF requests a supplemental dsflint.sarif.
	SARIF bool

	// ToolVersion is embedded in the SARIF tool driver.
	ToolVersion string
}

// WriteReport renders agg into dir per the report directory layout. dir is
// created if it does not already exist.
func WriteReport(dir string, agg *report.Aggregate, opts WriteOptions) error {
	if !opts.HTML && !opts.JSON && !opts.SARIF {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("reportrender: failed to create report directory %s: %w", dir, err)
	}

	if opts.HTML {
		if err := writeFile(filepath.Join(dir, "index.html"), func(w io.Writer) error {
			return RenderIndexHTML(w, agg)
		}); err != nil {
			return err
		}
		for _, p := range agg.Plugins {
			path := filepath.Join(dir, p.Name+".html")
			if err := writeFile(path, func(w io.Writer) error {
				return RenderPluginHTML(w, p)
			}); err != nil {
				return err
			}
		}
	}

	if opts.JSON {
		for _, p := range agg.Plugins {
			path := filepath.Join(dir, p.Name+".json")
			if err := writeFile(path, func(w io.Writer) error {
				return RenderPluginJSON(w, p)
			}); err != nil {
				return err
			}
		}
	}

	if opts.SARIF {
		path := filepath.Join(dir, "dsflint.sarif")
		if err := writeFile(path, func(w io.Writer) error {
			return RenderSARIF(w, agg, opts.ToolVersion)
		}); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("reportrender: failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		return fmt.Errorf("reportrender: failed to render %s: %w", path, err)
	}
	return nil
}

// GetWriter opens the destination for "stdout"/"stderr"/a file path, the
// same convention as the teacher's own reporter.GetWriter.
func GetWriter(path string) (io.Writer, func() error, error) {
	switch path {
	case "stdout", "":
		return os.Stdout, func() error { return nil }, nil
	case "stderr":
		return os.Stderr, func() error { return nil }, nil
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reportrender: failed to create output file: %w", err)
		}
		return f, f.Close, nil
	}
}
