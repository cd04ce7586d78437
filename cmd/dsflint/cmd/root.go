// Package cmd wires dsf-lint's command-line interface: flag parsing via
// urfave/cli/v3, config layering via internal/config, and the
// resolve/build/discover/dispatch pipeline via internal/orchestrator.
package cmd

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wharflab/dsf-lint/internal/version"
)

// NewApp creates the CLI application.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:      "dsflint",
		Usage:     "A static linter for BPMN/FHIR DSF process plugins",
		Version:   version.Version(),
		ArgsUsage: "<path>",
		Description: `dsflint checks a DSF process plugin — an unpacked directory, a packaged
archive, or a Git/HTTPS URL pointing at one — against the BPMN and FHIR
authoring conventions its descriptor declares.

Examples:
  dsflint .
  dsflint --html --json ./my-plugin
  dsflint https://example.org/plugins/example.zip`,
		Flags:  lintFlags(),
		Action: runLint,
		Commands: []*cli.Command{
			versionCommand(),
		},
	}
}

// Execute runs the CLI application.
func Execute() error {
	return NewApp().Run(context.Background(), os.Args)
}
