package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wharflab/dsf-lint/internal/version"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print version information as JSON",
			},
		},
		Action: runVersion,
	}
}

func runVersion(_ context.Context, cmd *cli.Command) error {
	info := version.GetInfo()

	if cmd.Bool("json") {
		enc := json.NewEncoder(cmd.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(cmd.Root().Writer, "dsflint %s\n", info.Version)
	fmt.Fprintf(cmd.Root().Writer, "  platform: %s/%s\n", info.Platform.OS, info.Platform.Arch)
	fmt.Fprintf(cmd.Root().Writer, "  go: %s\n", info.GoVersion)
	return nil
}
