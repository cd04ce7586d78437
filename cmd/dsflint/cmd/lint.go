package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"

	"github.com/wharflab/dsf-lint/internal/config"
	"github.com/wharflab/dsf-lint/internal/orchestrator"
	"github.com/wharflab/dsf-lint/internal/report"
	"github.com/wharflab/dsf-lint/internal/reportrender"
	"github.com/wharflab/dsf-lint/internal/version"
)

// Exit codes (§6). Input/build/discovery errors and ERROR findings both
// terminate the run with 1; everything else that completes is 0.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

func lintFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "mvn",
			Usage:   "Extra Maven goal/property to append to the build vector (repeatable)",
			Sources: cli.EnvVars("DSFLINT_BUILD_EXTRA_GOALS"),
		},
		&cli.StringSliceFlag{
			Name:    "skip",
			Usage:   "Maven goal to remove from the default build vector (repeatable)",
			Sources: cli.EnvVars("DSFLINT_BUILD_SKIP_GOALS"),
		},
		&cli.BoolFlag{
			Name:    "html",
			Usage:   "Write an HTML report (index.html + one page per plugin)",
			Sources: cli.EnvVars("DSFLINT_OUTPUT_HTML"),
		},
		&cli.BoolFlag{
			Name:    "json",
			Usage:   "Write a JSON report, one file per plugin",
			Sources: cli.EnvVars("DSFLINT_OUTPUT_JSON"),
		},
		&cli.BoolFlag{
			Name:    "sarif",
			Usage:   "Write a supplemental dsflint.sarif for code-scanning ingestion",
			Sources: cli.EnvVars("DSFLINT_OUTPUT_SARIF"),
		},
		&cli.StringFlag{
			Name:    "report-path",
			Usage:   "Directory to write report files into",
			Value:   "report",
			Sources: cli.EnvVars("DSFLINT_OUTPUT_REPORT_PATH"),
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Include SUCCESS findings and stage progress in console output",
			Sources: cli.EnvVars("DSFLINT_OUTPUT_VERBOSE"),
		},
		&cli.StringFlag{
			Name:    "color",
			Usage:   "Console color mode: auto, always, never",
			Value:   "auto",
			Sources: cli.EnvVars("DSFLINT_OUTPUT_COLOR"),
		},
		&cli.BoolFlag{
			Name:    "no-fail",
			Usage:   "Always exit 0, even when an ERROR finding was produced",
			Sources: cli.EnvVars("DSFLINT_OUTPUT_NO_FAIL"),
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a config file (default: auto-discover .dsflint.toml)",
		},
	}
}

func runLint(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		path = "."
	}

	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("dsflint: loading config: %v", err), ExitFailure)
	}
	applyFlagOverrides(cmd, cfg)

	out := cfg.Output
	profile := colorProfile(out.Color)

	agg, err := orchestrator.Run(ctx, path, orchestrator.Options{
		BuildExtraGoals: cfg.Build.ExtraGoals,
		BuildSkipGoals:  cfg.Build.SkipGoals,
		Channel:         orchestrator.NewLogrusChannel(out.Verbose),
	})
	if err != nil {
		var fatal *orchestrator.FatalError
		if errors.As(err, &fatal) {
			fmt.Fprintln(os.Stderr, styled(profile, colorRed, fmt.Sprintf("dsflint: %v", fatal)))
			return cli.Exit("", ExitFailure)
		}
		return cli.Exit(fmt.Sprintf("dsflint: %v", err), ExitFailure)
	}

	if out.HTML || out.JSON || out.SARIF {
		if err := reportrender.WriteReport(out.ReportPath, agg, reportrender.WriteOptions{
			HTML:        out.HTML,
			JSON:        out.JSON,
			SARIF:       out.SARIF,
			ToolVersion: version.Version(),
		}); err != nil {
			return cli.Exit(fmt.Sprintf("dsflint: writing report: %v", err), ExitFailure)
		}
	}

	printSummary(cmd.Root().Writer, agg, profile, out.Verbose)

	if agg.HasErrors() && !out.NoFail {
		return cli.Exit("", ExitFailure)
	}
	return nil
}

// loadConfig loads the layered config, honoring an explicit --config path
// before falling back to discovery from the target path.
func loadConfig(cmd *cli.Command, path string) (*config.Config, error) {
	if p := cmd.String("config"); p != "" {
		return config.LoadFromFile(p)
	}
	return config.Load(path)
}

// applyFlagOverrides layers CLI flags over the loaded config, but only for
// flags the user actually set — an unset flag must never clobber a value
// that came from the config file or environment.
func applyFlagOverrides(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("mvn") {
		cfg.Build.ExtraGoals = cmd.StringSlice("mvn")
	}
	if cmd.IsSet("skip") {
		cfg.Build.SkipGoals = cmd.StringSlice("skip")
	}
	if cmd.IsSet("html") {
		cfg.Output.HTML = cmd.Bool("html")
	}
	if cmd.IsSet("json") {
		cfg.Output.JSON = cmd.Bool("json")
	}
	if cmd.IsSet("sarif") {
		cfg.Output.SARIF = cmd.Bool("sarif")
	}
	if cmd.IsSet("report-path") {
		cfg.Output.ReportPath = cmd.String("report-path")
	}
	if cmd.IsSet("verbose") {
		cfg.Output.Verbose = cmd.Bool("verbose")
	}
	if cmd.IsSet("color") {
		cfg.Output.Color = cmd.String("color")
	}
	if cmd.IsSet("no-fail") {
		cfg.Output.NoFail = cmd.Bool("no-fail")
	}
}

// colorProfile resolves the effective termenv profile from the --color
// value and the NO_COLOR/FORCE_COLOR environment, per §6.
func colorProfile(mode string) termenv.Profile {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return termenv.Ascii
	}
	if _, force := os.LookupEnv("FORCE_COLOR"); force {
		return termenv.ANSI256
	}
	switch mode {
	case "never":
		return termenv.Ascii
	case "always":
		return termenv.ANSI256
	default:
		return termenv.EnvColorProfile()
	}
}

// ANSI SGR color indices (red/yellow), looked up through the resolved
// profile so a "never"/NO_COLOR profile degrades to plain text.
const (
	colorRed    = "1"
	colorYellow = "3"
)

func styled(profile termenv.Profile, color string, text string) string {
	return termenv.String(text).Foreground(profile.Color(color)).String()
}

// printSummary writes a one-line-per-plugin console tally; under verbose it
// adds the success count and one detail line per finding. The full findings
// live in the rendered report (§6).
func printSummary(w io.Writer, agg *report.Aggregate, profile termenv.Profile, verbose bool) {
	for _, p := range agg.Plugins {
		c := p.Counts()
		line := fmt.Sprintf("%s: %d error, %d warn, %d info", p.Name, c.Error, c.Warn, c.Info)
		if verbose {
			line += fmt.Sprintf(", %d success", c.Success)
		}
		if c.Error > 0 {
			line = styled(profile, colorRed, line)
		} else if c.Warn > 0 {
			line = styled(profile, colorYellow, line)
		}
		fmt.Fprintln(w, line)
		if verbose {
			for _, f := range p.Findings {
				fmt.Fprintf(w, "  [%s] %s %s: %s\n", f.Severity, f.Kind, f.File, f.Description)
			}
		}
	}
}
