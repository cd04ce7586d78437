package orchestrator

import "github.com/sirupsen/logrus"

// Stage identifies one of Run's fixed pipeline phases (§4.10), in the order
// a single invocation passes through them.
type Stage int

const (
	StageResolveInput Stage = iota
	StageProjectSetup
	StagePluginDiscovery
)

func (s Stage) String() string {
	switch s {
	case StageResolveInput:
		return "resolving input"
	case StageProjectSetup:
		return "preparing project"
	case StagePluginDiscovery:
		return "discovering plugins"
	default:
		return "unknown stage"
	}
}

// Channel receives progress and diagnostic output from a Run invocation.
// Implementations map to environment-specific UX (CLI stderr progress, a
// future LSP/daemon notification channel, or silence in tests). Unlike a
// generic leveled logger, every method names the specific thing Run is
// doing — there is no free-form Log(level, msg) escape hatch, so a new
// Channel implementation can't drift from the pipeline's actual shape.
type Channel interface {
	// EnteringStage announces the start of one of Run's one-shot,
	// whole-project stages (resolve input, project setup, plugin
	// discovery) — each runs exactly once per Run, before any
	// per-plugin work begins.
	EnteringStage(stage Stage)

	// LintingPlugin announces that the (index+1)th of total discovered
	// plugins is about to have its BPMN/FHIR resources dispatched.
	LintingPlugin(name string, index, total int)

	// Warn surfaces a non-fatal problem that degrades the run (a failed
	// temp-file cleanup, a code system seed miss) but is not itself a
	// finding and does not stop the run.
	Warn(msg string)
}

// logrusChannel is the default production Channel, built on the teacher's
// own logging stack.
type logrusChannel struct {
	log *logrus.Logger
}

// NewLogrusChannel returns a Channel that logs through logrus, at Debug
// level when verbose is set and Info otherwise.
func NewLogrusChannel(verbose bool) Channel {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return &logrusChannel{log: log}
}

func (c *logrusChannel) EnteringStage(stage Stage) {
	c.log.Debug(stage.String())
}

func (c *logrusChannel) LintingPlugin(name string, index, total int) {
	c.log.Debugf("linting %s (%d/%d)", name, index+1, total)
}

func (c *logrusChannel) Warn(msg string) {
	c.log.Warn(msg)
}

// NoopChannel discards everything — the default when Options.Channel is nil.
type NoopChannel struct{}

func (NoopChannel) EnteringStage(Stage)          {}
func (NoopChannel) LintingPlugin(string, int, int) {}
func (NoopChannel) Warn(string)                    {}
