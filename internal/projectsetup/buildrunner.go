package projectsetup

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"syscall"
	"time"

	backoff "github.com/cenkalti/backoff/v5"
	"github.com/armon/circbuf"
)

const (
	defaultBuildTimeout    = 15 * time.Minute
	defaultStderrTailBytes = 64 * 1024
	defaultTerminateGrace  = 250 * time.Millisecond
)

// BuildError reports a failed build invocation, carrying the build's exit
// code; the Orchestrator wraps it in a fatal error that ends the run.
type BuildError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("maven build failed (exit=%d): %v", e.ExitCode, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// BuildRunner is the external collaborator that actually drives a build.
// Project Setup only composes the argument vector (argv.go) and reads the
// success/failure signal back from Run.
type BuildRunner interface {
	Run(ctx context.Context, projectDir string, argv []string) error
}

// mavenRunner shells out to the mvn binary, mirroring the teacher's
// acp.Runner shape: a context deadline, a bounded stderr tail for
// diagnostics, and a grace-period terminate on cancellation. Process
// launch (not the build itself) is retried through cenkalti/backoff: an
// exec failure before the child even starts is treated as transient,
// while a nonzero exit from a started build is permanent and fatal.
type mavenRunner struct {
	binary         string
	timeout        time.Duration
	stderrTail     int
	terminateGrace time.Duration
}

// NewDefaultBuildRunner returns the production BuildRunner, invoking the
// mvn binary on PATH.
func NewDefaultBuildRunner() BuildRunner {
	return &mavenRunner{
		binary:         "mvn",
		timeout:        defaultBuildTimeout,
		stderrTail:     defaultStderrTailBytes,
		terminateGrace: defaultTerminateGrace,
	}
}

func (r *mavenRunner) Run(ctx context.Context, projectDir string, argv []string) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := r.runOnce(ctx, projectDir, argv)
		if err == nil {
			return struct{}{}, nil
		}
		var buildErr *BuildError
		if errors.As(err, &buildErr) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(newLaunchBackoff()),
		backoff.WithMaxTries(3),
		backoff.WithMaxElapsedTime(0),
	)
	return err
}

func newLaunchBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.Multiplier = 2.0
	return b
}

func (r *mavenRunner) runOnce(ctx context.Context, projectDir string, argv []string) error {
	runCtx := ctx
	var cancel context.CancelFunc
	if r.timeout > 0 {
		runCtx, cancel = context.WithTimeout(runCtx, r.timeout)
		defer cancel()
	}

	cmd := exec.Command(r.binary, argv...) //nolint:gosec // argv is built from fixed goals plus explicit user configuration.
	cmd.Dir = projectDir
	configureBuildProcessGroup(cmd)

	stderr := newBuildTailBuffer(r.stderrTail)
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		// Launch failure: the binary was not found, or the OS refused to
		// fork/exec. This is the transient case the caller retries.
		return fmt.Errorf("starting %s: %w", r.binary, err)
	}

	waitCh := make(chan error, 1)
	go func() { waitCh <- cmd.Wait() }()

	select {
	case err := <-waitCh:
		if err == nil {
			return nil
		}
		return &BuildError{ExitCode: exitCodeOf(err), Stderr: stderr.String(), Err: err}
	case <-runCtx.Done():
		terminateBuildProcessGroup(cmd, r.terminateGrace)
		<-waitCh
		return &BuildError{ExitCode: -1, Stderr: stderr.String(), Err: runCtx.Err()}
	}
}

func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func configureBuildProcessGroup(cmd *exec.Cmd) {
	if runtime.GOOS == "windows" {
		return
	}
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
		return
	}
	cmd.SysProcAttr.Setpgid = true
}

func terminateBuildProcessGroup(cmd *exec.Cmd, grace time.Duration) {
	if cmd.Process == nil {
		return
	}
	if runtime.GOOS == "windows" {
		_ = cmd.Process.Kill()
		return
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	if grace > 0 {
		time.Sleep(grace)
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}

type buildTailBuffer struct {
	buf *circbuf.Buffer
}

func newBuildTailBuffer(limit int) *buildTailBuffer {
	if limit <= 0 {
		return &buildTailBuffer{}
	}
	b, err := circbuf.NewBuffer(int64(limit))
	if err != nil {
		return &buildTailBuffer{}
	}
	return &buildTailBuffer{buf: b}
}

func (b *buildTailBuffer) Write(p []byte) (int, error) {
	if b.buf == nil {
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *buildTailBuffer) String() string {
	if b.buf == nil {
		return ""
	}
	return b.buf.String()
}
