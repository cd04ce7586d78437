package projectsetup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	called  bool
	argv    []string
	dir     string
	err     error
}

func (f *fakeRunner) Run(_ context.Context, dir string, argv []string) error {
	f.called = true
	f.dir = dir
	f.argv = argv
	return f.err
}

func TestIsSourceProjectDetectsPomXML(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsSourceProject(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte("<project/>"), 0o600))
	assert.True(t, IsSourceProject(dir))
}

func TestPrepareSkipsBuildForUnpackedArtifact(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{}
	s := &Setup{Runner: runner}

	res, err := s.Prepare(context.Background(), dir, Options{})
	require.NoError(t, err)
	assert.False(t, runner.called)
	assert.False(t, res.BuiltProject)
	assert.Equal(t, dir, res.ResourceRoot)
}

func TestPrepareBuildsSourceProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte("<project/>"), 0o600))
	runner := &fakeRunner{}
	s := &Setup{Runner: runner}

	res, err := s.Prepare(context.Background(), dir, Options{ExtraGoals: []string{"verify"}})
	require.NoError(t, err)
	assert.True(t, runner.called)
	assert.True(t, res.BuiltProject)
	assert.Contains(t, runner.argv, "verify")
}

func TestPrepareReturnsBuildErrorOnFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte("<project/>"), 0o600))
	runner := &fakeRunner{err: &BuildError{ExitCode: 1}}
	s := &Setup{Runner: runner}

	_, err := s.Prepare(context.Background(), dir, Options{})
	assert.Error(t, err)
}

func TestResolveInitialResourceRootPrefersConventionalLocation(t *testing.T) {
	dir := t.TempDir()
	resources := filepath.Join(dir, "src", "main", "resources")
	require.NoError(t, os.MkdirAll(resources, 0o750))

	assert.Equal(t, resources, resolveInitialResourceRoot(dir))
}

func TestResolveInitialResourceRootFallsBackToRoot(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, resolveInitialResourceRoot(dir))
}
