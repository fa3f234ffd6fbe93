package gitcli

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSystem records git invocations and serves canned outputs.
type stubSystem struct {
	calls   [][]string
	dirs    []string
	outputs map[string]string
	errs    map[string]error
}

func newStubSystem() *stubSystem {
	return &stubSystem{outputs: map[string]string{}, errs: map[string]error{}}
}

func (s *stubSystem) Output(dir string, args ...string) (string, error) {
	s.calls = append(s.calls, args)
	s.dirs = append(s.dirs, dir)
	key := strings.Join(args, " ")
	return s.outputs[key], s.errs[key]
}

func (s *stubSystem) call(i int) string {
	return strings.Join(s.calls[i], " ")
}

func TestAdd(t *testing.T) {
	sys := newStubSystem()
	c := New(sys, "/repo")

	require.NoError(t, c.Add("package.json", "README.md"))
	require.Len(t, sys.calls, 1)
	assert.Equal(t, "add -- package.json README.md", sys.call(0))
	assert.Equal(t, "/repo", sys.dirs[0])
}

func TestAdd_NoPathsIsNoop(t *testing.T) {
	sys := newStubSystem()
	c := New(sys, "/repo")

	require.NoError(t, c.Add())
	assert.Empty(t, sys.calls)
}

func TestAddAll(t *testing.T) {
	sys := newStubSystem()
	c := New(sys, "/repo")

	require.NoError(t, c.AddAll())
	assert.Equal(t, "add .", sys.call(0))
}

func TestRestoreStaged(t *testing.T) {
	sys := newStubSystem()
	c := New(sys, "/repo")

	require.NoError(t, c.RestoreStaged())
	assert.Equal(t, "restore --staged .", sys.call(0))
}

func TestDiffCachedNames(t *testing.T) {
	sys := newStubSystem()
	sys.outputs["diff --name-only --cached"] = "package.json\n.vscode/extensions.json\n\n"
	c := New(sys, "/repo")

	names, err := c.DiffCachedNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"package.json", ".vscode/extensions.json"}, names)
}

func TestDiffCachedNames_Empty(t *testing.T) {
	sys := newStubSystem()
	c := New(sys, "/repo")

	names, err := c.DiffCachedNames()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCommit(t *testing.T) {
	sys := newStubSystem()
	c := New(sys, "/repo")

	require.NoError(t, c.Commit("Release extension pack v1.3.0"))
	require.Len(t, sys.calls, 1)
	assert.Equal(t, []string{"commit", "-m", "Release extension pack v1.3.0"}, sys.calls[0])
}

func TestCommit_EmptyMessageRejected(t *testing.T) {
	sys := newStubSystem()
	c := New(sys, "/repo")

	assert.Error(t, c.Commit("  \n"))
	assert.Empty(t, sys.calls)
}

func TestRun_WrapsFailureWithCommandAndOutput(t *testing.T) {
	sys := newStubSystem()
	sys.errs["add ."] = errors.New("exit status 128")
	sys.outputs["add ."] = "fatal: not a git repository\n"
	c := New(sys, "/repo")

	err := c.AddAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"git add ."`)
	assert.Contains(t, err.Error(), "exit status 128")
	assert.Contains(t, err.Error(), "not a git repository")
}
