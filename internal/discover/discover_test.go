package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

var packFiles = []string{"package.json", ".vscode/extensions.json", "icon.png", "README.md"}

func TestFiles_PartitionsProjectAndExtensionFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", "{}")
	writeFile(t, root, ".vscode/extensions.json", "{}")
	writeFile(t, root, "README.md", "readme")
	writeFile(t, root, "CHANGELOG.md", "log")
	writeFile(t, root, "scripts/release.sh", "#!/bin/sh")

	part, err := Files(root, ".vscodeignore", packFiles)
	require.NoError(t, err)

	assert.Equal(t, []string{"CHANGELOG.md", "scripts/release.sh"}, part.ProjectFiles)
	assert.Equal(t, []string{"package.json", ".vscode/extensions.json", "README.md"}, part.ExtensionFiles)
}

func TestFiles_MissingExtensionFilesOmitted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", "{}")

	part, err := Files(root, ".vscodeignore", packFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"package.json"}, part.ExtensionFiles)
}

func TestFiles_AppliesIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".vscodeignore", "// build output\nnode_modules\n*.vsix\n\n# tooling\n.github/**\n")
	writeFile(t, root, "node_modules/dep/index.js", "x")
	writeFile(t, root, "pack.vsix", "x")
	writeFile(t, root, ".github/workflows/ci.yml", "x")
	writeFile(t, root, "CHANGELOG.md", "log")

	part, err := Files(root, ".vscodeignore", packFiles)
	require.NoError(t, err)

	assert.Equal(t, []string{".vscodeignore", "CHANGELOG.md"}, part.ProjectFiles)
}

func TestFiles_AlwaysSkipsGitAndLogDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/HEAD", "ref")
	writeFile(t, root, ".pack-release/logs/run.log", "log")
	writeFile(t, root, "CHANGELOG.md", "log")

	part, err := Files(root, ".vscodeignore", packFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"CHANGELOG.md"}, part.ProjectFiles)
}

func TestFiles_NoIgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "CHANGELOG.md", "log")

	part, err := Files(root, ".vscodeignore", packFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"CHANGELOG.md"}, part.ProjectFiles)
}

func TestFiles_BadPatternRejected(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".vscodeignore", "a[\n")

	_, err := Files(root, ".vscodeignore", packFiles)
	assert.Error(t, err)
}

func TestFiles_EmptyTree(t *testing.T) {
	part, err := Files(t.TempDir(), ".vscodeignore", packFiles)
	require.NoError(t, err)
	assert.Empty(t, part.ProjectFiles)
	assert.Empty(t, part.ExtensionFiles)
}
