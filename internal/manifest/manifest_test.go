package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
  "name": "team-pack",
  "displayName": "Team Extension Pack",
  "version": "1.2.3",
  "engines": {
    "vscode": "^1.80.0"
  },
  "extensionPack": [
    "a.b",
    "c.d"
  ]
}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	m, err := Read(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", m.Version)
	assert.Equal(t, []string{"a.b", "c.d"}, m.ExtensionPack)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestRead_InvalidJSON(t *testing.T) {
	_, err := Read(writeManifest(t, "{not json"))
	assert.Error(t, err)
}

func TestRead_MissingVersion(t *testing.T) {
	_, err := Read(writeManifest(t, `{"name": "p", "extensionPack": []}`))
	assert.Error(t, err)
}

func TestRead_NoExtensionPackField(t *testing.T) {
	m, err := Read(writeManifest(t, `{"version": "0.1.0"}`))
	require.NoError(t, err)
	assert.Empty(t, m.ExtensionPack)
}

func TestRender_PreservesUnrelatedFields(t *testing.T) {
	m, err := Read(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	updated, err := m.Render("2.0.0", []string{"c.d", "e.f"})
	require.NoError(t, err)

	out := string(updated)
	assert.Contains(t, out, `"name": "team-pack"`)
	assert.Contains(t, out, `"displayName": "Team Extension Pack"`)
	assert.Contains(t, out, `"vscode": "^1.80.0"`)
	assert.Contains(t, out, `"version": "2.0.0"`)
	assert.Contains(t, out, `"c.d"`)
	assert.Contains(t, out, `"e.f"`)
	assert.NotContains(t, out, `"a.b"`)
}

func TestRender_StableIndentation(t *testing.T) {
	m, err := Read(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	updated, err := m.Render("1.3.0", []string{"a.b", "c.d", "e.f"})
	require.NoError(t, err)

	assert.Contains(t, string(updated), "    \"a.b\",\n    \"c.d\",\n    \"e.f\"\n  ]")
}

func TestRender_KeyTextInsideCommentIsNotEdited(t *testing.T) {
	commented := `{
  /* previously "version": "9.9.9" */
  "name": "team-pack",
  "version": "1.2.3",
  "extensionPack": [
    "a.b" // pinned
  ]
}
`
	m, err := Read(writeManifest(t, commented))
	require.NoError(t, err)

	updated, err := m.Render("1.2.4", []string{"a.b"})
	require.NoError(t, err)

	out := string(updated)
	assert.Contains(t, out, `/* previously "version": "9.9.9" */`)
	assert.Contains(t, out, `"version": "1.2.4"`)
	assert.NotContains(t, out, `"version": "1.2.3"`)
}

func TestRender_CommentedManifestRoundTrip(t *testing.T) {
	commented := `{
  // tooling metadata
  "name": "team-pack",
  "version": "0.2.0",
  "extensionPack": [
    "a.b"
  ]
}
`
	path := writeManifest(t, commented)
	m, err := Read(path)
	require.NoError(t, err)

	require.NoError(t, m.Write("0.3.0", []string{"a.b", "c.d"}))

	reread, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "0.3.0", reread.Version)
	assert.Equal(t, []string{"a.b", "c.d"}, reread.ExtensionPack)
	assert.Contains(t, string(reread.Raw()), "// tooling metadata")
}

func TestRender_AddsMissingExtensionPackField(t *testing.T) {
	m, err := Read(writeManifest(t, "{\n  \"version\": \"0.1.0\"\n}\n"))
	require.NoError(t, err)

	updated, err := m.Render("0.2.0", []string{"a.b"})
	require.NoError(t, err)

	out := string(updated)
	assert.Contains(t, out, `"version": "0.2.0"`)
	assert.Contains(t, out, "\"extensionPack\": [\n    \"a.b\"\n  ]")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(updated, &parsed))
}

func TestRender_EmptyExtensionList(t *testing.T) {
	m, err := Read(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	updated, err := m.Render("2.0.0", nil)
	require.NoError(t, err)
	assert.Contains(t, string(updated), `"extensionPack": []`)
}

func TestWrite_RoundTrip(t *testing.T) {
	path := writeManifest(t, sampleManifest)
	m, err := Read(path)
	require.NoError(t, err)

	require.NoError(t, m.Write("1.3.0", []string{"a.b", "c.d", "e.f"}))
	assert.Equal(t, "1.3.0", m.Version)

	reread, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", reread.Version)
	assert.Equal(t, []string{"a.b", "c.d", "e.f"}, reread.ExtensionPack)
}

func TestReadRecommendations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extensions.json")
	content := `{
  // Workspace extension recommendations.
  "recommendations": [
    "c.d", // keep
    "e.f"
  ]
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	recs, err := ReadRecommendations(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"c.d", "e.f"}, recs)
}

func TestReadRecommendations_MissingFile(t *testing.T) {
	_, err := ReadRecommendations(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestReadRecommendations_NoField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extensions.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	recs, err := ReadRecommendations(path)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
