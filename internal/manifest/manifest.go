// Package manifest reads and rewrites the extension pack manifest
// (package.json) and the workspace recommendations file
// (.vscode/extensions.json).
//
// The manifest is rewritten with targeted field edits on the original bytes
// so unrelated fields, key order, comments, and indentation survive the
// update.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/conn-castle/pack-release/internal/fsutil"
	"github.com/conn-castle/pack-release/internal/jsonc"
	"github.com/conn-castle/pack-release/internal/messages"
)

const (
	versionField         = "version"
	extensionPackField   = "extensionPack"
	recommendationsField = "recommendations"

	manifestPerm = 0o644
)

// Manifest is the extension pack manifest loaded from disk.
type Manifest struct {
	// Path is the manifest location on disk.
	Path string
	// Version is the current semantic version string.
	Version string
	// ExtensionPack is the current ordered extension identifier list.
	ExtensionPack []string

	raw []byte
}

// Read loads and parses the manifest at path.
func Read(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}
	stripped, err := jsonc.Strip(raw)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestParseFailedFmt, path, err.Error())
	}
	if !gjson.ValidBytes(stripped) {
		return nil, fmt.Errorf(messages.ManifestParseFailedFmt, path, "invalid JSON")
	}

	versionResult := gjson.GetBytes(stripped, versionField)
	if !versionResult.Exists() || strings.TrimSpace(versionResult.String()) == "" {
		return nil, fmt.Errorf(messages.ManifestMissingVersionFmt, path)
	}

	return &Manifest{
		Path:          path,
		Version:       versionResult.String(),
		ExtensionPack: stringList(gjson.GetBytes(stripped, extensionPackField)),
		raw:           raw,
	}, nil
}

// Raw returns the manifest bytes as read from disk.
func (m *Manifest) Raw() []byte {
	return m.raw
}

// Render returns the manifest bytes with the version and extension pack list
// replaced. All other content is preserved byte for byte.
//
// Fields are located on a comment-blanked copy of the bytes and the new
// values are spliced into the original at the located offsets, so quoted key
// text inside comments can never be edited by mistake.
func (m *Manifest) Render(version string, extensions []string) ([]byte, error) {
	updated, found, err := replaceFieldValue(m.raw, versionField, []byte(strconv.Quote(version)))
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestEditFailedFmt, versionField, err)
	}
	if !found {
		return nil, fmt.Errorf(messages.ManifestMissingVersionFmt, m.Path)
	}

	indent := detectIndent(m.raw)
	arrayRaw := []byte(renderStringArray(extensions, indent))
	updated, found, err = replaceFieldValue(updated, extensionPackField, arrayRaw)
	if err == nil && !found {
		updated, err = insertFieldValue(updated, extensionPackField, arrayRaw, indent)
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestEditFailedFmt, extensionPackField, err)
	}
	return updated, nil
}

// replaceFieldValue splices value over the current value of the top-level
// field in raw. jsonc.Strip preserves byte offsets, so a range located on
// the blanked copy is valid in the original bytes.
func replaceFieldValue(raw []byte, field string, value []byte) ([]byte, bool, error) {
	stripped, err := jsonc.Strip(raw)
	if err != nil {
		return nil, false, err
	}
	result := gjson.GetBytes(stripped, field)
	if !result.Exists() {
		return raw, false, nil
	}
	start := result.Index
	if start <= 0 {
		start = bytes.Index(stripped, []byte(result.Raw))
		if start < 0 {
			return nil, false, errors.New(messages.ManifestFieldNotLocatable)
		}
	}
	out := make([]byte, 0, len(raw)-len(result.Raw)+len(value))
	out = append(out, raw[:start]...)
	out = append(out, value...)
	out = append(out, raw[start+len(result.Raw):]...)
	return out, true, nil
}

// insertFieldValue appends the field as the last member of the root object,
// after any trailing comment and before the closing brace.
func insertFieldValue(raw []byte, field string, value []byte, indent string) ([]byte, error) {
	stripped, err := jsonc.Strip(raw)
	if err != nil {
		return nil, err
	}
	end := bytes.LastIndexByte(stripped, '}')
	if end < 0 {
		return nil, errors.New(messages.ManifestNoObjectClose)
	}
	last := end - 1
	for last >= 0 && isJSONSpace(stripped[last]) {
		last--
	}
	if last < 0 {
		return nil, errors.New(messages.ManifestNoObjectClose)
	}

	var b bytes.Buffer
	b.Write(raw[:last+1])
	b.WriteByte(',')
	rest := raw[last+1 : end]
	b.Write(rest)
	if len(rest) == 0 || rest[len(rest)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString(indent)
	b.WriteString(strconv.Quote(field))
	b.WriteString(": ")
	b.Write(value)
	b.WriteByte('\n')
	b.Write(raw[end:])
	return b.Bytes(), nil
}

// isJSONSpace reports whether c is JSON insignificant whitespace.
func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Write renders the updated manifest and writes it to disk atomically,
// then updates the in-memory fields to match.
func (m *Manifest) Write(version string, extensions []string) error {
	updated, err := m.Render(version, extensions)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(m.Path, updated, manifestPerm); err != nil {
		return fmt.Errorf(messages.ManifestWriteFailedFmt, m.Path, err)
	}
	m.raw = updated
	m.Version = version
	m.ExtensionPack = append([]string(nil), extensions...)
	return nil
}

// ReadRecommendations loads the recommended extension identifiers from the
// workspace extensions file, tolerating JSONC comments.
func ReadRecommendations(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.RecommendationsReadFailedFmt, path, err)
	}
	stripped, err := jsonc.Strip(raw)
	if err != nil {
		return nil, fmt.Errorf(messages.RecommendationsParseFailedFmt, path, err.Error())
	}
	if !gjson.ValidBytes(stripped) {
		return nil, fmt.Errorf(messages.RecommendationsParseFailedFmt, path, "invalid JSON")
	}
	return stringList(gjson.GetBytes(stripped, recommendationsField)), nil
}

// stringList converts a gjson array result into a string slice.
func stringList(result gjson.Result) []string {
	if !result.IsArray() {
		return []string{}
	}
	items := result.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}

// renderStringArray renders a pretty-printed JSON string array using the
// manifest's indentation unit. The array sits one level deep, so elements
// are indented two units and the closing bracket one.
func renderStringArray(values []string, indentUnit string) string {
	if len(values) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for i, v := range values {
		b.WriteString(indentUnit)
		b.WriteString(indentUnit)
		b.WriteString(fmt.Sprintf("%q", v))
		if i < len(values)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indentUnit)
	b.WriteString("]")
	return b.String()
}

// detectIndent returns the leading whitespace of the first indented line,
// falling back to two spaces.
func detectIndent(raw []byte) string {
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || len(trimmed) == len(line) {
			continue
		}
		return line[:len(line)-len(trimmed)]
	}
	return "  "
}
