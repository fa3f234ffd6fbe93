package release

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/conn-castle/pack-release/internal/changes"
	"github.com/conn-castle/pack-release/internal/config"
	"github.com/conn-castle/pack-release/internal/manifest"
	"github.com/conn-castle/pack-release/internal/messages"
	"github.com/conn-castle/pack-release/internal/version"
)

// Preview prints the merged extension list, changelog, and version bump a
// release would produce, without touching the working tree or git.
func Preview(root string, cfg *config.Config, out io.Writer) error {
	m, err := manifest.Read(filepath.Join(root, cfg.Paths.Manifest))
	if err != nil {
		return err
	}
	recommended, err := manifest.ReadRecommendations(filepath.Join(root, cfg.Paths.Recommendations))
	if err != nil {
		return err
	}

	merged := changes.Merge(m.ExtensionPack, recommended)
	report := changes.Classify(m.ExtensionPack, merged)
	bump := report.Bump()
	updated, err := version.Increase(m.Version, bump)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, messages.PreviewVersionFmt, m.Version, updated, string(bump)); err != nil {
		return err
	}
	if colorized := report.Colorized(); colorized != "" {
		_, _ = fmt.Fprintln(out, messages.ChangelogHeader)
		_, _ = fmt.Fprintln(out, colorized)
	} else {
		_, _ = fmt.Fprintln(out, messages.PreviewNoChange)
	}
	if _, err := fmt.Fprintf(out, messages.PreviewExtensionsFmt, len(merged)); err != nil {
		return err
	}
	for _, id := range merged {
		_, _ = fmt.Fprintf(out, messages.ListedPathFmt, id)
	}
	return nil
}
