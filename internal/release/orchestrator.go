// Package release implements the extension pack release workflow: a strictly
// sequential pipeline that discovers working tree files, computes the merged
// extension list and version bump, and commits project files separately from
// extension pack files, confirming each commit with the user.
package release

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/pack-release/internal/changes"
	"github.com/conn-castle/pack-release/internal/config"
	"github.com/conn-castle/pack-release/internal/discover"
	"github.com/conn-castle/pack-release/internal/gitcli"
	"github.com/conn-castle/pack-release/internal/manifest"
	"github.com/conn-castle/pack-release/internal/messages"
	"github.com/conn-castle/pack-release/internal/runlog"
	"github.com/conn-castle/pack-release/internal/version"
)

// ErrAborted reports a user-declined confirmation. It is a clean abort, not
// a failure: staged state has been restored and the process exits zero.
var ErrAborted = errors.New("release aborted by user")

// Descriptor carries the release state, mutated in place as each workflow
// stage completes.
type Descriptor struct {
	ExtensionFilePaths []string
	ManifestPath       string
	Manifest           *manifest.Manifest
	CurrentVersion     string
	UpdatedVersion     string
	CurrentExtensions  []string
	UpdatedExtensions  []string
	Message            string
}

// Orchestrator runs the release workflow stages in order.
type Orchestrator struct {
	root    string
	cfg     *config.Config
	git     *gitcli.Client
	log     *runlog.Log
	confirm Confirmer
	out     io.Writer

	desc           Descriptor
	projectFiles   []string
	report         changes.Report
	manifestBefore []byte
}

// New creates an Orchestrator for the repository at root.
func New(root string, cfg *config.Config, git *gitcli.Client, log *runlog.Log, confirm Confirmer, out io.Writer) *Orchestrator {
	return &Orchestrator{root: root, cfg: cfg, git: git, log: log, confirm: confirm, out: out}
}

// Descriptor returns the release state accumulated so far.
func (o *Orchestrator) Descriptor() Descriptor {
	return o.desc
}

// Run executes the workflow stages strictly in order. Any failure aborts the
// whole run; a declined confirmation returns ErrAborted after restoring the
// staging area.
func (o *Orchestrator) Run() error {
	if err := o.discoverFiles(); err != nil {
		return fmt.Errorf(messages.ReleaseDiscoverFailedFmt, err)
	}
	if err := o.compute(); err != nil {
		return fmt.Errorf(messages.ReleaseComputeFailedFmt, err)
	}
	if err := o.enrich(); err != nil {
		return fmt.Errorf(messages.ReleaseEnrichFailedFmt, err)
	}
	if err := o.commitProjectFiles(); err != nil {
		if errors.Is(err, ErrAborted) {
			return err
		}
		return fmt.Errorf(messages.ReleaseCommitProjectFmt, err)
	}
	if err := o.applyManifestUpdate(); err != nil {
		return fmt.Errorf(messages.ReleaseApplyManifestFmt, err)
	}
	if err := o.commitExtensionFiles(); err != nil {
		if errors.Is(err, ErrAborted) {
			return err
		}
		return fmt.Errorf(messages.ReleaseCommitPackFmt, err)
	}
	// Publishing to the marketplace is reserved; see Publish.
	return nil
}

// discoverFiles partitions the working tree into project files and the
// declared extension pack files.
func (o *Orchestrator) discoverFiles() error {
	part, err := discover.Files(o.root, o.cfg.Paths.Ignore, o.cfg.Paths.ExtensionFiles)
	if err != nil {
		return err
	}
	o.projectFiles = part.ProjectFiles
	o.desc.ExtensionFilePaths = part.ExtensionFiles
	o.log.Detailf("discovered %d project files and %d extension files", len(part.ProjectFiles), len(part.ExtensionFiles))
	return nil
}

// compute loads the manifest and recommendations, merges the extension list,
// classifies the change, and resolves the version bump.
func (o *Orchestrator) compute() error {
	manifestPath := filepath.Join(o.root, o.cfg.Paths.Manifest)
	m, err := manifest.Read(manifestPath)
	if err != nil {
		return err
	}
	recommended, err := manifest.ReadRecommendations(filepath.Join(o.root, o.cfg.Paths.Recommendations))
	if err != nil {
		return err
	}

	o.desc.ManifestPath = manifestPath
	o.desc.Manifest = m
	o.desc.CurrentVersion = m.Version
	o.desc.CurrentExtensions = append([]string(nil), m.ExtensionPack...)
	o.desc.UpdatedExtensions = changes.Merge(m.ExtensionPack, recommended)
	o.report = changes.Classify(m.ExtensionPack, o.desc.UpdatedExtensions)
	o.manifestBefore = append([]byte(nil), m.Raw()...)

	bump := o.report.Bump()
	o.desc.UpdatedVersion, err = version.Increase(m.Version, bump)
	if err != nil {
		return err
	}
	o.log.Detailf("version %s -> %s (%s bump)", o.desc.CurrentVersion, o.desc.UpdatedVersion, bump)
	return nil
}

// enrich stages the extension files to inspect which of them actually
// changed, appends a files-updated listing for any non-manifest change, and
// always unstages before the next stage.
func (o *Orchestrator) enrich() error {
	if len(o.desc.ExtensionFilePaths) == 0 {
		return nil
	}
	manifestRel := filepath.ToSlash(o.cfg.Paths.Manifest)
	return o.git.WithStaged(o.desc.ExtensionFilePaths, func() error {
		staged, err := o.git.DiffCachedNames()
		if err != nil {
			return err
		}
		var updated []string
		for _, name := range staged {
			if name != manifestRel {
				updated = append(updated, name)
			}
		}
		if len(updated) == 0 {
			return nil
		}
		o.desc.Message = listedBlock(messages.FilesUpdatedHeader, updated)
		o.log.Detailf("%d extension files changed besides the manifest", len(updated))
		return nil
	})
}

// commitProjectFiles stages everything outside the extension file list and
// commits it as its own change, after confirmation.
func (o *Orchestrator) commitProjectFiles() error {
	if err := o.git.Add(o.projectFiles...); err != nil {
		return err
	}
	staged, err := o.git.DiffCachedNames()
	if err != nil {
		return err
	}
	if len(staged) == 0 {
		o.log.Infof(messages.ReleaseNoProjectChanges)
		return nil
	}

	message := messages.ProjectCommitSubject + "\n\n" + listedBlock("", staged)
	o.showCommit(messages.ReleaseProjectCommitHeader, message)
	return o.confirmAndCommit(messages.ReleaseConfirmProjectCommit, message)
}

// applyManifestUpdate writes the updated manifest when the merged extension
// list differs from the current one or the accumulated message is non-empty.
func (o *Orchestrator) applyManifestUpdate() error {
	if !listChanged(o.desc.CurrentExtensions, o.desc.UpdatedExtensions) && o.desc.Message == "" {
		o.log.Infof(messages.ReleaseNoChangesNeeded)
		return nil
	}
	if err := o.desc.Manifest.Write(o.desc.UpdatedVersion, o.desc.UpdatedExtensions); err != nil {
		return err
	}
	o.log.Infof(messages.ReleaseManifestWrittenFmt, o.cfg.Paths.Manifest, o.desc.UpdatedVersion, len(o.desc.UpdatedExtensions))
	return nil
}

// commitExtensionFiles stages everything remaining, shows the changelog and
// manifest diff, and commits the extension pack update after confirmation.
func (o *Orchestrator) commitExtensionFiles() error {
	if err := o.git.AddAll(); err != nil {
		return err
	}
	staged, err := o.git.DiffCachedNames()
	if err != nil {
		return err
	}
	if len(staged) == 0 {
		o.log.Infof(messages.ReleaseNoPackChanges)
		return nil
	}

	message := o.packCommitMessage()
	o.showCommit(messages.ReleasePackCommitHeader, message)
	if colorized := o.report.Colorized(); colorized != "" {
		_, _ = fmt.Fprintln(o.out, messages.ChangelogHeader)
		_, _ = fmt.Fprintln(o.out, colorized)
	}
	if diff := o.manifestDiff(); diff != "" {
		_, _ = fmt.Fprintln(o.out, messages.ReleaseManifestDiffHeader)
		_, _ = fmt.Fprint(o.out, diff)
	}
	return o.confirmAndCommit(messages.ReleaseConfirmPackCommit, message)
}

// confirmAndCommit prompts for confirmation, restoring the staging area and
// aborting cleanly on decline.
func (o *Orchestrator) confirmAndCommit(prompt, message string) error {
	ok, err := o.confirm.Confirm(prompt)
	if err != nil {
		return err
	}
	if !ok {
		if err := o.git.RestoreStaged(); err != nil {
			return err
		}
		return ErrAborted
	}
	return o.git.Commit(message)
}

// packCommitMessage builds the final extension pack commit message with the
// resolved version, the changelog body, and any files-updated listing.
func (o *Orchestrator) packCommitMessage() string {
	parts := []string{fmt.Sprintf(messages.PackCommitSubjectFmt, o.desc.UpdatedVersion)}
	if body := o.report.Body(); body != "" {
		parts = append(parts, messages.ChangelogHeader+"\n"+body)
	}
	if o.desc.Message != "" {
		parts = append(parts, o.desc.Message)
	}
	return strings.Join(parts, "\n\n")
}

// showCommit prints a commit message preview under a bold header.
func (o *Orchestrator) showCommit(header, message string) {
	_, _ = fmt.Fprintln(o.out, color.New(color.Bold).Sprint(header))
	_, _ = fmt.Fprintln(o.out, message)
	_, _ = fmt.Fprintln(o.out)
}

// listedBlock renders an optional header plus indented path lines.
func listedBlock(header string, paths []string) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n")
	}
	for _, path := range paths {
		b.WriteString(fmt.Sprintf(messages.ListedPathFmt, path))
	}
	return strings.TrimRight(b.String(), "\n")
}

// listChanged reports whether the two extension lists differ as sets.
func listChanged(current, updated []string) bool {
	a := append([]string(nil), current...)
	b := append([]string(nil), updated...)
	slices.Sort(a)
	slices.Sort(b)
	a = slices.Compact(a)
	b = slices.Compact(b)
	return !slices.Equal(a, b)
}
