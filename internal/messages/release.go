package messages

// Release workflow messages.
const (
	// ReleaseDiscoverFailedFmt formats file discovery errors.
	ReleaseDiscoverFailedFmt = "discover working tree files: %w"
	ReleaseComputeFailedFmt  = "compute extension pack update: %w"
	ReleaseEnrichFailedFmt   = "inspect extension file changes: %w"
	ReleaseCommitProjectFmt  = "commit project files: %w"
	ReleaseApplyManifestFmt  = "apply manifest update: %w"
	ReleaseCommitPackFmt     = "commit extension pack files: %w"

	ReleaseNoProjectChanges   = "No project file changes to commit."
	ReleaseNoPackChanges      = "No extension pack changes to commit."
	ReleaseNoChangesNeeded    = "No changes needed; manifest left untouched."
	ReleaseManifestWrittenFmt = "Wrote %s (version %s, %d extensions)."
	// ReleaseFailed is the run log line for a fatal workflow error.
	ReleaseFailed = "release failed"

	ReleaseProjectCommitHeader  = "Project file commit:"
	ReleasePackCommitHeader     = "Extension pack commit:"
	ReleaseManifestDiffHeader   = "Manifest changes:"
	ReleaseConfirmProjectCommit = "Commit these project file changes?"
	ReleaseConfirmPackCommit    = "Commit the extension pack update?"

	// ProjectCommitSubject is the subject line for the project file commit.
	ProjectCommitSubject = "Update project files"
	// PackCommitSubjectFmt formats the extension pack commit subject with the resolved version.
	PackCommitSubjectFmt = "Release extension pack v%s"

	ChangelogHeader    = "Extensions:"
	FilesUpdatedHeader = "Files updated:"
	ListedPathFmt      = "  %s\n"

	// ChangeKeptFmt formats a kept extension line.
	ChangeKeptFmt    = "  ~ %s"
	ChangeRemovedFmt = "  - %s"
	ChangeAddedFmt   = "  + %s"

	PreviewVersionFmt    = "Version: %s -> %s (%s bump)\n"
	PreviewNoChange      = "No extension changes; a release would bump the patch version only."
	PreviewExtensionsFmt = "Extensions after merge (%d):\n"

	// PublishNotImplemented is the fixed error for the reserved publish stage.
	PublishNotImplemented = "publish is not implemented"
)
