package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "packrel"
	// RootShort is the short description for the root command.
	RootShort = "Extension pack release CLI"
	RootLong  = "packrel orchestrates extension pack releases: it merges the recommended\nextension list into the pack manifest, bumps the version to match the\nchange, and commits project and extension-pack files separately."

	RootFlagConfig  = "Path to the pack-release.toml config file"
	RootFlagVerbose = "Log verbose detail to the console and the run log"
	RootFlagYes     = "Answer yes to all confirmation prompts"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ReleaseUse is the release command name.
	ReleaseUse   = "release"
	ReleaseShort = "Run the extension pack release workflow"
	ReleaseLong  = "Compute the merged extension list and version bump, then stage, confirm,\nand commit project files and extension pack files as separate commits."

	// PreviewUse is the preview command name.
	PreviewUse   = "preview"
	PreviewShort = "Preview the changelog and version bump without committing"

	// PromptNoDefaultFmt formats yes/no prompts with no as default.
	PromptNoDefaultFmt   = "%s [y/N]: "
	PromptNonInteractive = "confirmation declined: stdin is not an interactive terminal (re-run with --yes to skip prompts)"

	AbortedNotice = "Aborted. Staged changes were restored; nothing was committed."
	FatalErrorFmt = "packrel: %v\n"
)
