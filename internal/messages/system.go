package messages

// System messages for internal operations.
const (
	// ConfigMissingFileFmt formats config read errors.
	ConfigMissingFileFmt           = "read config %s: %w"
	ConfigInvalidTOMLFmt           = "parse config %s: %w"
	ConfigResolveHomeFmt           = "resolve home dir for %s: %w"
	ConfigEmptyManifestPath        = "config: manifest path must not be empty"
	ConfigEmptyRecommendationsPath = "config: recommendations path must not be empty"
	ConfigNoExtensionFiles         = "config: extension-files must list at least one path"

	// ManifestReadFailedFmt formats manifest read errors.
	ManifestReadFailedFmt     = "read manifest %s: %w"
	ManifestParseFailedFmt    = "parse manifest %s: %s"
	ManifestMissingVersionFmt = "manifest %s has no version field"
	ManifestWriteFailedFmt    = "write manifest %s: %w"
	ManifestEditFailedFmt     = "update manifest field %s: %w"
	ManifestFieldNotLocatable = "field value not locatable"
	ManifestNoObjectClose     = "no closing brace for root object"

	// RecommendationsReadFailedFmt formats recommendations read errors.
	RecommendationsReadFailedFmt  = "read recommendations %s: %w"
	RecommendationsParseFailedFmt = "parse recommendations %s: %s"

	// VersionParseFailedFmt formats semantic version parse errors.
	VersionParseFailedFmt = "parse version %q: %w"
	VersionUnknownBumpFmt = "unknown version bump %q"

	// GitCommandFailedFmt formats git command failures with output.
	GitCommandFailedFmt   = "run %q: %w (output: %s)"
	GitEmptyCommitMessage = "git: commit message must not be empty"

	// DiscoverWalkFailedFmt formats working tree walk errors.
	DiscoverWalkFailedFmt = "walk working tree %s: %w"
	DiscoverIgnoreReadFmt = "read ignore file %s: %w"
	DiscoverBadPatternFmt = "invalid ignore pattern %q: %w"

	// RunlogCreateDirFmt formats run log directory creation errors.
	RunlogCreateDirFmt = "create run log dir %s: %w"
	RunlogOpenFileFmt  = "open run log %s: %w"

	// FsutilCreateTempFileFmt formats temp file creation errors.
	FsutilCreateTempFileFmt = "create temp file for %s: %w"
	FsutilSetPermissionsFmt = "set permissions for %s: %w"
	FsutilWriteTempFileFmt  = "write temp file for %s: %w"
	FsutilSyncTempFileFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt  = "close temp file for %s: %w"
	FsutilRenameTempFileFmt = "rename temp file for %s: %w"

	// JSONCUnterminatedString indicates a string literal without a closing quote.
	JSONCUnterminatedString  = "unterminated string literal"
	JSONCUnterminatedComment = "unterminated block comment"
)
