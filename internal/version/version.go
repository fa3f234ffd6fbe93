// Package version implements the release version bump policy on top of
// semantic version triples.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/pack-release/internal/messages"
)

// Bump identifies which component of a semantic version to increase.
type Bump string

// Bump levels, ordered from most to least significant.
const (
	BumpMajor Bump = "major"
	BumpMinor Bump = "minor"
	BumpPatch Bump = "patch"
)

// Increase returns current with the given component bumped.
// Major and minor bumps reset the less significant components to zero.
// Args: current is an X.Y.Z version string, bump selects the component.
// Returns: the bumped version string, or an error for an unparsable version
// or unknown bump level.
func Increase(current string, bump Bump) (string, error) {
	v, err := semver.StrictNewVersion(current)
	if err != nil {
		return "", fmt.Errorf(messages.VersionParseFailedFmt, current, err)
	}
	var next semver.Version
	switch bump {
	case BumpMajor:
		next = v.IncMajor()
	case BumpMinor:
		next = v.IncMinor()
	case BumpPatch:
		next = v.IncPatch()
	default:
		return "", fmt.Errorf(messages.VersionUnknownBumpFmt, string(bump))
	}
	return next.String(), nil
}

// Validate reports an error when current is not a strict X.Y.Z version.
func Validate(current string) error {
	if _, err := semver.StrictNewVersion(current); err != nil {
		return fmt.Errorf(messages.VersionParseFailedFmt, current, err)
	}
	return nil
}
