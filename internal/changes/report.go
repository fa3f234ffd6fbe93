package changes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/pack-release/internal/messages"
	"github.com/conn-castle/pack-release/internal/version"
)

// Kind classifies a single extension's fate across a release.
type Kind int

// Classification kinds.
const (
	// Kept means the extension is present before and after the release.
	Kept Kind = iota
	// Removed means the extension was dropped from the recommended list.
	Removed
	// Added means the extension is newly recommended.
	Added
)

// Entry is one classified extension identifier.
type Entry struct {
	ID   string
	Kind Kind
}

// Report is the classified difference between the current and updated
// extension sets, sorted by identifier.
type Report struct {
	Entries []Entry
}

// Classify compares the current and updated extension sets.
// Every current identifier is kept or removed; every updated identifier not
// in current is added. Entries are sorted by identifier.
func Classify(current, updated []string) Report {
	updatedSet := toSet(updated)
	currentSet := toSet(current)

	entries := make([]Entry, 0, len(currentSet)+len(updatedSet))
	for id := range currentSet {
		kind := Removed
		if _, ok := updatedSet[id]; ok {
			kind = Kept
		}
		entries = append(entries, Entry{ID: id, Kind: kind})
	}
	for id := range updatedSet {
		if _, ok := currentSet[id]; ok {
			continue
		}
		entries = append(entries, Entry{ID: id, Kind: Added})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	return Report{Entries: entries}
}

// HasRemovals reports whether any extension was removed.
func (r Report) HasRemovals() bool {
	return r.hasKind(Removed)
}

// HasAdditions reports whether any extension was added.
func (r Report) HasAdditions() bool {
	return r.hasKind(Added)
}

func (r Report) hasKind(kind Kind) bool {
	for _, e := range r.Entries {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Bump maps the classification to the version bump policy: any removal is
// treated as breaking and bumps major, otherwise any addition bumps minor,
// otherwise patch. Removal-means-breaking is a deliberate policy analogy,
// not strict semantic versioning.
func (r Report) Bump() version.Bump {
	if r.HasRemovals() {
		return version.BumpMajor
	}
	if r.HasAdditions() {
		return version.BumpMinor
	}
	return version.BumpPatch
}

// Body renders the prefixed changelog lines for the commit message body.
// When nothing was added or removed the report carries no version-relevant
// change and the body is empty.
func (r Report) Body() string {
	if !r.HasRemovals() && !r.HasAdditions() {
		return ""
	}
	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		lines = append(lines, fmt.Sprintf(markerFormat(e.Kind), e.ID))
	}
	return strings.Join(lines, "\n")
}

// Colorized renders the same changelog lines for the console, with removed
// entries in red, added in green, and kept dimmed.
func (r Report) Colorized() string {
	if !r.HasRemovals() && !r.HasAdditions() {
		return ""
	}
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	kept := color.New(color.Faint)

	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		line := fmt.Sprintf(markerFormat(e.Kind), e.ID)
		switch e.Kind {
		case Removed:
			line = removed.Sprint(line)
		case Added:
			line = added.Sprint(line)
		case Kept:
			line = kept.Sprint(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// markerFormat returns the line format for a classification kind.
func markerFormat(kind Kind) string {
	switch kind {
	case Removed:
		return messages.ChangeRemovedFmt
	case Added:
		return messages.ChangeAddedFmt
	default:
		return messages.ChangeKeptFmt
	}
}
