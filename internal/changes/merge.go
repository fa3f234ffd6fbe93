// Package changes computes the merged extension list and classifies the
// difference between the current and updated extension sets.
package changes

import "sort"

// Merge returns the updated extension list: every current extension that is
// still recommended, plus every newly recommended extension, sorted
// lexicographically. Extensions present in current but absent from
// recommended are dropped. Duplicate identifiers are collapsed.
func Merge(current, recommended []string) []string {
	recommendedSet := toSet(recommended)
	currentSet := toSet(current)

	merged := make([]string, 0, len(recommended))
	seen := make(map[string]struct{}, len(recommended))
	for _, id := range current {
		if _, ok := recommendedSet[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}
	for _, id := range recommended {
		if _, ok := currentSet[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}

	sort.Strings(merged)
	return merged
}

// toSet builds a membership set from a list of identifiers.
func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
