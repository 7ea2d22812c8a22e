package resolver

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// NoteKind classifies a resolution inconsistency.
type NoteKind string

const (
	NoteUnknownParent    NoteKind = "unknown_parent"
	NoteCycle            NoteKind = "cycle"
	NoteUnknownContainer NoteKind = "unknown_container"
)

// Note describes an inconsistency that was absorbed by a fallback.
type Note struct {
	Entity     string
	Kind       NoteKind
	Detail     string
	Suggestion string // closest known name, empty when none is close enough
}

func (n Note) String() string {
	if n.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %q?)", n.Entity, n.Detail, n.Suggestion)
	}
	return fmt.Sprintf("%s: %s", n.Entity, n.Detail)
}

func unknownParent(entityName, parent string, known []string) Note {
	return Note{
		Entity:     entityName,
		Kind:       NoteUnknownParent,
		Detail:     fmt.Sprintf("parent %q is not a known entity, inheritance stops here", parent),
		Suggestion: closest(parent, known),
	}
}

func unknownContainer(entityName, id string, known []string) Note {
	return Note{
		Entity:     entityName,
		Kind:       NoteUnknownContainer,
		Detail:     fmt.Sprintf("container %q is not in the catalog, using the fallback shape", id),
		Suggestion: closest(id, known),
	}
}

// closest returns the candidate with the smallest edit distance to name, if
// that distance is within the length-scaled limit. Ties keep the earlier
// candidate, so sorted input gives a stable answer.
func closest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		if c == name {
			continue
		}
		dist := levenshtein.ComputeDistance(name, c)
		if dist > suggestionLimit(len(c)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
