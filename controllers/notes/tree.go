package notesController

import (
	"errors"
	"sort"
	"studytrack/models"
	"time"
)

// Sort options for the flat note list, applied before tree grouping
const (
	SortNewest        = "newest"
	SortOldest        = "oldest"
	SortUpdatedNewest = "updated_newest"
	SortUpdatedOldest = "updated_oldest"
)

var (
	ErrParentNotFound = errors.New("parent note not found")
	ErrSelfParent     = errors.New("note cannot reply to itself")
	ErrCrossSection   = errors.New("parent note belongs to a different section")
	ErrParentCycle    = errors.New("reply would create a cycle")
	ErrNotNoteOwner   = errors.New("only the authenticated owner can modify a note")
)

// ParseSortOption maps a query value to a known sort option, defaulting to
// newest first
func ParseSortOption(s string) string {
	switch s {
	case SortOldest, SortUpdatedNewest, SortUpdatedOldest:
		return s
	default:
		return SortNewest
	}
}

// createdKey is the sort key for the created_at orderings. ok is false for
// zero timestamps, which always sort after timestamped notes.
func createdKey(n *models.ShortNote) (time.Time, bool) {
	return n.CreatedAt, !n.CreatedAt.IsZero()
}

// updatedKey prefers updated_at and falls back to created_at, matching how
// the "recently updated" orderings treat never-edited notes
func updatedKey(n *models.ShortNote) (time.Time, bool) {
	if !n.UpdatedAt.IsZero() {
		return n.UpdatedAt, true
	}
	return createdKey(n)
}

// SortNotes returns a sorted copy of the flat note set. The sort is stable:
// equal keys keep their incoming relative order, and notes without a
// timestamp always land after timestamped ones.
func SortNotes(notes []models.ShortNote, sortBy string) []models.ShortNote {
	sorted := make([]models.ShortNote, len(notes))
	copy(sorted, notes)

	key := createdKey
	if sortBy == SortUpdatedNewest || sortBy == SortUpdatedOldest {
		key = updatedKey
	}
	descending := sortBy == SortNewest || sortBy == SortUpdatedNewest

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iOK := key(&sorted[i])
		tj, jOK := key(&sorted[j])

		if iOK != jOK {
			return iOK // timestamped before null, under every option
		}
		if !iOK {
			return false
		}
		if descending {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})

	return sorted
}

// BuildTree groups a flat note set by parent. Key 0 holds the roots; every
// note appears exactly once, under its parent's key. Replies whose parent
// was deleted keep their rows but are unreachable from the roots.
func BuildTree(notes []models.ShortNote) map[uint][]models.ShortNote {
	byParent := make(map[uint][]models.ShortNote)
	for _, n := range notes {
		var key uint
		if n.ParentID != nil {
			key = *n.ParentID
		}
		byParent[key] = append(byParent[key], n)
	}
	return byParent
}

// ValidateParent checks that parentID is a usable reply target for a note in
// sectionID: the parent must exist in the same section, a note cannot parent
// itself, and walking the ancestor chain must not pass through selfID.
// selfID is 0 for a note that does not exist yet.
func ValidateParent(notes []models.ShortNote, selfID, parentID, sectionID uint) error {
	byID := make(map[uint]*models.ShortNote, len(notes))
	for i := range notes {
		byID[notes[i].ID] = &notes[i]
	}

	if selfID != 0 && parentID == selfID {
		return ErrSelfParent
	}

	parent, ok := byID[parentID]
	if !ok {
		return ErrParentNotFound
	}
	if parent.SectionID != sectionID {
		return ErrCrossSection
	}

	// Walk ancestors to the root; the visited set guards against walking a
	// corrupted chain forever.
	visited := make(map[uint]bool)
	for cur := parent; cur != nil && cur.ParentID != nil; {
		next := *cur.ParentID
		if selfID != 0 && next == selfID {
			return ErrParentCycle
		}
		if visited[next] {
			return ErrParentCycle
		}
		visited[next] = true
		cur = byID[next]
	}

	return nil
}

// CanModify reports whether the acting identity may edit, toggle or delete a
// note. Only the registered owner may; guest-authored notes are immutable.
func CanModify(n *models.ShortNote, actorID uint) bool {
	if actorID == 0 || n.IsGuest() {
		return false
	}
	return *n.UserID == actorID
}
