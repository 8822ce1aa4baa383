package notesController

import (
	"studytrack/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(id uint, sectionID uint, parentID *uint, created time.Time) models.ShortNote {
	n := models.ShortNote{SectionID: sectionID, ParentID: parentID, Text: "note"}
	n.ID = id
	n.CreatedAt = created
	return n
}

func ptr(v uint) *uint { return &v }

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBuildTreeBijection(t *testing.T) {
	notes := []models.ShortNote{
		note(1, 7, nil, base),
		note(2, 7, ptr(1), base.Add(time.Minute)),
		note(3, 7, ptr(1), base.Add(2*time.Minute)),
		note(4, 7, ptr(2), base.Add(3*time.Minute)),
		note(5, 7, nil, base.Add(4*time.Minute)),
	}

	tree := BuildTree(notes)

	assert.Len(t, tree[0], 2) // roots
	assert.Len(t, tree[1], 2)
	assert.Len(t, tree[2], 1)

	// Every note appears exactly once across all buckets
	seen := map[uint]int{}
	total := 0
	for _, children := range tree {
		for _, c := range children {
			seen[c.ID]++
			total++
		}
	}
	assert.Equal(t, len(notes), total)
	for id, count := range seen {
		assert.Equal(t, 1, count, "note %d duplicated", id)
	}
}

func TestBuildTreeOrphanedRepliesUnreachable(t *testing.T) {
	// Parent 1 was deleted; its reply keeps its row but is not a root
	notes := []models.ShortNote{
		note(2, 7, ptr(1), base),
		note(3, 7, nil, base),
	}

	tree := BuildTree(notes)

	assert.Len(t, tree[0], 1)
	assert.Equal(t, uint(3), tree[0][0].ID)
	assert.Len(t, tree[1], 1)
}

func TestSortNotesNewestFirst(t *testing.T) {
	notes := []models.ShortNote{
		note(1, 7, nil, base),
		note(2, 7, nil, base.Add(time.Hour)),
		note(3, 7, nil, base.Add(time.Minute)),
	}

	sorted := SortNotes(notes, SortNewest)

	assert.Equal(t, uint(2), sorted[0].ID)
	assert.Equal(t, uint(3), sorted[1].ID)
	assert.Equal(t, uint(1), sorted[2].ID)
}

func TestSortNotesOldestFirst(t *testing.T) {
	notes := []models.ShortNote{
		note(2, 7, nil, base.Add(time.Hour)),
		note(1, 7, nil, base),
	}

	sorted := SortNotes(notes, SortOldest)

	assert.Equal(t, uint(1), sorted[0].ID)
	assert.Equal(t, uint(2), sorted[1].ID)
}

func TestSortNotesNullTimestampsLast(t *testing.T) {
	for _, opt := range []string{SortNewest, SortOldest, SortUpdatedNewest, SortUpdatedOldest} {
		notes := []models.ShortNote{
			note(1, 7, nil, time.Time{}),
			note(2, 7, nil, base),
			note(3, 7, nil, time.Time{}),
		}

		sorted := SortNotes(notes, opt)

		require.Len(t, sorted, 3)
		assert.Equal(t, uint(2), sorted[0].ID, "option %s", opt)
		// Null-timestamped notes keep their relative order
		assert.Equal(t, uint(1), sorted[1].ID, "option %s", opt)
		assert.Equal(t, uint(3), sorted[2].ID, "option %s", opt)
	}
}

func TestSortNotesStableOnEqualKeys(t *testing.T) {
	notes := []models.ShortNote{
		note(1, 7, nil, base),
		note(2, 7, nil, base),
		note(3, 7, nil, base),
	}

	sorted := SortNotes(notes, SortNewest)

	assert.Equal(t, uint(1), sorted[0].ID)
	assert.Equal(t, uint(2), sorted[1].ID)
	assert.Equal(t, uint(3), sorted[2].ID)
}

func TestSortNotesUpdatedFallsBackToCreated(t *testing.T) {
	edited := note(1, 7, nil, base)
	edited.UpdatedAt = base.Add(2 * time.Hour)
	fresh := note(2, 7, nil, base.Add(time.Hour)) // never edited

	sorted := SortNotes([]models.ShortNote{fresh, edited}, SortUpdatedNewest)

	assert.Equal(t, uint(1), sorted[0].ID)
	assert.Equal(t, uint(2), sorted[1].ID)
}

func TestSortNotesDoesNotMutateInput(t *testing.T) {
	notes := []models.ShortNote{
		note(1, 7, nil, base),
		note(2, 7, nil, base.Add(time.Hour)),
	}

	_ = SortNotes(notes, SortNewest)

	assert.Equal(t, uint(1), notes[0].ID)
}

func TestValidateParent(t *testing.T) {
	notes := []models.ShortNote{
		note(1, 7, nil, base),
		note(2, 7, ptr(1), base),
		note(3, 8, nil, base),
	}

	assert.NoError(t, ValidateParent(notes, 0, 1, 7))
	assert.NoError(t, ValidateParent(notes, 0, 2, 7))

	assert.ErrorIs(t, ValidateParent(notes, 0, 99, 7), ErrParentNotFound)
	assert.ErrorIs(t, ValidateParent(notes, 2, 2, 7), ErrSelfParent)
	assert.ErrorIs(t, ValidateParent(notes, 0, 3, 7), ErrCrossSection)

	// Re-parenting 1 under its own reply would loop 1 -> 2 -> 1
	assert.ErrorIs(t, ValidateParent(notes, 1, 2, 7), ErrParentCycle)
}

func TestCanModify(t *testing.T) {
	owned := note(1, 7, nil, base)
	owned.UserID = ptr(42)

	guest := note(2, 7, ptr(1), base)
	guest.GuestName = "Ann"

	assert.True(t, CanModify(&owned, 42))
	assert.False(t, CanModify(&owned, 43))
	assert.False(t, CanModify(&owned, 0))
	assert.False(t, CanModify(&guest, 42), "guest notes are immutable")
}

func TestGuestAuthorLabel(t *testing.T) {
	guest := note(1, 7, nil, base)
	guest.GuestName = "Ann"

	assert.Equal(t, "Ann (guest)", guest.AuthorLabel(""))

	owned := note(2, 7, nil, base)
	owned.UserID = ptr(1)
	assert.Equal(t, "Bob", owned.AuthorLabel("Bob"))
}
