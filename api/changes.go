/*
changes.go - Cell-level schedule comparison

PURPOSE:
  Computes the list of individual cell edits between two schedule grids.
  Used two ways by the draft endpoints:
  - on a successful save, to report what the save changed
  - on a version conflict, to show the client what the server holds that
    its stale draft does not

SEE ALSO:
  - handlers.go: SaveDraft / FinalizeSchedule
*/
package api

import (
	"sort"

	"github.com/darumasanaz/v5-shift-creation-tool/roster"
)

// cellValue returns a pointer form of a cell: nil for unassigned
// (missing row, short row, or empty string), the cell value otherwise.
func cellValue(s roster.Schedule, personID string, dayIndex int) *string {
	cell := s.Cell(personID, dayIndex)
	if cell == roster.Unassigned {
		return nil
	}
	return &cell
}

// ComputeScheduleChanges returns the cell-level differences between two
// schedules, ordered by person id then day index. Rows of differing
// length are compared as padded with unassigned cells.
func ComputeScheduleChanges(previous, updated roster.Schedule) []ScheduleChange {
	ids := make(map[string]bool, len(previous)+len(updated))
	for id := range previous {
		ids[id] = true
	}
	for id := range updated {
		ids[id] = true
	}

	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	changes := []ScheduleChange{}
	for _, id := range sorted {
		maxLen := len(previous[id])
		if len(updated[id]) > maxLen {
			maxLen = len(updated[id])
		}
		for day := 0; day < maxLen; day++ {
			before := cellValue(previous, id, day)
			after := cellValue(updated, id, day)
			if equalCell(before, after) {
				continue
			}
			changes = append(changes, ScheduleChange{
				PersonID: id,
				DayIndex: day,
				Previous: before,
				Updated:  after,
			})
		}
	}
	return changes
}

func equalCell(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
