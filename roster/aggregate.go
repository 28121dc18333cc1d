/*
aggregate.go - Actual staffing aggregation

PURPOSE:
  Walks a candidate schedule and counts, per day and bucket, how many
  staff are actually present. This is the "actual" side that shortage.go
  compares against the need template.

DAY ATTRIBUTION OF OVERNIGHT COVERAGE:
  Bucket "0-7" of calendar day d means day d's civil 0:00-7:00, which only
  a night shift started on day d-1 can staff. So when a shift's own-day
  coverage set contains "0-7", the aggregator books that count onto day+1,
  not onto the day the shift starts. Next-day spillover buckets (a shift
  running past 7:00 the next morning) are booked onto day+1 as well.
  Coverage falling past the end of the period is dropped.

  Day 1's "0-7" window has no day-0 row to derive from; it is seeded with
  the distinct person ids of the (sanitized) night-carry map - staff who
  are finishing a night shift that began before the period.

GRACEFUL DEGRADATION:
  Cells holding the paid-leave sentinel, an empty string, or a code not in
  the catalogue (manual edits may transiently contain free text)
  contribute no coverage and are not an error.

SEE ALSO:
  - coverage.go: Per-shift coverage sets and carry sanitation
  - shortage.go: Need vs. actual comparison
*/
package roster

// ActualStaffing maps day (1-based) -> bucket label -> staff count.
type ActualStaffing map[int]map[string]int

// AggregateCoverage counts actual staffing per day and bucket for the
// given schedule. people is the current roster, used to sanitize the
// night-carry map before seeding day 1; carry may be nil.
func AggregateCoverage(mapper *CoverageMapper, schedule Schedule, days int, people []Person, carry NightCarryMap) (ActualStaffing, error) {
	if days <= 0 {
		return nil, ErrNoDays
	}

	actual := make(ActualStaffing, days)
	for d := 1; d <= days; d++ {
		counts := make(map[string]int, len(CanonicalBuckets))
		for _, b := range CanonicalBuckets {
			counts[b.Label] = 0
		}
		actual[d] = counts
	}

	for personID := range schedule {
		for idx := 0; idx < days; idx++ {
			cell := schedule.Cell(personID, idx)
			if cell == Unassigned || cell == PaidLeave {
				continue
			}
			if _, known := mapper.Shift(cell); !known {
				continue
			}

			day := idx + 1
			for _, b := range mapper.Coverage(cell) {
				if b.IsOvernight() {
					// Civil 0:00-7:00 belongs to the following day.
					if day+1 <= days {
						actual[day+1][b.Label]++
					}
					continue
				}
				actual[day][b.Label]++
			}
			for _, b := range mapper.NextDaySpillover(cell) {
				if day+1 <= days {
					actual[day+1][b.Label]++
				}
			}
		}
	}

	// Seed day 1's early morning from the previous period's night shifts.
	if len(carry) > 0 {
		clean := mapper.SanitizeNightCarry(carry, people)
		seen := make(map[string]bool)
		for _, ids := range clean {
			for _, id := range ids {
				if !seen[id] {
					seen[id] = true
					actual[1][BucketEarlyMorning]++
				}
			}
		}
	}

	return actual, nil
}
