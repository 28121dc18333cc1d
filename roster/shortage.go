/*
shortage.go - Shortage/excess calculation and dual-source reconciliation

PURPOSE:
  Compares required staffing (need.go) against actual staffing
  (aggregate.go) per day and bucket, and flattens the result into the
  shortage list shown in reports.

INVARIANTS:
  For every day/bucket entry:
      shortage = max(need - actual, 0)
      excess   = max(actual - need, 0)
      shortage * excess == 0
      actual - need == excess - shortage

DUAL-SOURCE RECONCILIATION:
  A breakdown may arrive precomputed (the assignment producer returns one
  with its schedule) while the client recomputes buckets locally after a
  manual edit. Two explicit merge policies keep the sources from fighting:

  MergeBreakdowns(external, computed):
    Per (day, bucket), an external entry wins outright; computed values
    only fill buckets the external source did not cover.

  MergeShortages(reported, recomputed):
    When the same (day, bucket) appears in a raw shortage list and in a
    recomputed breakdown, the LARGER shortage wins - an externally
    reported shortage is never silently shrunk.

ORDERING:
  The flattened list is ordered by day, then by civil bucket start time
  ("0-7" first), then lexicographically by bucket label.

SEE ALSO:
  - need.go, aggregate.go: The two inputs
  - api/dto.go: Serialized with keys day / time_range / shortage
*/
package roster

import "sort"

// ComputeBreakdown builds the need/actual/shortage comparison for every
// day and bucket of the period.
func ComputeBreakdown(template NeedTemplate, dayTypes []string, actual ActualStaffing, days int) (CoverageBreakdown, error) {
	if days <= 0 {
		return nil, ErrNoDays
	}

	needByDay := NeedByDay(template, dayTypes, days)

	breakdown := make(CoverageBreakdown, days)
	for d := 1; d <= days; d++ {
		row := make(map[string]CoverageInfo, len(CanonicalBuckets))
		for _, b := range CanonicalBuckets {
			need := needByDay[d][b.Label]
			got := 0
			if counts, ok := actual[d]; ok {
				got = counts[b.Label]
			}
			shortage := need - got
			if shortage < 0 {
				shortage = 0
			}
			row[b.Label] = CoverageInfo{Need: need, Actual: got, Shortage: shortage}
		}
		breakdown[d] = row
	}
	return breakdown, nil
}

// MergeBreakdowns overlays an externally supplied breakdown on a freshly
// computed one. External entries take precedence per (day, bucket);
// computed entries only fill buckets the external source did not cover.
// Neither input is modified.
func MergeBreakdowns(external, computed CoverageBreakdown) CoverageBreakdown {
	merged := make(CoverageBreakdown, len(computed))
	for day, row := range computed {
		out := make(map[string]CoverageInfo, len(row))
		for label, info := range row {
			out[label] = info
		}
		merged[day] = out
	}
	for day, row := range external {
		out, ok := merged[day]
		if !ok {
			out = make(map[string]CoverageInfo, len(row))
			merged[day] = out
		}
		for label, info := range row {
			out[label] = info
		}
	}
	return merged
}

// Shortages flattens a breakdown into the report list, keeping only
// entries with a positive shortage.
func Shortages(breakdown CoverageBreakdown) []ShortageInfo {
	var list []ShortageInfo
	for day, row := range breakdown {
		for label, info := range row {
			if info.Shortage > 0 {
				list = append(list, ShortageInfo{Day: day, TimeRange: label, Shortage: info.Shortage})
			}
		}
	}
	sortShortages(list)
	return list
}

// MergeShortages reconciles a raw shortage list with a recomputed
// breakdown. Per (day, bucket) the larger shortage wins; entries present
// in only one source are kept as-is.
func MergeShortages(reported []ShortageInfo, recomputed CoverageBreakdown) []ShortageInfo {
	type key struct {
		day   int
		label string
	}

	best := make(map[key]int)
	for _, s := range reported {
		k := key{s.Day, s.TimeRange}
		if s.Shortage > best[k] {
			best[k] = s.Shortage
		}
	}
	for day, row := range recomputed {
		for label, info := range row {
			if info.Shortage == 0 {
				continue
			}
			k := key{day, label}
			if info.Shortage > best[k] {
				best[k] = info.Shortage
			}
		}
	}

	list := make([]ShortageInfo, 0, len(best))
	for k, shortage := range best {
		if shortage > 0 {
			list = append(list, ShortageInfo{Day: k.day, TimeRange: k.label, Shortage: shortage})
		}
	}
	sortShortages(list)
	return list
}

// sortShortages orders by day, then civil bucket start, then label.
func sortShortages(list []ShortageInfo) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		as, bs := civilStartOf(a.TimeRange), civilStartOf(b.TimeRange)
		if as != bs {
			return as < bs
		}
		return a.TimeRange < b.TimeRange
	})
}

func civilStartOf(label string) int {
	if b, ok := BucketByLabel(label); ok {
		return b.CivilStart()
	}
	// Unknown labels (possible in externally supplied lists) sort last.
	return 24
}
