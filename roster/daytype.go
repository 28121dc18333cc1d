/*
daytype.go - Day-type calendar alignment

PURPOSE:
  The day-type calendar (one label per day: weekday names plus markers
  like bath days or holidays) is metadata supplied alongside the plan, and
  in practice it sometimes arrives shifted by a whole-sequence offset -
  exported from a spreadsheet keyed to the wrong first weekday. This file
  reconciles the label sequence with the actual weekday of day 1.

ALGORITHM (majority vote over a difference histogram):
  For every entry whose label names a recognizable weekday, compare the
  weekday implied by its position, (start + index) mod 7, with the weekday
  the label names, and record the circular difference in a histogram.
  Entries that are not weekday names (holiday markers etc.) are skipped.

  Rotate only when a non-trivial majority agrees on a nonzero offset:
      bestDiff != 0  AND  bestCount > count(diff 0)  AND  bestCount > 1
  Then left-rotate the sequence by bestDiff, so position 0 holds the label
  the vote says belongs on the true day-1 weekday. Inconclusive evidence
  leaves the input unchanged - the aligner never guesses.

  The histogram is returned in an AlignmentReport so callers can log or
  display why a calendar was (or was not) corrected.

WEEKDAY ENCODINGS:
  Numeric day-1 weekday: values in [1,7] are treated as 1-based and mapped
  with (v-1) mod 7; anything else is reduced with a positive mod 7.
  Index 0 is Sunday, matching the grid frontend's Date.getDay convention.

  Labels: English full names and abbreviations, and Japanese full (月曜日),
  medium (月曜), and single-character (月) forms, case-insensitive.

SEE ALSO:
  - need.go: Resolves the aligned labels against the need template
  - rules.go: Shares the weekday-of-day-1 numbering for week boundaries
*/
package roster

import "strings"

// AlignmentReport records the evidence behind an alignment decision.
type AlignmentReport struct {
	// Histogram counts labeled entries per circular difference (0-6)
	// between position-implied and label-named weekday.
	Histogram map[int]int

	// Labeled is how many entries named a recognizable weekday.
	Labeled int

	// Offset is the applied left-rotation; zero when Rotated is false.
	Offset int

	// Rotated reports whether the sequence was corrected.
	Rotated bool
}

// NormalizeWeekday reduces any reasonable weekday encoding to a 0-based
// index in [0, 7). Values in [1,7] are treated as 1-based.
func NormalizeWeekday(v int) int {
	if v >= 1 && v <= 7 {
		return (v - 1) % 7
	}
	return ((v % 7) + 7) % 7
}

// weekdayNames maps recognized weekday labels to their 0-based index
// (0 = Sunday). English keys are stored lowercase.
var weekdayNames = map[string]int{
	"sunday": 0, "sun": 0, "日曜日": 0, "日曜": 0, "日": 0,
	"monday": 1, "mon": 1, "月曜日": 1, "月曜": 1, "月": 1,
	"tuesday": 2, "tue": 2, "tues": 2, "火曜日": 2, "火曜": 2, "火": 2,
	"wednesday": 3, "wed": 3, "水曜日": 3, "水曜": 3, "水": 3,
	"thursday": 4, "thu": 4, "thur": 4, "thurs": 4, "木曜日": 4, "木曜": 4, "木": 4,
	"friday": 5, "fri": 5, "金曜日": 5, "金曜": 5, "金": 5,
	"saturday": 6, "sat": 6, "土曜日": 6, "土曜": 6, "土": 6,
}

// ParseWeekdayLabel resolves a day-type label to a weekday index. Returns
// false for anything that is not a weekday name (holiday markers, bath-day
// labels, free text).
func ParseWeekdayLabel(label string) (int, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	wd, ok := weekdayNames[key]
	return wd, ok
}

// AlignDayTypes reconciles a day-type label sequence with the actual
// weekday of day 1, correcting a whole-sequence offset when a clear
// majority of weekday-named labels agrees on one. The input slice is
// never modified; the returned slice aliases it when no rotation applies.
func AlignDayTypes(dayTypes []string, weekdayOfDay1 int) ([]string, AlignmentReport) {
	start := NormalizeWeekday(weekdayOfDay1)

	hist := make(map[int]int)
	labeled := 0
	for i, label := range dayTypes {
		named, ok := ParseWeekdayLabel(label)
		if !ok {
			continue
		}
		labeled++
		diff := (((start + i - named) % 7) + 7) % 7
		hist[diff]++
	}

	report := AlignmentReport{Histogram: hist, Labeled: labeled}
	if labeled == 0 {
		return dayTypes, report
	}

	bestDiff, bestCount := 0, 0
	for d := 0; d < 7; d++ {
		if hist[d] > bestCount {
			bestDiff, bestCount = d, hist[d]
		}
	}

	// Rotate only on a non-trivial majority for a different alignment.
	if bestDiff == 0 || bestCount <= hist[0] || bestCount <= 1 {
		return dayTypes, report
	}

	r := bestDiff % len(dayTypes)
	rotated := make([]string, 0, len(dayTypes))
	rotated = append(rotated, dayTypes[r:]...)
	rotated = append(rotated, dayTypes[:r]...)

	report.Offset = bestDiff
	report.Rotated = true
	return rotated, report
}
