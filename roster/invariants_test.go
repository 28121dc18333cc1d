/*
invariants_test.go - Executable invariants of the roster engine

PURPOSE:
  These tests pin down the cross-component guarantees the rest of the
  system leans on, end to end: overnight attribution, the shortage/excess
  arithmetic identities, and the pipeline from day-type alignment through
  the shortage report.

READING THESE TESTS:
  Each test has GIVEN/WHEN/THEN comments explaining the scenario and
  assertions with explanatory messages. They are intentionally verbose.
*/
package roster_test

import (
	"testing"

	"github.com/darumasanaz/v5-shift-creation-tool/roster"
)

func TestInvariant_NightShiftsAlwaysCoverEarlyMorning(t *testing.T) {
	// For every shift: end <= 24 means no spillover and no 0-7 coverage;
	// end > 24 means 0-7 is always in the own-day coverage set.

	shifts := []roster.Shift{
		{Code: "s1", Start: 7, End: 16},
		{Code: "s2", Start: 0, End: 24},
		{Code: "s3", Start: 23, End: 24},
		{Code: "n1", Start: 16, End: 31},
		{Code: "n2", Start: 21, End: 25},
		{Code: "n3", Start: 22, End: 33},
	}
	m, err := roster.NewCoverageMapper(shifts)
	if err != nil {
		t.Fatalf("mapper: %v", err)
	}

	for _, s := range shifts {
		coversEarly := false
		for _, b := range m.Coverage(s.Code) {
			if b.Label == roster.BucketEarlyMorning {
				coversEarly = true
			}
		}
		spill := m.NextDaySpillover(s.Code)

		if s.End <= 24 {
			if coversEarly {
				t.Errorf("%s ends on its own day but covers 0-7", s.Code)
			}
			if len(spill) != 0 {
				t.Errorf("%s ends on its own day but spills %v", s.Code, labelsOf(spill))
			}
		} else {
			if !coversEarly {
				t.Errorf("%s runs past midnight but does not cover 0-7", s.Code)
			}
		}
	}

	// Only the shift running past 7:00 spills into standard buckets.
	if got := labelsOf(m.NextDaySpillover("n3")); !sameLabels(got, "7-9") {
		t.Errorf("n3 spillover: got %v, want [7-9]", got)
	}
	if got := m.NextDaySpillover("n2"); len(got) != 0 {
		t.Errorf("n2 spillover: got %v, want empty", labelsOf(got))
	}
}

func TestInvariant_ShortageExcessIdentities(t *testing.T) {
	// GIVEN: A busy week with mixed day and night shifts
	// THEN: For every day/bucket, shortage*excess == 0 and
	//       actual-need == excess-shortage

	m := newTestMapper(t)
	people := testPeople("p1", "p2", "p3")
	schedule := roster.Schedule{
		"p1": row("EA", "NA", "", "EA", "DA", "LA", "EA"),
		"p2": row("DA", "DA", "NA", "", "EA", "NA", ""),
		"p3": row("NA", "", "LA", "NA", "", "EA", "DA"),
	}
	template := roster.NeedTemplate{
		"月": {"7-9": 1, "9-15": 2, "16-18": 1, "18-24": 1, "0-7": 1},
		"火": {"7-9": 2, "9-15": 2, "16-18": 2, "18-21": 1, "21-24": 1, "0-7": 1},
	}
	dayTypes := []string{"月", "火", "月", "火", "月", "火", "月"}

	actual, err := roster.AggregateCoverage(m, schedule, 7, people, nil)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	breakdown, err := roster.ComputeBreakdown(template, dayTypes, actual, 7)
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}

	for day, buckets := range breakdown {
		for label, info := range buckets {
			if info.Shortage*info.Excess() != 0 {
				t.Errorf("day %d %s: simultaneously short and excess (%+v)", day, label, info)
			}
			if info.Actual-info.Need != info.Excess()-info.Shortage {
				t.Errorf("day %d %s: identity broken (%+v)", day, label, info)
			}
			if info.Shortage < 0 {
				t.Errorf("day %d %s: negative shortage (%+v)", day, label, info)
			}
		}
	}
}

func TestPipeline_MondayMorningShortage(t *testing.T) {
	// GIVEN: A Monday needing 2 staff in 7-9 and a schedule providing one
	//        covering assignment on that Monday (day 2 of a Sunday-start
	//        period)
	// WHEN: Running alignment, aggregation, and the shortage report
	// THEN: The report contains {day: 2, time_range: "7-9", shortage: 1}

	m := newTestMapper(t)
	people := testPeople("p1")
	template := roster.NeedTemplate{"月": {"7-9": 2}}
	dayTypes := []string{"日", "月", "火"}
	schedule := roster.Schedule{"p1": row("", "EA", "")}

	aligned, report := roster.AlignDayTypes(dayTypes, 0)
	if report.Rotated {
		t.Fatalf("consistent calendar rotated: %+v", report)
	}

	actual, err := roster.AggregateCoverage(m, schedule, 3, people, nil)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	breakdown, err := roster.ComputeBreakdown(template, aligned, actual, 3)
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}

	shortages := roster.Shortages(breakdown)
	if len(shortages) != 1 {
		t.Fatalf("got %d shortages, want 1: %v", len(shortages), shortages)
	}
	got := shortages[0]
	if got.Day != 2 || got.TimeRange != "7-9" || got.Shortage != 1 {
		t.Errorf("shortage entry: got %+v", got)
	}
}

func TestPipeline_FullMonthWithCarryAndNightShifts(t *testing.T) {
	// GIVEN: A 5-day period, a night shift on day 2, and one person
	//        carried over from the previous month's night shift
	// THEN: Day 1's 0-7 actual comes from the carry, day 3's from the
	//        day-2 night shift, and day 5's window needs go short

	m := newTestMapper(t)
	people := testPeople("p1", "p2")
	template := roster.NeedTemplate{"日々": {"0-7": 1}}
	dayTypes := []string{"日々", "日々", "日々", "日々", "日々"}
	schedule := roster.Schedule{
		"p1": row("", "NA", "", "", ""),
		"p2": row("", "", "", "", ""),
	}
	carry := roster.NightCarryMap{"NA": {"p2"}}

	actual, err := roster.AggregateCoverage(m, schedule, 5, people, carry)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	breakdown, err := roster.ComputeBreakdown(template, dayTypes, actual, 5)
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}

	if info := breakdown[1]["0-7"]; info.Actual != 1 || info.Shortage != 0 {
		t.Errorf("day 1 carry seeding: got %+v", info)
	}
	if info := breakdown[3]["0-7"]; info.Actual != 1 || info.Shortage != 0 {
		t.Errorf("day 3 night coverage: got %+v", info)
	}
	for _, day := range []int{2, 4, 5} {
		if info := breakdown[day]["0-7"]; info.Shortage != 1 {
			t.Errorf("day %d should be short in 0-7: got %+v", day, info)
		}
	}
}
