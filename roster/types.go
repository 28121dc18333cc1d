/*
Package roster provides the coverage, need-matching, and labor-rule
validation engine for monthly staff rosters.

PURPOSE:
  Given a shift catalogue, a staffing-need template, a day-type calendar,
  and a candidate schedule (person -> per-day shift codes), this package
  answers three questions:
  - Which canonical time buckets does each shift cover, including shifts
    that run past midnight?
  - Where is the schedule short of (or over) the required staffing?
  - Does the schedule violate any per-person labor rule (consecutive
    working days, weekly hours, monthly hours)?

KEY CONCEPTS IN THIS FILE (types.go):
  - Shift: a catalogue entry with start/end hours on an extended axis
    (end may exceed 24 for shifts that finish the next morning)
  - Person: a staff member's contract bounds and capabilities
  - Schedule: person id -> ordered per-day cell values
  - Hours: a decimal-backed labor-hour quantity
  - NightCarryMap: staff continuing a night shift from the previous month

DESIGN PRINCIPLES:
  1. Everything here is value data; the engine holds no state between calls.
  2. All public operations are pure and deterministic - no I/O, no logging.
  3. User-edited content degrades gracefully: unknown shift codes and
     unrecognized day-type labels are ignored, never fatal.
  4. Hour arithmetic uses decimal.Decimal so fractional shifts (7.5h)
     accumulate without floating-point drift.

SEE ALSO:
  - buckets.go: The canonical time buckets and interval overlap rules
  - coverage.go: Per-shift bucket coverage and night-carry sanitation
  - rules.go: Labor-rule validation
*/
package roster

import "github.com/shopspring/decimal"

// =============================================================================
// SCHEDULE CELL SENTINELS
// =============================================================================

const (
	// PaidLeave is the schedule cell value for a paid-leave day. It is not
	// a shift: it resets the consecutive-day streak and contributes no
	// hours and no coverage.
	PaidLeave = "有給"

	// Unassigned is the schedule cell value for a day with no assignment.
	Unassigned = ""
)

// =============================================================================
// HOURS - Decimal-backed labor-hour quantity
// =============================================================================

// Hours is a quantity of labor hours. Backed by decimal.Decimal so that
// weekly/monthly accumulation of fractional shift lengths stays exact.
type Hours struct {
	Value decimal.Decimal
}

// HoursFromFloat converts an hour count (e.g. a JSON number) to Hours.
func HoursFromFloat(v float64) Hours {
	return Hours{Value: decimal.NewFromFloat(v)}
}

// ZeroHours returns the zero quantity.
func ZeroHours() Hours {
	return Hours{Value: decimal.Zero}
}

func (h Hours) Add(o Hours) Hours        { return Hours{Value: h.Value.Add(o.Value)} }
func (h Hours) GreaterThan(o Hours) bool { return h.Value.GreaterThan(o.Value) }
func (h Hours) String() string           { return h.Value.String() }

// =============================================================================
// SHIFT - Catalogue entry
// =============================================================================

// Shift is one entry of the shift catalogue.
//
// Start and End are hours on an extended axis: 0-24 for the starting day,
// and up to 31 to represent spillover into the following day's early
// morning (End 31 = 7:00 the next day). Invariant: End > Start.
type Shift struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// IsNight reports whether the shift runs past midnight.
func (s Shift) IsNight() bool {
	return s.End > 24
}

// Duration returns the shift length in hours.
func (s Shift) Duration() Hours {
	return Hours{Value: decimal.NewFromFloat(s.End).Sub(decimal.NewFromFloat(s.Start))}
}

// Validate checks the structural invariant End > Start.
func (s Shift) Validate() error {
	if s.End <= s.Start {
		return &InvalidShiftError{Code: s.Code, Start: s.Start, End: s.End}
	}
	return nil
}

// =============================================================================
// PERSON - Contract bounds and capabilities
// =============================================================================

// Person describes one staff member's contract.
//
// CanWork and FixedOffWeekdays are inputs to the assignment producer, not
// to this engine; they are carried so a plan round-trips intact.
type Person struct {
	ID               string   `json:"id"`
	CanWork          []string `json:"canWork"`
	FixedOffWeekdays []string `json:"fixedOffWeekdays"`
	WeeklyMin        float64  `json:"weeklyMin"`
	WeeklyMax        float64  `json:"weeklyMax"`
	MonthlyMin       float64  `json:"monthlyMin"`
	MonthlyMax       float64  `json:"monthlyMax"`
	ConsecMax        int      `json:"consecMax"`
}

// Validate checks the structural invariants on hour bounds.
func (p Person) Validate() error {
	if p.WeeklyMin > p.WeeklyMax || p.MonthlyMin > p.MonthlyMax {
		return &InvalidPersonError{ID: p.ID}
	}
	if p.ConsecMax <= 0 {
		return &InvalidPersonError{ID: p.ID}
	}
	return nil
}

// =============================================================================
// SCHEDULE - person id -> per-day cell values
// =============================================================================

// Schedule maps a person id to that person's ordered day cells. Each cell
// is a shift code, PaidLeave, or Unassigned. Rows shorter than the period
// are treated as padded with Unassigned.
type Schedule map[string][]string

// Cell returns the value at dayIndex (zero-based) for the given person,
// treating missing rows and out-of-range indexes as Unassigned.
func (s Schedule) Cell(personID string, dayIndex int) string {
	row := s[personID]
	if dayIndex < 0 || dayIndex >= len(row) {
		return Unassigned
	}
	return row[dayIndex]
}

// =============================================================================
// NEED TEMPLATE AND CALENDAR
// =============================================================================

// NeedTemplate maps a day-type label (weekday name or a marker such as a
// bath-day or holiday label) to required staff counts per bucket label.
// Bucket keys may use the split form ("18-21"/"21-24") or the merged
// "18-24" form; see ResolveNeed.
type NeedTemplate map[string]map[string]int

// NightCarryMap maps a night-shift code to the person ids continuing that
// shift from the previous period. It only ever affects day 1's "0-7"
// bucket.
type NightCarryMap map[string][]string

// =============================================================================
// RESULTS
// =============================================================================

// CoverageInfo is the need/actual comparison for one day/bucket.
type CoverageInfo struct {
	Need     int `json:"need"`
	Actual   int `json:"actual"`
	Shortage int `json:"shortage"`
}

// Excess returns the surplus staffing, max(actual-need, 0).
func (c CoverageInfo) Excess() int {
	if c.Actual > c.Need {
		return c.Actual - c.Need
	}
	return 0
}

// CoverageBreakdown maps day (1-based) -> bucket label -> CoverageInfo.
type CoverageBreakdown map[int]map[string]CoverageInfo

// ShortageInfo is one flattened shortage entry for reporting.
type ShortageInfo struct {
	Day       int    `json:"day"`
	TimeRange string `json:"time_range"`
	Shortage  int    `json:"shortage"`
}

// RuleKind identifies a labor rule.
type RuleKind string

const (
	RuleConsecutive RuleKind = "CONSECUTIVE"
	RuleWeeklyMax   RuleKind = "WEEKLY_MAX"
	RuleMonthlyMax  RuleKind = "MONTHLY_MAX"
)

// RuleViolation is one labor-rule finding for a person.
//
// DayIndex is zero-based (matching schedule row positions) and only set
// for rules that pinpoint a day; weekly and monthly violations span a
// range and leave it nil.
type RuleViolation struct {
	PersonID string   `json:"personId"`
	Rule     RuleKind `json:"rule"`
	DayIndex *int     `json:"dayIndex,omitempty"`
	Message  string   `json:"message"`
}
