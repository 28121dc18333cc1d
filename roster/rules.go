/*
rules.go - Labor-rule validation

PURPOSE:
  Scans each person's per-day assignments and flags violations of three
  rules: maximum consecutive working days, weekly hour ceiling, and
  monthly hour ceiling.

SCAN STATE (per person, days in order):
  consecutive  Working-day streak; any day without a resolvable shift
               (unassigned, paid leave, unknown code) resets it to zero.
               Paid leave is not work.
  weekly       Hours accumulated since the last week boundary. The week
               ends on the day where (weekdayOfDay1 + dayIndex) mod 7 == 6,
               after which the accumulator resets. A trailing partial week
               is checked once more after the last day.
  monthly      Hours accumulated over the whole period, never reset.

  CONSECUTIVE violations carry the zero-based day index of the day that
  breached the limit; weekly and monthly violations span a range and
  carry none.

INTENTIONAL ASYMMETRY:
  weeklyMin and monthlyMin are NOT validated here. Meeting minimums is the
  assignment producer's concern while constructing a roster; this engine
  checks a finished grid for rule breaches only.

SEE ALSO:
  - types.go: RuleViolation, Hours
  - coverage.go: Shift resolution and durations
*/
package roster

import "fmt"

// ValidateLaborRules checks every person's assignments against their
// contract bounds. Violations are returned in person order, then day
// order; an empty slice means the schedule is clean.
func ValidateLaborRules(mapper *CoverageMapper, schedule Schedule, people []Person, days int, weekdayOfDay1 int) ([]RuleViolation, error) {
	if days <= 0 {
		return nil, ErrNoDays
	}

	start := NormalizeWeekday(weekdayOfDay1)
	violations := []RuleViolation{}

	for _, person := range people {
		if err := person.Validate(); err != nil {
			return nil, err
		}

		weeklyMax := HoursFromFloat(person.WeeklyMax)
		monthlyMax := HoursFromFloat(person.MonthlyMax)

		consecutive := 0
		weekly := ZeroHours()
		monthly := ZeroHours()

		for idx := 0; idx < days; idx++ {
			cell := schedule.Cell(person.ID, idx)

			var worked bool
			var hours Hours
			if cell != Unassigned && cell != PaidLeave {
				if shift, ok := mapper.Shift(cell); ok {
					worked = true
					hours = shift.Duration()
				}
			}

			if worked {
				consecutive++
				if consecutive > person.ConsecMax {
					day := idx
					violations = append(violations, RuleViolation{
						PersonID: person.ID,
						Rule:     RuleConsecutive,
						DayIndex: &day,
						Message:  fmt.Sprintf("%s: more than %d consecutive working days (day %d)", person.ID, person.ConsecMax, idx+1),
					})
				}
			} else {
				consecutive = 0
			}

			weekly = weekly.Add(hours)
			monthly = monthly.Add(hours)

			if (start+idx)%7 == 6 {
				if weekly.GreaterThan(weeklyMax) {
					violations = append(violations, weeklyViolation(person, weekly))
				}
				weekly = ZeroHours()
			}
		}

		// Trailing partial week.
		if weekly.GreaterThan(weeklyMax) {
			violations = append(violations, weeklyViolation(person, weekly))
		}

		if monthly.GreaterThan(monthlyMax) {
			violations = append(violations, RuleViolation{
				PersonID: person.ID,
				Rule:     RuleMonthlyMax,
				Message:  fmt.Sprintf("%s: monthly hours %s exceed limit %vh", person.ID, monthly, person.MonthlyMax),
			})
		}
	}

	return violations, nil
}

func weeklyViolation(person Person, weekly Hours) RuleViolation {
	return RuleViolation{
		PersonID: person.ID,
		Rule:     RuleWeeklyMax,
		Message:  fmt.Sprintf("%s: weekly hours %s exceed limit %vh", person.ID, weekly, person.WeeklyMax),
	}
}
