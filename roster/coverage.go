/*
coverage.go - Per-shift bucket coverage and night-carry sanitation

PURPOSE:
  Answers "which buckets does this shift staff?" for every entry of a
  shift catalogue. Coverage is computed once at construction and the
  mapper is immutable afterwards, so a single mapper is safe to share
  across concurrent requests.

TWO COVERAGE SETS PER SHIFT:
  Coverage(code):
    Buckets covered on the shift's own day, via the extended-axis overlap
    rules in buckets.go. For a night shift this includes "0-7".

  NextDaySpillover(code):
    Buckets the after-midnight portion covers on the FOLLOWING day, found
    by re-normalizing [max(start,24)-24, end-24) against the standard
    (non-extended) buckets. The "0-7" window is never part of this set -
    it is already attributed via Coverage - so for a shift ending at 7:00
    sharp the spillover is empty. Only a shift running past 7:00 the next
    morning (end > 31) would spill into "7-9" and beyond.

NIGHT-CARRY SANITATION:
  A NightCarryMap arrives from the previous month's saved state and may
  reference retired shift codes or departed staff. SanitizeNightCarry
  filters it down to currently valid night-shift codes and known person
  ids. Pure, idempotent, order-preserving.

SEE ALSO:
  - buckets.go: The overlap rules
  - aggregate.go: Consumes both coverage sets and the sanitized carry map
*/
package roster

// CoverageMapper resolves shift codes to the buckets they staff.
// Immutable after construction.
type CoverageMapper struct {
	shifts   map[string]Shift
	coverage map[string][]Bucket
	spill    map[string][]Bucket
}

// NewCoverageMapper validates the catalogue and precomputes both coverage
// sets for every shift. Rejects catalogues with end <= start entries or
// duplicate codes.
func NewCoverageMapper(shifts []Shift) (*CoverageMapper, error) {
	m := &CoverageMapper{
		shifts:   make(map[string]Shift, len(shifts)),
		coverage: make(map[string][]Bucket, len(shifts)),
		spill:    make(map[string][]Bucket, len(shifts)),
	}

	for _, s := range shifts {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := m.shifts[s.Code]; exists {
			return nil, ErrDuplicateShiftCode
		}
		m.shifts[s.Code] = s
		m.coverage[s.Code] = ownDayCoverage(s)
		m.spill[s.Code] = nextDaySpillover(s)
	}

	return m, nil
}

// ownDayCoverage returns the buckets the shift covers on its starting day.
func ownDayCoverage(s Shift) []Bucket {
	var covered []Bucket
	for _, b := range CanonicalBuckets {
		if b.Overlaps(s) {
			covered = append(covered, b)
		}
	}
	return covered
}

// nextDaySpillover re-normalizes the after-midnight portion of a night
// shift and tests it against the standard buckets only (End <= 24).
func nextDaySpillover(s Shift) []Bucket {
	if !s.IsNight() {
		return nil
	}

	start := s.Start - 24
	if start < 0 {
		start = 0
	}
	end := s.End - 24

	var covered []Bucket
	for _, b := range CanonicalBuckets {
		if b.IsOvernight() {
			continue
		}
		if start < float64(b.End) && end > float64(b.Start) {
			covered = append(covered, b)
		}
	}
	return covered
}

// Shift looks up a catalogue entry by code.
func (m *CoverageMapper) Shift(code string) (Shift, bool) {
	s, ok := m.shifts[code]
	return s, ok
}

// Coverage returns the buckets the shift covers on its own day. Unknown
// codes return nil.
func (m *CoverageMapper) Coverage(code string) []Bucket {
	return m.coverage[code]
}

// NextDaySpillover returns the buckets the shift's after-midnight portion
// covers on the following day. Empty for non-night shifts and for night
// shifts ending at or before 7:00.
func (m *CoverageMapper) NextDaySpillover(code string) []Bucket {
	return m.spill[code]
}

// IsNightShift reports whether the code resolves to a shift ending after
// midnight. Unknown codes are not night shifts.
func (m *CoverageMapper) IsNightShift(code string) bool {
	s, ok := m.shifts[code]
	return ok && s.IsNight()
}

// SanitizeNightCarry filters a raw carry map down to currently valid
// night-shift codes and person ids present in the roster. Entries whose
// id list empties out are dropped; id order within an entry is preserved.
// Idempotent: sanitizing the output again returns an equal map.
func (m *CoverageMapper) SanitizeNightCarry(carry NightCarryMap, people []Person) NightCarryMap {
	known := make(map[string]bool, len(people))
	for _, p := range people {
		known[p.ID] = true
	}

	clean := make(NightCarryMap)
	for code, ids := range carry {
		if !m.IsNightShift(code) {
			continue
		}
		var kept []string
		for _, id := range ids {
			if known[id] {
				kept = append(kept, id)
			}
		}
		if len(kept) > 0 {
			clean[code] = kept
		}
	}
	return clean
}
