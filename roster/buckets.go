/*
buckets.go - Canonical time buckets and interval overlap rules

PURPOSE:
  Staffing need and coverage are accounted in six fixed daily time windows
  ("buckets"). This file defines those buckets and the half-open interval
  overlap test between a shift and a bucket, including the overnight case.

THE EXTENDED HOUR AXIS:
  A shift that finishes after midnight keeps a single [start, end) interval
  by letting end exceed 24: a 16:00-to-7:00 night shift is [16, 31). The
  "0-7" bucket lives on the same axis as [24, 31), so a night shift and the
  early-morning window it produces can be compared directly.

OVERLAP RULES:
  Same-day bucket [b0, b1), b1 <= 24:
      overlap iff start < b1 && min(end, 24) > b0
  Overnight bucket [24, 31):
      overlap iff end > 24 && max(start, 24) < b1 && end > b0

  Both follow from ordinary half-open interval intersection after clamping
  the shift to the day side being tested.

WHICH DAY A BUCKET BELONGS TO:
  On the extended axis the "0-7" window sits on the shift's own starting
  day. The aggregator (aggregate.go) books that membership onto the next
  calendar day, because bucket "0-7" of day d means day d's civil
  0:00-7:00 - which only a shift started on day d-1 can staff.

SEE ALSO:
  - coverage.go: Applies these rules across a shift catalogue
  - aggregate.go: Day attribution of overnight coverage
*/
package roster

// Bucket is one canonical time window, expressed on the extended hour
// axis (the overnight window is [24, 31)).
type Bucket struct {
	Label string
	Start int
	End   int
}

// BucketEarlyMorning is the label of the overnight "0-7" bucket.
const BucketEarlyMorning = "0-7"

// CanonicalBuckets is the fixed, ordered set of daily time windows.
var CanonicalBuckets = []Bucket{
	{Label: "7-9", Start: 7, End: 9},
	{Label: "9-15", Start: 9, End: 15},
	{Label: "16-18", Start: 16, End: 18},
	{Label: "18-21", Start: 18, End: 21},
	{Label: "21-24", Start: 21, End: 24},
	{Label: BucketEarlyMorning, Start: 24, End: 31},
}

// BucketByLabel looks up a canonical bucket by its label.
func BucketByLabel(label string) (Bucket, bool) {
	for _, b := range CanonicalBuckets {
		if b.Label == label {
			return b, true
		}
	}
	return Bucket{}, false
}

// IsOvernight reports whether the bucket is the extended "0-7" window.
func (b Bucket) IsOvernight() bool {
	return b.End > 24
}

// CivilStart returns the bucket's start hour on the ordinary 0-24 clock.
// Used for report ordering, where "0-7" sorts before "7-9".
func (b Bucket) CivilStart() int {
	if b.IsOvernight() {
		return b.Start - 24
	}
	return b.Start
}

// Overlaps reports whether the shift covers any part of the bucket on the
// shift's own starting day.
func (b Bucket) Overlaps(s Shift) bool {
	if !b.IsOvernight() {
		end := s.End
		if end > 24 {
			end = 24
		}
		return s.Start < float64(b.End) && end > float64(b.Start)
	}

	// Overnight bucket: only the after-midnight portion of the shift counts.
	if s.End <= 24 {
		return false
	}
	start := s.Start
	if start < 24 {
		start = 24
	}
	return start < float64(b.End) && s.End > float64(b.Start)
}
