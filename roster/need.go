/*
need.go - Required-staffing resolution

PURPOSE:
  Maps each calendar day to its required staff count per bucket, by
  looking the day's (aligned) day-type label up in the need template.

TEMPLATE KEY FORMS:
  Templates written by hand use either the split evening keys
  ("18-21" / "21-24") or a single merged "18-24" key. When only the merged
  key is present both sub-buckets inherit its value; a split key always
  wins over the merged one for its own bucket.

GRACEFUL DEGRADATION:
  Days whose label is missing from the template (or not a label at all)
  require nothing - the zero vector - rather than failing the whole
  computation. The template is user-edited state.

SEE ALSO:
  - daytype.go: Produces the aligned label sequence
  - shortage.go: Compares need against actual staffing
*/
package roster

// mergedEveningKey is the combined template key covering both "18-21"
// and "21-24".
const mergedEveningKey = "18-24"

// NeedVector holds the required staff count for every canonical bucket,
// keyed by bucket label. All six labels are always present.
type NeedVector map[string]int

// ResolveNeed returns the requirement vector for one day-type label.
// Unknown labels yield the all-zero vector.
func ResolveNeed(template NeedTemplate, label string) NeedVector {
	need := make(NeedVector, len(CanonicalBuckets))
	for _, b := range CanonicalBuckets {
		need[b.Label] = 0
	}

	entry, ok := template[label]
	if !ok {
		return need
	}

	for _, b := range CanonicalBuckets {
		if v, ok := entry[b.Label]; ok {
			need[b.Label] = v
			continue
		}
		if b.Label == "18-21" || b.Label == "21-24" {
			if v, ok := entry[mergedEveningKey]; ok {
				need[b.Label] = v
			}
		}
	}
	return need
}

// NeedByDay resolves the requirement vector for every day of the period.
// dayTypes is indexed by zero-based day; days beyond its length have no
// label and therefore no requirement. The result is keyed by 1-based day.
func NeedByDay(template NeedTemplate, dayTypes []string, days int) map[int]NeedVector {
	need := make(map[int]NeedVector, days)
	for d := 1; d <= days; d++ {
		label := ""
		if d-1 < len(dayTypes) {
			label = dayTypes[d-1]
		}
		need[d] = ResolveNeed(template, label)
	}
	return need
}
