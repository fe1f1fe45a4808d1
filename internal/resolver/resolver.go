// Package resolver narrows a user-supplied search string to paired devices.
//
// Matching is two-tiered: a case-insensitive substring pass runs first and,
// when it finds anything, decides the result on its own. Only a query that is
// a substring of no device name falls through to fuzzy scoring. A query that
// is a literal substring of exactly one name therefore always resolves to
// that device, no matter how the fuzzy scorer would rank the rest.
package resolver

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/cesarferreira/bluepods/internal/bluetooth"
)

// minScore is the acceptance threshold for the fuzzy tier. sahilm/fuzzy only
// scores names containing the query as a character subsequence; scores at or
// below zero are sparse, noisy matches and are rejected.
const minScore = 0

// Resolve returns the devices matching query. The substring tier preserves
// the original device order; the fuzzy tier orders by descending score with
// ties kept in original order. An empty query is a substring of every name
// and matches all devices.
func Resolve(query string, devices []bluetooth.Device) []bluetooth.Device {
	q := strings.ToLower(query)

	var matched []bluetooth.Device
	for _, d := range devices {
		if strings.Contains(strings.ToLower(d.Name), q) {
			matched = append(matched, d)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = strings.ToLower(d.Name)
	}
	// fuzzy.Find sorts by descending score but not stably, so equal scores
	// can come back in arbitrary order. Re-sort with the device index as the
	// tie-breaker to keep original order on ties.
	scored := fuzzy.Find(q, names)
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Index < scored[j].Index
	})
	for _, m := range scored {
		if m.Score <= minScore {
			continue
		}
		matched = append(matched, devices[m.Index])
	}
	return matched
}
