package csvt

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Tags returns the distinct tags already assigned, in first-use order.
func (s *SheetState) Tags() []string {
	var tags []string
	seen := make(map[string]bool)
	for _, l := range s.Data {
		if l.Tagged() && !seen[l.Tag] {
			seen[l.Tag] = true
			tags = append(tags, l.Tag)
		}
	}
	return tags
}

// NearestTag returns the already-used tag closest to input by edit
// distance, when that distance is at most maxDist. It backs the "close to
// an existing tag" hint shown when the user types a brand new tag, to
// catch typos like "fod" for "food". An exact match is not a hint.
func (s *SheetState) NearestTag(input string, maxDist int) (string, bool) {
	best, bestDist := "", maxDist+1
	for _, t := range s.Tags() {
		if strings.EqualFold(t, input) {
			return "", false
		}
		d := levenshtein.ComputeDistance(strings.ToUpper(input), strings.ToUpper(t))
		if d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, best != ""
}
