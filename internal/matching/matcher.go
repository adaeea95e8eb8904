// Package matching compares resume and job-description skill sets and
// produces match and readiness metrics.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/gap-analyzer/internal/types"
)

// Scoring constants. These are fixed design parameters; changing them
// breaks output compatibility with previously stored analyses.
const (
	matchWeight      = 0.70 // weight of raw match percentage in the readiness score
	breadthScale     = 20.0 // points per unit of breadth ratio
	breadthBonusCap  = 30.0 // maximum breadth contribution
	breadthRatioCap  = 1.5  // breadth credit stops growing past 1.5x JD size
	readinessCeiling = 100.0
)

// Score compares two flat skill lists (already normalized and lowercased)
// and returns the match result. An empty JD set yields an all-zero result
// with empty, non-nil skill lists; deciding whether that is an error is
// the caller's concern.
func Score(resumeSkills, jdSkills []string) types.MatchResult {
	resumeSet := toSet(resumeSkills)
	jdSet := toSet(jdSkills)

	if len(jdSet) == 0 {
		return types.MatchResult{
			MatchedSkills: []string{},
			MissingSkills: []string{},
		}
	}

	matched := make([]string, 0, len(jdSet))
	missing := make([]string, 0, len(jdSet))
	for skill := range jdSet {
		if _, ok := resumeSet[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	matchPct := round2(float64(len(matched)) / float64(len(jdSet)) * 100)

	// Breadth bonus: a wider skill set improves general readiness, capped
	// so it cannot dominate the score.
	breadthRatio := math.Min(float64(len(resumeSet))/float64(max(len(jdSet), 1)), breadthRatioCap)
	breadthBonus := round2(math.Min(breadthRatio*breadthScale, breadthBonusCap))

	readiness := round2(math.Min(matchPct*matchWeight+breadthBonus, readinessCeiling))

	return types.MatchResult{
		MatchPercentage:   matchPct,
		JobReadinessScore: readiness,
		MatchedSkills:     matched,
		MissingSkills:     missing,
	}
}

// toSet lowercases, trims, and de-duplicates skill names.
func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
