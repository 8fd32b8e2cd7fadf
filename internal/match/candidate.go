package match

import (
	"sort"

	"argbind/internal/casing"
)

// Candidate is a known name scored against a target.
type Candidate struct {
	Name string
	// Score is the Similarity of the folded names (0-1).
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Thresholds for offering a suggestion.
const (
	// DefaultMinScore is the minimum score worth suggesting.
	DefaultMinScore = 0.6
	// DefaultMinGap is the minimum score gap between the top two candidates.
	DefaultMinGap = 0.1
)

// Rank scores every name against target and returns them best first.
// Names are compared after casing.Fold, so "output-path" and "outputPath"
// are identical.
func Rank(target string, names []string) CandidateList {
	folded := casing.Fold(target)

	candidates := make(CandidateList, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: Similarity(folded, casing.Fold(name)),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns the name target was most likely meant to be, or false when
// nothing is close enough or two names are equally close.
func Suggest(target string, names []string) (string, bool) {
	best := Rank(target, names).HighConfidence(DefaultMinScore, DefaultMinGap)
	if best == nil {
		return "", false
	}

	return best.Name, true
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// HighConfidence returns the best candidate if it scores at least minScore
// and beats the runner-up by at least minGap.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if len(c) > 1 && c[0].Score-c[1].Score < minGap {
		return nil
	}

	return best
}
