package match

// Distance computes the edit distance between a and b: the minimum number of
// single-rune insertions, deletions, substitutions or swaps of two adjacent
// runes that turn one into the other ("nmae" is one edit from "name").
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// three rows: a transposition looks two rows back
	prev2 := make([]int, len(rb)+1)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)

			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				curr[j] = min(curr[j], prev2[j-2]+1) // transposition
			}
		}

		prev2, prev, curr = prev, curr, prev2
	}

	return prev[len(rb)]
}

// Similarity is 1 - Distance(a, b)/max(len(a), len(b)), counted in runes.
// 1.0 means identical strings, 0.0 means completely different.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}
