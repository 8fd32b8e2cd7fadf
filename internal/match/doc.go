// Package match ranks known names by similarity to a mistyped one, for
// "did you mean" hints.
//
// Key functions:
//   - Distance: edit distance with adjacent transpositions
//   - Rank: scores every candidate against a target
//   - Suggest: the single clear winner, if there is one
package match
