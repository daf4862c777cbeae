// Package suggest proposes the closest known spelling for a mistyped name.
package suggest

import "strings"

// Distance returns the edit distance between a and b: the minimum number of
// single-byte insertions, deletions, substitutions or swaps of two adjacent
// bytes turning one into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	// Keep a as the shorter string; only three rows of len(a)+1 are stored.
	if len(a) > len(b) {
		a, b = b, a
	}

	prevprev := make([]int, len(a)+1)
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				curr[i] = min(curr[i], prevprev[i-2]+1)
			}
		}

		prevprev, prev, curr = prev, curr, prevprev
	}

	return prev[len(a)]
}

// Closest returns the candidate nearest to word, compared case-insensitively,
// if its distance is at most maxDistance. Ties go to the earlier candidate.
func Closest(word string, candidates []string, maxDistance int) (string, bool) {
	best, bestDist := "", maxDistance+1
	lower := strings.ToLower(word)

	for _, c := range candidates {
		if d := Distance(lower, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist <= maxDistance
}
