// Package fuzzy provides fuzzy matching for flag suggestions.
// Used by eargs to attach "did you mean" hints to unknown-flag errors.
package fuzzy

import "strings"

// Matcher finds the closest alias spelling within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// FindBestFlag finds the closest candidate alias for an unknown flag
// spelling. Dash prefixes are ignored for distance so that "--colr"
// still suggests "-color". Returns "" when no candidate is close enough.
func FindBestFlag(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, candidates)
}

// FindBest returns the candidate with the smallest edit distance to
// input, or "" when none is within the matcher's maximum. Candidates
// are compared without their dash prefixes; the winning candidate is
// returned in its original spelling.
func (m *Matcher) FindBest(input string, candidates []string) string {
	stripped := strings.TrimLeft(input, "-")
	if len(stripped) < m.minLength {
		return ""
	}

	best := ""
	bestDistance := m.maxDistance + 1
	for _, candidate := range candidates {
		if candidate == input {
			continue // exact matches are not fuzzy
		}

		distance := m.levenshteinDistance(stripped, strings.TrimLeft(candidate, "-"))
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}

// levenshteinDistance computes the edit distance between two spellings,
// terminating early once the matcher's maximum is exceeded. Only two
// rows are kept instead of the full matrix.
func (m *Matcher) levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previousRow := make([]int, len(a)+1)
	currentRow := make([]int, len(a)+1)
	for i := range previousRow {
		previousRow[i] = i
	}

	for i := 1; i <= len(b); i++ {
		currentRow[0] = i
		minInRow := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}

			currentRow[j] = minThree(
				currentRow[j-1]+1,     // insertion
				previousRow[j]+1,      // deletion
				previousRow[j-1]+cost, // substitution
			)

			if currentRow[j] < minInRow {
				minInRow = currentRow[j]
			}
		}

		if minInRow > m.maxDistance {
			return m.maxDistance + 1
		}

		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(a)]
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
