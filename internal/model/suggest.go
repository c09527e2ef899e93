package model

// maxSuggestDistance is the largest edit distance still offered as a hint.
const maxSuggestDistance = 2

// unitKindSpellings lists the unit kinds a declaration file may use.
var unitKindSpellings = []string{unitKindInterface, unitKindDictionary, unitKindGlobalFunctions}

// SuggestUnitKind returns the accepted unit kind closest to raw, or "" when
// none is within maxSuggestDistance edits.
func SuggestUnitKind(raw string) string {
	return closest(raw, unitKindSpellings)
}

// closest returns the first candidate with the smallest edit distance to
// word, or "" when none is close enough.
func closest(word string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1

	for _, c := range candidates {
		if d := editDistance(word, c); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

// editDistance returns the Levenshtein distance between a and b, keeping
// two rows of the matrix.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if a == "" {
		return len(b)
	}

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
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
