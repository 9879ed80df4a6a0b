package match

// MinSimilarity is the lowest score Suggest accepts.
const MinSimilarity = 0.6

// Suggest returns the candidate most similar to name, if any scores at
// least MinSimilarity. Ties go to the earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	var (
		best      string
		bestScore float64
	)

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}

// DidYouMean formats Suggest's result as an error message suffix, or
// returns "" when nothing is close.
func DidYouMean(name string, candidates []string) string {
	if s, ok := Suggest(name, candidates); ok {
		return " (did you mean " + s + "?)"
	}

	return ""
}
