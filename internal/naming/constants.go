package naming

// DefaultSuggestionLimit caps how many "did you mean" candidates are returned.
const DefaultSuggestionLimit = 3

// suggestionDistance is the largest edit distance still treated as a typo.
func suggestionDistance(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
