package inference

// MaxInputChars bounds the text sent to the sentiment model. Longer input is
// silently truncated before the upstream call; the truncation is lossy.
const MaxInputChars = 500

// Truncate caps text at MaxInputChars characters.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxInputChars {
		return text
	}
	return string(runes[:MaxInputChars])
}

// BestCandidate selects the highest-scoring candidate from a ranked list.
// Ties keep the first-seen entry. Returns false for an empty list.
func BestCandidate(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, true
}
