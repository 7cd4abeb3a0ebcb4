package scoring

import "github.com/abdidvp/credence/internal/domain"

// noCorroboration is the floor used when no related coverage was found.
// Missing corroboration is weak evidence, not proof of falsity.
const noCorroboration = 0.3

// Corroboration scores related coverage in [0,1]: more sources raise the
// base, and the share of sources on trusted domains adds up to 0.5.
func Corroboration(related []domain.SourceRecord) float64 {
	n := len(related)
	if n == 0 {
		return noCorroboration
	}

	var score float64
	switch {
	case n >= 5:
		score = 0.5
	case n >= 3:
		score = 0.4
	default:
		score = 0.3
	}

	trusted := 0
	for _, s := range related {
		if IsTrustedSource(s.URL) {
			trusted++
		}
	}
	score += float64(trusted) / float64(n) * 0.5

	return min(1, score)
}
