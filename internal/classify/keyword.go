package classify

import (
	"math"
	"strings"

	"github.com/joseph-ayodele/docintel/constants"
)

// Confidence bounds for the keyword strategy.
const (
	minKeywordConfidence = 0.50
	maxKeywordConfidence = 0.97
)

// ByKeywords scores document text against the keyword profiles and returns
// exactly one (label, confidence). Total: with no hits anywhere it returns
// the default label at the confidence floor.
//
// A modest fraction of a profile's keywords matching should approach that
// profile's base confidence quickly — keyword lists are long and documents
// rarely contain every listed term — hence the score*3 scaling.
func ByKeywords(text string) (string, float64) {
	lower := strings.ToLower(text)

	bestIdx := -1
	bestScore := 0.0
	for i, p := range profiles {
		hits := 0
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(len(p.Keywords))
		// Strict > keeps the earliest (most specific) profile on ties.
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	if bestIdx < 0 {
		return constants.DefaultDocumentLabel, minKeywordConfidence
	}

	conf := profiles[bestIdx].BaseConfidence * math.Min(bestScore*3, 1.0)
	conf = math.Min(math.Max(conf, minKeywordConfidence), maxKeywordConfidence)
	return profiles[bestIdx].Label, round4(conf)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
