package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish   = regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b`)
	reCurrency  = regexp.MustCompile(`\b(usd|eur|gbp|cad|aud)\b|[$£€]`)
	reAmountish = regexp.MustCompile(`\b\d{1,3}(,\d{3})*\.\d{2}\b|\b\d+\.\d{2}\b`)
	reDocWords  = regexp.MustCompile(`\b(invoice|total|subtotal|receipt|statement|balance|payment)\b`)
)

// heuristicConfidence estimates OCR quality from payment-document artifacts
// in the decoded text. Each signal adds a fixed boost.
func heuristicConfidence(txt string) float64 {
	lower := strings.ToLower(txt)
	score := 0.2 // base
	if reDateish.MatchString(lower) {
		score += 0.2
	}
	if reCurrency.MatchString(lower) {
		score += 0.15
	}
	if reAmountish.MatchString(lower) {
		score += 0.15
	}
	if reDocWords.MatchString(lower) {
		score += 0.1
	}
	if len(txt) > 120 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
