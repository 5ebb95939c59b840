package classify

import (
	"github.com/joseph-ayodele/docintel/constants"
)

// FromImageLabel adapts an external image classifier's native (label, score)
// into the canonical vocabulary. Unknown native labels pass through
// unchanged; the score is rounded to 4 digits. The third result flags
// payment-relevant labels for downstream emphasis.
func FromImageLabel(nativeLabel string, nativeScore float64) (string, float64, bool) {
	label := constants.CanonicalLabel(nativeLabel)
	return label, round4(nativeScore), constants.IsPaymentRelevant(label)
}
