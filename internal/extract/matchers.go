package extract

import (
	"strings"

	"github.com/joseph-ayodele/docintel/constants"
)

// candidate is one raw (kind, value, confidence) triple from a matcher,
// before dedup.
type candidate struct {
	kind       constants.FieldKind
	value      string
	confidence float64
}

// Fixed matcher confidences.
const (
	confLabeledTotal    = 0.97
	confLabeledSubtotal = 0.96
	confLabeledTax      = 0.96
	confLabeledAmount   = 0.95
	confMoney           = 0.90
	confDate            = 0.92
	confIdentifier      = 0.90
)

// labeledMoneyCandidates recognizes label-prefixed amounts. It must be
// consumed before the unlabeled pass so labeled values win the dedup race.
func labeledMoneyCandidates(text string) []candidate {
	var out []candidate
	for _, m := range reLabeledMoney.FindAllStringSubmatch(text, -1) {
		label, amount := m[1], m[2]
		if label == "" {
			label, amount = m[3], m[4]
		}
		label = strings.ToLower(strings.TrimSpace(label))
		amount = strings.TrimSpace(amount)
		if !strings.HasPrefix(amount, "$") {
			amount = "$" + amount
		}

		switch {
		case strings.Contains(label, "subtotal"):
			out = append(out, candidate{constants.FieldSubtotal, amount, confLabeledSubtotal})
		case strings.Contains(label, "tax"):
			out = append(out, candidate{constants.FieldTax, amount, confLabeledTax})
		case strings.Contains(label, "total"):
			out = append(out, candidate{constants.FieldTotal, amount, confLabeledTotal})
		default:
			out = append(out, candidate{constants.FieldAmount, amount, confLabeledAmount})
		}
	}
	return out
}

// moneyCandidates recognizes standalone $amount.dd tokens as line items.
func moneyCandidates(text string) []candidate {
	var out []candidate
	for _, m := range reMoney.FindAllString(text, -1) {
		out = append(out, candidate{constants.FieldAmount, strings.TrimSpace(m), confMoney})
	}
	return out
}

// dateCandidates recognizes numeric, month-name, and ISO-like dates.
func dateCandidates(text string) []candidate {
	var out []candidate
	for _, m := range reDate.FindAllString(text, -1) {
		out = append(out, candidate{constants.FieldDate, m, confDate})
	}
	return out
}

// identifierCandidates recognizes domain identifiers (invoice/PO/check/
// account/routing numbers, phone, email), iterating kinds in declaration
// order.
func identifierCandidates(text string) []candidate {
	var out []candidate
	for _, p := range identifierPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			value := m[0]
			if len(m) > 1 && m[1] != "" {
				value = m[1]
			}
			out = append(out, candidate{p.kind, value, confIdentifier})
		}
	}
	return out
}
