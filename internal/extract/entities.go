package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/docintel/constants"
)

// Entity filter confidences.
const (
	confOrganization = 0.80
	confPerson       = 0.78
	confLocation     = 0.75
)

// maxEntityLen guards against OCR artifacts masquerading as entity spans.
const maxEntityLen = 50

// falsePersonNames holds short tokens recognizers routinely mislabel as
// PERSON on payment documents.
var falsePersonNames = map[string]struct{}{
	"bill": {}, "due": {}, "pay": {}, "net": {}, "tax": {},
	"total": {}, "cash": {}, "check": {}, "memo": {}, "void": {},
}

// productNoiseWords holds stationery/product terms; a span containing any of
// them is an item description, not a party.
var productNoiseWords = map[string]struct{}{
	"paper": {}, "pen": {}, "pens": {}, "folder": {}, "folders": {},
	"clip": {}, "clips": {}, "marker": {}, "markers": {}, "note": {},
	"notes": {}, "sticky": {}, "binder": {}, "tape": {}, "stapler": {},
	"organizer": {}, "desk": {}, "copy": {}, "whiteboard": {}, "manila": {},
	"ballpoint": {}, "eraser": {}, "toner": {}, "cartridge": {},
}

// orgNoiseTerms are document-structure words; an ORG span containing one is
// a header fragment, not an organization.
var orgNoiseTerms = []string{
	"invoice", "date", "number", "total", "subtotal", "tax", "amount", "payment", "account",
}

// addressTerms disqualify a PERSON span as an address fragment.
var addressTerms = []string{"drive", "street", "floor", "suite", "ave", "blvd"}

// entityCandidates post-processes recognizer spans, suppressing known false
// positives, and yields accepted (kind, value, confidence) triples.
func entityCandidates(entities []Entity) []candidate {
	var out []candidate
	for _, ent := range entities {
		if strings.Contains(ent.Text, "\n") || utf8.RuneCountInString(ent.Text) > maxEntityLen {
			continue
		}

		lower := strings.ToLower(ent.Text)
		if hasProductNoise(lower) {
			continue
		}

		switch ent.Label {
		case "ORG":
			if utf8.RuneCountInString(ent.Text) > 3 &&
				!strings.ContainsAny(ent.Text, ":&") &&
				!containsAnyTerm(lower, orgNoiseTerms) {
				out = append(out, candidate{constants.FieldOrganization, ent.Text, confOrganization})
			}
		case "PERSON":
			if _, bad := falsePersonNames[lower]; !bad &&
				len(strings.Fields(ent.Text)) >= 2 &&
				!containsAnyTerm(lower, addressTerms) {
				out = append(out, candidate{constants.FieldPerson, ent.Text, confPerson})
			}
		case "GPE":
			if utf8.RuneCountInString(ent.Text) > 2 {
				out = append(out, candidate{constants.FieldLocation, ent.Text, confLocation})
			}
		}
	}
	return out
}

func hasProductNoise(lower string) bool {
	for _, w := range strings.Fields(lower) {
		if _, ok := productNoiseWords[w]; ok {
			return true
		}
	}
	return false
}

func containsAnyTerm(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
