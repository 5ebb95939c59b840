package constants

import "strings"

// DefaultDocumentLabel is returned when no classification evidence exists.
const DefaultDocumentLabel = "document"

// labelMap remaps the native RVL-CDIP label space of the external image
// classifier onto our canonical vocabulary. Identity for most entries;
// a few are renamed.
var labelMap = map[string]string{
	"letter":                 "letter",
	"form":                   "form",
	"email":                  "email",
	"handwritten":            "handwritten",
	"advertisement":          "advertisement",
	"scientific_report":      "report",
	"scientific_publication": "publication",
	"specification":          "specification",
	"file_folder":            "file_folder",
	"news_article":           "news_article",
	"budget":                 "budget",
	"invoice":                "invoice",
	"presentation":           "presentation",
	"questionnaire":          "questionnaire",
	"resume":                 "resume",
	"memo":                   "memo",
}

// paymentRelevant marks the mapped labels that get highlighted downstream.
var paymentRelevant = map[string]struct{}{
	"invoice":        {},
	"receipt":        {},
	"purchase_order": {},
	"bank_statement": {},
	"check":          {},
	"budget":         {},
	"form":           {},
	"letter":         {},
	"memo":           {},
}

// CanonicalLabel normalizes a native classifier label (lowercase,
// underscore-separated) and remaps it. Unknown labels pass through.
func CanonicalLabel(native string) string {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(native)), " ", "_")
	if mapped, ok := labelMap[norm]; ok {
		return mapped
	}
	return norm
}

// IsPaymentRelevant reports whether a canonical label is payment-relevant.
func IsPaymentRelevant(label string) bool {
	_, ok := paymentRelevant[label]
	return ok
}
