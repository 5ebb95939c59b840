package extract

import (
	"regexp"

	"github.com/joseph-ayodele/docintel/constants"
)

// Compile-once grammars, shared read-only across concurrent calls.

// reLabeledMoney matches a label token ("Total Due", "Subtotal", "Tax", ...)
// followed by an optional $ and a two-fraction-digit amount. The tax branch
// tolerates a parenthetical rate, e.g. "Tax (8.875%): $15.00". Groups 1,2
// carry non-tax matches; groups 3,4 carry tax matches.
var reLabeledMoney = regexp.MustCompile(
	`(?i)(total\s*(?:due)?|subtotal|amount\s*(?:due)?|balance|paid)\s*[:\-]\s*\$?\s?([\d,]+\.\d{2})` +
		`|(?i:(tax)\s*(?:\([^)]*\))?\s*[:\-]\s*\$?\s?([\d,]+\.\d{2}))`,
)

// reMoney matches standalone $amounts (line items).
var reMoney = regexp.MustCompile(`\$\s?[\d,]+\.\d{2}`)

// reDate unions three sub-grammars: numeric D/M/Y, textual month-name, and
// ISO-like YYYY-MM-DD. Word boundaries keep the numeric forms from
// swallowing adjacent digits.
var reDate = regexp.MustCompile(
	`(?i)\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b` +
		`|(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+\d{1,2},?\s+\d{4}` +
		`|\b(?:19|20)\d{2}[/\-]\d{2}[/\-]\d{2}\b`,
)

// identifierPatterns holds one pattern per domain identifier kind, in the
// declaration order the aggregator consumes them. The captured group (or the
// whole match when there is no group) is the value.
var identifierPatterns = []struct {
	kind constants.FieldKind
	re   *regexp.Regexp
}{
	{constants.FieldInvoiceNumber, regexp.MustCompile(`(?i)inv(?:oice)?\s*(?:no|number|#)?[\s:\-]*([A-Z]{2,5}-?\d[\w\-]{2,20})`)},
	{constants.FieldPurchaseOrder, regexp.MustCompile(`(?i)(?:^|\s)p\.?o\.?\s*(?:no|number|#)[\s:\-]+([A-Z0-9][\w\-]{2,20})`)},
	{constants.FieldCheckNumber, regexp.MustCompile(`(?i)check\s*(?:no|number|#)?\.?[\s:\-]*(\d{3,10})`)},
	{constants.FieldAccountNumber, regexp.MustCompile(`(?i)acct?\.?\s*(?:no|number|#)?\.?[\s:\-]*(\d{4,20})`)},
	{constants.FieldRoutingNumber, regexp.MustCompile(`(?i)routing\s*(?:no|number|#)?\.?[\s:\-]*(\d{9})`)},
	{constants.FieldPhone, regexp.MustCompile(`(?:\+1[\s\-]?)?\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{4}`)},
	{constants.FieldEmail, regexp.MustCompile(`[a-zA-Z0-9._%+\-]{2,}@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)},
}

// reAmountNorm strips everything but digits and the decimal point when
// normalizing amount values for dedup.
var reAmountNorm = regexp.MustCompile(`[^\d.]`)
