package classify

// Profile is a static keyword profile for one document type. Declaration
// order encodes specificity: the most specific profiles come first and win
// score ties. Keywords are lowercase; a keyword counts once per document
// regardless of repeats.
type Profile struct {
	Label          string
	Keywords       []string
	BaseConfidence float64
}

// profiles is compile-once configuration, shared read-only across calls.
var profiles = []Profile{
	{
		Label: "invoice",
		Keywords: []string{
			"invoice", "invoice number", "bill to", "remit to", "payment terms",
			"amount due", "due date", "net 30", "balance due", "purchase order",
		},
		BaseConfidence: 0.92,
	},
	{
		Label: "receipt",
		Keywords: []string{
			"receipt", "cashier", "change due", "subtotal", "tender",
			"transaction", "register", "thank you for shopping", "merchant copy",
		},
		BaseConfidence: 0.90,
	},
	{
		Label: "purchase_order",
		Keywords: []string{
			"purchase order", "po number", "requisition", "ship to", "vendor",
			"unit price", "quantity ordered", "delivery date",
		},
		BaseConfidence: 0.90,
	},
	{
		Label: "bank_statement",
		Keywords: []string{
			"statement period", "account summary", "beginning balance",
			"ending balance", "deposits", "withdrawals", "routing number",
			"available balance",
		},
		BaseConfidence: 0.91,
	},
	{
		Label: "check",
		Keywords: []string{
			"pay to the order of", "check number", "memo", "dollars",
			"routing", "void after",
		},
		BaseConfidence: 0.90,
	},
	{
		Label: "budget",
		Keywords: []string{
			"budget", "fiscal year", "allocation", "forecast", "variance",
			"expenditure", "quarter",
		},
		BaseConfidence: 0.88,
	},
	{
		Label: "form",
		Keywords: []string{
			"please print", "signature", "date of birth", "applicant",
			"section a", "fill out", "check one",
		},
		BaseConfidence: 0.85,
	},
	{
		Label: "memo",
		Keywords: []string{
			"memorandum", "interoffice", "re:", "from:", "subject:",
		},
		BaseConfidence: 0.85,
	},
	{
		Label: "letter",
		Keywords: []string{
			"dear", "sincerely", "regards", "yours truly", "to whom it may concern",
		},
		BaseConfidence: 0.85,
	},
	{
		Label: "resume",
		Keywords: []string{
			"work experience", "education", "skills", "objective",
			"references available", "employment history",
		},
		BaseConfidence: 0.84,
	},
}

// Profiles returns the keyword profile table in declaration order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}
