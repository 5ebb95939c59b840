package constants

// FieldKind is the canonical category of an extracted value.
type FieldKind string

// Stable values (these exact strings appear in API responses).
const (
	FieldInvoiceNumber FieldKind = "Invoice Number"
	FieldPurchaseOrder FieldKind = "Purchase Order"
	FieldCheckNumber   FieldKind = "Check Number"
	FieldAccountNumber FieldKind = "Account Number"
	FieldRoutingNumber FieldKind = "Routing Number"
	FieldPhone         FieldKind = "Phone"
	FieldEmail         FieldKind = "Email"
	FieldAmount        FieldKind = "Amount"
	FieldTotal         FieldKind = "Total"
	FieldSubtotal      FieldKind = "Subtotal"
	FieldTax           FieldKind = "Tax"
	FieldDate          FieldKind = "Date"
	FieldOrganization  FieldKind = "Organization"
	FieldPerson        FieldKind = "Person"
	FieldLocation      FieldKind = "Location"
)

var allFieldKinds = []FieldKind{
	FieldInvoiceNumber,
	FieldPurchaseOrder,
	FieldCheckNumber,
	FieldAccountNumber,
	FieldRoutingNumber,
	FieldPhone,
	FieldEmail,
	FieldAmount,
	FieldTotal,
	FieldSubtotal,
	FieldTax,
	FieldDate,
	FieldOrganization,
	FieldPerson,
	FieldLocation,
}

// fieldPriority drives final output ordering only; it plays no part in
// dedup or scoring. Unlisted kinds sort with defaultPriority.
var fieldPriority = map[FieldKind]int{
	FieldTotal:         0,
	FieldSubtotal:      1,
	FieldTax:           2,
	FieldDate:          3,
	FieldInvoiceNumber: 4,
}

const defaultPriority = 10

// AllFieldKinds returns the enumeration in declaration order.
func AllFieldKinds() []FieldKind {
	out := make([]FieldKind, len(allFieldKinds))
	copy(out, allFieldKinds)
	return out
}

// IsValid reports whether k is one of the enumerated kinds.
func (k FieldKind) IsValid() bool {
	for _, v := range allFieldKinds {
		if k == v {
			return true
		}
	}
	return false
}

// IsAmountKind reports whether k belongs to the amount family, which shares
// one dedup namespace keyed by normalized numeric value.
func (k FieldKind) IsAmountKind() bool {
	switch k {
	case FieldAmount, FieldTotal, FieldSubtotal, FieldTax:
		return true
	}
	return false
}

// IsNameKind reports whether k belongs to the org/person family, which
// shares one dedup namespace with substring-containment suppression.
func (k FieldKind) IsNameKind() bool {
	return k == FieldOrganization || k == FieldPerson
}

// Priority returns the output sort priority for k (lower sorts first).
func (k FieldKind) Priority() int {
	if p, ok := fieldPriority[k]; ok {
		return p
	}
	return defaultPriority
}
