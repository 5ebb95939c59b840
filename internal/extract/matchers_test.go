package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
)

func TestLabeledMoneyCandidates(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind constants.FieldKind
		wantVal  string
		wantConf float64
	}{
		{
			name:     "total due",
			text:     "Total Due: $1,234.56",
			wantKind: constants.FieldTotal,
			wantVal:  "$1,234.56",
			wantConf: 0.97,
		},
		{
			name:     "plain total",
			text:     "Total: 89.00",
			wantKind: constants.FieldTotal,
			wantVal:  "$89.00",
			wantConf: 0.97,
		},
		{
			name:     "subtotal",
			text:     "Subtotal: $100.00",
			wantKind: constants.FieldSubtotal,
			wantVal:  "$100.00",
			wantConf: 0.96,
		},
		{
			name:     "tax with parenthetical rate",
			text:     "Tax (8.875%): $15.00",
			wantKind: constants.FieldTax,
			wantVal:  "$15.00",
			wantConf: 0.96,
		},
		{
			name:     "amount due",
			text:     "Amount Due: $500.00",
			wantKind: constants.FieldAmount,
			wantVal:  "$500.00",
			wantConf: 0.95,
		},
		{
			name:     "balance",
			text:     "Balance - $42.10",
			wantKind: constants.FieldAmount,
			wantVal:  "$42.10",
			wantConf: 0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labeledMoneyCandidates(tt.text)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantKind, got[0].kind)
			assert.Equal(t, tt.wantVal, got[0].value)
			assert.Equal(t, tt.wantConf, got[0].confidence)
		})
	}
}

func TestLabeledMoneyCandidates_NoLabel(t *testing.T) {
	assert.Empty(t, labeledMoneyCandidates("just a number 12.50 on a line"))
	// A label without a separator is not a labeled amount.
	assert.Empty(t, labeledMoneyCandidates("Total $12.50"))
}

func TestMoneyCandidates(t *testing.T) {
	got := moneyCandidates("Widget $19.99, Gadget $ 1,050.00, plain 12.50")
	require.Len(t, got, 2)
	assert.Equal(t, "$19.99", got[0].value)
	assert.Equal(t, "$ 1,050.00", got[1].value)
	for _, c := range got {
		assert.Equal(t, constants.FieldAmount, c.kind)
		assert.Equal(t, 0.90, c.confidence)
	}
}

func TestDateCandidates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "numeric slash", text: "Due Date: 01/15/2024", want: []string{"01/15/2024"}},
		{name: "numeric dash short year", text: "shipped 3-4-24 ok", want: []string{"3-4-24"}},
		{name: "month name", text: "January 5, 2024 was the date", want: []string{"January 5, 2024"}},
		{name: "abbreviated month", text: "Sep 30 2023", want: []string{"Sep 30 2023"}},
		{name: "iso", text: "posted 2024-01-15 end", want: []string{"2024-01-15"}},
		{name: "adjacent digits rejected", text: "ref 123/12/2024", want: nil},
		{name: "no dates", text: "no dates here", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateCandidates(tt.text)
			var vals []string
			for _, c := range got {
				assert.Equal(t, constants.FieldDate, c.kind)
				assert.Equal(t, 0.92, c.confidence)
				vals = append(vals, c.value)
			}
			assert.Equal(t, tt.want, vals)
		})
	}
}

func TestIdentifierCandidates(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind constants.FieldKind
		wantVal  string
	}{
		{name: "invoice number", text: "Invoice Number: INV-2024-001", wantKind: constants.FieldInvoiceNumber, wantVal: "INV-2024-001"},
		{name: "invoice shorthand", text: "INV# AB-1234", wantKind: constants.FieldInvoiceNumber, wantVal: "AB-1234"},
		{name: "purchase order", text: "P.O. Number: PO-7788", wantKind: constants.FieldPurchaseOrder, wantVal: "PO-7788"},
		{name: "check number", text: "Check No. 100234", wantKind: constants.FieldCheckNumber, wantVal: "100234"},
		{name: "account number", text: "Acct #: 99887766", wantKind: constants.FieldAccountNumber, wantVal: "99887766"},
		{name: "routing number", text: "Routing No: 123456789", wantKind: constants.FieldRoutingNumber, wantVal: "123456789"},
		{name: "phone", text: "Call (555) 123-4567 today", wantKind: constants.FieldPhone, wantVal: "(555) 123-4567"},
		{name: "email", text: "billing@acme.com", wantKind: constants.FieldEmail, wantVal: "billing@acme.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := identifierCandidates(tt.text)
			require.NotEmpty(t, got)
			found := false
			for _, c := range got {
				if c.kind == tt.wantKind && c.value == tt.wantVal {
					found = true
					assert.Equal(t, 0.90, c.confidence)
				}
			}
			assert.True(t, found, "expected %s %q in %v", tt.wantKind, tt.wantVal, got)
		})
	}
}

func TestIdentifierCandidates_RoutingNineDigits(t *testing.T) {
	// A shorter digit run never qualifies as a routing number.
	got := identifierCandidates("Routing No: 12345678")
	for _, c := range got {
		assert.NotEqual(t, constants.FieldRoutingNumber, c.kind)
	}
}
