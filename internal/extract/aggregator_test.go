package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
)

func TestNewField(t *testing.T) {
	f, err := NewField(constants.FieldTotal, "$10.00", 0.97)
	require.NoError(t, err)
	assert.Equal(t, constants.FieldTotal, f.Kind)
	assert.Equal(t, "$10.00", f.Value)
	assert.Equal(t, 0.97, f.Confidence)

	_, err = NewField(constants.FieldKind("Bogus"), "x", 0.5)
	assert.Error(t, err)

	_, err = NewField(constants.FieldTotal, "$10.00", 1.5)
	assert.Error(t, err)

	_, err = NewField(constants.FieldTotal, "$10.00", -0.1)
	assert.Error(t, err)
}

func TestAggregator_AmountNamespace(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Add(constants.FieldAmount, "$500.00", 0.95))
	// Same numeric value in a different rendering is a duplicate, even
	// under a different amount-family kind.
	require.NoError(t, agg.Add(constants.FieldAmount, "$ 500.00", 0.90))
	require.NoError(t, agg.Add(constants.FieldTotal, "500.00", 0.97))

	fields := agg.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, constants.FieldAmount, fields[0].Kind)
	assert.Equal(t, "$500.00", fields[0].Value)
	assert.Equal(t, 0.95, fields[0].Confidence)
}

func TestAggregator_NameNamespace(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
		kept   int
	}{
		{name: "shorter after longer", first: "Acme Corp", second: "Acme", kept: 1},
		{name: "longer after shorter", first: "Acme", second: "Acme Corp", kept: 1},
		{name: "case insensitive", first: "ACME CORP", second: "acme corp", kept: 1},
		{name: "trailing period", first: "Acme Corp.", second: "Acme Corp", kept: 1},
		{name: "distinct names", first: "Acme Corp", second: "Globex", kept: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator()
			require.NoError(t, agg.Add(constants.FieldOrganization, tt.first, 0.80))
			require.NoError(t, agg.Add(constants.FieldOrganization, tt.second, 0.80))
			fields := agg.Fields()
			require.Len(t, fields, tt.kept)
			assert.Equal(t, tt.first, fields[0].Value)
		})
	}
}

func TestAggregator_NameNamespaceSharedAcrossKinds(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Add(constants.FieldOrganization, "Morgan Stanley", 0.80))
	require.NoError(t, agg.Add(constants.FieldPerson, "Morgan", 0.78))

	fields := agg.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, constants.FieldOrganization, fields[0].Kind)
}

func TestAggregator_ExactNamespacePerKind(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Add(constants.FieldDate, "01/15/2024", 0.92))
	require.NoError(t, agg.Add(constants.FieldDate, "01/15/2024", 0.92))
	require.NoError(t, agg.Add(constants.FieldDate, "02/20/2024", 0.92))
	// Same text under a different kind is not a duplicate.
	require.NoError(t, agg.Add(constants.FieldInvoiceNumber, "01/15/2024", 0.90))

	assert.Len(t, agg.Fields(), 3)
}

func TestAggregator_EmptyValueDropped(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Add(constants.FieldDate, "   ", 0.92))
	require.NoError(t, agg.Add(constants.FieldDate, "", 0.92))
	assert.Empty(t, agg.Fields())
}

func TestAggregator_InvalidCandidateRejected(t *testing.T) {
	agg := NewAggregator()
	assert.Error(t, agg.Add(constants.FieldKind("Nope"), "x", 0.5))
	assert.Error(t, agg.Add(constants.FieldDate, "01/15/2024", 2.0))
	assert.Empty(t, agg.Fields())
}

func TestAggregator_Ordering(t *testing.T) {
	agg := NewAggregator()
	// Insert out of priority order on purpose.
	require.NoError(t, agg.Add(constants.FieldOrganization, "Acme Corp", 0.80))
	require.NoError(t, agg.Add(constants.FieldDate, "01/15/2024", 0.92))
	require.NoError(t, agg.Add(constants.FieldInvoiceNumber, "INV-1", 0.90))
	require.NoError(t, agg.Add(constants.FieldTax, "$15.00", 0.96))
	require.NoError(t, agg.Add(constants.FieldSubtotal, "$100.00", 0.96))
	require.NoError(t, agg.Add(constants.FieldTotal, "$115.00", 0.97))
	require.NoError(t, agg.Add(constants.FieldAmount, "$9.99", 0.90))

	var kinds []constants.FieldKind
	for _, f := range agg.Fields() {
		kinds = append(kinds, f.Kind)
	}
	assert.Equal(t, []constants.FieldKind{
		constants.FieldTotal,
		constants.FieldSubtotal,
		constants.FieldTax,
		constants.FieldDate,
		constants.FieldInvoiceNumber,
		constants.FieldAmount,
		constants.FieldOrganization,
	}, kinds)
}

func TestAggregator_ConfidenceDescWithinPriority(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Add(constants.FieldLocation, "New York", 0.75))
	require.NoError(t, agg.Add(constants.FieldOrganization, "Acme Corp", 0.80))

	fields := agg.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, constants.FieldOrganization, fields[0].Kind)
	assert.Equal(t, constants.FieldLocation, fields[1].Kind)
}

func TestAggregator_StableOnTies(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Add(constants.FieldAmount, "$1.00", 0.90))
	require.NoError(t, agg.Add(constants.FieldAmount, "$2.00", 0.90))
	require.NoError(t, agg.Add(constants.FieldAmount, "$3.00", 0.90))

	var vals []string
	for _, f := range agg.Fields() {
		vals = append(vals, f.Value)
	}
	assert.Equal(t, []string{"$1.00", "$2.00", "$3.00"}, vals)
}
