package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTotal float64

func (f fakeTotal) TotalValue() float64 { return float64(f) }

func TestComputeLineItem(t *testing.T) {
	got := ComputeLineItem("1000", "100")
	assert.InDelta(t, 900, got.Subtotal, 1e-9)
	assert.InDelta(t, 162, got.IGV, 1e-9)
	assert.InDelta(t, 1062, got.Total, 1e-9)
}

func TestComputeLineItemLenientInput(t *testing.T) {
	cases := []struct {
		name             string
		amount, discount Amount
		subtotal         float64
	}{
		{"empty strings", "", "", 0},
		{"garbage amount", "abc", "10", -10},
		{"garbage discount", "100", "x%", 100},
		{"whitespace", "  250 ", "", 250},
		{"discount exceeds amount", "100", "150", -50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeLineItem(tc.amount, tc.discount)
			assert.InDelta(t, tc.subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tc.subtotal*IGVRate, got.IGV, 1e-9)
			assert.InDelta(t, tc.subtotal*(1+IGVRate), got.Total, 1e-9)
		})
	}
}

func TestComputeLineItemNegativePropagates(t *testing.T) {
	got := ComputeLineItem("100", "150")
	assert.Less(t, got.Subtotal, 0.0)
	assert.Less(t, got.IGV, 0.0)
	assert.Less(t, got.Total, 0.0)
}

func TestComputeAdditionalService(t *testing.T) {
	got := ComputeAdditionalService("500")
	assert.InDelta(t, 90, got.IGV, 1e-9)
	assert.InDelta(t, 590, got.Total, 1e-9)

	assert.Zero(t, ComputeAdditionalService("").Total)
	assert.InDelta(t, 500*1.18, got.Total, 1e-9)
}

func TestAggregate(t *testing.T) {
	items := []fakeTotal{1062, 590}
	services := []fakeTotal{118}

	sum := Aggregate(items, services)
	assert.InDelta(t, 1652, sum.ItemsTotal, 1e-9)
	assert.InDelta(t, 118, sum.ServicesTotal, 1e-9)
	assert.InDelta(t, 1770, sum.GrandTotal, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	sum := Aggregate([]fakeTotal{}, []fakeTotal{})
	assert.Zero(t, sum.GrandTotal)
}

func TestAmountUnmarshalStringOrNumber(t *testing.T) {
	var doc struct {
		Amount   Amount `json:"monto"`
		Discount Amount `json:"descuento"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"monto":"1500.50","descuento":200}`), &doc))
	assert.InDelta(t, 1500.50, doc.Amount.Float(), 1e-9)
	assert.InDelta(t, 200, doc.Discount.Float(), 1e-9)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1062.00", FormatAmount(1062))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "-59.00", FormatAmount(-59))
}
