package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureOrderSurvivesRoundTrip(t *testing.T) {
	doc := QuotationDocument{
		CompanyName: "Inmobiliaria Andina",
		Features: []Feature{
			{ID: "caracteristica-1", Content: "Diseño responsive"},
			{ID: "caracteristica-3", Content: "Integración con CRM"},
			{ID: "caracteristica-2", Content: "Optimización SEO"},
		},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var restored QuotationDocument
	require.NoError(t, json.Unmarshal(data, &restored))

	require.Len(t, restored.Features, 3)
	assert.Equal(t, "caracteristica-1", restored.Features[0].ID)
	assert.Equal(t, "caracteristica-3", restored.Features[1].ID)
	assert.Equal(t, "caracteristica-2", restored.Features[2].ID)
}

func TestVisibilityDefaultsToVisible(t *testing.T) {
	// Payload saved before the section toggles existed.
	raw := `{"company_name":"Retail Express","items":[]}`

	var doc QuotationDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.True(t, doc.Visibility.ShowUXProcess())
	assert.True(t, doc.Visibility.ShowUIProcess())
	assert.True(t, doc.Visibility.ShowSEOProcess())
	assert.True(t, doc.Visibility.ShowDeliverables())
	assert.True(t, doc.Visibility.ShowWebMobile())
	assert.True(t, doc.Visibility.ShowConsiderations())
}

func TestVisibilityHonorsExplicitFalse(t *testing.T) {
	hidden := false
	doc := QuotationDocument{Visibility: &SectionVisibility{UXProcess: &hidden}}

	assert.False(t, doc.Visibility.ShowUXProcess())
	assert.True(t, doc.Visibility.ShowUIProcess())
}

func TestLineItemAmountAcceptsStringOrNumber(t *testing.T) {
	raw := `[
		{"id":"item-1","description":"Landing","amount":"1500.50","discount":""},
		{"id":"item-2","description":"Portal","amount":2000,"discount":100}
	]`

	var items []LineItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))

	items[0].Recompute()
	items[1].Recompute()

	assert.InDelta(t, 1500.50, items[0].Subtotal, 0.001)
	assert.InDelta(t, 1770.59, items[0].Total, 0.01)
	assert.InDelta(t, 1900.0, items[1].Subtotal, 0.001)
	assert.InDelta(t, 2242.0, items[1].Total, 0.01)
}

func TestDocumentPayloadScanRoundTrip(t *testing.T) {
	payload := DocumentPayload{QuotationDocument: QuotationDocument{
		CompanyName: "Banco del Sur",
		Items: []LineItem{
			{ID: "item-1", Description: "Home banking", Amount: "900"},
		},
	}}

	value, err := payload.Value()
	require.NoError(t, err)

	var restored DocumentPayload
	require.NoError(t, restored.Scan(value))

	assert.Equal(t, "Banco del Sur", restored.CompanyName)
	require.Len(t, restored.Items, 1)
	assert.Equal(t, "Home banking", restored.Items[0].Description)
}

func TestDocumentPayloadScanNil(t *testing.T) {
	payload := DocumentPayload{QuotationDocument: QuotationDocument{CompanyName: "x"}}
	require.NoError(t, payload.Scan(nil))
	assert.Empty(t, payload.CompanyName)
}
