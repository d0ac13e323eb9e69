package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
}

func testDocument() *entity.QuotationDocument {
	doc := &entity.QuotationDocument{
		CompanyName:        "Inmobiliaria Andina",
		ProjectName:        "Portal de ventas",
		Sector:             "Inmobiliario",
		ServiceType:        "Landing",
		Tier:               "Básico",
		ProjectDescription: "Renovación completa del sitio web corporativo.",
		CRMSelected:        "Sperant",
		Features: []entity.Feature{
			{ID: "f-1", Content: "Catálogo de proyectos con filtros."},
			{ID: "f-2", Content: "Formulario de contacto integrado al CRM."},
		},
		Items: []entity.LineItem{
			{ID: "item-1", Description: "Diseño UX/UI completo", Amount: "1000", Discount: "100"},
			{ID: "item-2", Description: "Desarrollo Frontend Responsive", Amount: "2000"},
		},
		AdditionalServices: []entity.AdditionalService{
			{ID: "srv-1", Description: "Hosting anual", Amount: "500"},
		},
	}
	return doc
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer(WithClock(fixedClock), WithoutCompression())

	data, err := r.Render(testDocument())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.True(t, bytes.Contains(data, []byte("TOTAL GENERAL")))
	assert.True(t, bytes.Contains(data, []byte("FIRMA:")))
	assert.True(t, bytes.Contains(data, []byte("Lima, 14 de marzo de 2025")))
}

func TestRenderEmptySectionsUsePlaceholders(t *testing.T) {
	r := NewRenderer(WithClock(fixedClock), WithoutCompression())

	doc := testDocument()
	doc.Items = nil
	doc.AdditionalServices = nil
	doc.CRMSelected = ""
	doc.PageDetail = ""

	data, err := r.Render(doc)
	require.NoError(t, err)

	// Sections stay present with placeholder sentences
	assert.True(t, bytes.Contains(data, []byte("No se han especificado items en la propuesta")))
	assert.True(t, bytes.Contains(data, []byte("No se han especificado servicios adicionales.")))
	assert.True(t, bytes.Contains(data, []byte("TOTAL GENERAL: $0.00")))
}

func TestRenderIsDeterministic(t *testing.T) {
	r := NewRenderer(WithClock(fixedClock))

	first, err := r.Render(testDocument())
	require.NoError(t, err)
	second, err := r.Render(testDocument())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderHidesToggledOffCards(t *testing.T) {
	r := NewRenderer(WithClock(fixedClock), WithoutCompression())

	hidden := false
	doc := testDocument()
	doc.Visibility = &entity.SectionVisibility{UXProcess: &hidden}

	data, err := r.Render(doc)
	require.NoError(t, err)

	assert.False(t, bytes.Contains(data, []byte("user journey maps")))
	// Other cards stay visible
	assert.True(t, bytes.Contains(data, []byte("moodboards")))
}

func TestRenderRepeatsTableHeadersAcrossPages(t *testing.T) {
	r := NewRenderer(WithClock(fixedClock), WithoutCompression())

	doc := testDocument()
	doc.AdditionalServices = nil
	doc.Items = nil
	for i := 0; i < 40; i++ {
		doc.Items = append(doc.Items, entity.LineItem{
			ID:          fmt.Sprintf("item-%d", i+1),
			Description: fmt.Sprintf("Desarrollo de seccion %d", i+1),
			Amount:      "500",
		})
	}

	data, err := r.Render(doc)
	require.NoError(t, err)

	// 40 rows do not fit on one page, so the table header must be redrawn
	assert.Greater(t, bytes.Count(data, []byte("Subtotal")), 1)
}

func TestRenderClipsLongTableCells(t *testing.T) {
	r := NewRenderer(WithClock(fixedClock), WithoutCompression())

	doc := testDocument()
	doc.Items = []entity.LineItem{{
		ID:          "item-1",
		Description: strings.Repeat("Desarrollo de componentes interactivos ", 5),
		Amount:      "1000",
	}}

	data, err := r.Render(doc)
	require.NoError(t, err)

	// The description is cut to its column instead of running into the totals
	assert.False(t, bytes.Contains(data, []byte(doc.Items[0].Description)))
	assert.True(t, bytes.Contains(data, []byte("...")))
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	r := NewRenderer(WithClock(fixedClock))

	doc := testDocument()
	_, err := r.Render(doc)
	require.NoError(t, err)

	assert.Len(t, doc.Items, 2)
	assert.Zero(t, doc.Items[0].Subtotal)
	assert.Zero(t, doc.AdditionalServices[0].IGV)
}

func TestFileName(t *testing.T) {
	when := fixedClock()
	assert.Equal(t, "Cotizacion_Acme_2025-03-14.pdf", FileName("Acme", when))
	assert.Equal(t, "Cotizacion_Proyecto_2025-03-14.pdf", FileName("", when))
	assert.Equal(t, "Cotizacion_Proyecto_2025-03-14.pdf", FileName("   ", when))
}

func TestSpanishDate(t *testing.T) {
	assert.Equal(t, "14 de marzo de 2025", SpanishDate(fixedClock()))
	assert.Equal(t, "1 de enero de 2026", SpanishDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Texto importante", Sanitize("**Texto importante**"))
	assert.Equal(t, "Título\ncuerpo", Sanitize("## Título\ncuerpo"))
	assert.Equal(t, "sin cambios", Sanitize("sin cambios"))
}
