package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceNeedTextKnownCombination(t *testing.T) {
	text := ServiceNeedText("Inmobiliario", "Landing")
	assert.NotEmpty(t, text)
	assert.Contains(t, text, "mercado inmobiliario")
}

func TestServiceNeedTextFallsBackForUnknownSector(t *testing.T) {
	text := ServiceNeedText("Agroindustria", "Landing")
	assert.NotEmpty(t, text)
	assert.Contains(t, strings.ToLower(text), "agroindustria")
}

func TestIsMejora(t *testing.T) {
	assert.True(t, IsMejora("Mejora (solo mostrar el tipo básico)"))
	assert.True(t, IsMejora("Mejora"))
	assert.False(t, IsMejora("Página web"))
	assert.False(t, IsMejora(""))
}

func TestValidArea(t *testing.T) {
	assert.True(t, ValidArea("Comercial"))
	assert.True(t, ValidArea("TI"))
	assert.False(t, ValidArea("Legal"))
	assert.False(t, ValidArea(""))
}

func TestDefaultContentIsComplete(t *testing.T) {
	assert.Len(t, DefaultFeatures, 7)
	assert.Len(t, DefaultProposalItems, 7)
	assert.Len(t, ConditionTimeVariations, 3)
	for _, f := range DefaultFeatures {
		assert.NotEmpty(t, f)
	}
}
