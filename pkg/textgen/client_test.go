package textgen

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestImproveRequirementsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mejorar-requerimientos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"texto":"Requerimientos mejorados por el servicio."}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 2*time.Second, testLogger())
	text := c.ImproveRequirements(context.Background(), "quiero una web", "Retail", "Landing")

	assert.Equal(t, "Requerimientos mejorados por el servicio.", text)
}

func TestImproveRequirementsFallbackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(server.URL, 2*time.Second, testLogger())
	text := c.ImproveRequirements(context.Background(), "necesito una tienda con venta online y SEO", "Retail", "E-Commerce")

	assert.NotEmpty(t, text)
	assert.Contains(t, text, "carrito de compras")
	assert.Contains(t, text, "SEO")
}

func TestImproveRequirementsFallbackWhenUnconfigured(t *testing.T) {
	c := NewClient("", 2*time.Second, testLogger())
	text := c.ImproveRequirements(context.Background(), "", "Pet", "One Page")

	assert.NotEmpty(t, text)
	assert.Contains(t, text, "one page")
}

func TestAnalyzeDurationFallbackKeywords(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"months", "unos 4 meses aprox", "3 meses (90 días calendario)"},
		{"weeks", "en semanas, unas 10", "8-12 semanas"},
		{"days", "45 días hábiles", "60-90 días calendario"},
		{"default", "lo antes posible", "3 meses o 90 días calendario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackDuration(tt.description)
			assert.NotEmpty(t, got)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestAnalyzeDurationRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analizar-tiempo", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"texto":"Duración estructurada."}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 2*time.Second, testLogger())
	text := c.AnalyzeDuration(context.Background(), "3 meses")

	assert.Equal(t, "Duración estructurada.", text)
}

func TestAnalyzeDurationEmptyRemoteTextFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"texto":""}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 2*time.Second, testLogger())
	text := c.AnalyzeDuration(context.Background(), "2 semanas")

	assert.Contains(t, text, "8-12 semanas")
}
