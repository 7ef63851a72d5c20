package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen/internal/render"
	"docgen/internal/server"
	"docgen/pkg/models"
)

func testServer() *server.Server {
	composer := render.NewComposer(render.Config{ProofBaseURL: "https://app.example.com"})
	return server.New(composer)
}

func invoicePayload() models.DocumentData {
	return models.DocumentData{
		DocumentType:   models.DocumentTypeInvoice,
		DocumentNumber: "RE-2026-001",
		Date:           "2026-03-15",
		Company: models.Company{
			Name:    "Muster GmbH",
			Address: models.Address{Street: "Musterstraße 1", ZipCode: "10115", City: "Berlin"},
		},
		Customer: models.Customer{Name: "Kunde AG"},
		Items: []models.LineItem{
			{
				Description: "Beratungsleistung",
				Quantity:    decimal.NewFromInt(1),
				Unit:        "Std.",
				UnitPrice:   decimal.NewFromInt(100),
			},
		},
		Subtotal:  decimal.NewFromInt(100),
		TaxRate:   decimal.NewFromInt(19),
		TaxAmount: decimal.NewFromFloat(19),
		Total:     decimal.NewFromInt(119),
		TaxRule:   models.TaxRuleDETaxable,
	}
}

func TestHealthz(t *testing.T) {
	app := testServer().App()

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestGeneratePDFSuccess(t *testing.T) {
	app := testServer().App()

	body, err := json.Marshal(invoicePayload())
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/documents/pdf", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "RE-2026-001.pdf")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestGeneratePDFInputDefect(t *testing.T) {
	app := testServer().App()

	payload := invoicePayload()
	payload.Items = nil
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/documents/pdf", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var payload2 struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload2))
	assert.Equal(t, "INVALID_DOCUMENT", payload2.Error.Code)
	assert.Contains(t, payload2.Error.Message, "no line items")
}

// failingGenerator simulates a composer whose drawing surface breaks mid-render.
type failingGenerator struct{}

func (failingGenerator) Generate(*models.DocumentData) ([]byte, error) {
	return nil, errors.New("surface write rejected")
}

func TestGeneratePDFFailureLogsCause(t *testing.T) {
	var logs bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&logs)
	t.Cleanup(func() { log.Logger = prev })

	app := server.New(failingGenerator{}).App()

	body, err := json.Marshal(invoicePayload())
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/documents/pdf", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "GENERATION_FAILED", payload.Error.Code)

	assert.Contains(t, logs.String(), "surface write rejected")
	assert.Contains(t, logs.String(), "request_id")
	assert.Contains(t, logs.String(), "RE-2026-001")
}

func TestGeneratePDFMalformedBody(t *testing.T) {
	app := testServer().App()

	req := httptest.NewRequest("POST", "/api/documents/pdf", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
