package models_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen/pkg/models"
)

func TestLineItemTotal(t *testing.T) {
	tests := []struct {
		name string
		item models.LineItem
		want string
	}{
		{
			name: "no discount",
			item: models.LineItem{
				Quantity:  decimal.NewFromInt(10),
				UnitPrice: decimal.NewFromInt(100),
			},
			want: "1000",
		},
		{
			name: "percentage discount",
			item: models.LineItem{
				Quantity:        decimal.NewFromInt(2),
				UnitPrice:       decimal.NewFromInt(50),
				DiscountPercent: decimal.NewFromInt(10),
			},
			want: "90",
		},
		{
			name: "legacy discount field",
			item: models.LineItem{
				Quantity:  decimal.NewFromInt(2),
				UnitPrice: decimal.NewFromInt(50),
				Discount:  decimal.NewFromInt(10),
			},
			want: "90",
		},
		{
			name: "current field wins over legacy",
			item: models.LineItem{
				Quantity:        decimal.NewFromInt(2),
				UnitPrice:       decimal.NewFromInt(50),
				DiscountPercent: decimal.NewFromInt(20),
				Discount:        decimal.NewFromInt(10),
			},
			want: "80",
		},
		{
			name: "fractional quantity",
			item: models.LineItem{
				Quantity:  decimal.NewFromFloat(1.5),
				UnitPrice: decimal.NewFromFloat(99.9),
			},
			want: "149.85",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Total().String())
		})
	}
}

func TestDocumentDataJSONRoundTrip(t *testing.T) {
	raw := []byte(`{
		"documentType": "invoice",
		"documentNumber": "RE-2026-001",
		"date": "2026-03-15",
		"company": {"name": "Muster GmbH", "address": {"street": "Musterstraße 1", "zipCode": "10115", "city": "Berlin"}},
		"customer": {"name": "Kunde AG", "address": {"street": "Kundenweg 2", "zipCode": "20095", "city": "Hamburg"}},
		"items": [{"description": "Beratung", "quantity": 10, "unit": "Std.", "unitPrice": 100}],
		"subtotal": 1000,
		"taxRate": 19,
		"taxAmount": 190,
		"total": 1190,
		"taxRule": "DE_TAXABLE"
	}`)

	var data models.DocumentData
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.Equal(t, models.DocumentTypeInvoice, data.DocumentType)
	assert.Equal(t, models.TaxRuleDETaxable, data.TaxRule)
	assert.True(t, data.Total.Equal(decimal.NewFromInt(1190)))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "1000", data.Items[0].Total().String())
}

func TestLineItemLegacyDiscountKey(t *testing.T) {
	raw := []byte(`{"description": "Beratung", "quantity": 2, "unit": "Std.", "unitPrice": 50, "discount": 10}`)

	var item models.LineItem
	require.NoError(t, json.Unmarshal(raw, &item))

	assert.Equal(t, "10", item.EffectiveDiscount().String())
	assert.Equal(t, "90", item.Total().String())
}
