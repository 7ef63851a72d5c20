package render

import (
	"strconv"

	"docgen/pkg/models"
)

// Items-table column layout. The discount column only appears when at least
// one line carries a discount; the description column absorbs the space
// otherwise.
const (
	colPosX      = pageLeft
	colDescX     = pageLeft + 20
	colQtyX      = pageLeft + 90
	colPriceX    = pageLeft + 110
	colDiscountX = pageLeft + 135
	descWidth    = 65.0
)

// buildItemsTable draws the line-items table with its shaded header row.
func (c *Composer) buildItemsTable(s Surface, data *models.DocumentData, y float64) float64 {
	if len(data.Items) == 0 {
		return y
	}

	hasDiscount := false
	for _, item := range data.Items {
		if item.EffectiveDiscount().IsPositive() {
			hasDiscount = true
			break
		}
	}

	s.SetFillColor(240, 240, 240)
	s.Rect(pageLeft, y-3, contentW, 8, true)

	s.SetFont("B", 10)
	s.SetTextColor(0, 0, 0)
	s.Text(colPosX+2, y+2, "Position")
	s.Text(colDescX+2, y+2, "Beschreibung")
	s.Text(colQtyX+2, y+2, "Menge")
	s.Text(colPriceX+2, y+2, "Einzelpreis")
	if hasDiscount {
		s.Text(colDiscountX+2, y+2, "Rabatt")
	}
	s.TextRight(pageRight, y+2, "Gesamtpreis")

	y += 10

	s.SetFont("", 10)
	for i, item := range data.Items {
		s.Text(colPosX+8, y+2, strconv.Itoa(i+1))

		descLines := s.SplitText(item.Description, descWidth)
		for j, line := range descLines {
			s.Text(colDescX+2, y+2+float64(j)*4, line)
		}

		s.Text(colQtyX+2, y+2, item.Quantity.String()+" "+item.Unit)
		s.TextRight(colPriceX+23, y+2, FormatEUR(item.UnitPrice))

		if pct := item.EffectiveDiscount(); hasDiscount && pct.IsPositive() {
			s.SetTextColor(220, 53, 69)
			s.Text(colDiscountX+2, y+2, pct.String()+"%")
			s.SetTextColor(0, 0, 0)
		}

		s.SetFont("B", 10)
		s.TextRight(pageRight, y+2, FormatEUR(item.Total()))
		s.SetFont("", 10)

		rowHeight := float64(len(descLines)) * 4
		if rowHeight < 8 {
			rowHeight = 8
		}
		y += rowHeight

		s.SetDrawColor(200, 200, 200)
		s.Line(pageLeft, y-2, pageRight, y-2)
	}

	return y + 10
}
