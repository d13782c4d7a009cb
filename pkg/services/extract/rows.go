package extract

import (
	"math"
	"sort"
	"strings"

	"invoice-scan/pkg/models"
)

const (
	// Tokens within the same 10px vertical bin belong to one logical row.
	rowBinSize = 10

	// Anything this far left of the quantity band is description text.
	descriptionMargin = 50

	// A numeric token further than this from every band center is noise.
	bandAssignRadius = 100
)

// rowDraft accumulates a row's tokens before reconciliation. The numeric
// fields stay nil until a token is assigned to the band, keeping "absent"
// distinguishable from a read value of 0 or 1.
type rowDraft struct {
	desc  []string
	qty   *float64
	price *float64
	total *float64
}

// assembleRows groups table-span tokens into rows, assigns each token to a
// column band or to the description, and reconciles the numeric triple of
// every row that produced a total. Rows without a total-band token are
// partial or garbage reads and are dropped without comment.
func assembleRows(tokens []models.Token, span tableSpan, bands ColumnBands, defaultQty float64) []models.LineItem {
	bins := make(map[int][]models.Token)
	for _, t := range tokens {
		if t.Top <= span.Top || t.Top >= span.Bottom {
			continue
		}
		bin := t.Top / rowBinSize * rowBinSize
		bins[bin] = append(bins[bin], t)
	}

	order := make([]int, 0, len(bins))
	for bin := range bins {
		order = append(order, bin)
	}
	sort.Ints(order)

	var items []models.LineItem
	for _, bin := range order {
		draft := classifyRow(bins[bin], bands)
		if draft.total == nil {
			continue
		}
		items = append(items, reconcile(draft, defaultQty))
	}
	return items
}

// classifyRow sorts a row's tokens into description text and column bands.
func classifyRow(row []models.Token, bands ColumnBands) rowDraft {
	var draft rowDraft

	for _, tok := range row {
		cx := tok.CenterX()

		// Well left of the quantity band means description, numeric or not.
		if cx < bands.Quantity-descriptionMargin {
			draft.desc = append(draft.desc, tok.Text)
			continue
		}

		dQty := math.Abs(cx - bands.Quantity)
		dPrice := math.Abs(cx - bands.UnitPrice)
		dTotal := math.Abs(cx - bands.Total)
		minDist := math.Min(dQty, math.Min(dPrice, dTotal))

		if isNumericText(tok.Text) && minDist < bandAssignRadius {
			// Ties break toward quantity, then price, by evaluation order.
			v := parseAmount(tok.Text)
			switch {
			case minDist == dQty:
				if draft.qty == nil {
					draft.qty = &v
				}
			case minDist == dPrice:
				if draft.price == nil {
					draft.price = &v
				}
			default:
				if draft.total == nil {
					draft.total = &v
				}
			}
			continue
		}

		draft.desc = append(draft.desc, tok.Text)
	}

	return draft
}

// reconcile resolves the quantity/price/total triple of one row. The read
// total is the least trusted of the three: a single misread digit in a long
// amount is far more likely than in the short quantity, so when both
// factors are present the total is recomputed from them.
func reconcile(draft rowDraft, defaultQty float64) models.LineItem {
	qty := defaultQty
	if draft.qty != nil {
		qty = *draft.qty
	}
	price := 0.0
	if draft.price != nil {
		price = *draft.price
	}
	total := 0.0
	if draft.total != nil {
		total = *draft.total
	}

	switch {
	case qty > 0 && price > 0:
		total = round2(qty * price)
	case price == 0 && qty > 0 && total > 0:
		price = round2(total / qty)
	}

	return models.LineItem{
		Description: strings.Join(draft.desc, " "),
		Quantity:    qty,
		UnitPrice:   price,
		LineTotal:   total,
	}
}
