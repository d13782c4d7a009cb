package extract

import (
	"regexp"

	"invoice-scan/pkg/models"
)

// Amounts must carry exactly two decimal digits to count as money.
const amountPattern = `[\d,]+\.\d{2}`

var (
	grandTotalRe = regexp.MustCompile(`(?i)(Total|Grand\s*Total|Amount\s*Due)[:.]?\s*(` + amountPattern + `)`)
	taxRe        = regexp.MustCompile(`(?i)(Tax|GST|VAT)[:.]?\s*(` + amountPattern + `)`)
)

// extractFinancials pulls monetary totals from the joined token text.
// When a label matches more than once the last occurrence wins: totals at
// the bottom of the document are the authoritative ones, and the table's
// own "Total" column header tends to appear first.
func extractFinancials(tokens []models.Token) models.Financials {
	blob := joinText(tokens)
	fin := models.Financials{}

	if matches := grandTotalRe.FindAllStringSubmatch(blob, -1); len(matches) > 0 {
		fin.GrandTotal = parseAmount(matches[len(matches)-1][2])
	}
	if matches := taxRe.FindAllStringSubmatch(blob, -1); len(matches) > 0 {
		fin.Tax = parseAmount(matches[len(matches)-1][2])
	}

	return fin
}
