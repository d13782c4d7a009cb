package extract

import (
	"strings"

	"invoice-scan/pkg/models"
)

// Keywords whose presence marks the table's column header row.
var tableHeaderKeywords = map[string]bool{
	"description": true,
	"particulars": true,
	"item":        true,
	"product":     true,
	"total":       true,
	"amount":      true,
}

// Keywords that mark the totals block under the table.
var tableFooterKeywords = map[string]bool{
	"subtotal": true,
	"total":    true,
	"tax":      true,
	"vat":      true,
}

// Footer keywords this close to the header row are the table's own column
// headers ("Total", "Amount") and must not clip the span.
const footerClearance = 50

// tableSpan is the vertical pixel range judged to contain the line-item table.
type tableSpan struct {
	Top    int
	Bottom int
}

// locateTable frames the table's vertical extent from header and footer
// keyword tokens. The second return is false when no header keywords exist,
// which means the document has no detectable table and line-item extraction
// should be skipped entirely.
func locateTable(tokens []models.Token) (tableSpan, bool) {
	headerTop := 0
	found := false
	for _, t := range tokens {
		if !tableHeaderKeywords[strings.ToLower(t.Text)] {
			continue
		}
		if !found || t.Top < headerTop {
			headerTop = t.Top
		}
		found = true
	}
	if !found {
		return tableSpan{}, false
	}

	bottom := 0
	for _, t := range tokens {
		if t.Top > bottom {
			bottom = t.Top
		}
	}

	// Tighten the bottom bound to the first totals keyword below the table.
	footerTop := 0
	footerFound := false
	for _, t := range tokens {
		if !tableFooterKeywords[strings.ToLower(t.Text)] {
			continue
		}
		if t.Top <= headerTop+footerClearance {
			continue
		}
		if !footerFound || t.Top < footerTop {
			footerTop = t.Top
		}
		footerFound = true
	}
	if footerFound {
		bottom = footerTop
	}

	return tableSpan{Top: headerTop, Bottom: bottom}, true
}
