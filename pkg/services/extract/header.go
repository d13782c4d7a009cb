package extract

import (
	"regexp"
	"sort"
	"strings"

	"invoice-scan/pkg/models"
)

// Label patterns per header field, tried in priority order. The first
// pattern that matches wins; later patterns are never consulted for that
// field. This is deliberately the opposite of the financial extractor,
// which takes the last textual occurrence.
var headerPatterns = map[string][]*regexp.Regexp{
	"invoice_number": {
		regexp.MustCompile(`(?i)Invoice\s*No[:.]?\s*([A-Za-z0-9\-/]+)`),
		regexp.MustCompile(`(?i)Inv\s*No[:.]?\s*([A-Za-z0-9\-/]+)`),
		regexp.MustCompile(`(?i)Bill\s*No[:.]?\s*([A-Za-z0-9\-/]+)`),
	},
	"date": {
		regexp.MustCompile(`(?i)Date[:.]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		regexp.MustCompile(`(?i)Dated[:.]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	},
	"due_date": {
		regexp.MustCompile(`(?i)Due\s*Date[:.]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	},
}

// Structural keywords that disqualify a token from being part of the
// vendor name.
var vendorStoplist = []string{"invoice", "tax", "gst", "bill", "date", "original", "copy"}

// UnknownVendor is the sentinel used when no vendor candidate survives
// the positional heuristic.
const UnknownVendor = "Unknown Vendor"

// extractHeader pattern-matches document-level metadata out of the joined
// token text and applies the positional vendor heuristic.
func extractHeader(tokens []models.Token) models.InvoiceMetadata {
	blob := joinText(tokens)

	var meta models.InvoiceMetadata
	for field, patterns := range headerPatterns {
		for _, pat := range patterns {
			m := pat.FindStringSubmatch(blob)
			if m == nil {
				continue
			}
			v := strings.TrimSpace(m[1])
			switch field {
			case "invoice_number":
				meta.InvoiceNumber = &v
			case "date":
				meta.Date = &v
			case "due_date":
				meta.DueDate = &v
			}
			break
		}
	}

	vendor := vendorName(tokens)
	meta.VendorName = &vendor

	return meta
}

// vendorName guesses the vendor from the top of the page: tokens are walked
// in reading order, only the top 20% of the vertical extent is considered,
// structural keywords and short fragments are skipped, and the first two
// survivors are joined.
func vendorName(tokens []models.Token) string {
	if len(tokens) == 0 {
		return UnknownVendor
	}

	sorted := make([]models.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].Left < sorted[j].Left
	})

	pageBottom := float64(sorted[len(sorted)-1].Top)

	var candidates []string
	limit := len(sorted)
	if limit > 10 {
		limit = 10
	}
	for _, tok := range sorted[:limit] {
		if float64(tok.Top) > pageBottom*0.2 {
			break
		}
		lower := strings.ToLower(tok.Text)
		if len(lower) <= 3 || containsAny(lower, vendorStoplist) {
			continue
		}
		candidates = append(candidates, tok.Text)
	}

	if len(candidates) == 0 {
		return UnknownVendor
	}
	if len(candidates) > 2 {
		candidates = candidates[:2]
	}
	return strings.Join(candidates, " ")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// joinText concatenates token texts in token order into the search blob
// the regex extractors run against.
func joinText(tokens []models.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}
