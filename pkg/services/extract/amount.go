package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var nonAmountChars = regexp.MustCompile(`[^\d.]`)

// parseAmount pulls a float out of OCR'd amount text, tolerating currency
// symbols and thousands separators. Anything unparseable degrades to 0.0.
func parseAmount(s string) float64 {
	if s == "" {
		return 0.0
	}
	clean := nonAmountChars.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0.0
	}
	return v
}

// isNumericText reports whether token text reads as a number once thousands
// separators and the decimal point are stripped. "1,250.00" qualifies,
// "Qty" and "A4" do not.
func isNumericText(s string) bool {
	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.ReplaceAll(clean, ".", "")
	if clean == "" {
		return false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// round2 rounds to two decimal places, the precision all monetary values
// carry through reconciliation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
