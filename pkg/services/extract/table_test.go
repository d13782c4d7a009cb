package extract

import (
	"testing"

	"invoice-scan/pkg/models"
)

func TestLocateTableNoHeaders(t *testing.T) {
	tokens := []models.Token{
		tok("Acme", 50, 10),
		tok("something", 50, 100),
		tok("42.00", 400, 200),
	}
	if _, ok := locateTable(tokens); ok {
		t.Fatal("expected no table without header keywords")
	}
}

func TestLocateTableBounds(t *testing.T) {
	tokens := []models.Token{
		tok("Acme", 50, 10),
		tok("Description", 50, 100),
		tok("Qty", 300, 100),
		tok("Widget", 50, 150),
		tok("Subtotal", 400, 300),
		tok("Thanks", 50, 380),
	}
	span, ok := locateTable(tokens)
	if !ok {
		t.Fatal("expected a table")
	}
	if span.Top != 100 {
		t.Errorf("top = %d, want 100", span.Top)
	}
	if span.Bottom != 300 {
		t.Errorf("bottom = %d, want 300 (tightened to the footer)", span.Bottom)
	}
}

func TestLocateTableIgnoresOwnTotalHeader(t *testing.T) {
	// "Total" doubles as a column header and a footer keyword. Within
	// 50px of the header row it must not clip the table span.
	tokens := []models.Token{
		tok("Description", 50, 100),
		tok("Total", 500, 100),
		tok("Widget", 50, 160),
		tok("Total", 400, 320),
	}
	span, ok := locateTable(tokens)
	if !ok {
		t.Fatal("expected a table")
	}
	if span.Top != 100 {
		t.Errorf("top = %d, want 100", span.Top)
	}
	if span.Bottom != 320 {
		t.Errorf("bottom = %d, want 320, the footer Total", span.Bottom)
	}
}

func TestLocateTableNoFooterFallsBackToPageBottom(t *testing.T) {
	tokens := []models.Token{
		tok("Item", 50, 80),
		tok("Widget", 50, 140),
		tok("5.00", 400, 140),
		tok("notes", 50, 410),
	}
	span, ok := locateTable(tokens)
	if !ok {
		t.Fatal("expected a table")
	}
	if span.Bottom != 410 {
		t.Errorf("bottom = %d, want the maximum token top 410", span.Bottom)
	}
}
