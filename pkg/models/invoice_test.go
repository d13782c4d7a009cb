package models

import "testing"

func TestTokenCenterX(t *testing.T) {
	tok := Token{Left: 100, Width: 50}
	if got := tok.CenterX(); got != 125 {
		t.Errorf("CenterX = %v, want 125", got)
	}
	odd := Token{Left: 10, Width: 25}
	if got := odd.CenterX(); got != 22.5 {
		t.Errorf("CenterX = %v, want 22.5", got)
	}
}

func TestToInvoice(t *testing.T) {
	num := "INV-7"
	vendor := "Acme Corp"
	record := InvoiceRecord{
		InvoiceMetadata: InvoiceMetadata{InvoiceNumber: &num, VendorName: &vendor},
		Financials:      Financials{Tax: 5.00, GrandTotal: 105.00},
		LineItems: []LineItem{
			{Description: "Widget", Quantity: 2, UnitPrice: 50, LineTotal: 100},
		},
	}

	inv := record.ToInvoice()
	if inv.InvoiceNumber != "INV-7" || inv.VendorName != "Acme Corp" {
		t.Errorf("metadata not mapped: %+v", inv)
	}
	if inv.Date != "" || inv.CustomerName != "" {
		t.Errorf("nil fields must map to empty strings: %+v", inv)
	}
	if inv.GrandTotal != 105.00 || inv.Tax != 5.00 {
		t.Errorf("financials not mapped: %+v", inv)
	}
	if len(inv.LineItems) != 1 || inv.LineItems[0].LineTotal != 100 {
		t.Errorf("line items not mapped: %+v", inv.LineItems)
	}
}
