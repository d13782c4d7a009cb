package models

import (
	"gorm.io/gorm"
)

// Token represents one recognized text fragment with its position from OCR.
// Positions are in pixels, confidence on a 0-100 scale. Tokens are produced
// once by a token source and never mutated afterwards.
type Token struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Left       int     `json:"left"`
	Top        int     `json:"top"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

// CenterX returns the horizontal center of the token's bounding box.
// Column logic works off centers rather than left edges.
func (t Token) CenterX() float64 {
	return float64(t.Left) + float64(t.Width)/2
}

// InvoiceMetadata holds document-level header fields. Nil means the field
// was not found; absence is a sparse result, not an error.
type InvoiceMetadata struct {
	InvoiceNumber *string `json:"invoice_number"`
	Date          *string `json:"date"`
	DueDate       *string `json:"due_date"`
	VendorName    *string `json:"vendor_name"`
	CustomerName  *string `json:"customer_name"`
}

// Financials holds the monetary totals read from the document.
type Financials struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
}

// LineItem is one reconciled table row.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// InvoiceRecord is the structured result of one extraction pass. It is built
// once per document and owned exclusively by the caller that receives it.
type InvoiceRecord struct {
	InvoiceMetadata InvoiceMetadata `json:"invoice_metadata"`
	Financials      Financials      `json:"financials"`
	LineItems       []LineItem      `json:"line_items"`
}

// Invoice is the persisted form of a scanned invoice.
type Invoice struct {
	gorm.Model
	InvoiceNumber string
	Date          string
	DueDate       string
	VendorName    string
	CustomerName  string
	Subtotal      float64
	Tax           float64
	GrandTotal    float64
	LineItems     []InvoiceLine `gorm:"constraint:OnDelete:CASCADE"`
}

// InvoiceLine is one persisted line item belonging to an Invoice.
type InvoiceLine struct {
	gorm.Model
	InvoiceID   uint
	Description string
	Quantity    float64
	UnitPrice   float64
	LineTotal   float64
}

// ToInvoice maps an extraction record onto the persisted shape.
func (r *InvoiceRecord) ToInvoice() Invoice {
	inv := Invoice{
		Subtotal:   r.Financials.Subtotal,
		Tax:        r.Financials.Tax,
		GrandTotal: r.Financials.GrandTotal,
	}
	if r.InvoiceMetadata.InvoiceNumber != nil {
		inv.InvoiceNumber = *r.InvoiceMetadata.InvoiceNumber
	}
	if r.InvoiceMetadata.Date != nil {
		inv.Date = *r.InvoiceMetadata.Date
	}
	if r.InvoiceMetadata.DueDate != nil {
		inv.DueDate = *r.InvoiceMetadata.DueDate
	}
	if r.InvoiceMetadata.VendorName != nil {
		inv.VendorName = *r.InvoiceMetadata.VendorName
	}
	if r.InvoiceMetadata.CustomerName != nil {
		inv.CustomerName = *r.InvoiceMetadata.CustomerName
	}
	for _, li := range r.LineItems {
		inv.LineItems = append(inv.LineItems, InvoiceLine{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			LineTotal:   li.LineTotal,
		})
	}
	return inv
}
