// Package extract reconstructs structured invoice data from the unordered,
// positioned text tokens an OCR pass produces. It re-derives the document's
// layout semantics: which tokens form the line-item table, which column each
// numeric token belongs to, and which quantity/price/total values are
// mutually consistent.
//
// Every extraction path degrades to defaults or empty collections; the
// engine never returns an error to the caller. Missing structure is a
// sparse result, not a failure.
package extract

import (
	"log/slog"

	"invoice-scan/pkg/models"
)

// Engine is the layout-aware field extraction pipeline. Construct it once
// and share it freely: extraction holds no state between documents, so one
// engine serves any number of concurrent callers.
type Engine struct {
	logger     *slog.Logger
	identity   ColumnIdentity
	defaultQty float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithColumnIdentity swaps the strategy that assigns column meanings to
// the clustered band centers.
func WithColumnIdentity(identity ColumnIdentity) Option {
	return func(e *Engine) {
		e.identity = identity
	}
}

// WithDefaultQuantity overrides the quantity assumed for rows where no
// quantity token was read. The business default is 1 item per line.
func WithDefaultQuantity(qty float64) Option {
	return func(e *Engine) {
		e.defaultQty = qty
	}
}

// NewEngine creates an extraction engine.
func NewEngine(logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		logger:     logger,
		identity:   PositionalIdentity{},
		defaultQty: 1.0,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the full pipeline over one document's tokens and composes
// the final record: header metadata and financial totals from the token
// text, line items from table-region location, column clustering, row
// assembly and arithmetic reconciliation.
func (e *Engine) Extract(tokens []models.Token) *models.InvoiceRecord {
	record := &models.InvoiceRecord{
		InvoiceMetadata: extractHeader(tokens),
		Financials:      extractFinancials(tokens),
		LineItems:       e.extractLineItems(tokens),
	}
	e.logger.Info("extraction complete",
		"tokens", len(tokens),
		"line_items", len(record.LineItems),
		"grand_total", record.Financials.GrandTotal)
	return record
}

func (e *Engine) extractLineItems(tokens []models.Token) []models.LineItem {
	span, ok := locateTable(tokens)
	if !ok {
		e.logger.Warn("no table header keywords found, skipping line items")
		return []models.LineItem{}
	}

	bands, ok := clusterColumns(tokens, span, e.identity)
	if !ok {
		e.logger.Warn("not enough numeric tokens for column clustering",
			"table_top", span.Top, "table_bottom", span.Bottom)
		return []models.LineItem{}
	}

	items := assembleRows(tokens, span, bands, e.defaultQty)
	if items == nil {
		items = []models.LineItem{}
	}
	return items
}
