// Package server is the HTTP surface of the scanner: upload handling,
// temp-file lifecycle, listing, export, and health. All extraction logic
// lives behind it in the services packages.
package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"invoice-scan/pkg/models"
	"invoice-scan/pkg/services/extract"
	"invoice-scan/pkg/services/llm"
	"invoice-scan/pkg/services/ocr"
	"invoice-scan/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Server wires the scan pipeline behind HTTP routes.
type Server struct {
	engine         *extract.Engine
	source         ocr.TokenSource
	store          *storage.Store
	llm            *llm.Client
	logger         *slog.Logger
	tempDir        string
	maxUploadBytes int64
}

// New creates the HTTP server. store may be nil for a stateless deployment;
// llmClient may be nil when no alternative extraction path is configured.
func New(engine *extract.Engine, source ocr.TokenSource, store *storage.Store, llmClient *llm.Client, logger *slog.Logger, tempDir string, maxUploadBytes int64) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		engine:         engine,
		source:         source,
		store:          store,
		llm:            llmClient,
		logger:         logger,
		tempDir:        tempDir,
		maxUploadBytes: maxUploadBytes,
	}
}

// Router builds the gin router with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = s.maxUploadBytes

	r.POST("/scan-invoice", s.scanInvoice)
	r.GET("/invoices", s.listInvoices)
	r.GET("/invoices/export", s.exportInvoices)
	r.GET("/health", s.health)

	return r
}

// scanInvoice accepts a multipart image upload, enhances it, runs the token
// source and the extraction engine, persists the record when storage is
// configured, and returns the structured result. With ?mode=llm the
// language-model path replaces the layout engine.
func (s *Server) scanInvoice(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	if file.Size > s.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	if err := os.MkdirAll(s.tempDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Unique filenames so concurrent uploads cannot collide.
	name := uuid.New().String()
	rawPath := filepath.Join(s.tempDir, name+filepath.Ext(file.Filename))
	processedPath := filepath.Join(s.tempDir, name+"-processed.jpg")
	defer os.Remove(rawPath)
	defer os.Remove(processedPath)

	if err := c.SaveUploadedFile(file, rawPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ocr.EnhanceImage(rawPath, processedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tokens, err := s.source.Tokens(c.Request.Context(), processedPath)
	if err != nil {
		s.logger.Error("token source failed", "engine", s.source.Name(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if c.Query("mode") == "llm" {
		s.scanWithLLM(c, tokens)
		return
	}

	record := s.engine.Extract(tokens)

	if s.store != nil {
		if _, err := s.store.Save(record); err != nil {
			s.logger.Error("failed to persist invoice", "error", err)
		}
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) scanWithLLM(c *gin.Context, tokens []models.Token) {
	if s.llm == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "llm extraction is not configured"})
		return
	}
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}
	result, err := s.llm.Extract(c.Request.Context(), strings.Join(texts, " "))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) listInvoices(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage is not configured"})
		return
	}
	invoices, err := s.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// exportInvoices streams the stored invoices as an xlsx workbook with a
// summary sheet and a line-item sheet.
func (s *Server) exportInvoices(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage is not configured"})
		return
	}
	invoices, err := s.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Invoices"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"ID", "Invoice Number", "Date", "Due Date", "Vendor", "Customer", "Subtotal", "Tax", "Grand Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, inv := range invoices {
		values := []any{inv.ID, inv.InvoiceNumber, inv.Date, inv.DueDate, inv.VendorName, inv.CustomerName, inv.Subtotal, inv.Tax, inv.GrandTotal}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	itemSheet := "Line Items"
	f.NewSheet(itemSheet)
	itemHeaders := []string{"Invoice ID", "Description", "Quantity", "Unit Price", "Line Total"}
	for i, h := range itemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(itemSheet, cell, h)
	}
	row := 2
	for _, inv := range invoices {
		for _, li := range inv.LineItems {
			values := []any{inv.ID, li.Description, li.Quantity, li.UnitPrice, li.LineTotal}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(itemSheet, cell, v)
			}
			row++
		}
	}

	c.Header("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		s.logger.Error("failed to write export", "error", err)
	}
}

func (s *Server) health(c *gin.Context) {
	status := gin.H{
		"status": "ok",
		"engine": s.source.Name(),
	}
	if s.llm != nil {
		status["model"] = s.llm.Model()
	}
	c.JSON(http.StatusOK, status)
}
