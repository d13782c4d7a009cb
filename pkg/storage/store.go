// Package storage persists scanned invoices.
package storage

import (
	"fmt"

	"invoice-scan/pkg/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store wraps the invoice database.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres and migrates the invoice schema.
func Open(databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Invoice{}, &models.InvoiceLine{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save persists one extraction record and returns the stored invoice.
func (s *Store) Save(record *models.InvoiceRecord) (*models.Invoice, error) {
	inv := record.ToInvoice()
	if err := s.db.Create(&inv).Error; err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	return &inv, nil
}

// List returns all stored invoices with their line items, newest first.
func (s *Store) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.Preload("LineItems").Order("created_at desc").Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}
