package ocr

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"invoice-scan/pkg/models"

	"github.com/otiai10/gosseract/v2"
)

// TesseractSource recognizes text with a local Tesseract installation via
// gosseract. It needs no network or credentials, which makes it the default
// backend when Azure is not configured.
type TesseractSource struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseractSource creates a Tesseract-backed token source. Close it when
// no longer needed to release the underlying Tesseract handle.
func NewTesseractSource() (*TesseractSource, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	return &TesseractSource{client: client}, nil
}

func (s *TesseractSource) Name() string { return "tesseract" }

// Close releases Tesseract resources.
func (s *TesseractSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Tokens performs OCR on the image at path and returns word-level tokens.
// The underlying Tesseract handle is not safe for concurrent use, so calls
// are serialized.
func (s *TesseractSource) Tokens(_ context.Context, imagePath string) ([]models.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := s.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	var tokens []models.Token
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" || b.Confidence < 0 {
			continue
		}
		tokens = append(tokens, models.Token{
			Text:       text,
			Confidence: b.Confidence,
			Left:       b.Box.Min.X,
			Top:        b.Box.Min.Y,
			Width:      b.Box.Dx(),
			Height:     b.Box.Dy(),
		})
	}
	return tokens, nil
}
