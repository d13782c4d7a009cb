// Package ocr provides the token sources that feed the extraction engine:
// pluggable recognition backends that turn an invoice image into positioned
// word tokens, plus the image enhancement applied before recognition.
package ocr

import (
	"context"

	"invoice-scan/pkg/models"
)

// TokenSource produces the positioned text tokens for one document image.
// Implementations are constructed once at startup and passed by reference
// into the pipeline; the caller owns their lifecycle.
type TokenSource interface {
	// Tokens runs recognition over the image at path and returns the
	// discovered tokens in discovery order.
	Tokens(ctx context.Context, imagePath string) ([]models.Token, error)

	// Name identifies the backend for health reporting.
	Name() string
}
