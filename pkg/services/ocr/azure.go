package ocr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"invoice-scan/pkg/models"

	"github.com/Azure/azure-sdk-for-go/services/cognitiveservices/v3.0/computervision"
	"github.com/Azure/go-autorest/autorest"
)

// AzureSource recognizes printed text through the Azure Computer Vision
// OCR API and emits one token per recognized word.
type AzureSource struct {
	client      *computervision.BaseClient
	apiEndpoint string
}

// NewAzureSource creates a token source backed by Azure Computer Vision.
func NewAzureSource(endpoint, apiKey string) *AzureSource {
	client := computervision.New(endpoint)
	client.Authorizer = autorest.NewCognitiveServicesAuthorizer(apiKey)

	return &AzureSource{
		client:      &client,
		apiEndpoint: endpoint,
	}
}

func (s *AzureSource) Name() string { return "azure" }

// Tokens performs OCR on the image at path and returns word-level tokens.
func (s *AzureSource) Tokens(ctx context.Context, imagePath string) ([]models.Token, error) {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	imageReader := io.NopCloser(bytes.NewReader(imageData))

	result, err := s.client.RecognizePrintedTextInStream(
		ctx,
		true,
		imageReader,
		computervision.OcrLanguages(computervision.En),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	return tokensFromOCRResult(result), nil
}

// tokensFromOCRResult flattens the region/line/word hierarchy of an Azure
// OCR result into positioned word tokens.
func tokensFromOCRResult(result computervision.OcrResult) []models.Token {
	var tokens []models.Token
	if result.Regions == nil {
		return tokens
	}
	for _, region := range *result.Regions {
		if region.Lines == nil {
			continue
		}
		for _, line := range *region.Lines {
			if line.Words == nil {
				continue
			}
			for _, word := range *line.Words {
				if word.Text == nil || strings.TrimSpace(*word.Text) == "" {
					continue
				}
				box, ok := parseBoundingBox(word.BoundingBox)
				if !ok {
					continue
				}
				tokens = append(tokens, models.Token{
					Text: strings.TrimSpace(*word.Text),
					// The printed-text API reports no per-word confidence.
					Confidence: 100,
					Left:       box[0],
					Top:        box[1],
					Width:      box[2],
					Height:     box[3],
				})
			}
		}
	}
	return tokens
}

// parseBoundingBox parses Azure's "left,top,width,height" box string.
func parseBoundingBox(s *string) ([4]int, bool) {
	var box [4]int
	if s == nil {
		return box, false
	}
	parts := strings.Split(*s, ",")
	if len(parts) < 4 {
		return box, false
	}
	for i := 0; i < 4; i++ {
		val, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return box, false
		}
		box[i] = val
	}
	return box, true
}
