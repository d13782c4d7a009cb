// Package llm is the lower-rigor alternative to layout-aware extraction:
// the joined OCR text is handed to a local language model, which returns
// the same record shape without any arithmetic reconciliation. It trades
// determinism for flexibility on documents the layout engine cannot read.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const extractionPrompt = `You are an intelligent invoice data extractor.
Extract the following fields from the OCR text below and return ONLY valid JSON.

Fields to extract:
- invoice_number (string)
- date (string, ISO format YYYY-MM-DD if possible)
- due_date (string)
- vendor_name (string)
- customer_name (string)
- grand_total (float)
- tax (float)
- line_items (list of objects with: description, quantity, unit_price, line_total)

OCR TEXT:
%s

JSON OUTPUT:
`

// Client calls an Ollama server's chat API for structured extraction.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates an Ollama extraction client.
func NewClient(baseURL, model string) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Model returns the model name the client is configured for.
func (c *Client) Model() string { return c.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Extract sends the OCR text to the model and returns the parsed JSON
// object the model produced.
func (c *Client) Extract(ctx context.Context, ocrText string) (map[string]any, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(extractionPrompt, ocrText)},
		},
		Stream: false,
		Format: "json",
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama api status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return cleanJSON(chatResp.Message.Content)
}

var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// cleanJSON parses the model output, salvaging the first JSON block when
// the model wrapped it in prose or markdown fences.
func cleanJSON(text string) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err == nil {
		return out, nil
	}
	if block := jsonBlockRe.FindString(text); block != "" {
		if err := json.Unmarshal([]byte(block), &out); err == nil {
			return out, nil
		}
	}
	return nil, fmt.Errorf("model output is not valid JSON")
}
