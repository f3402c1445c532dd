// Package ner provides an HTTP client for an external named-entity
// recognition service. The engine only needs person-labeled spans; the model
// behind the endpoint is a black box and can be swapped without touching
// extraction logic.
package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Satyapragyan-pradhan/pii-extractor/internal/extract"
)

// Client implements extract.EntityRecognizer against an HTTP endpoint that
// accepts {"text": ...} and responds with {"entities": [{"text","label"}]}.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a recognizer client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type recognizeRequest struct {
	Text string `json:"text"`
}

type recognizeResponse struct {
	Entities []extract.Entity `json:"entities"`
}

// Recognize posts the text to the recognition service and returns its
// labeled spans. Any transport or decoding error is returned to the caller;
// the engine treats it as "no spans".
func (c *Client) Recognize(ctx context.Context, text string) ([]extract.Entity, error) {
	body, err := json.Marshal(recognizeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode recognize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build recognize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call recognizer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recognizer returned status %d", resp.StatusCode)
	}

	var decoded recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode recognizer response: %w", err)
	}
	return decoded.Entities, nil
}
