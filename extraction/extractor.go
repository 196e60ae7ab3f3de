package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ExtractedItem is one menu entry the extraction service read from a
// photo. Items arrive as drafts; the admin reviews them in the editor.
type ExtractedItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// MenuExtractor turns an uploaded menu photo into menu items. The
// actual text extraction happens in an external AI service; this is
// only its request/response contract.
type MenuExtractor interface {
	ExtractItems(ctx context.Context, imageURL string) ([]ExtractedItem, error)
}

// HTTPExtractor calls the extraction service over HTTP.
type HTTPExtractor struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPExtractor() *HTTPExtractor {
	return &HTTPExtractor{
		BaseURL: os.Getenv("MENU_EXTRACTOR_URL"),
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type extractRequest struct {
	ImageURL string `json:"image_url"`
}

type extractResponse struct {
	Items []ExtractedItem `json:"items"`
}

func (e *HTTPExtractor) ExtractItems(ctx context.Context, imageURL string) ([]ExtractedItem, error) {
	if e.BaseURL == "" {
		return nil, fmt.Errorf("MENU_EXTRACTOR_URL not set")
	}

	body, err := json.Marshal(extractRequest{ImageURL: imageURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/extract", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction service returned HTTP %d", resp.StatusCode)
	}

	var out extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode extraction response: %w", err)
	}

	return out.Items, nil
}
