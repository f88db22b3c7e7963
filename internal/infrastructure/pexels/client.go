package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"NewsPublisher/internal/config"
	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

// Client searches a Pexels-compatible stock-photo API and downloads photos.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

var _ ports.ImageSearcher = (*Client)(nil)

// NewClient wires an HTTP client; a nil client gets a 10-second timeout default.
func NewClient(cfg config.ImageConfig, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   client,
	}
}

type photo struct {
	ID           int    `json:"id"`
	Photographer string `json:"photographer"`
	Src          struct {
		Medium string `json:"medium"`
	} `json:"src"`
}

type searchResponse struct {
	Photos []photo `json:"photos"`
}

// Search returns landscape medium-size candidates for a keyword.
func (c *Client) Search(ctx context.Context, keyword string, perPage int) ([]domain.ImageCandidate, error) {
	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid image endpoint %s: %w", c.endpoint, err)
	}

	params := endpoint.Query()
	params.Set("query", keyword)
	params.Set("orientation", "landscape")
	params.Set("size", "medium")
	params.Set("per_page", strconv.Itoa(perPage))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request images: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image provider returned %s", resp.Status)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode image response: %w", err)
	}

	candidates := make([]domain.ImageCandidate, 0, len(parsed.Photos))
	for _, p := range parsed.Photos {
		candidates = append(candidates, domain.ImageCandidate{
			ID:           p.ID,
			Keyword:      keyword,
			URL:          p.Src.Medium,
			Photographer: p.Photographer,
			Alt:          fmt.Sprintf("%s - %s", keyword, p.Photographer),
		})
	}

	return candidates, nil
}

// Fetch downloads the photo bytes behind a candidate URL.
func (c *Client) Fetch(ctx context.Context, photoURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}

	return data, nil
}
