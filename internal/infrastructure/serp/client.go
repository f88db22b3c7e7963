package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"NewsPublisher/internal/config"
	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

// Client queries a SerpApi-compatible Google News endpoint.
type Client struct {
	endpoint string
	apiKey   string
	locale   string
	country  string
	client   *http.Client
}

var _ ports.NewsSearcher = (*Client)(nil)

// NewClient wires an HTTP client; a nil client gets a 10-second timeout default.
func NewClient(cfg config.NewsConfig, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		locale:   cfg.Locale,
		country:  cfg.Country,
		client:   client,
	}
}

type newsResult struct {
	Title  string `json:"title"`
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type searchResponse struct {
	NewsResults []newsResult `json:"news_results"`
}

// Search returns up to limit current stories for the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.NewsItem, error) {
	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid search endpoint %s: %w", c.endpoint, err)
	}

	params := endpoint.Query()
	params.Set("engine", "google_news")
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("hl", c.locale)
	params.Set("gl", c.country)
	params.Set("num", strconv.Itoa(limit))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news provider returned %s", resp.Status)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	items := make([]domain.NewsItem, 0, len(parsed.NewsResults))
	for _, r := range parsed.NewsResults {
		items = append(items, domain.NewsItem{
			Title:   orDefault(r.Title, "Untitled"),
			Source:  orDefault(r.Source.Name, "Google News"),
			Summary: orDefault(r.Snippet, "No summary available."),
			Link:    orDefault(r.Link, "#"),
		})
	}

	return items, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
