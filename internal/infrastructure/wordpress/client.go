package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"NewsPublisher/internal/config"
	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

// Client talks to the WordPress REST API with basic application-password auth.
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

var _ ports.CMS = (*Client)(nil)

// NewClient wires an HTTP client; a nil client gets a 30-second timeout default.
func NewClient(cfg config.WordPressConfig, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.AppPassword,
		client:   client,
	}
}

type mediaResponse struct {
	ID int `json:"id"`
}

type tagResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type categoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type postRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	Categories    []int  `json:"categories"`
	Tags          []int  `json:"tags"`
	FeaturedMedia int    `json:"featured_media,omitempty"`
}

type postResponse struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// UploadMedia posts binary image content to the media library and returns
// the assigned attachment id on 201.
func (c *Client) UploadMedia(ctx context.Context, filename string, data []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/wp-json/wp/v2/media", bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("upload media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("media upload returned %s: %s", resp.Status, backendMessage(resp.Body))
	}

	var media mediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return 0, fmt.Errorf("decode media response: %w", err)
	}

	return media.ID, nil
}

// SearchTags looks tags up by name.
func (c *Client) SearchTags(ctx context.Context, name string) ([]domain.Tag, error) {
	endpoint := fmt.Sprintf("%s/wp-json/wp/v2/tags?search=%s", c.baseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search tags: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tag search returned %s", resp.Status)
	}

	var found []tagResponse
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return nil, fmt.Errorf("decode tag response: %w", err)
	}

	tags := make([]domain.Tag, 0, len(found))
	for _, t := range found {
		tags = append(tags, domain.Tag{ID: t.ID, Name: t.Name})
	}
	return tags, nil
}

// CreateTag registers a new tag and returns it with its assigned id.
func (c *Client) CreateTag(ctx context.Context, name string) (domain.Tag, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return domain.Tag{}, fmt.Errorf("marshal tag payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/wp-json/wp/v2/tags", bytes.NewReader(body))
	if err != nil {
		return domain.Tag{}, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("create tag: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return domain.Tag{}, fmt.Errorf("tag create returned %s: %s", resp.Status, backendMessage(resp.Body))
	}

	var created tagResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return domain.Tag{}, fmt.Errorf("decode tag response: %w", err)
	}

	return domain.Tag{ID: created.ID, Name: created.Name}, nil
}

// ListCategories returns the backend's category map keyed by name.
func (c *Client) ListCategories(ctx context.Context) (map[string]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/wp-json/wp/v2/categories", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("category list returned %s", resp.Status)
	}

	var found []categoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return nil, fmt.Errorf("decode category response: %w", err)
	}

	categories := make(map[string]int, len(found))
	for _, cat := range found {
		categories[cat.Name] = cat.ID
	}
	return categories, nil
}

// CreatePost submits the final article with status publish and returns the
// post id and permalink on 201.
func (c *Client) CreatePost(ctx context.Context, post domain.PostSubmission) (domain.PublishResult, error) {
	payload := postRequest{
		Title:         post.Title,
		Content:       post.Content,
		Status:        "publish",
		Categories:    post.CategoryIDs,
		Tags:          post.TagIDs,
		FeaturedMedia: post.FeaturedMedia,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.PublishResult{}, fmt.Errorf("marshal post payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/wp-json/wp/v2/posts", bytes.NewReader(body))
	if err != nil {
		return domain.PublishResult{}, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.PublishResult{}, fmt.Errorf("publish post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return domain.PublishResult{}, fmt.Errorf("publish returned %s: %s", resp.Status, backendMessage(resp.Body))
	}

	var created postResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return domain.PublishResult{}, fmt.Errorf("decode post response: %w", err)
	}

	return domain.PublishResult{PostID: created.ID, Permalink: created.Link}, nil
}

// backendMessage extracts the "message" field WordPress puts in error payloads.
func backendMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return "unreadable error body"
	}

	var detail struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &detail); err == nil && detail.Message != "" {
		return detail.Message
	}

	trimmed := strings.TrimSpace(string(raw))
	if len(trimmed) > 200 {
		trimmed = trimmed[:200] + "..."
	}
	return trimmed
}
