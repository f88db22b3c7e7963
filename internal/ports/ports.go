package ports

import (
	"context"

	"NewsPublisher/internal/domain"
)

// NewsSearcher pulls current stories for a query from a search provider.
type NewsSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.NewsItem, error)
}

// TextGenerator produces model completions. Complete returns free text;
// CompleteJSON constrains the reply to a JSON object and decodes it into out.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, out any) error
}

// ImageSearcher queries a stock-photo provider and fetches photo bytes.
type ImageSearcher interface {
	Search(ctx context.Context, keyword string, perPage int) ([]domain.ImageCandidate, error)
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// CMS is the content-management backend surface consumed by the pipeline.
type CMS interface {
	UploadMedia(ctx context.Context, filename string, data []byte) (int, error)
	SearchTags(ctx context.Context, name string) ([]domain.Tag, error)
	CreateTag(ctx context.Context, name string) (domain.Tag, error)
	ListCategories(ctx context.Context) (map[string]int, error)
	CreatePost(ctx context.Context, post domain.PostSubmission) (domain.PublishResult, error)
}
