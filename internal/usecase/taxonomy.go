package usecase

import (
	"context"
	"log/slog"
	"strings"

	"NewsPublisher/internal/ports"
)

const (
	uncategorizedName = "Uncategorized"
	uncategorizedID   = 1
)

// TaxonomyResolver maps keywords to backend tag ids and picks the post
// category.
type TaxonomyResolver struct {
	cms      ports.CMS
	category string
	logger   *slog.Logger
}

// NewTaxonomyResolver wires the backend and the forced category name.
func NewTaxonomyResolver(cms ports.CMS, category string, log *slog.Logger) *TaxonomyResolver {
	return &TaxonomyResolver{cms: cms, category: category, logger: log}
}

// ResolveTags reuses an existing tag when its name matches the keyword
// case-insensitively, and creates one otherwise. A keyword that cannot be
// resolved is logged and skipped.
func (t *TaxonomyResolver) ResolveTags(ctx context.Context, keywords []string) []int {
	var ids []int
	for _, keyword := range keywords {
		found, err := t.cms.SearchTags(ctx, keyword)
		if err != nil {
			t.warn("tag search failed", "keyword", keyword, "error", err)
			continue
		}

		if len(found) > 0 && strings.EqualFold(found[0].Name, keyword) {
			ids = append(ids, found[0].ID)
			continue
		}

		created, err := t.cms.CreateTag(ctx, keyword)
		if err != nil {
			t.warn("tag create failed", "keyword", keyword, "error", err)
			continue
		}
		ids = append(ids, created.ID)
	}
	return ids
}

// ResolveCategory always forces the topic category; when it is absent the
// backend's uncategorized id is used, defaulting to 1. Content-addressed
// category inference is deliberately not attempted.
func (t *TaxonomyResolver) ResolveCategory(ctx context.Context) []int {
	categories, err := t.cms.ListCategories(ctx)
	if err != nil {
		t.warn("category list failed, using default category", "error", err)
		return []int{uncategorizedID}
	}

	if id, ok := categories[t.category]; ok {
		return []int{id}
	}

	t.warn("topic category not found, using uncategorized", "category", t.category)
	if id, ok := categories[uncategorizedName]; ok {
		return []int{id}
	}
	return []int{uncategorizedID}
}

func (t *TaxonomyResolver) warn(msg string, args ...any) {
	if t.logger != nil {
		t.logger.Warn(msg, args...)
	}
}
