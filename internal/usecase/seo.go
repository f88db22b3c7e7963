package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

// bodyPromptLimit caps how much of the article body is handed to prompts.
const bodyPromptLimit = 2000

// Enricher derives SEO metadata from a drafted article.
type Enricher struct {
	generator ports.TextGenerator
	logger    *slog.Logger
}

// NewEnricher wires the generator.
func NewEnricher(generator ports.TextGenerator, log *slog.Logger) *Enricher {
	return &Enricher{generator: generator, logger: log}
}

type seoReply struct {
	MetaDescription string `json:"meta_description"`
	SeoTitle        string `json:"seo_title"`
}

// Enrich requests a meta description and an optionally improved title.
// Failures degrade to an empty description and the original title.
func (e *Enricher) Enrich(ctx context.Context, article domain.Article) domain.SeoMeta {
	system := "You are an SEO specialist."
	user := fmt.Sprintf(
		"Based on the post title and content, produce a meta description of at most 160 characters "+
			"and an SEO-optimized title (if the original can be improved). "+
			"Reply ONLY with a JSON object in this format: "+
			`{"meta_description": "...", "seo_title": "..."}`+
			"\n\nOriginal title: %s\n\nContent (first %d characters):\n%s",
		article.Title, bodyPromptLimit, truncateRunes(article.Body, bodyPromptLimit))

	var reply seoReply
	if err := e.generator.CompleteJSON(ctx, system, user, &reply); err != nil {
		if e.logger != nil {
			e.logger.Warn("seo enrichment failed, keeping original title", "error", err)
		}
		return domain.SeoMeta{SeoTitle: article.Title}
	}

	if reply.SeoTitle == "" {
		reply.SeoTitle = article.Title
	}

	return domain.SeoMeta{
		MetaDescription: reply.MetaDescription,
		SeoTitle:        reply.SeoTitle,
	}
}

// truncateRunes shortens s to at most limit runes without splitting one.
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
