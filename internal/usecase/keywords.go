package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"NewsPublisher/internal/ports"
)

// KeywordExtractor derives the topical keywords shared by image search and
// tagging.
type KeywordExtractor struct {
	generator ports.TextGenerator
	topic     string
	fallback  []string
	logger    *slog.Logger
}

// NewKeywordExtractor wires the generator and the topic's fixed fallback set.
func NewKeywordExtractor(generator ports.TextGenerator, topic string, fallback []string, log *slog.Logger) *KeywordExtractor {
	return &KeywordExtractor{
		generator: generator,
		topic:     topic,
		fallback:  fallback,
		logger:    log,
	}
}

// Extract requests 3-5 comma-separated keywords from the article body.
// It never returns an empty set: any failure yields the fixed fallback.
func (k *KeywordExtractor) Extract(ctx context.Context, body string) []string {
	system := "You are a content analyst and keyword extractor."
	user := fmt.Sprintf(
		"Analyze the following %s blog post content. "+
			"Identify the 3 to 5 most relevant and specific keywords for searching stock images. "+
			"Reply ONLY with the keywords separated by commas, with no introductory phrases or explanations. "+
			"Example: 'Bitcoin, Cryptocurrency, Blockchain, Investment'\n\nContent:\n\n%s",
		k.topic, truncateRunes(body, bodyPromptLimit))

	reply, err := k.generator.Complete(ctx, system, user, 0)
	if err != nil {
		if k.logger != nil {
			k.logger.Warn("keyword extraction failed, using fallback set", "error", err)
		}
		return append([]string(nil), k.fallback...)
	}

	keywords := splitKeywords(reply)
	if len(keywords) == 0 {
		return append([]string(nil), k.fallback...)
	}
	return keywords
}

// splitKeywords parses a comma-separated reply, trimming and deduplicating
// while preserving case and order.
func splitKeywords(reply string) []string {
	seen := map[string]struct{}{}
	var keywords []string
	for _, part := range strings.Split(reply, ",") {
		keyword := strings.Trim(strings.TrimSpace(part), "'\"")
		if keyword == "" {
			continue
		}
		lower := strings.ToLower(keyword)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		keywords = append(keywords, keyword)
	}
	return keywords
}
