package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

const fallbackDigestTemperature = 0.5

// Collector gathers the day's stories: a search provider first, a generated
// digest when the search yields nothing.
type Collector struct {
	searcher  ports.NewsSearcher
	generator ports.TextGenerator
	query     string
	limit     int
	keep      int
	logger    *slog.Logger
}

// NewCollector wires both news paths for the configured topic.
func NewCollector(searcher ports.NewsSearcher, generator ports.TextGenerator, query string, limit, keep int, log *slog.Logger) *Collector {
	return &Collector{
		searcher:  searcher,
		generator: generator,
		query:     query,
		limit:     limit,
		keep:      keep,
		logger:    log,
	}
}

// Collect returns a non-empty digest or an error when neither path produced
// any stories. The digest is capped at the configured keep count.
func (c *Collector) Collect(ctx context.Context) (domain.NewsDigest, error) {
	items, err := c.searcher.Search(ctx, c.query, c.limit)
	if err != nil {
		c.warn("news search failed, falling back to generated digest", "error", err)
		items = c.generateDigest(ctx)
	} else if len(items) == 0 {
		c.warn("news search returned no stories, falling back to generated digest")
		items = c.generateDigest(ctx)
	}

	if len(items) == 0 {
		return domain.NewsDigest{}, fmt.Errorf("no news available for %q", c.query)
	}

	if len(items) > c.keep {
		items = items[:c.keep]
	}

	return domain.NewsDigest{Items: items}, nil
}

// generateDigest asks the model to fabricate a plausible digest when the
// search provider is unavailable.
func (c *Collector) generateDigest(ctx context.Context) []domain.NewsItem {
	system := "You are a financial news research assistant."
	user := fmt.Sprintf(
		"Research the %d most important recent news stories about %s. "+
			"Reply with exactly one story per line in the format: Title | Source | Summary | Link. "+
			"The summary must be 2-3 sentences. Do not add numbering or any other text.",
		c.keep, c.query)

	reply, err := c.generator.Complete(ctx, system, user, fallbackDigestTemperature)
	if err != nil {
		c.warn("fallback digest generation failed", "error", err)
		return nil
	}

	return parseDigestLines(reply)
}

// parseDigestLines reads "Title | Source | Summary | Link" lines, skipping
// anything malformed.
func parseDigestLines(reply string) []domain.NewsItem {
	var items []domain.NewsItem
	for _, line := range strings.Split(reply, "\n") {
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}

		item := domain.NewsItem{
			Title:   strings.TrimSpace(parts[0]),
			Source:  strings.TrimSpace(parts[1]),
			Summary: strings.TrimSpace(parts[2]),
			Link:    "#",
		}
		if len(parts) > 3 {
			if link := strings.TrimSpace(parts[3]); link != "" {
				item.Link = link
			}
		}

		if item.Title == "" || item.Summary == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (c *Collector) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
