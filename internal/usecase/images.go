package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

const (
	maxConcurrentSearches = 4

	// defaultMaxBodyImages bounds the body selection when no limit is configured.
	defaultMaxBodyImages = 3
)

// Sourcer collects image candidates for every keyword.
type Sourcer struct {
	searcher ports.ImageSearcher
	perPage  int
	logger   *slog.Logger
}

// NewSourcer wires the stock-photo searcher.
func NewSourcer(searcher ports.ImageSearcher, perPage int, log *slog.Logger) *Sourcer {
	return &Sourcer{searcher: searcher, perPage: perPage, logger: log}
}

// Collect searches every keyword concurrently and returns a flat candidate
// list. A failed keyword is logged and skipped; the list is empty only when
// every search fails. Results are ordered by keyword position and then by
// candidate id, so the output does not depend on completion order.
func (s *Sourcer) Collect(ctx context.Context, keywords []string) []domain.ImageCandidate {
	perKeyword := make([][]domain.ImageCandidate, len(keywords))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSearches)

	for i, keyword := range keywords {
		i, keyword := i, keyword
		g.Go(func() error {
			found, err := s.searcher.Search(ctx, keyword, s.perPage)
			if err != nil {
				if s.logger != nil {
					s.logger.Warn("image search failed for keyword", "keyword", keyword, "error", err)
				}
				return nil // partial results are acceptable
			}
			perKeyword[i] = found
			return nil
		})
	}
	_ = g.Wait()

	var candidates []domain.ImageCandidate
	for _, found := range perKeyword {
		sort.Slice(found, func(a, b int) bool { return found[a].ID < found[b].ID })
		candidates = append(candidates, found...)
	}
	return candidates
}

// Curator picks one featured image and a bounded set of body images from the
// candidates, based on content relevance.
type Curator struct {
	generator ports.TextGenerator
	maxBody   int
	logger    *slog.Logger
}

// NewCurator wires the generator; maxBody defaults to 3 when not positive.
func NewCurator(generator ports.TextGenerator, maxBody int, log *slog.Logger) *Curator {
	if maxBody <= 0 {
		maxBody = defaultMaxBodyImages
	}
	return &Curator{generator: generator, maxBody: maxBody, logger: log}
}

type curationReply struct {
	FeaturedImageID int   `json:"featured_image_id"`
	BodyImageIDs    []int `json:"body_image_ids"`
}

// Select asks the model for a featured id and body ids, then maps them back
// onto the candidates already in hand. Ids absent from the candidate list
// are dropped. An empty candidate list short-circuits without a model call,
// and any failure degrades to an empty selection.
func (c *Curator) Select(ctx context.Context, body string, candidates []domain.ImageCandidate) domain.ImageSelection {
	if len(candidates) == 0 {
		return domain.ImageSelection{}
	}

	var table strings.Builder
	for _, img := range candidates {
		table.WriteString(fmt.Sprintf("ID: %d, Keyword: %s, URL: %s\n", img.ID, img.Keyword, img.URL))
	}

	system := "You are a specialist in image curation for blogs."
	user := fmt.Sprintf(
		"You are a content curator. Analyze the post content and the list of available images. "+
			"Select the best image to be the featured image and up to %d additional images "+
			"for the post body, based on visual and thematic relevance to the content. "+
			"Reply ONLY with a JSON object in this format: "+
			`{"featured_image_id": <id>, "body_image_ids": [<ids>]}. `+
			"If no image is relevant, use 0 for the featured id and an empty list for the body."+
			"\n\nPost content (first %d characters):\n%s\n\nAvailable images:\n%s",
		c.maxBody, bodyPromptLimit, truncateRunes(body, bodyPromptLimit), table.String())

	var reply curationReply
	if err := c.generator.CompleteJSON(ctx, system, user, &reply); err != nil {
		if c.logger != nil {
			c.logger.Warn("image curation failed, continuing without images", "error", err)
		}
		return domain.ImageSelection{}
	}

	return mapSelection(reply, candidates, c.maxBody)
}

// mapSelection resolves returned ids against the in-memory candidate table.
func mapSelection(reply curationReply, candidates []domain.ImageCandidate, maxBody int) domain.ImageSelection {
	var selection domain.ImageSelection

	for i := range candidates {
		if candidates[i].ID == reply.FeaturedImageID && reply.FeaturedImageID != 0 {
			img := candidates[i]
			selection.Featured = &img
			break
		}
	}

	wanted := make(map[int]struct{}, len(reply.BodyImageIDs))
	for _, id := range reply.BodyImageIDs {
		wanted[id] = struct{}{}
	}

	for _, img := range candidates {
		if len(selection.Body) == maxBody {
			break
		}
		if _, ok := wanted[img.ID]; !ok {
			continue
		}
		selection.Body = append(selection.Body, img)
		delete(wanted, img.ID)
	}

	return selection
}
