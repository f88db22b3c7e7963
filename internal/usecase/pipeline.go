package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

// PipelineDeps wires all stages into the publishing pipeline.
type PipelineDeps struct {
	Collector *Collector
	Composer  *Composer
	Enricher  *Enricher
	Keywords  *KeywordExtractor
	Sourcer   *Sourcer
	Curator   *Curator
	Media     *MediaPublisher
	Assembler *Assembler
	Taxonomy  *TaxonomyResolver
	CMS       ports.CMS
	Logger    *slog.Logger
}

// Pipeline implements the single-run news-to-post workflow. Control flow is
// strictly linear: each stage consumes the prior stage's output.
type Pipeline struct {
	collector *Collector
	composer  *Composer
	enricher  *Enricher
	keywords  *KeywordExtractor
	sourcer   *Sourcer
	curator   *Curator
	media     *MediaPublisher
	assembler *Assembler
	taxonomy  *TaxonomyResolver
	cms       ports.CMS
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		collector: deps.Collector,
		composer:  deps.Composer,
		enricher:  deps.Enricher,
		keywords:  deps.Keywords,
		sourcer:   deps.Sourcer,
		curator:   deps.Curator,
		media:     deps.Media,
		assembler: deps.Assembler,
		taxonomy:  deps.Taxonomy,
		cms:       deps.CMS,
		logger:    deps.Logger,
	}
}

// Run executes one publish attempt. Only a missing digest, a failed article
// draft, or a rejected final submission abort the run; every other stage
// degrades to a safe default and continues with reduced richness.
func (p *Pipeline) Run(ctx context.Context) (domain.PublishResult, error) {
	digest, err := p.collector.Collect(ctx)
	if err != nil {
		return domain.PublishResult{}, fmt.Errorf("collect news: %w", err)
	}
	p.info("news collected", "stories", len(digest.Items))

	article, err := p.composer.Compose(ctx, digest)
	if err != nil {
		return domain.PublishResult{}, fmt.Errorf("compose article: %w", err)
	}
	p.info("article drafted", "title", article.Title)

	meta := p.enricher.Enrich(ctx, article)
	keywords := p.keywords.Extract(ctx, article.Body)
	p.info("keywords extracted", "keywords", keywords)

	candidates := p.sourcer.Collect(ctx, keywords)
	selection := p.curator.Select(ctx, article.Body, candidates)
	p.info("images curated", "candidates", len(candidates), "body_images", len(selection.Body), "has_featured", selection.Featured != nil)

	featuredMedia := 0
	if selection.Featured != nil {
		if id, ok := p.media.Publish(ctx, *selection.Featured); ok {
			featuredMedia = id
		} else {
			p.info("featured image unavailable, publishing without it")
		}
	}

	// Failed body uploads drop the image and its media ref in lockstep so
	// the pairing stays positional for the assembler.
	var bodyImages []domain.ImageCandidate
	var bodyMedia []int
	for _, img := range selection.Body {
		id, ok := p.media.Publish(ctx, img)
		if !ok {
			continue
		}
		bodyImages = append(bodyImages, img)
		bodyMedia = append(bodyMedia, id)
	}

	content := p.assembler.PrependMeta(article.Body, meta.MetaDescription)
	content = p.assembler.InsertImages(ctx, content, bodyImages, bodyMedia)

	tagIDs := p.taxonomy.ResolveTags(ctx, keywords)
	categoryIDs := p.taxonomy.ResolveCategory(ctx)

	title := article.Title
	if meta.SeoTitle != "" {
		title = meta.SeoTitle
	}

	result, err := p.cms.CreatePost(ctx, domain.PostSubmission{
		Title:         title,
		Content:       content,
		FeaturedMedia: featuredMedia,
		TagIDs:        tagIDs,
		CategoryIDs:   categoryIDs,
	})
	if err != nil {
		return domain.PublishResult{}, fmt.Errorf("publish post: %w", err)
	}

	p.info("post published", "post_id", result.PostID, "permalink", result.Permalink)
	return result, nil
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
