package app

import (
	"context"
	"fmt"
	"log/slog"

	"NewsPublisher/internal/config"
	"NewsPublisher/internal/infrastructure/llm"
	"NewsPublisher/internal/infrastructure/pexels"
	"NewsPublisher/internal/infrastructure/serp"
	"NewsPublisher/internal/infrastructure/wordpress"
	"NewsPublisher/internal/logging"
	"NewsPublisher/internal/usecase"
)

// Application wires configs to the pipeline and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance from configuration.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	generator := llm.NewChatGPTClient(cfg.OpenAI)
	news := serp.NewClient(cfg.News, nil)
	images := pexels.NewClient(cfg.Images, nil)
	cms := wordpress.NewClient(cfg.WordPress, nil)

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Collector: usecase.NewCollector(news, generator, cfg.Topic.Query, cfg.News.Limit, cfg.News.Keep,
			baseLogger.With("component", "collector")),
		Composer: usecase.NewComposer(generator, cfg.Topic.Query, cfg.Topic.DefaultTitle),
		Enricher: usecase.NewEnricher(generator, baseLogger.With("component", "seo")),
		Keywords: usecase.NewKeywordExtractor(generator, cfg.Topic.Query, cfg.Topic.FallbackKeywords,
			baseLogger.With("component", "keywords")),
		Sourcer:   usecase.NewSourcer(images, cfg.Images.PerPage, baseLogger.With("component", "images")),
		Curator:   usecase.NewCurator(generator, cfg.Images.MaxBody, baseLogger.With("component", "curator")),
		Media:     usecase.NewMediaPublisher(images, cms, baseLogger.With("component", "media")),
		Assembler: usecase.NewAssembler(generator, baseLogger.With("component", "assembler")),
		Taxonomy:  usecase.NewTaxonomyResolver(cms, cfg.Topic.Category, baseLogger.With("component", "taxonomy")),
		CMS:       cms,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline}
}

// Run performs a single pipeline execution and prints the outcome.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	result, err := a.pipeline.Run(ctx)
	if err != nil {
		fmt.Println("Run finished with a failed publication.")
		return err
	}

	fmt.Printf("Run finished successfully. The new post is at: %s\n", result.Permalink)
	return nil
}
