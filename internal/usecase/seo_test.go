package usecase

import (
	"context"
	"fmt"
	"testing"

	"NewsPublisher/internal/domain"
)

func TestEnricherDegradesOnFailure(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		jsonFn: func(_, _ string) (string, error) {
			return "", fmt.Errorf("model down")
		},
	}
	enricher := NewEnricher(gen, nil)

	meta := enricher.Enrich(context.Background(), domain.Article{Title: "Bitcoin rallies", Body: "<p>Body.</p>"})
	if meta.MetaDescription != "" {
		t.Fatalf("expected empty meta description, got %q", meta.MetaDescription)
	}
	if meta.SeoTitle != "Bitcoin rallies" {
		t.Fatalf("expected the original title, got %q", meta.SeoTitle)
	}
}

func TestEnricherEmptyTitleFallsBackToOriginal(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		jsonFn: func(_, _ string) (string, error) {
			return `{"meta_description": "Daily market recap.", "seo_title": ""}`, nil
		},
	}
	enricher := NewEnricher(gen, nil)

	meta := enricher.Enrich(context.Background(), domain.Article{Title: "Bitcoin rallies", Body: "<p>Body.</p>"})
	if meta.MetaDescription != "Daily market recap." {
		t.Fatalf("meta description lost: %q", meta.MetaDescription)
	}
	if meta.SeoTitle != "Bitcoin rallies" {
		t.Fatalf("expected the original title, got %q", meta.SeoTitle)
	}
}
