package usecase

import (
	"context"
	"fmt"
	"testing"

	"NewsPublisher/internal/domain"
)

func TestCollectKeepsTopStories(t *testing.T) {
	t.Parallel()

	searcher := &fakeNews{items: []domain.NewsItem{
		{Title: "One", Source: "A", Summary: "s", Link: "l"},
		{Title: "Two", Source: "B", Summary: "s", Link: "l"},
		{Title: "Three", Source: "C", Summary: "s", Link: "l"},
		{Title: "Four", Source: "D", Summary: "s", Link: "l"},
	}}

	collector := NewCollector(searcher, &fakeGenerator{}, "Bitcoin", 5, 3, nil)
	digest, err := collector.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(digest.Items) != 3 {
		t.Fatalf("expected 3 kept stories, got %d", len(digest.Items))
	}
	if digest.Items[0].Title != "One" {
		t.Fatalf("ordering lost: %q", digest.Items[0].Title)
	}
}

func TestCollectFallsBackToGeneratedDigest(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		completeFn: func(_, _ string, temperature float64) (string, error) {
			if temperature != fallbackDigestTemperature {
				t.Fatalf("expected fallback temperature, got %v", temperature)
			}
			return "Bitcoin climbs | CoinDesk | Price moved up over the weekend. | https://example.com/a\n" +
				"not a story line\n" +
				"Miners expand | Reuters | New capacity came online. |\n", nil
		},
	}

	collector := NewCollector(&fakeNews{err: fmt.Errorf("boom")}, gen, "Bitcoin", 5, 3, nil)
	digest, err := collector.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(digest.Items) != 2 {
		t.Fatalf("expected 2 parsed stories, got %d", len(digest.Items))
	}
	if digest.Items[0].Link != "https://example.com/a" {
		t.Fatalf("unexpected link: %q", digest.Items[0].Link)
	}
	if digest.Items[1].Link != "#" {
		t.Fatalf("expected placeholder link, got %q", digest.Items[1].Link)
	}
}

func TestCollectFallsBackOnEmptySearch(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		completeFn: func(_, _ string, _ float64) (string, error) {
			return "Only story | Source | Summary text. | #", nil
		},
	}

	collector := NewCollector(&fakeNews{}, gen, "Bitcoin", 5, 3, nil)
	digest, err := collector.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(digest.Items) != 1 {
		t.Fatalf("expected 1 story, got %d", len(digest.Items))
	}
}

func TestCollectFailsWhenBothPathsFail(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		completeFn: func(_, _ string, _ float64) (string, error) {
			return "", fmt.Errorf("model down")
		},
	}

	collector := NewCollector(&fakeNews{err: fmt.Errorf("search down")}, gen, "Bitcoin", 5, 3, nil)
	if _, err := collector.Collect(context.Background()); err == nil {
		t.Fatal("expected error when both paths fail")
	}
}
