package usecase

import (
	"context"
	"strings"
	"testing"

	"NewsPublisher/internal/domain"
)

const defaultTitle = "Daily Bitcoin news digest"

func TestSplitTitleAndBodyProseFirstLine(t *testing.T) {
	t.Parallel()

	raw := "Bitcoin hits new milestone\n\n<!-- wp:paragraph -->\n<p>Body text.</p>\n<!-- /wp:paragraph -->"
	article := SplitTitleAndBody(raw, defaultTitle)

	if article.Title != "Bitcoin hits new milestone" {
		t.Fatalf("unexpected title: %q", article.Title)
	}
	if !strings.Contains(article.Body, "<p>Body text.</p>") {
		t.Fatalf("body lost content: %q", article.Body)
	}
	if strings.Contains(article.Body, "Bitcoin hits new milestone") {
		t.Fatalf("title line leaked into body: %q", article.Body)
	}
}

func TestSplitTitleAndBodyCommentFirstLine(t *testing.T) {
	t.Parallel()

	raw := "<!-- wp:paragraph -->\n<p>Everything is body.</p>\n<!-- /wp:paragraph -->"
	article := SplitTitleAndBody(raw, defaultTitle)

	if article.Title != defaultTitle {
		t.Fatalf("expected default title, got %q", article.Title)
	}
	if article.Body != raw {
		t.Fatalf("expected full raw output as body, got %q", article.Body)
	}
}

func TestSplitTitleAndBodyStripsMarkupFromTitle(t *testing.T) {
	t.Parallel()

	raw := "<strong>Bitcoin hits new milestone</strong>\n<p>Body.</p>"
	article := SplitTitleAndBody(raw, defaultTitle)

	if article.Title != "Bitcoin hits new milestone" {
		t.Fatalf("tags not stripped: %q", article.Title)
	}
	if strings.ContainsAny(article.Title, "<>") {
		t.Fatalf("leftover tag characters in title: %q", article.Title)
	}
}

func TestSplitTitleAndBodyShortTitleFallsBack(t *testing.T) {
	t.Parallel()

	raw := "Short\n<p>Body.</p>"
	article := SplitTitleAndBody(raw, defaultTitle)

	if article.Title != defaultTitle {
		t.Fatalf("expected default title for short extraction, got %q", article.Title)
	}
	if article.Body != strings.TrimSpace(raw) {
		t.Fatalf("expected full raw output as body, got %q", article.Body)
	}
}

func TestSplitTitleAndBodyEmptyAfterStrippingFallsBack(t *testing.T) {
	t.Parallel()

	raw := "<em></em>\n<p>Body.</p>"
	article := SplitTitleAndBody(raw, defaultTitle)

	if article.Title != defaultTitle {
		t.Fatalf("expected default title, got %q", article.Title)
	}
}

func TestComposeProducesTitleAndBody(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		completeFn: func(_, user string, temperature float64) (string, error) {
			if temperature != 0 {
				t.Fatalf("expected temperature 0, got %v", temperature)
			}
			if !strings.Contains(user, "**ETF inflows surge** (CoinDesk)") {
				t.Fatalf("digest missing from prompt: %q", user)
			}
			return "Bitcoin rallies as ETF inflows surge\n\n<!-- wp:paragraph -->\n<p>Intro.</p>\n<!-- /wp:paragraph -->", nil
		},
	}

	composer := NewComposer(gen, "Bitcoin", defaultTitle)
	digest := domain.NewsDigest{Items: []domain.NewsItem{
		{Title: "ETF inflows surge", Source: "CoinDesk", Summary: "Funds keep buying.", Link: "https://example.com/etf"},
	}}

	article, err := composer.Compose(context.Background(), digest)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if len([]rune(article.Title)) < 10 {
		t.Fatalf("title too short: %q", article.Title)
	}
	if strings.ContainsAny(article.Title, "<>") {
		t.Fatalf("title has tag characters: %q", article.Title)
	}
	if article.Body == "" {
		t.Fatal("body is empty")
	}
}

func TestComposeEmptyDigestFails(t *testing.T) {
	t.Parallel()

	composer := NewComposer(&fakeGenerator{}, "Bitcoin", defaultTitle)
	if _, err := composer.Compose(context.Background(), domain.NewsDigest{}); err == nil {
		t.Fatal("expected error for empty digest")
	}
}
