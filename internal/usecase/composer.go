package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

const (
	commentToken  = "<!--"
	minTitleRunes = 10
)

// Composer turns a news digest into a block-markup article draft.
type Composer struct {
	generator    ports.TextGenerator
	topic        string
	defaultTitle string
}

// NewComposer wires the generator with the topic's fallback title.
func NewComposer(generator ports.TextGenerator, topic, defaultTitle string) *Composer {
	return &Composer{
		generator:    generator,
		topic:        topic,
		defaultTitle: defaultTitle,
	}
}

// Compose requests one block-markup document and splits it into title and
// body. A generation failure is fatal: nothing downstream can run without
// an article body.
func (c *Composer) Compose(ctx context.Context, digest domain.NewsDigest) (domain.Article, error) {
	if digest.Empty() {
		return domain.Article{}, fmt.Errorf("news digest is empty")
	}

	system := "You are a professional blog content writer and SEO specialist."
	user := fmt.Sprintf(
		"Based on the following %s news, write an SEO-optimized blog post. "+
			"The post must have a catchy title on the first line, an introduction, one section per story "+
			"(expanding on its summary), and a conclusion with a call to action "+
			"(e.g. 'Share your opinion in the comments'). "+
			"Format the post with WordPress Gutenberg blocks, including the <!-- wp:paragraph --> comments. "+
			"Use plain paragraphs for the body and bold paragraphs with 'fontSize':'large' for subheadings. "+
			"The tone must be informative and professional.\n\nNews:\n\n%s",
		c.topic, FormatDigest(digest))

	content, err := c.generator.Complete(ctx, system, user, 0)
	if err != nil {
		return domain.Article{}, fmt.Errorf("generate article: %w", err)
	}

	return SplitTitleAndBody(content, c.defaultTitle), nil
}

// FormatDigest renders the digest the way the generation prompt expects it.
func FormatDigest(digest domain.NewsDigest) string {
	var b strings.Builder
	for _, item := range digest.Items {
		b.WriteString(fmt.Sprintf("**%s** (%s)\n", item.Title, item.Source))
		b.WriteString(fmt.Sprintf("Summary: %s\n", item.Summary))
		b.WriteString(fmt.Sprintf("Link: %s\n\n", item.Link))
	}
	return b.String()
}

// SplitTitleAndBody extracts the article title from a raw model reply.
//
// The first non-blank line that is not a markup comment becomes the title;
// the remaining lines become the body. When that line is a comment, or the
// stripped title is shorter than ten runes or still opens a tag, the
// default title is used and the whole reply becomes the body.
func SplitTitleAndBody(raw, defaultTitle string) domain.Article {
	fallback := domain.Article{Title: defaultTitle, Body: strings.TrimSpace(raw)}

	lines := strings.Split(raw, "\n")
	titleLine := ""
	body := ""
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if strings.HasPrefix(stripped, commentToken) {
			return fallback
		}
		titleLine = stripped
		body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		break
	}

	if titleLine == "" {
		return fallback
	}

	title := stripMarkup(titleLine)
	if utf8.RuneCountInString(title) < minTitleRunes || strings.HasPrefix(title, "<") {
		return fallback
	}

	return domain.Article{Title: title, Body: body}
}

// stripMarkup drops embedded tags and comment tokens, keeping plain text.
func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
