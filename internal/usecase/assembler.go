package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

// Assembler injects the meta description and the body images into the
// article markup.
type Assembler struct {
	generator ports.TextGenerator
	logger    *slog.Logger
}

// NewAssembler wires the generator.
func NewAssembler(generator ports.TextGenerator, log *slog.Logger) *Assembler {
	return &Assembler{generator: generator, logger: log}
}

// PrependMeta puts the meta description at the top of the content as an
// inert comment block.
func (a *Assembler) PrependMeta(content, metaDescription string) string {
	metaBlock := fmt.Sprintf("<!-- wp:html -->\n<!-- SEO Meta Description: %s -->\n<!-- /wp:html -->\n", metaDescription)
	return metaBlock + content
}

// InsertImages asks the model to re-emit the complete document with each
// image block placed near the paragraph most related to its keyword.
// Images and mediaIDs are positional pairs. Without images, or on any
// failure, the content is returned unchanged.
func (a *Assembler) InsertImages(ctx context.Context, content string, images []domain.ImageCandidate, mediaIDs []int) string {
	if len(images) == 0 || len(mediaIDs) == 0 {
		return content
	}

	var table strings.Builder
	for i, img := range images {
		table.WriteString(fmt.Sprintf("Media ID: %d, Keyword: %s, Alt: %s, URL: %s\n", mediaIDs[i], img.Keyword, img.Alt, img.URL))
	}

	system := "You are a Gutenberg block editor."
	user := fmt.Sprintf(
		"You are a content editor. Analyze the post content (written in Gutenberg blocks) and the available images. "+
			"Insert the image blocks (<!-- wp:image -->) into the post body at the most relevant positions, "+
			"preferably next to the paragraph containing the related keyword. "+
			"Keep the existing Gutenberg block formatting. "+
			"For each image, use this image block format, substituting the media id, URL and alt text:\n"+
			"<!-- wp:image {\"id\":<media id>,\"align\":\"center\"} -->\n"+
			"<figure class=\"wp-block-image aligncenter\"><img src=\"<image url>\" alt=\"<alt text>\" class=\"wp-image-<media id>\"/></figure>\n"+
			"<!-- /wp:image -->\n"+
			"You MUST return the COMPLETE post content with the image blocks inserted."+
			"\n\nAvailable images:\n%s\n\nPost content:\n%s",
		table.String(), content)

	rewritten, err := a.generator.Complete(ctx, system, user, 0)
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("image insertion failed, keeping content unchanged", "error", err)
		}
		return content
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return content
	}
	return rewritten
}
