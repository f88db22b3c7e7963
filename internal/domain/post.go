package domain

// NewsItem is a core entity describing one story returned by the news provider.
type NewsItem struct {
	Title   string
	Source  string
	Summary string
	Link    string
}

// NewsDigest is the ordered set of stories a run is built from.
type NewsDigest struct {
	Items []NewsItem
}

// Empty reports whether the digest carries no usable stories.
func (d NewsDigest) Empty() bool {
	return len(d.Items) == 0
}

// Article is the drafted post: a plain-text title and a block-markup body.
type Article struct {
	Title string
	Body  string
}

// SeoMeta carries the enrichment derived from a drafted article.
// MetaDescription targets 160 characters but is not hard-enforced.
type SeoMeta struct {
	MetaDescription string
	SeoTitle        string
}

// ImageCandidate is one stock photo found for a keyword. The same provider
// photo may appear once per matching keyword; ID is unique per provider only.
type ImageCandidate struct {
	ID           int
	Keyword      string
	URL          string
	Photographer string
	Alt          string
}

// ImageSelection is the curated outcome: an optional featured image and
// up to three body images in insertion order.
type ImageSelection struct {
	Featured *ImageCandidate
	Body     []ImageCandidate
}

// Tag is a backend taxonomy term.
type Tag struct {
	ID   int
	Name string
}

// PostSubmission is the final payload handed to the backend.
// FeaturedMedia 0 means "publish without a featured image".
type PostSubmission struct {
	Title         string
	Content       string
	FeaturedMedia int
	TagIDs        []int
	CategoryIDs   []int
}

// PublishResult identifies the created post.
type PublishResult struct {
	PostID    int
	Permalink string
}
