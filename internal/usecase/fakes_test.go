package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"NewsPublisher/internal/domain"
)

// fakeGenerator scripts model replies per call and counts invocations.
type fakeGenerator struct {
	completeFn    func(systemPrompt, userPrompt string, temperature float64) (string, error)
	jsonFn        func(systemPrompt, userPrompt string) (string, error)
	completeCalls int
	jsonCalls     int
}

func (f *fakeGenerator) Complete(_ context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	f.completeCalls++
	if f.completeFn == nil {
		return "", fmt.Errorf("unexpected Complete call")
	}
	return f.completeFn(systemPrompt, userPrompt, temperature)
}

func (f *fakeGenerator) CompleteJSON(_ context.Context, systemPrompt, userPrompt string, out any) error {
	f.jsonCalls++
	if f.jsonFn == nil {
		return fmt.Errorf("unexpected CompleteJSON call")
	}
	reply, err := f.jsonFn(systemPrompt, userPrompt)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(reply), out)
}

// fakeNews serves a scripted search result.
type fakeNews struct {
	items []domain.NewsItem
	err   error
}

func (f *fakeNews) Search(context.Context, string, int) ([]domain.NewsItem, error) {
	return f.items, f.err
}

// fakeImages scripts per-keyword search results and photo downloads.
type fakeImages struct {
	searchFn func(keyword string) ([]domain.ImageCandidate, error)
	fetchFn  func(url string) ([]byte, error)
}

func (f *fakeImages) Search(_ context.Context, keyword string, _ int) ([]domain.ImageCandidate, error) {
	if f.searchFn == nil {
		return nil, nil
	}
	return f.searchFn(keyword)
}

func (f *fakeImages) Fetch(_ context.Context, url string) ([]byte, error) {
	if f.fetchFn == nil {
		return []byte("jpeg-bytes"), nil
	}
	return f.fetchFn(url)
}

// fakeCMS records taxonomy and publish traffic against an in-memory backend.
type fakeCMS struct {
	uploadFn    func(filename string, data []byte) (int, error)
	tagsByName  map[string][]domain.Tag
	tagErr      error
	createdTags []string
	nextTagID   int
	categories  map[string]int
	categoryErr error
	publishFn   func(post domain.PostSubmission) (domain.PublishResult, error)
	lastPost    *domain.PostSubmission
}

func (f *fakeCMS) UploadMedia(_ context.Context, filename string, data []byte) (int, error) {
	if f.uploadFn == nil {
		return 0, fmt.Errorf("unexpected UploadMedia call")
	}
	return f.uploadFn(filename, data)
}

func (f *fakeCMS) SearchTags(_ context.Context, name string) ([]domain.Tag, error) {
	if f.tagErr != nil {
		return nil, f.tagErr
	}
	return f.tagsByName[name], nil
}

func (f *fakeCMS) CreateTag(_ context.Context, name string) (domain.Tag, error) {
	f.createdTags = append(f.createdTags, name)
	f.nextTagID++
	return domain.Tag{ID: 1000 + f.nextTagID, Name: name}, nil
}

func (f *fakeCMS) ListCategories(context.Context) (map[string]int, error) {
	if f.categoryErr != nil {
		return nil, f.categoryErr
	}
	return f.categories, nil
}

func (f *fakeCMS) CreatePost(_ context.Context, post domain.PostSubmission) (domain.PublishResult, error) {
	f.lastPost = &post
	if f.publishFn == nil {
		return domain.PublishResult{PostID: 1, Permalink: "https://example.com/?p=1"}, nil
	}
	return f.publishFn(post)
}
