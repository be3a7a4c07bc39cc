package services

import (
	"context"

	"github.com/tarang07q/NewsPlus/internal/models"
	"github.com/tarang07q/NewsPlus/internal/newsapi"
	"github.com/tarang07q/NewsPlus/internal/refresh"
)

// NewsFetcher is the upstream contract; implemented by newsapi.Client.
type NewsFetcher interface {
	FetchNews(ctx context.Context, p newsapi.Params) models.NewsResponse
	FetchTrending(ctx context.Context, count int) models.NewsResponse
	FetchBySource(ctx context.Context, sources string, count int) models.NewsResponse
}

type NewsService struct {
	fetcher NewsFetcher
}

func NewNewsService(fetcher NewsFetcher) *NewsService {
	return &NewsService{fetcher: fetcher}
}

// Browse fetches news for a category or search query. A seed perturbs the
// upstream query (see internal/refresh) and then shuffles the returned
// page, so a refresh with the same seed is reproducible while different
// seeds give visibly different framings. Upstream failures pass through
// as the normalized error-status response.
func (s *NewsService) Browse(ctx context.Context, p newsapi.Params) models.NewsResponse {
	resp := s.fetcher.FetchNews(ctx, p)
	if resp.Status == "error" || p.Seed == nil {
		return resp
	}

	resp.Articles = refresh.Shuffle(resp.Articles, *p.Seed)
	return resp
}

// BySource fetches top headlines for specific source identifiers.
func (s *NewsService) BySource(ctx context.Context, sources string, count int) models.NewsResponse {
	return s.fetcher.FetchBySource(ctx, sources, count)
}
