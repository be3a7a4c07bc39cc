package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tarang07q/NewsPlus/internal/models"
)

const trendingCacheTTL = 1 * time.Hour

// trendingCounts are the page sizes the hourly refresh keeps warm; other
// counts are fetched and cached on demand.
var trendingCounts = []int{3, 5, 10}

// Cache is the slice of the redis client the trending feed needs.
// Satisfied by *redis.Client.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// TrendingService serves the trending feed through a Redis cache-aside:
// a miss fetches from the news API and caches for an hour, and a cron job
// re-warms the common counts hourly.
type TrendingService struct {
	fetcher NewsFetcher
	rdb     Cache
}

func NewTrendingService(fetcher NewsFetcher, rdb Cache) *TrendingService {
	return &TrendingService{fetcher: fetcher, rdb: rdb}
}

func trendingCacheKey(count int) string {
	return fmt.Sprintf("trending:articles:%d", count)
}

// Get returns the trending articles for the requested count, from cache
// when possible. Degraded upstream responses are returned but never
// cached, so a transient API failure does not pin an empty feed for an
// hour.
func (s *TrendingService) Get(ctx context.Context, count int) (models.NewsResponse, error) {
	key := trendingCacheKey(count)

	val, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var cached models.NewsResponse
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
		log.Printf("Discarding unreadable trending cache entry %s", key)
	} else if err != redis.Nil {
		return models.NewsResponse{}, err
	}

	resp := s.fetcher.FetchTrending(ctx, count)
	if resp.Status != "error" {
		s.cache(ctx, key, resp)
	}
	return resp, nil
}

func (s *TrendingService) cache(ctx context.Context, key string, resp models.NewsResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Failed to marshal trending articles for caching: %v", err)
		return
	}
	if err := s.rdb.Set(ctx, key, raw, trendingCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache trending articles in Redis: %v", err)
	}
}

// Refresh re-warms the standard trending cache entries; wired to an
// hourly cron in main.
func (s *TrendingService) Refresh(ctx context.Context) {
	for _, count := range trendingCounts {
		resp := s.fetcher.FetchTrending(ctx, count)
		if resp.Status == "error" {
			log.Printf("Skipping trending refresh for count %d: %s", count, resp.Message)
			continue
		}
		s.cache(ctx, trendingCacheKey(count), resp)
	}
}
