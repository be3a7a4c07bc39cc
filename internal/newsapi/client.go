// Package newsapi wraps the newsapi.org v2 endpoints. Upstream failures
// never surface as Go errors to callers: every non-2xx response, timeout
// or parse failure is normalized to a NewsResponse with Status "error",
// an empty article list and a message, which is the failure signal the
// handlers look for.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tarang07q/NewsPlus/internal/models"
	"github.com/tarang07q/NewsPlus/internal/refresh"
)

const (
	defaultBaseURL  = "https://newsapi.org/v2"
	defaultPageSize = 12
	requestTimeout  = 10 * time.Second
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client for the given API key. baseURL may be empty
// to use newsapi.org.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Params describes a news fetch. Seed, when set, deterministically
// perturbs the outgoing request (see internal/refresh).
type Params struct {
	Category string
	Query    string
	Page     int
	PageSize int
	SortBy   string
	Seed     *int
}

// FetchNews fetches headlines for a category or search results for a
// query. Defaults: category "general", page 1, pageSize 12, sorted by
// publication time.
func (c *Client) FetchNews(ctx context.Context, p Params) models.NewsResponse {
	if p.Category == "" {
		p.Category = "general"
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.SortBy == "" {
		p.SortBy = "publishedAt"
	}

	query, sortBy, pageSize := refresh.ModulateQuery(p.Query, p.SortBy, p.PageSize, p.Seed)

	values := url.Values{}
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("pageSize", strconv.Itoa(pageSize))
	values.Set("sortBy", sortBy)

	endpoint := "/top-headlines"
	if query != "" {
		endpoint = "/everything"
		values.Set("q", query)
	} else {
		values.Set("category", p.Category)
	}

	resp := c.get(ctx, endpoint, values)
	if resp.Status != "error" {
		// Stamp the browsed category on articles so the history and
		// stats pipelines can bucket them; general stays implicit.
		category := ""
		if p.Query == "" && p.Category != "general" {
			category = p.Category
		}
		normalizeArticles(resp.Articles, category)
	}
	return resp
}

// FetchTrending returns the most popular articles across a broad query,
// stamped with the "trending" category.
func (c *Client) FetchTrending(ctx context.Context, count int) models.NewsResponse {
	if count <= 0 {
		count = 5
	}

	values := url.Values{}
	values.Set("q", "trending OR popular OR important")
	values.Set("sortBy", "popularity")
	values.Set("pageSize", strconv.Itoa(count))

	resp := c.get(ctx, "/everything", values)
	if resp.Status != "error" {
		normalizeArticles(resp.Articles, "trending")
	}
	return resp
}

// FetchBySource returns top headlines from the given comma-separated
// source identifiers.
func (c *Client) FetchBySource(ctx context.Context, sources string, count int) models.NewsResponse {
	if count <= 0 {
		count = 5
	}

	values := url.Values{}
	values.Set("sources", sources)
	values.Set("pageSize", strconv.Itoa(count))

	resp := c.get(ctx, "/top-headlines", values)
	if resp.Status != "error" {
		normalizeArticles(resp.Articles, "")
	}
	return resp
}

func (c *Client) get(ctx context.Context, endpoint string, values url.Values) models.NewsResponse {
	values.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return errorResponse(err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errorResponse(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusTooManyRequests {
			return errorResponse("API rate limit reached. Please try again later.")
		}
		return errorResponse(fmt.Sprintf("API Error: %d", resp.StatusCode))
	}

	var data models.NewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return errorResponse("Error parsing API response")
	}
	if data.Articles == nil {
		data.Articles = []models.Article{}
	}
	return data
}

func errorResponse(message string) models.NewsResponse {
	return models.NewsResponse{
		Status:   "error",
		Articles: []models.Article{},
		Message:  message,
	}
}

// normalizeArticles fills placeholder values for missing optional fields
// and, when category is non-empty, stamps it on every article.
func normalizeArticles(articles []models.Article, category string) {
	for i := range articles {
		a := &articles[i]
		if a.Description == nil || *a.Description == "" {
			a.Description = strptr("No description available")
		}
		if a.Content == nil || *a.Content == "" {
			a.Content = strptr("No content available")
		}
		if a.Author == nil || *a.Author == "" {
			a.Author = strptr("Unknown")
		}
		if category != "" {
			a.Category = category
		}
	}
}

func strptr(s string) *string { return &s }
