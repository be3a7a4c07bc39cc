package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/newsapi"
	"github.com/tarang07q/NewsPlus/internal/services"
	"github.com/tarang07q/NewsPlus/internal/utils"
)

type NewsHandler struct {
	news     *services.NewsService
	trending *services.TrendingService
}

func NewNewsHandler(news *services.NewsService, trending *services.TrendingService) *NewsHandler {
	return &NewsHandler{news: news, trending: trending}
}

// GET /api/v1/news?category=&q=&page=&pageSize=&seed=
//
// The response always has the normalized news API shape; an upstream
// failure comes back as 200 with status "error" and an empty article
// list, which is the contract clients check.
func (h *NewsHandler) Browse(c *gin.Context) {
	page, pageSize, err := getPaginationParams(c)
	if err != nil {
		return // Error response already written
	}

	params := newsapi.Params{
		Category: c.DefaultQuery("category", "general"),
		Query:    c.Query("q"),
		Page:     int(page),
		PageSize: int(pageSize),
	}

	if seedStr := c.Query("seed"); seedStr != "" {
		seed, err := strconv.Atoi(seedStr)
		if err != nil {
			utils.ErrorResponse(c, 400, "Invalid seed value")
			return
		}
		params.Seed = &seed
	}

	utils.SuccessResponse(c, h.news.Browse(c.Request.Context(), params))
}

// GET /api/v1/news/trending?limit=
func (h *NewsHandler) Trending(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		utils.ErrorResponse(c, 400, "Invalid limit parameter")
		return
	}

	resp, err := h.trending.Get(c.Request.Context(), limit)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to retrieve trending news: "+err.Error())
		return
	}

	utils.SuccessResponse(c, resp)
}

// GET /api/v1/news/sources/:source?limit=
func (h *NewsHandler) BySource(c *gin.Context) {
	source := c.Param("source")
	if source == "" {
		utils.ErrorResponse(c, 400, "Source parameter is missing")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		utils.ErrorResponse(c, 400, "Invalid limit parameter")
		return
	}

	utils.SuccessResponse(c, h.news.BySource(c.Request.Context(), source, limit))
}

func getPaginationParams(c *gin.Context) (page, pageSize int64, err error) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "12")

	page, err = strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page <= 0 {
		utils.ErrorResponse(c, 400, "Invalid page number")
		return 0, 0, fmt.Errorf("invalid page number")
	}

	pageSize, err = strconv.ParseInt(pageSizeStr, 10, 64)
	if err != nil || pageSize <= 0 {
		utils.ErrorResponse(c, 400, "Invalid page size")
		return 0, 0, fmt.Errorf("invalid page size")
	}
	return page, pageSize, nil
}
