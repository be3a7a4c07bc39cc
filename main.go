package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/tarang07q/NewsPlus/internal/config"
	"github.com/tarang07q/NewsPlus/internal/database"
	"github.com/tarang07q/NewsPlus/internal/handlers"
	"github.com/tarang07q/NewsPlus/internal/localstore"
	"github.com/tarang07q/NewsPlus/internal/newsapi"
	"github.com/tarang07q/NewsPlus/internal/routes"
	"github.com/tarang07q/NewsPlus/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer db.Close(ctx)

	rdb, err := database.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}
	defer rdb.Close()

	store, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		log.Fatal("Failed to open local store: ", err)
	}
	defer store.Close()

	newsClient := newsapi.NewClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL)

	userService := services.NewUserService(database.NewUserStore(db), cfg.SessionTTL)
	newsService := services.NewNewsService(newsClient)
	trendingService := services.NewTrendingService(newsClient, rdb)
	bookmarkService := services.NewBookmarkService(database.NewBookmarkStore(db))
	likeService := services.NewLikeService(database.NewLikeStore(db))
	historyService := services.NewHistoryService(store)
	alertService := services.NewAlertService(store)
	preferenceService := services.NewPreferenceService(store)

	// Keep the trending cache warm
	c := cron.New()
	c.AddFunc("@hourly", func() {
		log.Println("Running scheduled trending refresh...")
		trendingService.Refresh(context.Background())
	})
	c.Start()
	defer c.Stop()

	r := gin.Default()
	routes.SetupRoutes(r, routes.Handlers{
		Auth:        handlers.NewAuthHandler(userService),
		News:        handlers.NewNewsHandler(newsService, trendingService),
		Bookmarks:   handlers.NewBookmarkHandler(bookmarkService),
		Likes:       handlers.NewLikeHandler(likeService),
		History:     handlers.NewHistoryHandler(historyService),
		Alerts:      handlers.NewAlertHandler(alertService),
		Preferences: handlers.NewPreferenceHandler(preferenceService),
		Users:       userService,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
