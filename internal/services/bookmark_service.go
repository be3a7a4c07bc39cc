package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tarang07q/NewsPlus/internal/models"
)

// BookmarkRepo is implemented by database.BookmarkStore.
type BookmarkRepo interface {
	List(ctx context.Context, userID string) ([]models.Bookmark, error)
	Get(ctx context.Context, userID, articleURL string) (*models.Bookmark, error)
	Insert(ctx context.Context, bookmark models.Bookmark) error
	Delete(ctx context.Context, userID, articleURL string) error
}

type BookmarkService struct {
	repo BookmarkRepo
}

func NewBookmarkService(repo BookmarkRepo) *BookmarkService {
	return &BookmarkService{repo: repo}
}

func (s *BookmarkService) List(ctx context.Context, userID string) ([]models.Bookmark, error) {
	return s.repo.List(ctx, userID)
}

// Add bookmarks the article for the user. Check-then-insert: a repeat add
// returns the existing bookmark with created=false instead of inserting a
// duplicate.
func (s *BookmarkService) Add(ctx context.Context, userID string, article models.Article) (*models.Bookmark, bool, error) {
	existing, err := s.repo.Get(ctx, userID, article.URL)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	bookmark := models.Bookmark{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Article:   article,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, bookmark); err != nil {
		return nil, false, err
	}
	return &bookmark, true, nil
}

// Remove deletes the bookmark if present; removing a missing bookmark is
// not an error.
func (s *BookmarkService) Remove(ctx context.Context, userID, articleURL string) error {
	return s.repo.Delete(ctx, userID, articleURL)
}
