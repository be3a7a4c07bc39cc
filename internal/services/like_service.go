package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tarang07q/NewsPlus/internal/models"
)

// LikeRepo is implemented by database.LikeStore.
type LikeRepo interface {
	List(ctx context.Context, userID string) ([]models.Like, error)
	Get(ctx context.Context, userID, articleURL string) (*models.Like, error)
	Insert(ctx context.Context, like models.Like) error
	Delete(ctx context.Context, userID, articleURL string) error
}

type LikeService struct {
	repo LikeRepo
}

func NewLikeService(repo LikeRepo) *LikeService {
	return &LikeService{repo: repo}
}

func (s *LikeService) List(ctx context.Context, userID string) ([]models.Like, error) {
	return s.repo.List(ctx, userID)
}

// Add likes the article for the user, returning the existing like with
// created=false on a repeat.
func (s *LikeService) Add(ctx context.Context, userID string, article models.Article) (*models.Like, bool, error) {
	existing, err := s.repo.Get(ctx, userID, article.URL)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	like := models.Like{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Article:   article,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, like); err != nil {
		return nil, false, err
	}
	return &like, true, nil
}

func (s *LikeService) Remove(ctx context.Context, userID, articleURL string) error {
	return s.repo.Delete(ctx, userID, articleURL)
}
