package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tarang07q/NewsPlus/internal/models"
)

const queryTimeout = 10 * time.Second

// UserStore persists users and sessions.
type UserStore struct {
	users    *mongo.Collection
	sessions *mongo.Collection
}

func NewUserStore(db *DB) *UserStore {
	return &UserStore{
		users:    db.Collection("users"),
		sessions: db.Collection("sessions"),
	}
}

// FindByEmailOrUsername returns nil when no user matches.
func (s *UserStore) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err := s.users.FindOne(ctx, bson.M{
		"$or": []bson.M{{"email": email}, {"username": username}},
	}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Insert(ctx context.Context, user models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.users.InsertOne(ctx, user)
	return err
}

func (s *UserStore) InsertSession(ctx context.Context, session models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.sessions.InsertOne(ctx, session)
	return err
}

func (s *UserStore) FindSession(ctx context.Context, token string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var session models.Session
	err := s.sessions.FindOne(ctx, bson.M{"token": token}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *UserStore) DeleteSession(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.sessions.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// BookmarkStore persists bookmarks keyed by (userId, article.url).
type BookmarkStore struct {
	collection *mongo.Collection
}

func NewBookmarkStore(db *DB) *BookmarkStore {
	return &BookmarkStore{collection: db.Collection("bookmarks")}
}

func (s *BookmarkStore) List(ctx context.Context, userID string) ([]models.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookmarks := []models.Bookmark{}
	if err := cursor.All(ctx, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func (s *BookmarkStore) Get(ctx context.Context, userID, articleURL string) (*models.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var bookmark models.Bookmark
	err := s.collection.FindOne(ctx, bson.M{"userId": userID, "article.url": articleURL}).Decode(&bookmark)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (s *BookmarkStore) Insert(ctx context.Context, bookmark models.Bookmark) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.collection.InsertOne(ctx, bookmark)
	return err
}

func (s *BookmarkStore) Delete(ctx context.Context, userID, articleURL string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.collection.DeleteOne(ctx, bson.M{"userId": userID, "article.url": articleURL})
	return err
}

// LikeStore persists likes with the same uniqueness key as bookmarks.
type LikeStore struct {
	collection *mongo.Collection
}

func NewLikeStore(db *DB) *LikeStore {
	return &LikeStore{collection: db.Collection("likes")}
}

func (s *LikeStore) List(ctx context.Context, userID string) ([]models.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	likes := []models.Like{}
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

func (s *LikeStore) Get(ctx context.Context, userID, articleURL string) (*models.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var like models.Like
	err := s.collection.FindOne(ctx, bson.M{"userId": userID, "article.url": articleURL}).Decode(&like)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (s *LikeStore) Insert(ctx context.Context, like models.Like) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.collection.InsertOne(ctx, like)
	return err
}

func (s *LikeStore) Delete(ctx context.Context, userID, articleURL string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.collection.DeleteOne(ctx, bson.M{"userId": userID, "article.url": articleURL})
	return err
}
