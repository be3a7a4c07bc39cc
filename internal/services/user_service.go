package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/tarang07q/NewsPlus/internal/models"
)

const bcryptCost = 10

var (
	// ErrUserExists maps to 409 at the handler layer.
	ErrUserExists = errors.New("user with this email or username already exists")
	// ErrInvalidCredentials maps to 401.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrValidation maps to 400; the wrapping message is user-facing.
	ErrValidation = errors.New("validation failed")
)

// UserRepo is the persistence surface UserService needs. Implemented by
// database.UserStore; faked in tests.
type UserRepo interface {
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) error
	InsertSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type UserService struct {
	repo       UserRepo
	sessionTTL time.Duration
}

func NewUserService(repo UserRepo, sessionTTL time.Duration) *UserService {
	return &UserService{repo: repo, sessionTTL: sessionTTL}
}

// Register creates a user. Duplicate email or username returns
// ErrUserExists; a short password returns ErrValidation.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if len(password) < 6 {
		return nil, errors.Join(ErrValidation, errors.New("password must be at least 6 characters"))
	}

	existing, err := s.repo.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and issues a session token.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.Session, *models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.repo.InsertSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return &session, user, nil
}

// Authenticate resolves a bearer token to its session, treating expired
// sessions as absent.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	session, err := s.repo.FindSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return session, nil
}

func (s *UserService) Logout(ctx context.Context, token string) error {
	return s.repo.DeleteSession(ctx, token)
}
