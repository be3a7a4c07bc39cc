package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Session is a bearer token issued at login. Lookup is by Token.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Token     string             `bson:"token" json:"token"`
	UserID    string             `bson:"userId" json:"userId"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
}

// Bookmark links a user to a saved article. At most one bookmark exists
// per (UserID, Article.URL) pair.
type Bookmark struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Article   Article            `bson:"article" json:"article"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Like has the same uniqueness invariant as Bookmark.
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Article   Article            `bson:"article" json:"article"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
