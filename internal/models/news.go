package models

// Source identifies where an article was published. ID is null for many
// outlets on the news API, so it stays a pointer.
type Source struct {
	ID   *string `bson:"id" json:"id"`
	Name string  `bson:"name" json:"name"`
}

// Article mirrors the news API article shape. URL is the identity key;
// articles are immutable once fetched and are only persisted inside
// bookmarks and likes.
type Article struct {
	Source      Source  `bson:"source" json:"source"`
	Author      *string `bson:"author" json:"author"`
	Title       string  `bson:"title" json:"title"`
	Description *string `bson:"description" json:"description"`
	URL         string  `bson:"url" json:"url"`
	URLToImage  *string `bson:"urlToImage" json:"urlToImage"`
	PublishedAt string  `bson:"publishedAt" json:"publishedAt"`
	Content     *string `bson:"content" json:"content"`
	Category    string  `bson:"category,omitempty" json:"category,omitempty"`
}

// ReadEvent is an article plus the timestamp at which the user viewed it.
// Stored most-recent-first, capped at MaxHistoryEntries per user.
type ReadEvent struct {
	Article
	ReadAt string `json:"readAt"`
}

// MaxHistoryEntries bounds the per-user reading history; the oldest
// entries are evicted on overflow.
const MaxHistoryEntries = 100

// NewsResponse is the normalized news API response. Status "error" is the
// failure signal; Articles is never nil in that case, just empty.
type NewsResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Message      string    `json:"message,omitempty"`
}
