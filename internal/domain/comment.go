package domain

import "time"

// Comment is a public reader submission against a published article.
// Active is a moderation flag; inactive comments stay stored but are
// never served. Comments are only removed when their owning article is
// deleted (cascade in the store).
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
