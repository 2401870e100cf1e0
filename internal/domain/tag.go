package domain

import "time"

// Tag categorizes articles. Tags are owned independently of articles;
// deleting an article never deletes its tags.
// Slug is the canonical form: lowercase, hyphenated.
type Tag struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt timestamp.
func (t *Tag) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// ArticleTag represents the many-to-many relationship between articles and tags.
type ArticleTag struct {
	ArticleID string    `json:"article_id"`
	TagID     string    `json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
