package store

import (
	"context"

	"github.com/inkwellapp/inkwell-server/internal/domain"
)

// commentColumns is the ordered list of columns selected in comment queries.
// Must match the scan order in scanComment.
const commentColumns = `id, article_id, name, email, body, active, created_at, updated_at`

func scanComment(scanner interface{ Scan(dest ...any) error }) (*domain.Comment, error) {
	var c domain.Comment

	var (
		active    int
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&c.ID,
		&c.ArticleID,
		&c.Name,
		&c.Email,
		&c.Body,
		&active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Active = active != 0
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

// CreateComment inserts a comment. The owning article must exist; the
// foreign key rejects orphans. The published-owner gate lives in the
// service layer, which checks visibility before calling this.
func (s *Store) CreateComment(ctx context.Context, c *domain.Comment) error {
	active := 0
	if c.Active {
		active = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (id, article_id, name, email, body, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.ArticleID,
		c.Name,
		c.Email,
		c.Body,
		active,
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// ListActiveComments returns the active comments for an article, oldest
// first. Inactive (moderated) comments stay stored but are never served.
func (s *Store) ListActiveComments(ctx context.Context, articleID string) ([]*domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+commentColumns+` FROM comments
		WHERE article_id = ? AND active = 1
		ORDER BY created_at ASC, id ASC`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if comments == nil {
		comments = []*domain.Comment{}
	}

	return comments, nil
}
