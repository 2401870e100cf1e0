package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/inkwellapp/inkwell-server/internal/domain"
)

// articleColumns is the ordered list of columns selected in article queries.
// Must match the scan order in scanArticle.
const articleColumns = `id, title, slug, author_id, body, status, published_at, created_at, updated_at`

// scanArticle scans a sql.Row (or sql.Rows via its Scan method) into a
// domain.Article. TagIDs are left nil; loadTagIDs fills them in.
func scanArticle(scanner interface{ Scan(dest ...any) error }) (*domain.Article, error) {
	var a domain.Article

	var (
		status      string
		publishedAt string
		createdAt   string
		updatedAt   string
	)

	err := scanner.Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.AuthorID,
		&a.Body,
		&status,
		&publishedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Status = domain.Status(status)
	if a.PublishedAt, err = parseTime(publishedAt); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &a, nil
}

// CreateArticle inserts a new article and its tag associations.
// Returns ErrAlreadyExists when another article already owns the slug on
// the same publish day.
func (s *Store) CreateArticle(ctx context.Context, a *domain.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO articles (id, title, slug, author_id, body, status, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.Title,
		a.Slug,
		a.AuthorID,
		a.Body,
		string(a.Status),
		formatTime(a.PublishedAt),
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	if err := replaceArticleTags(ctx, tx, a); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateArticle rewrites an article row and its tag associations.
// Returns ErrNotFound when the article does not exist.
func (s *Store) UpdateArticle(ctx context.Context, a *domain.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE articles
		SET title = ?, slug = ?, author_id = ?, body = ?, status = ?, published_at = ?, updated_at = ?
		WHERE id = ?`,
		a.Title,
		a.Slug,
		a.AuthorID,
		a.Body,
		string(a.Status),
		formatTime(a.PublishedAt),
		formatTime(a.UpdatedAt),
		a.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := replaceArticleTags(ctx, tx, a); err != nil {
		return err
	}

	return tx.Commit()
}

// replaceArticleTags rewrites the join rows for an article inside tx.
func replaceArticleTags(ctx context.Context, tx *sql.Tx, a *domain.Article) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM article_tags WHERE article_id = ?`, a.ID); err != nil {
		return err
	}
	for _, tagID := range a.TagIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO article_tags (article_id, tag_id, created_at)
			VALUES (?, ?, ?)`,
			a.ID, tagID, formatTime(a.UpdatedAt))
		if err != nil {
			return fmt.Errorf("attach tag %s: %w", tagID, err)
		}
	}
	return nil
}

// DeleteArticle removes an article. Comments and tag associations cascade;
// tags themselves are untouched.
func (s *Store) DeleteArticle(ctx context.Context, articleID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM articles WHERE id = ?`, articleID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetArticleByID retrieves an article of any status by its ID.
func (s *Store) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, articleID)

	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadTagIDs(ctx, []*domain.Article{a}); err != nil {
		return nil, err
	}
	return a, nil
}

// GetPublishedByPath retrieves a published article by its canonical
// (year, month, day, slug) identifier. Drafts are invisible to this query.
func (s *Store) GetPublishedByPath(ctx context.Context, year, month, day int, slug string) (*domain.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+articleColumns+` FROM articles
		WHERE status = ? AND slug = ? AND substr(published_at, 1, 10) = ?`,
		string(domain.StatusPublished), slug, dayString(year, month, day))

	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadTagIDs(ctx, []*domain.Article{a}); err != nil {
		return nil, err
	}
	return a, nil
}

// ListArticles returns every article regardless of status, newest publish
// date first. Editorial surfaces use this; public-facing retrieval goes
// through the Published queries.
func (s *Store) ListArticles(ctx context.Context) ([]*domain.Article, error) {
	return s.listArticles(ctx,
		`SELECT `+articleColumns+` FROM articles ORDER BY published_at DESC, id ASC`)
}

// ListPublished returns the publicly visible subset, newest publish date
// first.
func (s *Store) ListPublished(ctx context.Context) ([]*domain.Article, error) {
	return s.listArticles(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE status = ? ORDER BY published_at DESC, id ASC`,
		string(domain.StatusPublished))
}

// ListPublishedByTag returns published articles carrying the tag with the
// given slug, newest first. Returns ErrNotFound when the tag slug itself
// is unknown (as opposed to an empty result for a known but unused tag).
func (s *Store) ListPublishedByTag(ctx context.Context, tagSlug string) ([]*domain.Article, error) {
	tag, err := s.GetTagBySlug(ctx, tagSlug)
	if err != nil {
		return nil, err
	}

	return s.listArticles(ctx, `
		SELECT `+articleColumns+` FROM articles
		WHERE status = ?
		  AND id IN (SELECT article_id FROM article_tags WHERE tag_id = ?)
		ORDER BY published_at DESC, id ASC`,
		string(domain.StatusPublished), tag.ID)
}

func (s *Store) listArticles(ctx context.Context, query string, args ...any) ([]*domain.Article, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if articles == nil {
		articles = []*domain.Article{}
	}
	if err := s.loadTagIDs(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// loadTagIDs fills TagIDs for a batch of articles with a single query.
func (s *Store) loadTagIDs(ctx context.Context, articles []*domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Article, len(articles))
	placeholders := make([]string, len(articles))
	args := make([]any, len(articles))
	for i, a := range articles {
		byID[a.ID] = a
		placeholders[i] = "?"
		args[i] = a.ID
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT article_id, tag_id FROM article_tags
		WHERE article_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY tag_id ASC`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var articleID, tagID string
		if err := rows.Scan(&articleID, &tagID); err != nil {
			return err
		}
		if a, ok := byID[articleID]; ok {
			a.TagIDs = append(a.TagIDs, tagID)
		}
	}
	return rows.Err()
}
