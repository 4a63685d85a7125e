package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/iskandar/reply-notifier/internal/model"
)

var ErrCommentNotFound = errors.New("comment not found")

// Repository provides methods to interact with the comments table.
type Repository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

// NewRepository creates a new comment repository.
func NewRepository(db *dbpg.DB, strategy retry.Strategy) *Repository {
	return &Repository{db: db, strategy: strategy}
}

// CreateComment inserts a new comment and returns it with the assigned ID and
// creation timestamp.
func (r *Repository) CreateComment(ctx context.Context, c model.Comment) (model.Comment, error) {
	query := `
		INSERT INTO comments (
		    content_item_id, parent_id, author_id, author_email, body
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
    `

	err := r.db.QueryRowContext(
		ctx, query, c.ContentItemID, c.ParentID, c.AuthorID, nullableEmail(c.AuthorEmail), c.Body,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return c, nil
}

// GetComment retrieves a single comment by ID.
func (r *Repository) GetComment(ctx context.Context, id uuid.UUID) (model.Comment, error) {
	query := `
		SELECT id, content_item_id, parent_id, author_id, author_email, body, created_at, deleted
		FROM comments
		WHERE id = $1;
    `

	c, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Comment{}, ErrCommentNotFound
		}

		return model.Comment{}, fmt.Errorf("failed to get comment: %w", err)
	}

	return c, nil
}

// ListByContentItem returns every comment of one content item ordered by
// creation time, ties broken by ID so the ordering is deterministic.
func (r *Repository) ListByContentItem(ctx context.Context, itemID uuid.UUID) ([]model.Comment, error) {
	query := `
		SELECT id, content_item_id, parent_id, author_id, author_email, body, created_at, deleted
		FROM comments
		WHERE content_item_id = $1
		ORDER BY created_at ASC, id ASC;
    `

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

// ListMissingAuthorEmail returns up to limit comments whose author_email is
// absent, with ID greater than after. Keyset pagination keeps the backfill
// scan restartable: records the resolver cannot repair are simply passed
// over on the next page instead of being re-read forever.
func (r *Repository) ListMissingAuthorEmail(ctx context.Context, after uuid.UUID, limit int) ([]model.Comment, error) {
	query := `
		SELECT id, content_item_id, parent_id, author_id, author_email, body, created_at, deleted
		FROM comments
		WHERE (author_email IS NULL OR author_email = '') AND id > $1
		ORDER BY id ASC
		LIMIT $2;
    `

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments missing author email: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

// SetAuthorEmail writes a resolved notification address onto a legacy
// comment. Only empty snapshots are overwritten, so repeated backfill runs
// are no-ops.
func (r *Repository) SetAuthorEmail(ctx context.Context, id uuid.UUID, email string) error {
	query := `
		UPDATE comments
		SET author_email = $1
		WHERE id = $2 AND (author_email IS NULL OR author_email = '');
    `

	res, err := r.db.ExecContext(ctx, query, email, id)
	if err != nil {
		return fmt.Errorf("failed to set author email: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// SoftDelete hides a comment from presentation. The row stays so replies
// keep their place in the thread; already-enqueued notification jobs are not
// retracted.
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE comments
		SET deleted = true
		WHERE id = $1;
    `

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrCommentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row rowScanner) (model.Comment, error) {
	var (
		c      model.Comment
		parent uuid.NullUUID
		email  sql.NullString
	)

	err := row.Scan(&c.ID, &c.ContentItemID, &parent, &c.AuthorID, &email, &c.Body, &c.CreatedAt, &c.Deleted)
	if err != nil {
		return model.Comment{}, err
	}

	if parent.Valid {
		c.ParentID = &parent.UUID
	}
	if email.Valid {
		c.AuthorEmail = email.String
	}

	return c, nil
}

func collectComments(rows *sql.Rows) ([]model.Comment, error) {
	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}

		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func nullableEmail(email string) sql.NullString {
	return sql.NullString{String: email, Valid: email != ""}
}
