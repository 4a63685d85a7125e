package job

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/iskandar/reply-notifier/internal/model"
)

var (
	ErrJobNotFound = errors.New("notification job not found")

	// ErrJobNotClaimable means the job was already claimed by another worker
	// or has reached a terminal status.
	ErrJobNotClaimable = errors.New("notification job not claimable")
)

// Repository provides methods to interact with the notification_jobs table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification job repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateJob inserts a new job and returns its ID. The caller decides the
// initial status: pending for jobs headed to the queue, suppressed for
// audit-only records.
func (r *Repository) CreateJob(ctx context.Context, j model.NotificationJob) (uuid.UUID, error) {
	query := `
		INSERT INTO notification_jobs (
		    recipient_address, reply_id, parent_id, content_item_id,
		    reply_excerpt, parent_excerpt, status, attempts, last_error
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		j.RecipientAddress, j.ReplyID, j.ParentID, j.ContentItemID,
		j.ReplyExcerpt, j.ParentExcerpt, j.Status, j.Attempts, j.LastError,
	).Scan(&j.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification job: %w", err)
	}

	return j.ID, nil
}

// Claim moves a pending job to sending. The conditional update is the lease:
// only one worker can win it, so a job's retries stay strictly sequential
// even with concurrent workers.
func (r *Repository) Claim(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notification_jobs
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `

	res, err := r.db.ExecContext(ctx, query, model.JobStatusSending, id, model.JobStatusPending)
	if err != nil {
		return fmt.Errorf("failed to claim notification job: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrJobNotClaimable
	}

	return nil
}

// RecordAttempt persists the attempt counter and last error after a
// transient delivery failure.
func (r *Repository) RecordAttempt(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	query := `
		UPDATE notification_jobs
		SET attempts = $1, last_error = $2, updated_at = now()
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, attempts, lastError, id)
	if err != nil {
		return fmt.Errorf("failed to record delivery attempt: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}

// MarkDelivered sets the terminal delivered status.
func (r *Repository) MarkDelivered(ctx context.Context, id uuid.UUID, attempts int) error {
	return r.finish(ctx, id, model.JobStatusDelivered, attempts, "")
}

// MarkFailed sets the terminal failed status with the last delivery error.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	return r.finish(ctx, id, model.JobStatusFailed, attempts, lastError)
}

func (r *Repository) finish(ctx context.Context, id uuid.UUID, status string, attempts int, lastError string) error {
	query := `
		UPDATE notification_jobs
		SET status = $1, attempts = $2, last_error = $3, updated_at = now()
		WHERE id = $4;
    `

	res, err := r.db.ExecContext(ctx, query, status, attempts, lastError, id)
	if err != nil {
		return fmt.Errorf("failed to update notification job: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}

// GetJobStatus retrieves the status of a job by its ID.
func (r *Repository) GetJobStatus(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM notification_jobs
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrJobNotFound
		}

		return "", fmt.Errorf("failed to get notification job status: %w", err)
	}

	return status, nil
}

// ListJobs retrieves up to limit jobs, newest first, for the admin surface.
func (r *Repository) ListJobs(ctx context.Context, limit int) ([]model.NotificationJob, error) {
	query := `
		SELECT id, recipient_address, reply_id, parent_id, content_item_id,
		       reply_excerpt, parent_excerpt, status, attempts, last_error,
		       created_at, updated_at
		FROM notification_jobs
		ORDER BY created_at DESC
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// ListStalePending returns pending jobs that have not been touched for
// olderThan. Used by the startup sweep to republish jobs whose queue message
// was lost to a crash; delivery stays at-least-once.
func (r *Repository) ListStalePending(ctx context.Context, olderThan time.Duration, limit int) ([]model.NotificationJob, error) {
	query := `
		SELECT id, recipient_address, reply_id, parent_id, content_item_id,
		       reply_excerpt, parent_excerpt, status, attempts, last_error,
		       created_at, updated_at
		FROM notification_jobs
		WHERE status = $1 AND updated_at < $2
		ORDER BY updated_at ASC
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(ctx, query, model.JobStatusPending, time.Now().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale pending jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// ResetStaleSending moves sending jobs that have not been touched for
// olderThan back to pending and returns them. A row stuck in sending means a
// worker crashed mid-delivery; resetting it lets the claim be won again.
// olderThan must exceed the worst-case delivery window so live workers are
// never raced.
func (r *Repository) ResetStaleSending(ctx context.Context, olderThan time.Duration, limit int) ([]model.NotificationJob, error) {
	query := `
		UPDATE notification_jobs
		SET status = $1, updated_at = now()
		WHERE id IN (
		    SELECT id
		    FROM notification_jobs
		    WHERE status = $2 AND updated_at < $3
		    ORDER BY updated_at ASC
		    LIMIT $4
		)
		RETURNING id, recipient_address, reply_id, parent_id, content_item_id,
		          reply_excerpt, parent_excerpt, status, attempts, last_error,
		          created_at, updated_at;
    `

	rows, err := r.db.QueryContext(ctx, query, model.JobStatusPending, model.JobStatusSending, time.Now().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to reset stale sending jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func collectJobs(rows *sql.Rows) ([]model.NotificationJob, error) {
	var jobs []model.NotificationJob
	for rows.Next() {
		var j model.NotificationJob
		if err := rows.Scan(
			&j.ID, &j.RecipientAddress, &j.ReplyID, &j.ParentID, &j.ContentItemID,
			&j.ReplyExcerpt, &j.ParentExcerpt, &j.Status, &j.Attempts, &j.LastError,
			&j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}

		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}
