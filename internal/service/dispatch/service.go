// Package dispatch owns notification jobs from the moment the write path
// hands them off: durable pending record, queue publish, status transitions
// and the admin view. Write-path callers only ever see Enqueue and
// RecordSuppressed; workers drive the rest.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/iskandar/reply-notifier/internal/model"
	"github.com/iskandar/reply-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatch/mock.go -package=mocks

type jobPublisher interface {
	Publish(msg queue.JobMessage, strategy retry.Strategy) error
}

type jobRepository interface {
	CreateJob(ctx context.Context, j model.NotificationJob) (uuid.UUID, error)
	Claim(ctx context.Context, id uuid.UUID) error
	RecordAttempt(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
	MarkDelivered(ctx context.Context, id uuid.UUID, attempts int) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
	GetJobStatus(ctx context.Context, id uuid.UUID) (string, error)
	ListJobs(ctx context.Context, limit int) ([]model.NotificationJob, error)
	ListStalePending(ctx context.Context, olderThan time.Duration, limit int) ([]model.NotificationJob, error)
	ResetStaleSending(ctx context.Context, olderThan time.Duration, limit int) ([]model.NotificationJob, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type Service struct {
	repo  jobRepository
	queue jobPublisher
	cache cache
}

func NewService(repo jobRepository, queue jobPublisher, cache cache) *Service {
	return &Service{repo: repo, queue: queue, cache: cache}
}

// Enqueue durably records the job as pending and hands it to the queue. It
// returns as soon as the record and the publish attempt are done; a failed
// publish is logged, not returned, because the pending row is the source of
// truth and the startup sweep will republish it.
func (s *Service) Enqueue(ctx context.Context, strategy retry.Strategy, job model.NotificationJob) (uuid.UUID, error) {
	job.Status = model.JobStatusPending
	job.Attempts = 0

	id, err := s.repo.CreateJob(ctx, job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create notification job: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), job.Status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
	}

	msg := queue.JobMessage{
		ID:               id,
		RecipientAddress: job.RecipientAddress,
		ContentItemID:    job.ContentItemID,
		ReplyExcerpt:     job.ReplyExcerpt,
		ParentExcerpt:    job.ParentExcerpt,
		Attempts:         job.Attempts,
	}

	if err := s.queue.Publish(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish notification job")
	}

	return id, nil
}

// RecordSuppressed writes an audit-only job row for a reply the evaluator
// suppressed. Never enqueued, terminal from birth.
func (s *Service) RecordSuppressed(ctx context.Context, job model.NotificationJob, reason string) (uuid.UUID, error) {
	job.Status = model.JobStatusSuppressed
	job.Attempts = 0
	job.LastError = reason

	id, err := s.repo.CreateJob(ctx, job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("record suppressed job: %w", err)
	}

	return id, nil
}

// Claim takes exclusive ownership of a pending job for delivery.
func (s *Service) Claim(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	if err := s.repo.Claim(ctx, id); err != nil {
		return err
	}

	s.cacheStatus(ctx, strategy, id, model.JobStatusSending)
	return nil
}

// RecordAttempt persists a failed transient attempt.
func (s *Service) RecordAttempt(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	if err := s.repo.RecordAttempt(ctx, id, attempts, lastError); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}

	return nil
}

// MarkDelivered moves the job to its delivered terminal status.
func (s *Service) MarkDelivered(ctx context.Context, strategy retry.Strategy, id uuid.UUID, attempts int) error {
	if err := s.repo.MarkDelivered(ctx, id, attempts); err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, model.JobStatusDelivered)
	return nil
}

// MarkFailed moves the job to its failed terminal status.
func (s *Service) MarkFailed(ctx context.Context, strategy retry.Strategy, id uuid.UUID, attempts int, lastError string) error {
	if err := s.repo.MarkFailed(ctx, id, attempts, lastError); err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, model.JobStatusFailed)
	return nil
}

// GetJobStatusByID returns the job status, cache first, store on miss.
func (s *Service) GetJobStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get job status from cache")
	}

	if err != nil {
		status, err = s.repo.GetJobStatus(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get job status: %w", err)
		}

		s.cacheStatus(ctx, strategy, id, status)
	}

	return status, nil
}

// ListJobs returns recent jobs for the admin surface.
func (s *Service) ListJobs(ctx context.Context, limit int) ([]model.NotificationJob, error) {
	jobs, err := s.repo.ListJobs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, nil
}

// RepublishStale re-publishes jobs whose delivery a crash interrupted:
// pending rows whose queue message was lost between insert and publish, and
// sending rows abandoned by a worker mid-delivery, which are first reset to
// pending. Duplicates are possible and fine: claiming is what makes delivery
// single-owner.
func (s *Service) RepublishStale(ctx context.Context, strategy retry.Strategy, pendingOlderThan, sendingOlderThan time.Duration, limit int) (int, error) {
	reset, err := s.repo.ResetStaleSending(ctx, sendingOlderThan, limit)
	if err != nil {
		return 0, fmt.Errorf("reset stale sending jobs: %w", err)
	}

	pending, err := s.repo.ListStalePending(ctx, pendingOlderThan, limit)
	if err != nil {
		return 0, fmt.Errorf("list stale pending jobs: %w", err)
	}

	republished := 0
	for _, j := range append(reset, pending...) {
		msg := queue.JobMessage{
			ID:               j.ID,
			RecipientAddress: j.RecipientAddress,
			ContentItemID:    j.ContentItemID,
			ReplyExcerpt:     j.ReplyExcerpt,
			ParentExcerpt:    j.ParentExcerpt,
			Attempts:         j.Attempts,
		}

		if err := s.queue.Publish(msg, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("id", j.ID.String()).Msg("failed to republish stale job")
			continue
		}

		s.cacheStatus(ctx, strategy, j.ID, model.JobStatusPending)
		republished++
	}

	return republished, nil
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) {
	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
	}
}
