// Package backfill repairs legacy comments that predate the author_email
// snapshot, resolving each author through the identity resolver and writing
// the address back. Running it again after a clean pass finds nothing to do.
package backfill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/iskandar/reply-notifier/internal/identity"
	"github.com/iskandar/reply-notifier/internal/model"
	commentrepo "github.com/iskandar/reply-notifier/internal/repository/comment"
)

// DefaultBatchSize is used when the caller does not specify one.
const DefaultBatchSize = 100

//go:generate mockgen -source=service.go -destination=../../mocks/service/backfill/mock.go -package=mocks

type commentRepository interface {
	ListMissingAuthorEmail(ctx context.Context, after uuid.UUID, limit int) ([]model.Comment, error)
	SetAuthorEmail(ctx context.Context, id uuid.UUID, email string) error
}

type identityResolver interface {
	GetNotificationAddress(ctx context.Context, id uuid.UUID) (string, error)
}

// Report summarises one reconciliation run. MissingAddress counts records
// whose author has no resolvable address; they stay unchanged and will be
// seen again on the next run.
type Report struct {
	Scanned        int `json:"scanned"`
	Updated        int `json:"updated"`
	MissingAddress int `json:"missing_address"`
	Failed         int `json:"failed"`
}

type Service struct {
	repo     commentRepository
	resolver identityResolver
}

func NewService(repo commentRepository, resolver identityResolver) *Service {
	return &Service{repo: repo, resolver: resolver}
}

// Reconcile scans all comments lacking an author_email snapshot in batches
// of batchSize and repairs the ones it can. Per-record failures are counted,
// never fatal; the scan always finishes unless the context is cancelled.
func (s *Service) Reconcile(ctx context.Context, batchSize int) (Report, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var report Report
	after := uuid.Nil

	for {
		if err := ctx.Err(); err != nil {
			// Interrupted runs are safe to restart: nothing already written
			// is ever re-written.
			return report, fmt.Errorf("reconcile interrupted: %w", err)
		}

		batch, err := s.repo.ListMissingAuthorEmail(ctx, after, batchSize)
		if err != nil {
			return report, fmt.Errorf("list comments missing author email: %w", err)
		}

		if len(batch) == 0 {
			break
		}

		for _, c := range batch {
			report.Scanned++
			s.reconcileOne(ctx, c, &report)
		}

		after = batch[len(batch)-1].ID

		if len(batch) < batchSize {
			break
		}
	}

	zlog.Logger.Info().
		Int("scanned", report.Scanned).
		Int("updated", report.Updated).
		Int("missing_address", report.MissingAddress).
		Int("failed", report.Failed).
		Msg("backfill reconciliation finished")

	return report, nil
}

func (s *Service) reconcileOne(ctx context.Context, c model.Comment, report *Report) {
	address, err := s.resolver.GetNotificationAddress(ctx, c.AuthorID)
	if err != nil {
		if errors.Is(err, identity.ErrNoAddress) {
			zlog.Logger.Warn().
				Str("comment_id", c.ID.String()).
				Str("author_id", c.AuthorID.String()).
				Msg("no address for comment author")
			report.MissingAddress++
			return
		}

		zlog.Logger.Error().Err(err).Str("comment_id", c.ID.String()).Msg("resolver lookup failed")
		report.Failed++
		return
	}

	if err := s.repo.SetAuthorEmail(ctx, c.ID, address); err != nil {
		if errors.Is(err, commentrepo.ErrCommentNotFound) {
			// Already repaired by a concurrent run; nothing to count.
			return
		}

		zlog.Logger.Error().Err(err).Str("comment_id", c.ID.String()).Msg("failed to write author email")
		report.Failed++
		return
	}

	report.Updated++
}
