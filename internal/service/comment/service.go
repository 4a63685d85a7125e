// Package comment implements the write path: comment creation with
// eligibility evaluation and job hand-off, thread reads, soft deletes.
package comment

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/iskandar/reply-notifier/internal/identity"
	"github.com/iskandar/reply-notifier/internal/model"
	"github.com/iskandar/reply-notifier/internal/notify"
	commentrepo "github.com/iskandar/reply-notifier/internal/repository/comment"
	"github.com/iskandar/reply-notifier/internal/thread"
)

var (
	// ErrParentNotFound means the reply references a parent comment that
	// does not exist.
	ErrParentNotFound = errors.New("parent comment not found")

	// ErrParentMismatch means the referenced parent belongs to another
	// content item.
	ErrParentMismatch = errors.New("parent comment belongs to another content item")
)

// excerptLen bounds the comment text carried in a notification payload.
const excerptLen = 200

//go:generate mockgen -source=service.go -destination=../../mocks/service/comment/mock.go -package=mocks

type commentRepository interface {
	CreateComment(ctx context.Context, c model.Comment) (model.Comment, error)
	GetComment(ctx context.Context, id uuid.UUID) (model.Comment, error)
	ListByContentItem(ctx context.Context, itemID uuid.UUID) ([]model.Comment, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type jobDispatcher interface {
	Enqueue(ctx context.Context, strategy retry.Strategy, job model.NotificationJob) (uuid.UUID, error)
	RecordSuppressed(ctx context.Context, job model.NotificationJob, reason string) (uuid.UUID, error)
}

type eligibilityEvaluator interface {
	Evaluate(ctx context.Context, reply model.Comment, parent *model.Comment) notify.Decision
}

type identityResolver interface {
	GetNotificationAddress(ctx context.Context, id uuid.UUID) (string, error)
}

type Service struct {
	repo      commentRepository
	dispatch  jobDispatcher
	evaluator eligibilityEvaluator
	resolver  identityResolver
	maxDepth  int
}

func NewService(
	repo commentRepository,
	dispatch jobDispatcher,
	evaluator eligibilityEvaluator,
	resolver identityResolver,
	maxDepth int,
) *Service {
	return &Service{
		repo:      repo,
		dispatch:  dispatch,
		evaluator: evaluator,
		resolver:  resolver,
		maxDepth:  maxDepth,
	}
}

// CreateReply inserts a comment, evaluates notification eligibility and, on
// a pass, enqueues a delivery job. It returns once the insert and the
// hand-off are done; delivery happens on the workers. Notification problems
// never fail the write.
func (s *Service) CreateReply(
	ctx context.Context,
	strategy retry.Strategy,
	contentItemID uuid.UUID,
	parentID *uuid.UUID,
	authorID uuid.UUID,
	body string,
) (model.Comment, error) {
	var parent *model.Comment
	if parentID != nil {
		p, err := s.repo.GetComment(ctx, *parentID)
		if err != nil {
			if errors.Is(err, commentrepo.ErrCommentNotFound) {
				return model.Comment{}, ErrParentNotFound
			}

			return model.Comment{}, fmt.Errorf("get parent comment: %w", err)
		}

		if p.ContentItemID != contentItemID {
			return model.Comment{}, ErrParentMismatch
		}

		parent = &p
	}

	// Address snapshot for the new record. Lookup failure leaves the
	// snapshot empty; the backfill reconciler repairs it later.
	authorEmail, err := s.resolver.GetNotificationAddress(ctx, authorID)
	if err != nil && !errors.Is(err, identity.ErrNoAddress) {
		zlog.Logger.Warn().Err(err).Str("author_id", authorID.String()).Msg("author address lookup failed, storing empty snapshot")
	}

	created, err := s.repo.CreateComment(ctx, model.Comment{
		ContentItemID: contentItemID,
		ParentID:      parentID,
		AuthorID:      authorID,
		AuthorEmail:   authorEmail,
		Body:          body,
	})
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	s.handOff(ctx, strategy, created, parent)

	return created, nil
}

// handOff evaluates eligibility and records the outcome. Top-level comments
// produce no job at all; suppressed replies leave an audit row.
func (s *Service) handOff(ctx context.Context, strategy retry.Strategy, reply model.Comment, parent *model.Comment) {
	if parent == nil {
		return
	}

	decision := s.evaluator.Evaluate(ctx, reply, parent)

	job := model.NotificationJob{
		RecipientAddress: decision.Address,
		ReplyID:          reply.ID,
		ParentID:         parent.ID,
		ContentItemID:    reply.ContentItemID,
		ReplyExcerpt:     excerpt(reply.Body),
		ParentExcerpt:    excerpt(parent.Body),
	}

	if !decision.Notify() {
		if _, err := s.dispatch.RecordSuppressed(ctx, job, string(decision.Reason)); err != nil {
			zlog.Logger.Error().Err(err).Str("reply_id", reply.ID.String()).Msg("failed to record suppressed job")
		}

		return
	}

	if _, err := s.dispatch.Enqueue(ctx, strategy, job); err != nil {
		zlog.Logger.Error().Err(err).Str("reply_id", reply.ID.String()).Msg("failed to enqueue notification job")
	}
}

// GetThread returns the assembled, depth-capped thread of a content item.
func (s *Service) GetThread(ctx context.Context, contentItemID uuid.UUID) ([]*model.CommentNode, error) {
	comments, err := s.repo.ListByContentItem(ctx, contentItemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	forest, err := thread.Assemble(comments)
	if err != nil {
		return nil, fmt.Errorf("assemble thread: %w", err)
	}

	return thread.Flatten(forest, s.maxDepth), nil
}

// DeleteComment soft-deletes a comment. Replies keep their place in the
// thread and already-enqueued notification jobs are not retracted.
func (s *Service) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}

func excerpt(body string) string {
	if utf8.RuneCountInString(body) <= excerptLen {
		return body
	}

	runes := []rune(body)
	return string(runes[:excerptLen]) + "..."
}
