package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/iskandar/reply-notifier/internal/notify"
	"github.com/iskandar/reply-notifier/internal/rabbitmq/queue"
	jobrepo "github.com/iskandar/reply-notifier/internal/repository/job"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/job/mock.go -package=mocks

type jobService interface {
	Claim(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
	RecordAttempt(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
	MarkDelivered(ctx context.Context, strategy retry.Strategy, id uuid.UUID, attempts int) error
	MarkFailed(ctx context.Context, strategy retry.Strategy, id uuid.UUID, attempts int, lastError string) error
}

// OpsAlerter tells operators about jobs that will never be delivered. A nil
// alerter disables alerting.
type OpsAlerter interface {
	Alert(msg string) error
}

// Handler performs delivery for one dequeued job: claim, render, send with
// bounded sequential retries, terminal status. The delivery policy is a
// retry.Strategy: Attempts caps total sends, Delay/Backoff shape the pauses
// between them.
type Handler struct {
	service  jobService
	renderer notify.Renderer
	sender   notify.Sender
	policy   retry.Strategy
	alerter  OpsAlerter // may be nil
}

func NewHandler(svc jobService, renderer notify.Renderer, sender notify.Sender, policy retry.Strategy, alerter OpsAlerter) *Handler {
	return &Handler{
		service:  svc,
		renderer: renderer,
		sender:   sender,
		policy:   policy,
		alerter:  alerter,
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.JobMessage, strategy retry.Strategy) {
	if err := h.service.Claim(ctx, strategy, msg.ID); err != nil {
		if errors.Is(err, jobrepo.ErrJobNotClaimable) {
			// Another worker owns it, or it is already terminal. Duplicate
			// queue messages end up here.
			zlog.Logger.Info().Str("id", msg.ID.String()).Msg("job not claimable, skipping")
			return
		}

		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("failed to claim job")
		return
	}

	doc, err := h.renderer.Render(notify.Payload{
		ReplyExcerpt:  msg.ReplyExcerpt,
		ParentExcerpt: msg.ParentExcerpt,
		ContentItemID: msg.ContentItemID,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("failed to render notification")
		h.fail(ctx, strategy, msg.ID, msg.Attempts, err)
		return
	}

	attempts := msg.Attempts
	delay := h.policy.Delay

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Warn().Str("id", msg.ID.String()).Msg("shutdown during delivery, job will be retried after restart")
			return
		default:
		}

		attempts++

		err := h.sender.Send(msg.RecipientAddress, doc)
		if err == nil {
			if setErr := h.service.MarkDelivered(ctx, strategy, msg.ID, attempts); setErr != nil {
				zlog.Logger.Error().Err(setErr).Str("id", msg.ID.String()).Msg("failed to set status=delivered")
			}

			zlog.Logger.Info().Str("id", msg.ID.String()).Int("attempts", attempts).Msg("notification delivered")
			return
		}

		if notify.IsPermanent(err) {
			zlog.Logger.Warn().Err(err).Str("id", msg.ID.String()).Msg("permanent delivery failure")
			h.fail(ctx, strategy, msg.ID, attempts, err)
			return
		}

		if attempts >= h.policy.Attempts {
			zlog.Logger.Warn().Err(err).Str("id", msg.ID.String()).Int("attempts", attempts).Msg("delivery attempts exhausted")
			h.fail(ctx, strategy, msg.ID, attempts, err)
			return
		}

		zlog.Logger.Info().Err(err).Str("id", msg.ID.String()).Int("attempts", attempts).Msg("transient delivery failure, will retry")

		if setErr := h.service.RecordAttempt(ctx, msg.ID, attempts, err.Error()); setErr != nil {
			zlog.Logger.Error().Err(setErr).Str("id", msg.ID.String()).Msg("failed to record attempt")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		if h.policy.Backoff > 0 {
			delay = time.Duration(float64(delay) * h.policy.Backoff)
		}
	}
}

func (h *Handler) fail(ctx context.Context, strategy retry.Strategy, id uuid.UUID, attempts int, cause error) {
	if err := h.service.MarkFailed(ctx, strategy, id, attempts, cause.Error()); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to set status=failed")
	}

	if h.alerter == nil {
		return
	}

	msg := fmt.Sprintf("notification job %s failed after %d attempt(s): %v", id, attempts, cause)
	if err := h.alerter.Alert(msg); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to send operator alert")
	}
}
