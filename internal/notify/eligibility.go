// Package notify decides whether a reply generates a notification and
// renders notification content for delivery.
package notify

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/iskandar/reply-notifier/internal/identity"
	"github.com/iskandar/reply-notifier/internal/model"
)

// SuppressReason names the rule that stopped a notification.
type SuppressReason string

const (
	ReasonNoTarget  SuppressReason = "no-target"
	ReasonSelfReply SuppressReason = "self-reply"
	ReasonNoAddress SuppressReason = "no-address"
	ReasonOptedOut  SuppressReason = "opted-out"
)

// Decision is the outcome of evaluating a reply: either notify at Address or
// suppress for Reason. Exactly one of the two is set.
type Decision struct {
	Address string
	Reason  SuppressReason
}

// Notify reports whether a notification should be delivered.
func (d Decision) Notify() bool {
	return d.Reason == ""
}

func notifyAt(address string) Decision {
	return Decision{Address: address}
}

func suppress(reason SuppressReason) Decision {
	return Decision{Reason: reason}
}

//go:generate mockgen -source=eligibility.go -destination=../mocks/notify/mock.go -package=mocks

type identityResolver interface {
	GetNotificationAddress(ctx context.Context, id uuid.UUID) (string, error)
	GetPreferences(ctx context.Context, id uuid.UUID) (model.UserPreference, error)
}

// Evaluator applies the ordered suppression rule chain. It is read-only: the
// only side effect is the lookup through the identity resolver.
type Evaluator struct {
	resolver identityResolver
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(resolver identityResolver) *Evaluator {
	return &Evaluator{resolver: resolver}
}

// Evaluate runs the rule chain for a newly created reply against its parent.
// First matching rule wins; the chain always terminates in a decision. A
// transient resolver failure suppresses this evaluation rather than failing
// the comment write.
func (e *Evaluator) Evaluate(ctx context.Context, reply model.Comment, parent *model.Comment) Decision {
	if parent == nil {
		return suppress(ReasonNoTarget)
	}

	if reply.AuthorID == parent.AuthorID {
		return suppress(ReasonSelfReply)
	}

	address, err := e.resolver.GetNotificationAddress(ctx, parent.AuthorID)
	if err != nil {
		if !errors.Is(err, identity.ErrNoAddress) {
			zlog.Logger.Warn().Err(err).
				Str("user_id", parent.AuthorID.String()).
				Msg("identity resolver lookup failed, suppressing notification")
		}

		return suppress(ReasonNoAddress)
	}

	pref, err := e.resolver.GetPreferences(ctx, parent.AuthorID)
	if err != nil {
		if !errors.Is(err, identity.ErrNoAddress) {
			zlog.Logger.Warn().Err(err).
				Str("user_id", parent.AuthorID.String()).
				Msg("identity resolver lookup failed, suppressing notification")
		}

		return suppress(ReasonNoAddress)
	}

	if !pref.ReplyNotificationsEnabled {
		return suppress(ReasonOptedOut)
	}

	return notifyAt(address)
}
