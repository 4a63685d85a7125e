// Package identity resolves user identifiers to notification addresses and
// preference flags. It is read-only over the user collection.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/iskandar/reply-notifier/internal/model"
	"github.com/iskandar/reply-notifier/internal/repository/user"
)

// ErrNoAddress is returned when a user exists but has no notification
// address, or does not exist at all. The eligibility chain treats both the
// same way.
var ErrNoAddress = errors.New("no notification address for user")

//go:generate mockgen -source=resolver.go -destination=../mocks/identity/mock.go -package=mocks

type userRepository interface {
	GetPreference(ctx context.Context, id uuid.UUID) (model.UserPreference, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Resolver looks up user notification preferences, cache-aside through
// redis with the users table as the source of truth.
type Resolver struct {
	repo     userRepository
	cache    cache
	strategy retry.Strategy
}

// NewResolver creates a new Resolver.
func NewResolver(repo userRepository, c cache, strategy retry.Strategy) *Resolver {
	return &Resolver{repo: repo, cache: c, strategy: strategy}
}

// GetPreferences returns the stored preference record for a user.
func (r *Resolver) GetPreferences(ctx context.Context, id uuid.UUID) (model.UserPreference, error) {
	key := cacheKey(id)

	cached, err := r.cache.GetWithRetry(ctx, r.strategy, key)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to get user preference from cache")
	}

	if err == nil {
		var pref model.UserPreference
		if unmarshalErr := json.Unmarshal([]byte(cached), &pref); unmarshalErr == nil {
			return pref, nil
		}

		zlog.Logger.Warn().Str("user_id", id.String()).Msg("corrupt cached preference, falling back to store")
	}

	pref, err := r.repo.GetPreference(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return model.UserPreference{}, ErrNoAddress
		}

		return model.UserPreference{}, fmt.Errorf("get user preference: %w", err)
	}

	if encoded, marshalErr := json.Marshal(pref); marshalErr == nil {
		if cacheErr := r.cache.SetWithRetry(ctx, r.strategy, key, string(encoded)); cacheErr != nil {
			zlog.Logger.Error().Err(cacheErr).Str("user_id", id.String()).Msg("failed to cache user preference")
		}
	}

	return pref, nil
}

// GetNotificationAddress returns the address notifications for a user should
// be sent to, or ErrNoAddress when there is none.
func (r *Resolver) GetNotificationAddress(ctx context.Context, id uuid.UUID) (string, error) {
	pref, err := r.GetPreferences(ctx, id)
	if err != nil {
		return "", err
	}

	if pref.NotificationAddress == "" {
		return "", ErrNoAddress
	}

	return pref.NotificationAddress, nil
}

func cacheKey(id uuid.UUID) string {
	return "user-pref:" + id.String()
}
