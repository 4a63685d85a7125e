package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/iskandar/reply-notifier/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository reads notification-related fields from the users table. The user
// collection is owned elsewhere; this service never writes to it.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetPreference returns the notification address and reply-notification flag
// for a user.
func (r *Repository) GetPreference(ctx context.Context, id uuid.UUID) (model.UserPreference, error) {
	query := `
		SELECT email, reply_notifications_enabled
		FROM users
		WHERE id = $1;
    `

	pref := model.UserPreference{UserID: id}

	var email sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&email, &pref.ReplyNotificationsEnabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.UserPreference{}, ErrUserNotFound
		}

		return model.UserPreference{}, fmt.Errorf("failed to get user preference: %w", err)
	}

	if email.Valid {
		pref.NotificationAddress = email.String
	}

	return pref, nil
}
